package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/matsen/bacon/internal/credit"
	"github.com/matsen/bacon/internal/index"
)

func init() {
	rootCmd.AddCommand(indexCmd)
}

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Rebuild the name search index",
	Long: `Rebuild the SQLite name index from the selected credit file.

The index backs "bacon search" and is derived entirely from the credit
file; it is safe to delete at any time.`,
	Args: cobra.NoArgs,
	RunE: runIndex,
}

func runIndex(cmd *cobra.Command, args []string) error {
	path, err := resolveDataFile()
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	db, err := index.OpenDB(cfg.IndexPath)
	if err != nil {
		exitWithError(ExitError, "opening index: %v", err)
	}
	defer db.Close()

	stats, err := db.RebuildFromJSONL(path, cfg.Categories)
	if err != nil {
		var fmtErr *credit.FormatError
		if errors.As(err, &fmtErr) {
			exitWithError(ExitDataError, "rebuilding index: %v", err)
		}
		exitWithError(ExitConfigError, "rebuilding index: %v", err)
	}

	return output(stats, func() {
		outputHuman("Indexed %d participants from %d works (%s)\n", stats.Participants, stats.Works, stats.Source)
	})
}

// mustOpenIndex opens the name index and checks it was built from the
// selected credit file.
func mustOpenIndex() *index.DB {
	path, err := resolveDataFile()
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	if _, err := os.Stat(cfg.IndexPath); err != nil {
		exitWithError(ExitIndexStale, "name index not found at %s (run: bacon index)", cfg.IndexPath)
	}

	db, err := index.OpenDB(cfg.IndexPath)
	if err != nil {
		exitWithError(ExitError, "opening index: %v", err)
	}

	source, err := db.Source()
	if err != nil {
		db.Close()
		exitWithError(ExitIndexStale, "%v (run: bacon index)", err)
	}
	if source != path {
		db.Close()
		exitWithError(ExitIndexStale, "name index was built from %s, not %s (run: bacon index)", source, path)
	}
	return db
}
