// Package main provides the bacon CLI entry point.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/matsen/bacon/internal/config"
	"github.com/matsen/bacon/internal/logger"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	// humanOutput controls whether to use human-readable output
	humanOutput bool
	verbose     bool
	// dataFile is the credit file to load; see resolveDataFile
	dataFile string
	cfg      *config.Config
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bacon",
	Short: "Query the collaboration graph of movie credits",
	Long: `bacon builds an undirected collaboration graph from movie-credit records
and answers proximity queries over it: degrees of separation, shared
collaborators, neighbourhoods, eccentricity and the graph center.

Credit files hold one JSON record per line. Every name listed under a
configured category (cast, directors, producers by default) becomes a node,
and people credited on the same work are connected.

All commands output JSON by default; use --human for readable text.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log diagnostics to stderr")
	rootCmd.PersistentFlags().StringVarP(&dataFile, "file", "f", "", "Credit file to load (name in the data directory or a path; env BACON_FILE)")
	rootCmd.Version = Version
}

// setup loads .env, the logger and the configuration before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	logger.Init(verbose)

	loaded, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	cfg = loaded

	if dataFile == "" {
		dataFile = os.Getenv("BACON_FILE")
	}
	logger.Debug("configuration loaded",
		"path", config.Path(),
		"data_dir", cfg.DataDir,
		"categories", cfg.Categories)
	return nil
}
