package main

import (
	"github.com/spf13/cobra"

	"github.com/matsen/bacon/internal/config"
)

func init() {
	rootCmd.AddCommand(filesCmd)
}

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "List the credit files in the data directory",
	Long: `List the .txt and .jsonl credit files in the configured data directory.
Files whose name contains "test" are skipped. The directory is created if
it does not exist.`,
	Args: cobra.NoArgs,
	RunE: runFiles,
}

// FilesResult is the response for the files command.
type FilesResult struct {
	DataDir string   `json:"data_dir"`
	Files   []string `json:"files"`
}

func runFiles(cmd *cobra.Command, args []string) error {
	files, err := config.ListDataFiles(cfg.DataDir)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	if files == nil {
		files = []string{}
	}

	return output(FilesResult{DataDir: cfg.DataDir, Files: files}, func() {
		if len(files) == 0 {
			outputHuman("No credit files in %s\n", cfg.DataDir)
			return
		}
		outputHuman("Credit files in %s:\n\n", cfg.DataDir)
		printNameColumns(files)
	})
}
