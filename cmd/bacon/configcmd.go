package main

import (
	"github.com/spf13/cobra"

	"github.com/matsen/bacon/internal/config"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the configuration after applying the config file, environment
overrides (BACON_DATA_DIR, BACON_CATEGORIES, BACON_WORKERS) and defaults.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

// ConfigResponse is the response for the config command.
type ConfigResponse struct {
	Path          string   `json:"path"`
	DataDir       string   `json:"data_dir"`
	Categories    []string `json:"categories"`
	DefaultTarget string   `json:"default_target"`
	Workers       int      `json:"workers"`
	IndexPath     string   `json:"index_path"`
}

func runConfig(cmd *cobra.Command, args []string) error {
	res := ConfigResponse{
		Path:          config.Path(),
		DataDir:       cfg.DataDir,
		Categories:    cfg.Categories,
		DefaultTarget: cfg.DefaultTarget,
		Workers:       cfg.Workers,
		IndexPath:     cfg.IndexPath,
	}
	return output(res, func() {
		outputHuman("Config file:    %s\n", res.Path)
		outputHuman("Data directory: %s\n", res.DataDir)
		outputHuman("Categories:     %s\n", formatNameList(res.Categories))
		outputHuman("Default target: %s\n", res.DefaultTarget)
		outputHuman("Workers:        %d\n", res.Workers)
		outputHuman("Index:          %s\n", res.IndexPath)
	})
}
