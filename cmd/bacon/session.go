package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/matsen/bacon/internal/config"
	"github.com/matsen/bacon/internal/credit"
	"github.com/matsen/bacon/internal/graph"
	"github.com/matsen/bacon/internal/logger"
)

// resolveDataFile returns the absolute path of the credit file to load.
// Without --file the data directory must hold exactly one credit file.
func resolveDataFile() (string, error) {
	if dataFile != "" {
		return filepath.Abs(cfg.ResolveDataFile(dataFile))
	}

	files, err := config.ListDataFiles(cfg.DataDir)
	if err != nil {
		return "", err
	}
	switch len(files) {
	case 0:
		return "", fmt.Errorf("no credit files in %s (use --file)", cfg.DataDir)
	case 1:
		return filepath.Abs(cfg.ResolveDataFile(files[0]))
	default:
		return "", fmt.Errorf("several credit files in %s, choose one with --file: %s",
			cfg.DataDir, strings.Join(files, ", "))
	}
}

// mustLoadGraph loads the collaboration graph, exiting on failure.
// Returns the graph and the path it was loaded from.
func mustLoadGraph() (*graph.Graph, string) {
	path, err := resolveDataFile()
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	if humanOutput {
		fmt.Fprintln(os.Stderr, "Loading credits, this may take a few seconds...")
	}

	g, err := graph.Load(path, cfg.Categories)
	if err != nil {
		var fmtErr *credit.FormatError
		if errors.As(err, &fmtErr) {
			exitWithError(ExitDataError, "%v", err)
		}
		exitWithError(ExitConfigError, "%v", err)
	}

	logger.Debug("graph ready", "nodes", g.Len(), "edges", g.EdgeCount())
	return g, path
}

// mustResolveName matches user input against the graph's participants,
// exiting with ExitNotFound when nothing matches.
func mustResolveName(g *graph.Graph, input string) string {
	name, ok := g.Lookup(input)
	if !ok {
		exitWithError(ExitNotFound, "no participant named %q (try: bacon search %q)", input, input)
	}
	return name
}
