package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DataExtensions lists the file extensions recognised as credit files.
var DataExtensions = []string{".txt", ".jsonl"}

// ListDataFiles returns the credit files in dir, sorted by name. Files whose
// name contains "test" are fixtures and are skipped. The directory is
// created when missing.
func ListDataFiles(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing data directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !hasDataExtension(name) || strings.Contains(name, "test") {
			continue
		}
		files = append(files, name)
	}
	sort.Strings(files)
	return files, nil
}

func hasDataExtension(name string) bool {
	ext := filepath.Ext(name)
	for _, want := range DataExtensions {
		if ext == want {
			return true
		}
	}
	return false
}

// ResolveDataFile maps a user-supplied file name to a path. Absolute paths
// and paths that exist as given are used unchanged; anything else is looked
// up in the data directory.
func (c *Config) ResolveDataFile(name string) string {
	name = ExpandPath(name)
	if filepath.IsAbs(name) {
		return name
	}
	if _, err := os.Stat(name); err == nil {
		return name
	}
	return filepath.Join(c.DataDir, name)
}
