package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matsen/bacon/internal/config"
)

func withConfig(t *testing.T, dir string, file string) {
	t.Helper()
	oldCfg, oldFile := cfg, dataFile
	cfg = &config.Config{DataDir: dir}
	dataFile = file
	t.Cleanup(func() {
		cfg, dataFile = oldCfg, oldFile
	})
}

func TestResolveDataFile_SingleFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "films.jsonl"), nil, 0644); err != nil {
		t.Fatalf("writing file: %v", err)
	}
	withConfig(t, dir, "")

	path, err := resolveDataFile()
	if err != nil {
		t.Fatalf("resolveDataFile() error = %v", err)
	}
	if path != filepath.Join(dir, "films.jsonl") {
		t.Errorf("resolveDataFile() = %q", path)
	}
}

func TestResolveDataFile_Ambiguous(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "b.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatalf("writing file: %v", err)
		}
	}
	withConfig(t, dir, "")

	_, err := resolveDataFile()
	if err == nil || !strings.Contains(err.Error(), "a.txt, b.txt") {
		t.Errorf("resolveDataFile() error = %v, want list of candidates", err)
	}
}

func TestResolveDataFile_Empty(t *testing.T) {
	withConfig(t, t.TempDir(), "")

	if _, err := resolveDataFile(); err == nil {
		t.Error("resolveDataFile() expected error for empty data directory")
	}
}

func TestResolveDataFile_Flag(t *testing.T) {
	dir := t.TempDir()
	withConfig(t, dir, "chosen.txt")

	path, err := resolveDataFile()
	if err != nil {
		t.Fatalf("resolveDataFile() error = %v", err)
	}
	if path != filepath.Join(dir, "chosen.txt") {
		t.Errorf("resolveDataFile() = %q", path)
	}
}
