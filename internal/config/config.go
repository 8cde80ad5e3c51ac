// Package config handles global configuration and data file locations.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matsen/bacon/internal/credit"
)

// Config represents configuration stored in ~/.config/bacon/config.yml.
type Config struct {
	DataDir       string   `yaml:"data_dir,omitempty"`       // Directory holding credit files
	Categories    []string `yaml:"categories,omitempty"`     // Record keys that contribute participants
	DefaultTarget string   `yaml:"default_target,omitempty"` // Second name for "distance" when omitted
	Workers       int      `yaml:"workers,omitempty"`        // Centrality workers, 0 = all CPUs
	IndexPath     string   `yaml:"index_path,omitempty"`     // SQLite name index
}

const (
	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "bacon"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"

	DefaultDataDir = "data"
	DefaultTarget  = "Kevin Bacon"
	CacheDir       = ".cache"
	IndexFile      = "index.db"
)

// Environment variables that override the config file.
const (
	EnvDataDir    = "BACON_DATA_DIR"
	EnvCategories = "BACON_CATEGORIES"
	EnvWorkers    = "BACON_WORKERS"
)

// Validation errors.
var (
	ErrNoCategories    = errors.New("at least one category is required")
	ErrNegativeWorkers = errors.New("workers must not be negative")
)

// configCache caches the loaded config.
var configCache *Config

// Path returns the path to the config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/bacon/config.yml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile)
}

// Load loads the configuration file, applies environment overrides and
// defaults, and validates the result. A missing file is not an error.
func Load() (*Config, error) {
	if configCache != nil {
		return configCache, nil
	}

	cfg, err := LoadFrom(Path())
	if err != nil {
		return nil, err
	}

	configCache = cfg
	return cfg, nil
}

// LoadFrom loads configuration from an explicit path. An empty path or a
// missing file yields the defaults.
func LoadFrom(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parsing config: %w", err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// ResetCache clears the cached config.
// Useful for testing.
func ResetCache() {
	configCache = nil
}

func (c *Config) applyEnv() error {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		c.DataDir = dir
	}
	if cats := os.Getenv(EnvCategories); cats != "" {
		c.Categories = splitList(cats)
	}
	if w := os.Getenv(EnvWorkers); w != "" {
		n, err := strconv.Atoi(w)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvWorkers, err)
		}
		c.Workers = n
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.DataDir == "" {
		c.DataDir = DefaultDataDir
	}
	c.DataDir = ExpandPath(c.DataDir)

	c.Categories = splitList(strings.Join(c.Categories, ","))
	if len(c.Categories) == 0 {
		c.Categories = append([]string(nil), credit.DefaultCategories...)
	}

	if c.DefaultTarget == "" {
		c.DefaultTarget = DefaultTarget
	}

	if c.IndexPath == "" {
		c.IndexPath = filepath.Join(c.DataDir, CacheDir, IndexFile)
	}
	c.IndexPath = ExpandPath(c.IndexPath)
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if len(c.Categories) == 0 {
		return ErrNoCategories
	}
	if c.Workers < 0 {
		return ErrNegativeWorkers
	}
	return nil
}

// splitList splits a comma-separated list, dropping blanks and duplicates.
func splitList(s string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" || seen[part] {
			continue
		}
		seen[part] = true
		out = append(out, part)
	}
	return out
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path // Return original if we can't get home directory
	}

	return filepath.Join(home, path[1:])
}
