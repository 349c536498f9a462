// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Output
	OutDir string `json:"out_dir,omitempty"` // Directory for parsed record JSON files
	Pretty bool   `json:"pretty,omitempty"`  // Indent JSON output

	// Behavior
	Mime            string `json:"mime,omitempty"`     // Declared MIME type; inferred from extension when empty
	ValidateRecords bool   `json:"validate,omitempty"` // Validate records against the CV record schema
	Verbose         bool   `json:"verbose,omitempty"`  // Print a human-readable record summary
	Workers         int    `json:"workers,omitempty"`  // Concurrent parses in batch mode
}

// DefaultWorkers is the batch-mode concurrency used when none is configured.
const DefaultWorkers = 4

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}

	if c.OutDir != "" {
		if info, err := os.Stat(c.OutDir); err == nil && !info.IsDir() {
			return fmt.Errorf("config error: 'out_dir' is not a directory: %s", c.OutDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.OutDir == "" {
		result.OutDir = defaults.OutDir
	}
	if result.Mime == "" {
		result.Mime = defaults.Mime
	}
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}

	// Bool fields: a config file can only switch these on
	result.Pretty = result.Pretty || defaults.Pretty
	result.ValidateRecords = result.ValidateRecords || defaults.ValidateRecords
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}

// EffectiveWorkers returns the configured worker count or the default.
func (c *Config) EffectiveWorkers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return DefaultWorkers
}
