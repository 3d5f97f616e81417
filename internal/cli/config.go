package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is consulted when --config is not given.
const DefaultConfigPath = "advent.yaml"

// Defaults used when neither flags nor config set a value.
const (
	DefaultInputDir = "input"
	DefaultDatabase = "advent.db"
)

// Config holds the optional advent.yaml settings.
type Config struct {
	// InputDir is where day<N>.txt input files live.
	InputDir string `yaml:"input_dir,omitempty"`

	// Database is the answer store path. Empty string in the file
	// keeps the default; use the --db flag to disable the store.
	Database string `yaml:"database,omitempty"`
}

// LoadConfig reads and parses a config YAML file.
// Returns an error if the file doesn't exist, is malformed, or
// contains unknown fields (typos).
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return &cfg, nil
}

// loadConfigFor resolves the config for a command invocation.
// An explicit --config path must exist; the default path is optional.
func loadConfigFor(opts *RootOptions) (*Config, error) {
	if opts.ConfigPath != "" {
		return LoadConfig(opts.ConfigPath)
	}
	cfg, err := LoadConfig(DefaultConfigPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	return cfg, nil
}
