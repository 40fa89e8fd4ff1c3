// Package config loads tool configuration from TOML or YAML files. The
// format is chosen by file extension, so a single Load call serves both
// `ngo --config ngo.toml` and `ngo --config ngo.yaml`. Values missing
// from the file keep their defaults; command-line flags override both.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config is the root of the configuration tree.
type Config struct {
	Transpile TranspileConfig `toml:"transpile" yaml:"transpile"`
	Dataset   DatasetConfig   `toml:"dataset" yaml:"dataset"`
}

// TranspileConfig controls the source-to-Python pipeline.
type TranspileConfig struct {
	// Indent is the number of spaces per block level in emitted Python.
	Indent int `toml:"indent" yaml:"indent"`
	// Check verifies emitted modules with an embedded Python parser.
	Check bool `toml:"check" yaml:"check"`
}

// DatasetConfig controls sample data generation and aggregation.
type DatasetConfig struct {
	Dir     string `toml:"dir" yaml:"dir"`
	Files   int    `toml:"files" yaml:"files"`
	Rows    int    `toml:"rows" yaml:"rows"`
	Workers int    `toml:"workers" yaml:"workers"`
	Seed    int64  `toml:"seed" yaml:"seed"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Transpile: TranspileConfig{
			Indent: 4,
		},
		Dataset: DatasetConfig{
			Dir:     ".",
			Files:   5,
			Rows:    100,
			Workers: 5,
		},
	}
}

// Load reads the file at path and merges it over Default. The decoder
// is picked by extension: .toml, .yaml, or .yml.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q (want .toml, .yaml, or .yml)", ext)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Transpile.Indent < 1 {
		return fmt.Errorf("transpile.indent must be positive, got %d", c.Transpile.Indent)
	}
	if c.Dataset.Files < 1 {
		return fmt.Errorf("dataset.files must be positive, got %d", c.Dataset.Files)
	}
	if c.Dataset.Rows < 1 {
		return fmt.Errorf("dataset.rows must be positive, got %d", c.Dataset.Rows)
	}
	if c.Dataset.Workers < 1 {
		return fmt.Errorf("dataset.workers must be positive, got %d", c.Dataset.Workers)
	}
	return nil
}
