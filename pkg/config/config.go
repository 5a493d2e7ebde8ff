// Package config handles configuration for uilocator.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Output format names accepted by defaultFormat and the CLI.
const (
	FormatMap        = "map"
	FormatXPath      = "xpath"
	FormatUiSelector = "uiselector"
)

// Config represents the workspace configuration (config.yaml).
type Config struct {
	// DefaultFormat is the output format used when none is requested.
	DefaultFormat string `yaml:"defaultFormat"`

	// CacheSize bounds the conversion cache; 0 disables caching.
	CacheSize int `yaml:"cacheSize"`

	// Catalogs lists glob patterns for named-locator catalog files.
	Catalogs []string `yaml:"catalogs"`

	// LogFile receives diagnostic output; empty means stderr only.
	LogFile string `yaml:"logFile"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		DefaultFormat: FormatXPath,
		CacheSize:     256,
	}
}

// Load loads configuration from a file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- user-provided config file
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// LoadFromDir looks for config.yaml or config.yml in the directory.
func LoadFromDir(dir string) (*Config, error) {
	// Try config.yaml first
	configPath := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(configPath); err == nil {
		return Load(configPath)
	}

	// Try config.yml
	configPath = filepath.Join(dir, "config.yml")
	if _, err := os.Stat(configPath); err == nil {
		return Load(configPath)
	}

	// No config file found, use defaults
	return Default(), nil
}

// Validate checks field values that have a closed domain.
func (c *Config) Validate() error {
	switch c.DefaultFormat {
	case FormatMap, FormatXPath, FormatUiSelector:
	default:
		return fmt.Errorf("unknown defaultFormat %q", c.DefaultFormat)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cacheSize must not be negative, got %d", c.CacheSize)
	}
	return nil
}
