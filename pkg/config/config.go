// Package config loads the small set of settings this module exposes: how
// to log, and nothing about history size or retention, since this module
// never garbage-collects history.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds process-wide settings read from a YAML file.
type Config struct {
	// LogLevel is one of "debug", "info", "warn", "error". Default and Load
	// start from "info"; Validate rejects any other value, including "".
	LogLevel string `yaml:"log_level"`
	// LogJSON selects zap's JSON encoder over its console encoder.
	LogJSON bool `yaml:"log_json"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{LogLevel: "info"}
}

// Load reads and parses a YAML config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports whether the configuration is usable.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("config: invalid log_level %q", c.LogLevel)
	}
}
