package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/eth2030/merklepartial/overlay"
)

// Configuration errors.
var (
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrInvalidConfig      = errors.New("invalid configuration")
)

// Config holds the settings shared by all ssztree subcommands. Values come
// from an optional YAML file and are then overridden by command line flags.
type Config struct {
	// Verbosity is the log level 0-5 (0=silent, 5=debug).
	Verbosity int `yaml:"verbosity"`
	// LogFormat is "text" or "json".
	LogFormat string `yaml:"log_format"`
	// FixtureDir is the default ssz_generic fixture directory for eftest.
	FixtureDir string `yaml:"fixture_dir"`
	// WalkDepth bounds how many levels walk descends.
	WalkDepth uint8 `yaml:"walk_depth"`
	// Workers is the number of fixture files run in parallel.
	Workers int `yaml:"workers"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Verbosity:  2,
		LogFormat:  "text",
		FixtureDir: "testdata/ssz_generic",
		WalkDepth:  4,
		Workers:    1,
	}
}

// Validate checks that every field holds an accepted value.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 5 {
		return fmt.Errorf("%w: verbosity %d out of range 0-5", ErrInvalidConfig, c.Verbosity)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: log format %q (want text or json)", ErrInvalidConfig, c.LogFormat)
	}
	if c.WalkDepth > overlay.MaxWalkDepth {
		return fmt.Errorf("%w: walk depth %d exceeds %d", ErrInvalidConfig, c.WalkDepth, overlay.MaxWalkDepth)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}

// LoadConfig returns the defaults overlaid with the YAML file at path. An
// empty path yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("%w: %s", ErrConfigFileNotFound, path)
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return cfg, nil
}
