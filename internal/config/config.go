// Package config holds the cyclecheck settings: built-in defaults, an optional
// YAML file, and validation. Command-line flags are overlaid by the cli package.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlcycle/cycle"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config is the on-disk and in-memory configuration.
type Config struct {
	Strategy      string `yaml:"strategy"`
	Concurrency   int    `yaml:"concurrency"`
	AllComponents bool   `yaml:"all_components"`
	Output        string `yaml:"output"`
	LogLevel      string `yaml:"log_level"`
	MetricsFile   string `yaml:"metrics_file,omitempty"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Strategy:    string(cycle.StrategyDFS),
		Concurrency: cycle.DefaultConcurrency,
		Output:      OutputText,
		LogLevel:    "warn",
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// Default(). Keys missing from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read the config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field and returns the first problem found.
func (c Config) Validate() error {
	if _, err := cycle.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: strategy: %w", ErrInvalidConfig, err)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("%w: concurrency must be at least 1, got %d", ErrInvalidConfig, c.Concurrency)
	}
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("%w: output must be %q or %q, got %q", ErrInvalidConfig, OutputText, OutputJSON, c.Output)
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level parses LogLevel (debug, info, warn, error; case-insensitive).
// An empty LogLevel means the default level.
func (c Config) Level() (slog.Level, error) {
	name := strings.TrimSpace(c.LogLevel)
	if name == "" {
		name = Default().LogLevel
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return lvl, fmt.Errorf("%w: log_level: %w", ErrInvalidConfig, err)
	}

	return lvl, nil
}
