// Package config holds the runtime configuration of the
// expectation engine: evaluation defaults, diagnostic rendering
// and logging. Values come from a YAML file, a .env file and
// the process environment, in increasing precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Log formats.
const (
	LogConsole = "console"
	LogJSON    = "json"
	LogNone    = "none"
)

// Log levels accepted by LogLevel, matched case-insensitively.
var logLevels = []string{"debug", "info", "warn", "warning", "error"}

// DefaultMaxValueLength bounds how many characters of a rendered
// value appear in a diagnostic.
const DefaultMaxValueLength = 2000

// Config holds engine-wide settings.
type Config struct {
	// Soft makes every new chain collect all failures instead of
	// stopping at the first one.
	Soft bool `yaml:"soft"`

	// Color is one of "auto", "always" or "never".
	Color string `yaml:"color"`

	// LogFormat is one of "console", "json" or "none".
	LogFormat string `yaml:"log_format"`

	// LogPath is the JSON log destination. Empty means stdout.
	// With the console format a path adds a JSON copy.
	LogPath string `yaml:"log_path"`

	// LogLevel is the minimum level written: debug, info, warn
	// or error.
	LogLevel string `yaml:"log_level"`

	// Verbose enables debug logging of every conclusion.
	Verbose bool `yaml:"verbose"`

	// MaxValueLength truncates rendered values. Zero disables
	// truncation.
	MaxValueLength int `yaml:"max_value_length"`

	// Redact lists secrets masked in logged diagnostics.
	Redact []string `yaml:"redact"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Color:          ColorAuto,
		LogFormat:      LogNone,
		LogLevel:       "info",
		MaxValueLength: DefaultMaxValueLength,
	}
}

// Load reads a YAML configuration file on top of Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to read config file %s: %w", path, err,
		)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML bytes on top of Default and validates the
// result. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode: %q", c.Color)
	}

	switch c.LogFormat {
	case LogConsole, LogJSON, LogNone:
	default:
		return fmt.Errorf("invalid log format: %q", c.LogFormat)
	}

	if c.LogLevel != "" && !slices.Contains(
		logLevels, strings.ToLower(strings.TrimSpace(c.LogLevel)),
	) {
		return fmt.Errorf("invalid log level: %q", c.LogLevel)
	}

	if c.MaxValueLength < 0 {
		return fmt.Errorf(
			"max_value_length must not be negative: %d",
			c.MaxValueLength,
		)
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
