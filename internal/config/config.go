// Package config holds runtime configuration: defaults, an optional TOML
// file, and validation. CLI flags are applied on top by the cli package.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"textreports/internal/loader"

	"github.com/BurntSushi/toml"
)

// LogFormat selects the slog handler.
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// LogConfig controls diagnostic logging on stderr and the optional log file.
type LogConfig struct {
	Level      string    `toml:"level"`  // debug | info | warn | error
	Format     LogFormat `toml:"format"` // text | json
	File       string    `toml:"file"`   // empty disables the file sink
	MaxSizeMB  int       `toml:"max_size_mb"`
	MaxBackups int       `toml:"max_backups"`
	MaxAgeDays int       `toml:"max_age_days"`
}

// InputConfig bounds what the loaders accept.
type InputConfig struct {
	MaxLineBytes int `toml:"max_line_bytes"`
}

// Config holds all runtime settings
type Config struct {
	Log   LogConfig   `toml:"log"`
	Input InputConfig `toml:"input"`

	Verbose bool `toml:"-"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:      "warn",
			Format:     LogFormatText,
			MaxSizeMB:  5,
			MaxBackups: 7,
			MaxAgeDays: 7,
		},
		Input: InputConfig{
			MaxLineBytes: loader.DefaultMaxLineBytes,
		},
	}
}

// LoadFile decodes the TOML file at path over cfg. Keys that do not map to a
// Config field are rejected so typos do not pass silently.
func LoadFile(path string, cfg *Config) error {
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	undecoded := meta.Undecoded()
	if len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}

		sort.Strings(keys)

		return fmt.Errorf("unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}

	return nil
}

// Validate checks enum fields and numeric bounds.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
		c.Log.Level = strings.ToLower(c.Log.Level)
	default:
		return fmt.Errorf("invalid log level %q (use debug, info, warn or error)", c.Log.Level)
	}

	switch c.Log.Format {
	case LogFormatText, LogFormatJSON:
		// valid
	default:
		return fmt.Errorf("invalid log format %q (use 'text' or 'json')", c.Log.Format)
	}

	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		return errors.New("log rotation settings must not be negative")
	}

	if c.Input.MaxLineBytes <= 0 {
		return errors.New("input max_line_bytes must be positive")
	}

	return nil
}
