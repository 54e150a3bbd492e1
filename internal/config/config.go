// Package config loads toolkit settings from an optional YAML file with
// sensible defaults for the UK gauge archive layout.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all toolkit settings.
type Config struct {
	// Constituents are the tidal constituent names fitted by the harmonic
	// step, in output order.
	Constituents []string

	// FilePattern is the glob matched against names inside the input
	// directory.
	FilePattern string

	// Year optionally restricts the harmonic analysis window to one
	// calendar year instead of the longest contiguous block. Zero means
	// no restriction.
	Year int

	LogLevel  string
	LogFormat string
}

// Load reads configuration from path, or from an optional tidal.yaml in the
// working directory when path is empty. Defaults apply for anything unset.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("constituents", []string{"M2", "S2"})
	v.SetDefault("file_pattern", "*.txt")
	v.SetDefault("year", 0)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("tidal")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		var notFound viper.ConfigFileNotFoundError
		if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Constituents: v.GetStringSlice("constituents"),
		FilePattern:  v.GetString("file_pattern"),
		Year:         v.GetInt("year"),
		LogLevel:     v.GetString("log_level"),
		LogFormat:    v.GetString("log_format"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.Constituents) == 0 {
		return errors.New("constituents must name at least one tidal constituent")
	}
	if c.FilePattern == "" {
		return errors.New("file_pattern is required")
	}
	if c.Year != 0 && (c.Year < 1000 || c.Year > 9999) {
		return fmt.Errorf("year must be a 4-digit calendar year, got %d", c.Year)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log_format %q", c.LogFormat)
	}
	return nil
}
