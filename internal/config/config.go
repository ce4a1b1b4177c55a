// Package config loads and validates the tool configuration from file,
// environment, and defaults.
package config

import (
	"errors"
	"fmt"
)

// Defaults applied when neither file nor environment sets a value.
const (
	// DefaultFormat is the default report format.
	DefaultFormat = "console"
	// DefaultWorkers means "use one worker per CPU".
	DefaultWorkers = 0
	// DefaultCacheSize is the default classification cache capacity in entries.
	DefaultCacheSize = 16384
	// DefaultShowFiles controls whether per-file rows appear in reports.
	DefaultShowFiles = false
)

// Formats lists the supported report formats.
var Formats = []string{"console", "json", "csv", "markdown", "html", "yaml"}

// Config is the top-level configuration struct.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Output   OutputConfig   `mapstructure:"output"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
}

// OutputConfig holds report rendering settings.
type OutputConfig struct {
	Format      string `mapstructure:"format"`
	ShowFiles   bool   `mapstructure:"show_files"`
	MetricsFile string `mapstructure:"metrics_file"`
}

// AnalysisConfig holds analysis settings.
type AnalysisConfig struct {
	Workers        int      `mapstructure:"workers"`
	CacheSize      int      `mapstructure:"cache_size"`
	IgnorePatterns []string `mapstructure:"ignore_patterns"`
	Languages      []string `mapstructure:"languages"`
}

// Sentinel errors for configuration validation.
var (
	// ErrInvalidFormat indicates an unsupported report format.
	ErrInvalidFormat = errors.New("output.format must be one of console, json, csv, markdown, html, yaml")
	// ErrInvalidWorkers indicates the workers value is negative.
	ErrInvalidWorkers = errors.New("analysis.workers must be non-negative")
	// ErrInvalidCacheSize indicates the cache size is negative.
	ErrInvalidCacheSize = errors.New("analysis.cache_size must be non-negative")
)

// Validate checks Config invariants and returns the first error found.
func (c *Config) Validate() error {
	if !validFormat(c.Output.Format) {
		return fmt.Errorf("%w, got %q", ErrInvalidFormat, c.Output.Format)
	}

	if c.Analysis.Workers < 0 {
		return ErrInvalidWorkers
	}

	if c.Analysis.CacheSize < 0 {
		return ErrInvalidCacheSize
	}

	return nil
}

func validFormat(format string) bool {
	for _, known := range Formats {
		if format == known {
			return true
		}
	}

	return false
}
