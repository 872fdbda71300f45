package config

import (
	"os"
	"strconv"
	"time"

	"dsconf/domain/dataset"
	"dsconf/internal/errors"
)

// Config holds one run's settings. Flag values take precedence; environment
// variables supply the defaults.
type Config struct {
	Column          int           // 1-based dataset column
	ConfidenceLevel float64       // open interval (0,1)
	Precision       int           // decimal digits in the rendered summary
	Threshold       int           // minimum data points per dataset
	ZValue          float64       // user-supplied critical value, 0 = unset
	ZValueSet       bool          // true when -z was given
	ZTablesPath     string        // path to the external lookup tool, "" = use library provider
	ZTablesArgs     []string      // extra args passed to the lookup tool
	Timeout         time.Duration // subprocess timeout for the lookup tool
	JSONOutput      bool          // emit the report as JSON instead of text
	Verbosity       int           // repeat count of -v
}

// Default returns the reference defaults, overridable via DSCONF_* env vars.
func Default() Config {
	return Config{
		Column:          getEnvIntOrDefault("DSCONF_COL", 1),
		ConfidenceLevel: getEnvFloatOrDefault("DSCONF_CONF", 0.95),
		Precision:       getEnvIntOrDefault("DSCONF_PRECISION", 5),
		Threshold:       getEnvIntOrDefault("DSCONF_THRESHOLD", dataset.DefaultThreshold),
		ZTablesPath:     getEnvOrDefault("DSCONF_ZTABLES_PATH", ""),
		Timeout:         getEnvDurationOrDefault("DSCONF_TIMEOUT", 30*time.Second),
	}
}

// Validate checks the configuration, reporting the first offending parameter.
func (c *Config) Validate() error {
	if c.Column < 1 {
		return errors.ConfigInvalid("minimum column value is 1")
	}
	if c.ConfidenceLevel <= 0 || c.ConfidenceLevel >= 1 {
		return errors.ConfigInvalid("confidence level out of range (0..1)")
	}
	if c.Precision < 0 {
		return errors.ConfigInvalid("precision cannot be negative")
	}
	if c.Threshold < dataset.MinSampleSize {
		return errors.ConfigInvalid("threshold must be at least 2 for sample variance to be defined")
	}
	if c.ZValueSet && c.ZValue <= 0 {
		return errors.ConfigInvalid("z-value must be positive")
	}
	if c.Timeout <= 0 {
		return errors.ConfigInvalid("timeout must be positive")
	}
	return nil
}

// ValidateFiles checks that every named dataset file exists before any
// analysis starts, so a bad invocation produces no partial output.
func ValidateFiles(paths []string) error {
	for _, fn := range paths {
		if _, err := os.Stat(fn); err != nil {
			return errors.ConfigInvalid("file does not exist: \"" + fn + "\"")
		}
	}
	return nil
}

// LoadOptions derives the dataset loader settings from the configuration.
func (c *Config) LoadOptions() dataset.LoadOptions {
	opts := dataset.DefaultLoadOptions()
	opts.Column = c.Column
	opts.Threshold = c.Threshold
	return opts
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
