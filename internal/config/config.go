// Package config loads runtime settings from the environment
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/dnd-document-parser/internal/errors"
)

// Environment keys
const (
	EnvLogLevel    = "PARSER_LOG_LEVEL"
	EnvWorkers     = "PARSER_WORKERS"
	EnvSourceBook  = "PARSER_SOURCE_BOOK"
	EnvSRDBaseURL  = "PARSER_SRD_BASE_URL"
	EnvSRDTimeout  = "PARSER_SRD_TIMEOUT"
	EnvSRDCacheTTL = "PARSER_SRD_CACHE_TTL"
)

// Defaults
const (
	DefaultLogLevel    = "info"
	DefaultWorkers     = 4
	DefaultSourceBook  = "MM"
	DefaultSRDBaseURL  = "https://www.dnd5eapi.co/api/2014/"
	DefaultSRDTimeout  = 10 * time.Second
	DefaultSRDCacheTTL = 24 * time.Hour

	maxWorkers = 64
)

// Config holds all configuration for the parser
type Config struct {
	LogLevel   string
	Workers    int
	SourceBook string
	SRD        SRDConfig

	// invalid collects values that were set but could not be read
	invalid map[string]string
}

// SRDConfig holds configuration for the D&D 5e SRD API
type SRDConfig struct {
	BaseURL  string
	Timeout  time.Duration
	CacheTTL time.Duration
}

// Load reads configuration from environment variables. Unset keys take
// their defaults; malformed values are reported by Validate.
func Load() *Config {
	cfg := &Config{invalid: map[string]string{}}

	cfg.LogLevel = strings.ToLower(getEnvOrDefault(EnvLogLevel, DefaultLogLevel))
	cfg.Workers = cfg.getEnvAsIntOrDefault(EnvWorkers, DefaultWorkers)
	cfg.SourceBook = getEnvOrDefault(EnvSourceBook, DefaultSourceBook)
	cfg.SRD = SRDConfig{
		BaseURL:  getEnvOrDefault(EnvSRDBaseURL, DefaultSRDBaseURL),
		Timeout:  cfg.getEnvAsDurationOrDefault(EnvSRDTimeout, DefaultSRDTimeout),
		CacheTTL: cfg.getEnvAsDurationOrDefault(EnvSRDCacheTTL, DefaultSRDCacheTTL),
	}

	return cfg
}

// Validate checks every setting and reports all problems at once
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	for key, value := range c.invalid {
		vb.Fieldf(key, "cannot read %q", value)
	}

	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		vb.InvalidField("LogLevel", err.Error())
	}
	errors.ValidateRange("Workers", c.Workers, 1, maxWorkers, vb)
	errors.ValidateRequired("SourceBook", c.SourceBook, vb)
	errors.ValidateRequired("SRD.BaseURL", c.SRD.BaseURL, vb)
	if c.SRD.Timeout <= 0 {
		vb.Field("SRD.Timeout", "must be positive")
	}
	if c.SRD.CacheTTL < 0 {
		vb.Field("SRD.CacheTTL", "must not be negative")
	}

	return vb.Build()
}

// SlogLevel returns the configured log level, falling back to info
func (c *Config) SlogLevel() slog.Level {
	level, err := ParseLogLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// ParseLogLevel reads a level name such as "debug" or "warn"
func ParseLogLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) getEnvAsIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		c.invalid[key] = value
		return defaultValue
	}
	return intValue
}

func (c *Config) getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		c.invalid[key] = value
		return defaultValue
	}
	return d
}
