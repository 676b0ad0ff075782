// Package config loads ambient CLI settings from the environment. Engine
// parameters (layout, thresholds, OCR settings) come from flags instead.
package config

import (
	"os"

	"github.com/tsawler/roster/internal/logger"
)

type Config struct {
	// Logging Configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

// Load reads the configuration from the environment. Every setting has a
// default, so Load always succeeds.
func Load() *Config {
	return &Config{
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "console"),
		LogTimeFormat: getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:     getEnv("LOG_OUTPUT", "stderr"),
	}
}

// LoggerConfig returns a logger configuration from the main config
func (c *Config) LoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
