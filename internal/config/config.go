// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds every tunable the server reads at startup.
type Config struct {
	// HTTP Server
	Port string

	// Database
	SQLiteDBPath string

	// Static frontend directory; empty disables static serving.
	StaticPath string

	// Logging
	LogLevel string
}

// Load builds a Config from environment variables with defaults.
func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "8080"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/divvy.db"),
		StaticPath:   getEnv("STATIC_PATH", ""),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
}

// Validate returns an error describing the first invalid setting.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port %q: must be a number", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", port)
	}
	if c.SQLiteDBPath == "" {
		return fmt.Errorf("SQLITE_DB_PATH cannot be empty")
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
