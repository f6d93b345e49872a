package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
)

// Config holds all application configuration
type Config struct {
	// Database configuration
	DatabaseURL string

	// HTTP server configuration
	HTTPAddr string

	// Projection configuration
	DefaultProjectionDays int
	MaxProjectionDays     int
	DefaultCurrency       string

	// Environment
	Environment string // "development" or "production"
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		// Database
		DatabaseURL: os.Getenv("DATABASE_URL"),

		// HTTP server with defaults
		HTTPAddr: ":8080",

		// Projection settings with defaults
		DefaultProjectionDays: 30,
		MaxProjectionDays:     365,
		DefaultCurrency:       "EUR",

		// Environment
		Environment: os.Getenv("ENVIRONMENT"),
	}

	// Override defaults if environment variables are set
	if addr := os.Getenv("HTTP_ADDR"); addr != "" {
		config.HTTPAddr = addr
	}
	if days := os.Getenv("DEFAULT_PROJECTION_DAYS"); days != "" {
		if parsedDays, err := strconv.Atoi(days); err == nil {
			config.DefaultProjectionDays = parsedDays
		}
	}
	if days := os.Getenv("MAX_PROJECTION_DAYS"); days != "" {
		if parsedDays, err := strconv.Atoi(days); err == nil {
			config.MaxProjectionDays = parsedDays
		}
	}
	if currency := os.Getenv("DEFAULT_CURRENCY"); currency != "" {
		config.DefaultCurrency = currency
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
	}

	return config, nil
}
