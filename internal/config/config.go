package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers.
const (
	DriverSQLite = "sqlite"
	DriverMongo  = "mongo"
)

// Config holds all application configuration.
type Config struct {
	// Graph API
	AccessToken  string
	GraphAPIURL  string
	GraphVersion string // e.g. v19.0; empty uses the unversioned endpoint
	HTTPTimeout  time.Duration

	// Post store
	StoreDriver   string // "sqlite" or "mongo" (default: sqlite)
	DatabasePath  string
	MongoURI      string
	MongoDatabase string

	// Logging
	LogLevel string
}

// Load reads configuration from environment variables.
// It automatically loads .env file if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AccessToken:   getEnv("ACCESS_TOKEN", os.Getenv("FACEBOOK_ACCESS_TOKEN")),
		GraphAPIURL:   getEnv("GRAPH_API_URL", "https://graph.facebook.com"),
		GraphVersion:  getEnv("GRAPH_API_VERSION", ""),
		StoreDriver:   getEnv("STORE_DRIVER", DriverSQLite),
		DatabasePath:  getEnv("DATABASE_PATH", "data/fbpost.db"),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017/"),
		MongoDatabase: getEnv("MONGO_DATABASE", "social_media_db"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}

	var err error
	cfg.HTTPTimeout, err = time.ParseDuration(getEnv("HTTP_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.GraphAPIURL == "" {
		return fmt.Errorf("GRAPH_API_URL is required")
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("HTTP_TIMEOUT must not be negative")
	}
	return nil
}

// ValidateForStore checks configuration needed by the selected post store.
func (c *Config) ValidateForStore() error {
	if err := c.Validate(); err != nil {
		return err
	}
	switch c.StoreDriver {
	case DriverSQLite, "":
		if c.DatabasePath == "" {
			return fmt.Errorf("DATABASE_PATH is required when STORE_DRIVER is sqlite")
		}
	case DriverMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGO_URI is required when STORE_DRIVER is mongo")
		}
		if c.MongoDatabase == "" {
			return fmt.Errorf("MONGO_DATABASE is required when STORE_DRIVER is mongo")
		}
	default:
		return fmt.Errorf("invalid STORE_DRIVER: %s (must be 'sqlite' or 'mongo')", c.StoreDriver)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
