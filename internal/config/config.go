package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds all application configuration
type Config struct {
	// Server
	Port        string
	Environment string

	// Database
	DatabaseURL string

	// JWT, the bearer gate is off when empty
	JWTSecret string

	// Storage
	StoragePath string

	// CORS
	AllowedOrigins []string

	// Sentry
	SentryDSN string

	// Company profile used until one is persisted
	CompanyName    string
	CompanyAddress []string
	CompanyGSTIN   string
	CompanyState   string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		StoragePath:    getEnv("STORAGE_PATH", "./storage"),
		AllowedOrigins: getEnvAsSlice("ALLOWED_ORIGINS", "*"),
		SentryDSN:      getEnv("SENTRY_DSN", ""),
		CompanyName:    getEnv("COMPANY_NAME", "My Company"),
		CompanyAddress: getEnvAsSlice("COMPANY_ADDRESS", ""),
		CompanyGSTIN:   strings.ToUpper(getEnv("COMPANY_GSTIN", "")),
		CompanyState:   getEnv("COMPANY_STATE", ""),
	}

	// Validate required configuration
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsSlice reads an environment variable as a comma-separated slice of
// trimmed, non-empty values
func getEnvAsSlice(key, defaultValue string) []string {
	values := []string{}
	for _, v := range strings.Split(getEnv(key, defaultValue), ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}
