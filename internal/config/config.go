package config

import (
	"os"
	"strconv"

	"cogmetrics/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Cache    CacheConfig
	Server   ServerConfig
	Report   ReportConfig
	Export   ExportConfig
}

// DatabaseConfig holds Postgres connection settings
type DatabaseConfig struct {
	URL     string
	Host    string
	Port    int
	User    string
	Name    string
	SSLMode string
}

// CacheConfig holds the local SQLite snapshot-cache settings
type CacheConfig struct {
	Path        string
	Enabled     bool
	MaxAgeHours int
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port       string
	ViewerPort string
	GinMode    string
}

// ReportConfig holds report generation settings
type ReportConfig struct {
	DefaultAudience string
	BatchWorkers    int
	Seed            *int64
}

// ExportConfig holds spreadsheet export settings
type ExportConfig struct {
	Dir string
}

// Load reads configuration from environment variables and validates it.
// Callers run godotenv before Load so a local .env is honored.
func Load() (*Config, error) {
	cfg := &Config{
		Database: DatabaseConfig{
			URL:     os.Getenv("DATABASE_URL"),
			Host:    getEnvOrDefault("DB_HOST", "localhost"),
			Port:    getEnvIntOrDefault("DB_PORT", 5432),
			User:    getEnvOrDefault("DB_USER", ""),
			Name:    getEnvOrDefault("DB_NAME", "cogmetrics"),
			SSLMode: getEnvOrDefault("SSL_MODE", "disable"),
		},
		Cache: CacheConfig{
			Path:        getEnvOrDefault("CACHE_PATH", "./cogmetrics-cache.db"),
			Enabled:     getEnvBoolOrDefault("CACHE_ENABLED", true),
			MaxAgeHours: getEnvIntOrDefault("CACHE_MAX_AGE_HOURS", 720),
		},
		Server: ServerConfig{
			Port:       getEnvOrDefault("PORT", "8080"),
			ViewerPort: getEnvOrDefault("VIEWER_PORT", "8081"),
			GinMode:    getEnvOrDefault("GIN_MODE", "release"),
		},
		Report: ReportConfig{
			DefaultAudience: getEnvOrDefault("DEFAULT_AUDIENCE", "patient"),
			BatchWorkers:    getEnvIntOrDefault("BATCH_WORKERS", 4),
		},
		Export: ExportConfig{
			Dir: getEnvOrDefault("EXPORT_DIR", "./exports"),
		},
	}

	if seedStr := os.Getenv("REPORT_SEED"); seedStr != "" {
		seed, err := strconv.ParseInt(seedStr, 10, 64)
		if err != nil {
			return nil, errors.ConfigInvalid("REPORT_SEED must be an integer")
		}
		cfg.Report.Seed = &seed
	}

	if err := validate(cfg); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Database.URL == "" {
		return errors.ConfigInvalid("DATABASE_URL is required")
	}
	switch cfg.Report.DefaultAudience {
	case "patient", "clinician":
	default:
		return errors.ConfigInvalid("DEFAULT_AUDIENCE must be patient or clinician")
	}
	if cfg.Report.BatchWorkers < 1 {
		return errors.ConfigInvalid("BATCH_WORKERS must be at least 1")
	}
	return nil
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

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
