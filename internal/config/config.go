package config

import (
	"os"
	"strconv"

	"olymstats/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Data     DataConfig
	Output   OutputConfig
	Server   ServerConfig
	Database DatabaseConfig
}

// DataConfig holds input data settings
type DataConfig struct {
	CSVFile string
}

// OutputConfig holds result export settings
type OutputConfig struct {
	Dir       string
	ExcelFile string
	TopNOC    int
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port string
}

// DatabaseConfig holds optional result persistence settings.
// An empty URL disables persistence.
type DatabaseConfig struct {
	URL string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Data: DataConfig{
			CSVFile: getEnvOrDefault("ATHLETE_CSV", "data/athlete_events.csv"),
		},
		Output: OutputConfig{
			Dir:       getEnvOrDefault("OUTPUT_DIR", "output"),
			ExcelFile: getEnvOrDefault("OUTPUT_XLSX", ""),
			TopNOC:    getEnvIntOrDefault("TOP_NOC_COUNT", 20),
		},
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Database: DatabaseConfig{
			URL: getEnvOrDefault("DATABASE_URL", ""),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Data.CSVFile == "" {
		return errors.ConfigInvalid("ATHLETE_CSV is required")
	}
	if config.Output.TopNOC <= 0 {
		return errors.ConfigInvalid("TOP_NOC_COUNT must be positive")
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
