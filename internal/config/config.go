package config

import (
	"os"
	"strconv"

	"gridbayes/domain/inference"
	"gridbayes/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Run    inference.RunConfig
	Export ExportConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// ExportConfig holds workbook export settings
type ExportConfig struct {
	Path string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: loadServerConfig(),
		Run:    loadRunConfig(),
		Export: ExportConfig{
			Path: getEnvOrDefault("EXPORT_PATH", ""),
		},
	}

	if err := config.Run.Validate(); err != nil {
		return nil, errors.Wrap(err, "run configuration validation failed")
	}

	return config, nil
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Port:    getEnvOrDefault("PORT", "8080"),
		GinMode: getEnvOrDefault("GIN_MODE", "debug"),
	}
}

// loadRunConfig reads inference parameters, starting from the canonical
// defaults so a bare environment still produces a runnable demo scenario.
func loadRunConfig() inference.RunConfig {
	run := inference.DefaultRunConfig()

	run.SampleSize = getEnvIntOrDefault("SAMPLE_SIZE", run.SampleSize)
	run.PopulationMean = getEnvFloatOrDefault("POPULATION_MEAN", run.PopulationMean)
	run.PopulationSpread = getEnvFloatOrDefault("POPULATION_SPREAD", run.PopulationSpread)
	run.GridLower = getEnvFloatOrDefault("GRID_LOWER", run.GridLower)
	run.GridUpper = getEnvFloatOrDefault("GRID_UPPER", run.GridUpper)
	run.GridPoints = getEnvIntOrDefault("GRID_POINTS", run.GridPoints)
	run.PriorMean = getEnvFloatOrDefault("PRIOR_MEAN", run.PriorMean)
	run.PriorSpread = getEnvFloatOrDefault("PRIOR_SPREAD", run.PriorSpread)
	run.Seed = getEnvInt64OrDefault("SEED", run.Seed)

	return run
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

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
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
