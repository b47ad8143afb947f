package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Data     DataConfig
	Analysis AnalysisConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// DataConfig holds data source settings
type DataConfig struct {
	// File is an optional spreadsheet served as the default dataset.
	File string
}

// AnalysisConfig holds pipeline policy settings
type AnalysisConfig struct {
	// RequirePosition makes a missing chainage column a fatal input error.
	RequirePosition bool
	// TopCorrelations is the default size of the correlation ranking.
	TopCorrelations int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Data: DataConfig{
			File: os.Getenv("DATA_FILE"),
		},
		Analysis: AnalysisConfig{
			RequirePosition: true,
			TopCorrelations: 5,
		},
	}

	if v := os.Getenv("REQUIRE_CHAINAGE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REQUIRE_CHAINAGE %q: %w", v, err)
		}
		config.Analysis.RequirePosition = b
	}

	if v := os.Getenv("TOP_CORRELATIONS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid TOP_CORRELATIONS %q", v)
		}
		config.Analysis.TopCorrelations = n
	}

	return config, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
