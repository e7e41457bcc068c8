package datasource

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultBaseURL is the Open-Meteo forecast endpoint
	DefaultBaseURL = "https://api.open-meteo.com/v1/forecast"
	// DefaultTimeout bounds the single forecast request
	DefaultTimeout = 60 * time.Second
	// DefaultLogLevel keeps interactive runs quiet
	DefaultLogLevel = "warn"
)

// Config represents the application configuration
type Config struct {
	BaseURL  string
	Timeout  time.Duration
	LogLevel string
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		BaseURL:  DefaultBaseURL,
		Timeout:  DefaultTimeout,
		LogLevel: DefaultLogLevel,
	}
}

// LoadConfig reads an optional .env file and then the environment.
// A missing env file is not an error.
func LoadConfig(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	config := DefaultConfig()
	config.BaseURL = getEnv("FORECAST_BASE_URL", config.BaseURL)
	config.LogLevel = getEnv("LOG_LEVEL", config.LogLevel)

	if v := os.Getenv("FORECAST_TIMEOUT"); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid FORECAST_TIMEOUT %q: %w", v, err)
		}
		if timeout <= 0 {
			return nil, fmt.Errorf("FORECAST_TIMEOUT must be positive, got %s", timeout)
		}
		config.Timeout = timeout
	}

	return config, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
