package datasource

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"FORECAST_BASE_URL", "FORECAST_TIMEOUT", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
	assert.Equal(t, 60*time.Second, config.Timeout)
}

func TestLoadConfigFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("FORECAST_BASE_URL", "http://localhost:9999/v1/forecast")
	t.Setenv("FORECAST_TIMEOUT", "5s")
	t.Setenv("LOG_LEVEL", "debug")

	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999/v1/forecast", config.BaseURL)
	assert.Equal(t, 5*time.Second, config.Timeout)
	assert.Equal(t, "debug", config.LogLevel)
}

func TestLoadConfigFromFile(t *testing.T) {
	clearEnv(t)
	// godotenv does not override variables that are already set, even empty ones
	os.Unsetenv("FORECAST_TIMEOUT")
	os.Unsetenv("LOG_LEVEL")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("FORECAST_TIMEOUT=15s\nLOG_LEVEL=info\n"), 0600))
	t.Cleanup(func() {
		os.Unsetenv("FORECAST_TIMEOUT")
		os.Unsetenv("LOG_LEVEL")
	})

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, config.Timeout)
	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, DefaultBaseURL, config.BaseURL)
}

func TestLoadConfigInvalidTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("FORECAST_TIMEOUT", "soon")
	_, err := LoadConfig("")
	assert.Error(t, err)

	t.Setenv("FORECAST_TIMEOUT", "-1s")
	_, err = LoadConfig("")
	assert.Error(t, err)
}
