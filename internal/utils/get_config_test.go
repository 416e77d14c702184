package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfig_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("DB_DRIVER: sqlite\nAPP_PORT: \"9000\"\nSTORE_LAT: \"23.1\"\n"), 0o600))

	t.Setenv("APP_PORT", "9100")
	LoadConfigFrom(path)
	t.Cleanup(func() { config = Config{} })

	assert.Equal(t, "sqlite", GetConfig("DB_DRIVER"))
	assert.Equal(t, "9100", GetConfig("APP_PORT"))
	assert.Equal(t, "23.1", GetConfig("STORE_LAT"))
	assert.Equal(t, "Asia/Taipei", GetConfig("APP_TIMEZONE"))
	assert.Equal(t, "", GetConfig("UNKNOWN_KEY"))
}

func TestGetConfig_MissingFileUsesDefaults(t *testing.T) {
	LoadConfigFrom(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Equal(t, "postgres", GetConfig("DB_DRIVER"))
	assert.Equal(t, "https://api.open-meteo.com/v1/forecast", GetConfig("WEATHER_URL"))
}
