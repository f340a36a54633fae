package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv(EnvLogLevel, "")
		t.Setenv(EnvLogFormat, "")
		cfg, err := NewConfig(Config{})
		require.NoError(t, err)
		assert.Equal(t, &Config{LogLevel: "info", LogFormat: "text"}, cfg)
	})

	t.Run("environment fills empty fields", func(t *testing.T) {
		t.Setenv(EnvLogLevel, "DEBUG")
		t.Setenv(EnvLogFormat, "json")
		cfg, err := NewConfig(Config{LogFormat: "text"})
		require.NoError(t, err)
		assert.Equal(t, &Config{LogLevel: "debug", LogFormat: "text"}, cfg)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := NewConfig(Config{LogLevel: "loud", LogFormat: "text"})
		assert.ErrorContains(t, err, "invalid log-level")
		_, err = NewConfig(Config{LogLevel: "info", LogFormat: "xml"})
		assert.ErrorContains(t, err, "invalid log-format")
	})
}

func TestLoadEnvFile(t *testing.T) {
	require.NoError(t, LoadEnvFile(""))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("GRAPHLIB_TEST_ONLY=from-file\n"), 0644))
	t.Setenv("GRAPHLIB_TEST_ONLY", "")
	os.Unsetenv("GRAPHLIB_TEST_ONLY")

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "from-file", os.Getenv("GRAPHLIB_TEST_ONLY"))

	assert.Error(t, LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")))
}
