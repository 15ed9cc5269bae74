package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"ENV_FILE", "APP_NAME", "LOG_LEVEL", "LOG_FORMAT", "METRICS_NAMESPACE"} {
		t.Setenv(envPrefix+key, "")
		os.Unsetenv(envPrefix + key)
	}
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnv(t)
		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, App{
			Name:             "realestate-demo",
			LogLevel:         "info",
			LogFormat:        LogFormatText,
			MetricsNamespace: "realestate",
		}, cfg)
	})

	t.Run("environment overrides", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("REALESTATE_LOG_LEVEL", "DEBUG")
		t.Setenv("REALESTATE_LOG_FORMAT", "json")
		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, LogFormatJSON, cfg.LogFormat)
	})

	t.Run("explicit env file", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "demo.env")
		require.NoError(t, os.WriteFile(path, []byte("REALESTATE_APP_NAME=from-file\n"), 0o600))
		t.Setenv("REALESTATE_ENV_FILE", path)
		t.Cleanup(func() { os.Unsetenv("REALESTATE_APP_NAME") })

		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, "from-file", cfg.Name)
	})

	t.Run("missing explicit env file fails", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("REALESTATE_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
		_, err := FromEnv()
		require.Error(t, err)
	})

	t.Run("invalid level fails", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("REALESTATE_LOG_LEVEL", "loud")
		_, err := FromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "LOG_LEVEL")
	})
}
