package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvDataDir:     "/tmp/nk",
		EnvLogFormat:   "console",
		EnvLogFile:     LogToStderr,
		EnvRenderStyle: "",
	}
	cfg := &Config{}
	cfg.LoadDefaults()

	applyEnv(cfg, func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})

	assert.Equal(t, "/tmp/nk", cfg.DataDir)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, LogToStderr, cfg.LogFile)
	assert.Equal(t, "auto", cfg.RenderStyle, "empty values are ignored")
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadEnv_MissingDotEnv(t *testing.T) {
	cfg := &Config{LogLevel: "info"}
	require.NoError(t, loadEnv(cfg, filepath.Join(t.TempDir(), ".env")))
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadEnv_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("# comment\nNOTEKEEPER_LOG_FORMAT=json\nOTHER=1\n"), 0o600))

	cfg := &Config{LogFormat: "text"}
	require.NoError(t, loadEnv(cfg, path))
	assert.Equal(t, "json", cfg.LogFormat)
}
