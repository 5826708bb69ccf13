package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.OTelExport)
	assert.Empty(t, cfg.ConsoleLogFile)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CALC_HTTP_PORT", "9191")
	t.Setenv("CALC_LOG_LEVEL", "debug")
	t.Setenv("CALC_OTEL_EXPORT", "true")
	t.Setenv("CALC_CONSOLE_LOG_FILE", "/tmp/console.log")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9191", cfg.HTTP.Addr())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.OTelExport)
	assert.Equal(t, "/tmp/console.log", cfg.ConsoleLogFile)
}
