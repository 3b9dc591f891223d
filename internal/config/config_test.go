package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "localhost:8084", cfg.RunAddress)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "@hourly", cfg.AccrualSchedule)
	assert.False(t, cfg.Production)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("RUN_ADDRESS", "0.0.0.0:9000")
	t.Setenv("DATABASE_URI", "postgres://u:p@db:5432/minvest")
	t.Setenv("KEY", "supersecret")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ACCRUAL_SCHEDULE", "@every 5m")
	t.Setenv("PRODUCTION", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.RunAddress)
	assert.Equal(t, "postgres://u:p@db:5432/minvest", cfg.DatabaseURI)
	assert.Equal(t, "supersecret", cfg.SecretKey)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "@every 5m", cfg.AccrualSchedule)
	assert.True(t, cfg.Production)
}
