package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "pharmatrack", cfg.App.Name)
	assert.Equal(t, 20*time.Second, cfg.Scanner.Interval)
	assert.Equal(t, "EMP1", cfg.Auth.ManagerID)
	assert.False(t, cfg.Metrics.Enabled)
	assert.False(t, cfg.Tracing.Enabled)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("EXPIRY_SCAN_INTERVAL", "5s")
	t.Setenv("MANAGER_PASSWORD", "s3cret")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.Scanner.Interval)
	assert.Equal(t, "s3cret", cfg.Auth.Password)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_RejectsEmptyPassword(t *testing.T) {
	t.Setenv("MANAGER_PASSWORD", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MANAGER_PASSWORD")
}

func TestLoad_BadIntervalFallsBack(t *testing.T) {
	t.Setenv("EXPIRY_SCAN_INTERVAL", "not-a-duration")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 20*time.Second, cfg.Scanner.Interval)
}
