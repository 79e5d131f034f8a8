package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"DATA_DIR", "DB_PATH", "HTTP_ADDRESS", "REPORT_SCHEDULE", "USER_WEIGHT_KG", "USER_HEIGHT_CM", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, filepath.Join("./data", "fittracker.db"), cfg.DBPath)
	assert.Equal(t, ":8888", cfg.HTTPAddress)
	assert.Empty(t, cfg.ReportSchedule)
	assert.Equal(t, 75.0, cfg.UserWeight)
	assert.Equal(t, 175.0, cfg.UserHeight)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATA_DIR", "/var/lib/fittracker")
	t.Setenv("HTTP_ADDRESS", ":9000")
	t.Setenv("REPORT_SCHEDULE", " @hourly ")
	t.Setenv("USER_WEIGHT_KG", "82.5")
	t.Setenv("USER_HEIGHT_CM", "not-a-number")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, filepath.Join("/var/lib/fittracker", "fittracker.db"), cfg.DBPath)
	assert.Equal(t, ":9000", cfg.HTTPAddress)
	assert.Equal(t, "@hourly", cfg.ReportSchedule)
	assert.Equal(t, 82.5, cfg.UserWeight)
	assert.Equal(t, 175.0, cfg.UserHeight)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadDotEnvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("DB_PATH")
	t.Cleanup(func() { os.Unsetenv("DB_PATH") })

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("DB_PATH=/tmp/packages.db\n"), 0644))

	cfg := Load(envFile)

	assert.Equal(t, "/tmp/packages.db", cfg.DBPath)
}
