package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{"WAREHOUSE_FILE", "WAREHOUSE_AUTOSAVE_CRON", "WAREHOUSE_SEED_DEMO", "LOG_LEVEL"}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "Warehouse.xml", cfg.Storage.FilePath)
	assert.Equal(t, "*/5 * * * *", cfg.Storage.AutosaveCron)
	assert.False(t, cfg.Storage.SeedDemo)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t)

	envFile := filepath.Join(t.TempDir(), "test.env")
	body := "WAREHOUSE_FILE=/tmp/stock.xml\nWAREHOUSE_AUTOSAVE_CRON=\nWAREHOUSE_SEED_DEMO=true\nLOG_LEVEL=debug\n"
	require.NoError(t, os.WriteFile(envFile, []byte(body), 0o600))

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/stock.xml", cfg.Storage.FilePath)
	assert.Empty(t, cfg.Storage.AutosaveCron)
	assert.True(t, cfg.Storage.SeedDemo)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Run("SeedDemoNotBoolean", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("WAREHOUSE_SEED_DEMO", "sometimes")

		_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		require.Error(t, err)
	})

	t.Run("UnknownLogLevel", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("LOG_LEVEL", "loud")

		_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		require.Error(t, err)
	})

	t.Run("EmptyFilePath", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("WAREHOUSE_FILE", "")

		_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		require.EqualError(t, err, "WAREHOUSE_FILE must be provided")
	})
}

func TestValidateNil(t *testing.T) {
	var cfg *Config
	require.Error(t, cfg.Validate())
}
