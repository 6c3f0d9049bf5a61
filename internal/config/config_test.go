package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvConfig_Defaults(t *testing.T) {
	cfg, err := LoadEnvConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.APP_PORT)
	assert.Equal(t, "file", cfg.STORE_DRIVER)
	assert.Equal(t, "09:30", cfg.LATE_CUTOFF)
	assert.Equal(t, int64(42), cfg.SEED_VALUE)
	assert.Equal(t, 12*time.Hour, cfg.AUTH_TOKEN_TTL)
	assert.Same(t, cfg, DefaultEnvConfig)
}

func TestLoadEnvConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "STORE_DRIVER=memory\nSEED_VALUE=7\nDB_CONN_MAX_LIFETIME=30\nLATE_CUTOFF=10:00\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Cleanup(func() {
		for _, k := range []string{"STORE_DRIVER", "SEED_VALUE", "DB_CONN_MAX_LIFETIME", "LATE_CUTOFF"} {
			os.Unsetenv(k)
		}
	})

	cfg, err := LoadEnvConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.STORE_DRIVER)
	assert.Equal(t, int64(7), cfg.SEED_VALUE)
	assert.Equal(t, 30*time.Second, cfg.DB_CONN_MAX_LIFETIME)
	assert.Equal(t, "10:00", cfg.LATE_CUTOFF)
}

func TestGetEnvHelpers_FallbackOnGarbage(t *testing.T) {
	t.Setenv("TEST_INT", "abc")
	t.Setenv("TEST_DURATION", "soon")

	assert.Equal(t, 5, getEnvInt("TEST_INT", 5))
	assert.Equal(t, int64(9), getEnvInt64("TEST_INT", 9))
	assert.Equal(t, time.Minute, getEnvDuration("TEST_DURATION", time.Minute))
}
