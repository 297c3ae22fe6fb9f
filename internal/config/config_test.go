package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 1, cfg.DBMaxOpenConns)
	assert.Equal(t, 0, cfg.DBMaxIdleConns)
	assert.Equal(t, 500*time.Millisecond, cfg.DBConnMaxIdleTime)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("DB_HOST", "rds.local")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("CACHE_TTL", "1m")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, time.Minute, cfg.CacheTTL)

	db := cfg.Database()
	assert.Equal(t, "mysql", db.Driver)
	assert.Equal(t, "rds.local", db.Host)
	assert.Equal(t, 1, db.MaxOpenConns)
}

func TestLoadRejectsBadValues(t *testing.T) {
	chdir(t, t.TempDir())

	t.Setenv("DB_DRIVER", "oracle")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_MAX_OPEN_CONNS", "0")
	_, err = Load()
	require.Error(t, err)
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent of testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
