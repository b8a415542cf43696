package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, env := range configEnv {
		t.Setenv(env, "")
		require.NoError(t, os.Unsetenv(env))
	}

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "disable", cfg.DBSslMode)
	assert.Equal(t, 24*time.Hour, cfg.StaleLoadingAfter)
	assert.Equal(t, "0 */15 * * * *", cfg.StaleLoadingSchedule)
	assert.EqualError(t, cfg.Validate(),
		"DB_HOST is required\nDB_USER is required\nDB_NAME is required\nJWT_SECRET is required")
}

func TestLoadConfig_EnvironmentWinsOverDotEnv(t *testing.T) {
	for _, env := range configEnv {
		t.Setenv(env, "")
		require.NoError(t, os.Unsetenv(env))
	}
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"DB_HOST=db\nDB_USER=garment\nDB_NAME=garment\nJWT_SECRET=from-file\nSTALE_LOADING_AFTER=90m\n"), 0o600))
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := LoadConfig(envFile)

	require.NoError(t, err)
	assert.Equal(t, "db", cfg.DBHost)
	assert.Equal(t, "from-env", cfg.JWTSecret)
	assert.Equal(t, 90*time.Minute, cfg.StaleLoadingAfter)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "host=db port=5432 user=garment password= dbname=garment sslmode=disable", cfg.DSN())
}
