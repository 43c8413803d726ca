package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"PAYROLL_CONFIG", "PORT", "EMPLOYEE_FILE", "PAYROLL_FILE", "DB_PATH",
		"ADMIN_PASSWORD", "ADMIN_PASSWORD_HASH", "JWT_SECRET", "TOKEN_EXPIRY", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)
	require.NoError(t, LoadConfig())

	assert.Equal(t, "employees.txt", AppConfig.EmployeeFile)
	assert.Equal(t, "payroll.txt", AppConfig.PayrollFile)
	assert.Equal(t, "admin123", AppConfig.AdminPassword)
	ttl, err := AppConfig.TokenTTL()
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, ttl)
}

func TestLoadConfigYAMLThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "payroll.yaml")
	require.NoError(t, os.WriteFile(path, []byte("employee_file: staff.txt\nport: \"8080\"\nlog_level: debug\n"), 0o644))
	t.Setenv("PAYROLL_CONFIG", path)
	t.Setenv("PORT", "9090")

	require.NoError(t, LoadConfig())
	assert.Equal(t, "staff.txt", AppConfig.EmployeeFile)
	assert.Equal(t, "9090", AppConfig.Port)
	assert.Equal(t, "debug", AppConfig.LogLevel)
}

func TestLoadConfigInvalidExpiry(t *testing.T) {
	clearEnv(t)
	t.Setenv("TOKEN_EXPIRY", "soon")
	assert.Error(t, LoadConfig())
}

func TestJWTSecretHasNoDefault(t *testing.T) {
	clearEnv(t)
	require.NoError(t, LoadConfig())

	assert.Empty(t, AppConfig.JWTSecret)
	_, err := AppConfig.RequireJWTSecret()
	assert.ErrorIs(t, err, ErrMissingJWTSecret)

	t.Setenv("JWT_SECRET", "s3cret")
	require.NoError(t, LoadConfig())
	secret, err := AppConfig.RequireJWTSecret()
	require.NoError(t, err)
	assert.Equal(t, "s3cret", secret)
}
