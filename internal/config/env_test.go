// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_HOST":            "127.0.0.1",
		"APP_PORT":            "8080",
		"APP_REQUEST_TIMEOUT": "15s",

		"SECRET_KEY":         "jwt_secret",
		"TOKEN_ISSUER":       "test_issuer",
		"TOKEN_DURATION":     "1h",
		"PASSWORD_HASH_COST": "6",

		"DATABASE_DRIVER":         "sqlite",
		"DATABASE_URL":            "file:test.db",
		"DATABASE_MAX_OPEN_CONNS": "4",

		"LOG_LEVEL": "debug",

		"ADMIN_NAME":     "Root",
		"ADMIN_EMAIL":    "root@example.com",
		"ADMIN_PASSWORD": "secret123",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "jwt_secret", cfg.Auth.SecretKey)
	assert.Equal(t, "test_issuer", cfg.Auth.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, 6, cfg.Auth.PasswordHashCost)

	assert.Equal(t, "sqlite", cfg.Storage.DB.Driver)
	assert.Equal(t, "file:test.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 4, cfg.Storage.DB.MaxOpenConns)

	assert.Equal(t, "debug", cfg.Log.Level)

	assert.Equal(t, "Root", cfg.Admin.Name)
	assert.Equal(t, "root@example.com", cfg.Admin.Email)
	assert.Equal(t, "secret123", cfg.Admin.Password)
	assert.True(t, cfg.Admin.Enabled())
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"SECRET_KEY": "jwt_secret",
		"APP_PORT":   "3333",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "jwt_secret", cfg.Auth.SecretKey)
	assert.Empty(t, cfg.Auth.TokenIssuer)
	assert.Zero(t, cfg.Auth.TokenDuration)

	assert.Equal(t, 3333, cfg.Server.Port)
	assert.Empty(t, cfg.Server.Host)

	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.False(t, cfg.Admin.Enabled())
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"TOKEN_DURATION": "not-a-duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidPort(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_PORT": "eighty",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected time.Duration
	}{
		{name: "seconds", value: "30s", expected: 30 * time.Second},
		{name: "minutes", value: "5m", expected: 5 * time.Minute},
		{name: "hours", value: "24h", expected: 24 * time.Hour},
		{name: "mixed", value: "1h30m", expected: 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{"TOKEN_DURATION": tt.value})

			cfg := &StructuredConfig{}
			require.NoError(t, parseEnv(cfg))
			assert.Equal(t, tt.expected, cfg.Auth.TokenDuration)
		})
	}
}

func TestLoadDotEnv_MissingFileIsIgnored(t *testing.T) {
	err := loadDotEnv(filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, err)
}

func TestLoadDotEnv_LoadsVariables(t *testing.T) {
	clearEnvVars(t)

	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte("SECRET_KEY=from_dotenv\nAPP_PORT=4000\n"), 0o600))

	require.NoError(t, loadDotEnv(p))

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, "from_dotenv", cfg.Auth.SecretKey)
	assert.Equal(t, 4000, cfg.Server.Port)
}

func TestLoadDotEnv_DoesNotOverrideExisting(t *testing.T) {
	setEnvVars(t, map[string]string{"SECRET_KEY": "from_env"})

	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte("SECRET_KEY=from_dotenv\n"), 0o600))

	require.NoError(t, loadDotEnv(p))
	assert.Equal(t, "from_env", os.Getenv("SECRET_KEY"))
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// clearEnvVars unsets every variable the config reads. t.Setenv registers the
// restore step before the variable is removed.
func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_HOST",
		"APP_PORT",
		"APP_REQUEST_TIMEOUT",

		"SECRET_KEY",
		"TOKEN_ISSUER",
		"TOKEN_DURATION",
		"PASSWORD_HASH_COST",

		"DATABASE_DRIVER",
		"DATABASE_URL",
		"DATABASE_MAX_OPEN_CONNS",

		"LOG_LEVEL",

		"ADMIN_NAME",
		"ADMIN_EMAIL",
		"ADMIN_PASSWORD",
	}
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
