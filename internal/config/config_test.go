package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "uploads", cfg.Server.StoragePath)
	assert.Equal(t, "campus360", cfg.Database.DBName)
	assert.Equal(t, "24h", cfg.JWT.TokenExpiration)
	assert.Equal(t, "mgmcen.ac.in", cfg.Auth.EmailDomain)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := writeTestConfig(t, `
server:
  port: "9090"
jwt:
  secret: "file-secret"
  token_expiration: "12h"
auth:
  email_domain: "example.edu"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "file-secret", cfg.JWT.Secret)
	assert.Equal(t, "12h", cfg.JWT.TokenExpiration)
	assert.Equal(t, "example.edu", cfg.Auth.EmailDomain)
	// Untouched sections keep defaults
	assert.Equal(t, "localhost", cfg.Database.Host)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeTestConfig(t, `
server:
  port: "9090"
jwt:
  secret: "file-secret"
`)
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("DB_MAX_OPEN_CONNS", "50")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, 50, cfg.Database.MaxOpenConns)
}

func TestLoadConfig_MissingSecretFails(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_BadTokenExpirationFails(t *testing.T) {
	path := writeTestConfig(t, `
jwt:
  secret: "file-secret"
  token_expiration: "one-day"
`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	cfg.Database.User = "app"
	cfg.Database.Password = "pw"
	cfg.Database.Host = "db.local"
	cfg.Database.Port = "5433"
	cfg.Database.DBName = "campus360"

	assert.Equal(t,
		"postgres://app:pw@db.local:5433/campus360?sslmode=disable",
		cfg.GetPostgresConnectionString())
}
