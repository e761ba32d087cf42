package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravikt/tuitiondesk/internal/config"
)

func TestLoadConfigDefaultsWithEnvSecrets(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "env-secret")
	t.Setenv("AUTH_ADMIN_PASSWORD_HASH", "$2a$12$examplehash")

	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Mode)
	assert.Equal(t, "students_data.json", cfg.Storage.StudentsFile)
	assert.Equal(t, "admission_requests.json", cfg.Storage.AdmissionsFile)
	assert.Equal(t, "backups", cfg.Storage.BackupDir)
	assert.Equal(t, "12h", cfg.Auth.TokenExpiration)
	assert.Equal(t, "admin", cfg.Auth.AdminUsername)
	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfigFileWithEnvOverride(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: "8080"
storage:
  students_file: "data/students_data.json"
auth:
  jwt_secret: "file-secret"
  admin_password_hash: "$2a$12$examplehash"
  token_expiration: "24h"
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	t.Setenv("SERVER_PORT", "9090")

	cfg, err := config.LoadConfig(configPath)
	require.NoError(t, err)

	// Environment wins over the file, the file wins over defaults.
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "data/students_data.json", cfg.Storage.StudentsFile)
	assert.Equal(t, "file-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "24h", cfg.Auth.TokenExpiration)
	assert.Equal(t, "admission_requests.json", cfg.Storage.AdmissionsFile)
}

func TestLoadConfigRequiresSecrets(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")
	t.Setenv("AUTH_ADMIN_PASSWORD_HASH", "")

	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT secret")
}

func TestLoadConfigRejectsBadExpiration(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "env-secret")
	t.Setenv("AUTH_ADMIN_PASSWORD_HASH", "$2a$12$examplehash")
	t.Setenv("AUTH_TOKEN_EXPIRATION", "tomorrow")

	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token expiration")
}

func TestEnvOverridesApplyAcrossSections(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "env-secret")
	t.Setenv("AUTH_ADMIN_PASSWORD_HASH", "$2a$12$examplehash")
	t.Setenv("SERVER_MODE", "production")
	t.Setenv("STORAGE_BACKUP_DIR", "var/backups")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Server.Mode)
	assert.Equal(t, "var/backups", cfg.Storage.BackupDir)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Variables left unset keep their defaults
	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, "students_data.json", cfg.Storage.StudentsFile)
}
