package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[database]
driver = "postgres"
server = "db.internal"
port = 5432
name = "hr"

[server]
port = 9090

[tree]
deduplicate = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "db.internal", cfg.Database.Server)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "hr", cfg.Database.Name)
	// Unset keys keep their defaults
	assert.Equal(t, "sa", cfg.Database.User)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.Tree.Deduplicate)
	assert.Equal(t, "first", cfg.Charts.GenderMode)
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[database\n"), 0o600))

	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse TOML")
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", "/tmp/hr.db")
	t.Setenv("PORT", "8181")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("HOST", "")

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv())

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "/tmp/hr.db", cfg.Database.DSN)
	assert.Equal(t, 8181, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "0.0.0.0:8181", cfg.Addr())
}

func TestApplyEnv_BadPort(t *testing.T) {
	t.Setenv("PORT", "eighty")

	err := Default().ApplyEnv()
	assert.ErrorContains(t, err, "invalid PORT")
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Default().Validate())

	cfg := Default()
	cfg.Database.Driver = "oracle"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Charts.GenderMode = "average"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Server.Port = 0
	assert.Error(t, cfg.Validate())
}
