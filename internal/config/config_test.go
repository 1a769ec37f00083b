package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "stdio", cfg.Transport.Mode)
	require.Equal(t, "planner.db", cfg.DB.Path)
	require.Equal(t, "info", cfg.Log.Level)
	require.Empty(t, cfg.Auth.Token)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PLANNER_TRANSPORT", "http")
	t.Setenv("PLANNER_SERVER_PORT", "9090")
	t.Setenv("PLANNER_DB_PATH", "/tmp/p.db")
	t.Setenv("PLANNER_AUTH_TOKEN", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "http", cfg.Transport.Mode)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "/tmp/p.db", cfg.DB.Path)
	require.Equal(t, "secret", cfg.Auth.Token)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("db:\n  path: from-file.db\nlog:\n  level: debug\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	t.Setenv("PLANNER_CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "from-file.db", cfg.DB.Path)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("PLANNER_SERVER_PORT", "not-a-port")
	_, err := Load()
	require.Error(t, err)
}

func TestLoad_InvalidTransport(t *testing.T) {
	t.Setenv("PLANNER_TRANSPORT", "carrier-pigeon")
	_, err := Load()
	require.Error(t, err)
}
