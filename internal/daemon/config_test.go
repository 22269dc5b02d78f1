package daemon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 7740, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Telemetry.Prometheus)
	assert.NotEmpty(t, cfg.Store.Dir)
}

func TestLoadConfig_NoFile(t *testing.T) {
	t.Setenv("MUGSHOT_HOME", t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Server.Port, cfg.Server.Port)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("MUGSHOT_HOME", home)

	content := "[server]\nport = 9090\n\n[logging]\nlevel = \"debug\"\npretty = true\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.toml"), []byte(content), 0600))

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Pretty)
	// Untouched sections keep their defaults
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.True(t, cfg.Telemetry.Prometheus)
}

func TestLoadConfig_Malformed(t *testing.T) {
	home := t.TempDir()
	t.Setenv("MUGSHOT_HOME", home)

	require.NoError(t, os.WriteFile(filepath.Join(home, "config.toml"), []byte("[[[nope"), 0600))

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("MUGSHOT_HOME", home)

	want := DefaultConfig()
	want.Server.Port = 8181
	want.Logging.Level = "warn"
	require.NoError(t, SaveConfig(want))

	got, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 8181, got.Server.Port)
	assert.Equal(t, "warn", got.Logging.Level)
}

func TestHome_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MUGSHOT_HOME", dir)
	assert.Equal(t, dir, Home())
}
