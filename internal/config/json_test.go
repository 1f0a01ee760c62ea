package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.DataDir)
	assert.Equal(t, "wisdomvault.db", cfg.DatabaseFile)
	assert.Equal(t, "files", cfg.FilesDir)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_PartialOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"data_dir": "/var/lib/wv", "log_level": "debug"}`), 0o660))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/wv", cfg.DataDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "wisdomvault.db", cfg.DatabaseFile, "absent fields keep defaults")
	assert.Equal(t, "files", cfg.FilesDir)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{nope"), 0o660))
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestConfig_Paths(t *testing.T) {
	cfg := &Config{DataDir: "/data", DatabaseFile: "wv.db", FilesDir: "files"}
	assert.Equal(t, filepath.Join("/data", "wv.db"), cfg.DatabasePath())
	assert.Equal(t, filepath.Join("/data", "files"), cfg.FilesPath())
}
