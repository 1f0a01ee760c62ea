// Package config holds runtime settings for the wisdomvault CLI.
//
// Configuration is layered: built-in defaults, then an optional JSON file,
// then command-line flags. Later sources take precedence.
package config

import "path/filepath"

// Config holds runtime settings.
//
// Fields:
//   - DataDir: directory holding the database and the attachment store.
//   - DatabaseFile: SQLite file name inside DataDir.
//   - FilesDir: attachment-store directory name inside DataDir.
//   - LogLevel: one of debug, info, warn, error.
type Config struct {
	DataDir      string
	DatabaseFile string
	FilesDir     string
	LogLevel     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = "."
	c.DatabaseFile = "wisdomvault.db"
	c.FilesDir = "files"
	c.LogLevel = "info"
}

// DatabasePath returns the full path of the SQLite database.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, c.DatabaseFile)
}

// FilesPath returns the full path of the attachment-store directory.
func (c *Config) FilesPath() string {
	return filepath.Join(c.DataDir, c.FilesDir)
}

// LoadConfig constructs a Config from defaults overlaid with the JSON file
// at jsonPath (skipped when empty). Flag overlays are applied afterwards by
// the CLI layer.
func LoadConfig(jsonPath string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, jsonPath); err != nil {
		return nil, err
	}
	return cfg, nil
}
