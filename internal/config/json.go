package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent fields
// leave the corresponding Config values untouched.
type JsonConfig struct {
	DataDir      *string `json:"data_dir"`
	DatabaseFile *string `json:"database_file"`
	FilesDir     *string `json:"files_dir"`
	LogLevel     *string `json:"log_level"`
}

// parseJson overlays cfg with values from the JSON file at path. An empty
// path is a no-op.
func parseJson(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.DataDir != nil {
		cfg.DataDir = *jc.DataDir
	}
	if jc.DatabaseFile != nil {
		cfg.DatabaseFile = *jc.DatabaseFile
	}
	if jc.FilesDir != nil {
		cfg.FilesDir = *jc.FilesDir
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	return nil
}
