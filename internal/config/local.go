// Package config handles local project and global registry configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// LocalConfigFile is the per-directory project file read from the
// current working directory on every command.
const LocalConfigFile = "shov.json"

// LocalConfig represents the project configuration stored in shov.json.
// When present it is the sole source of truth for credentials.
type LocalConfig struct {
	Project string `json:"project,omitempty"`
	APIKey  string `json:"apiKey,omitempty"`
	Email   string `json:"email,omitempty"`
}

// LoadLocal reads shov.json from the current working directory.
// A missing or unparsable file yields an empty config, never an error:
// credential resolution treats both the same way.
func LoadLocal() LocalConfig {
	data, err := os.ReadFile(LocalConfigFile)
	if err != nil {
		return LocalConfig{}
	}

	var cfg LocalConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return LocalConfig{}
	}
	return cfg
}

// SaveLocal writes the project configuration to shov.json in the
// current working directory, replacing any existing file.
func SaveLocal(cfg LocalConfig) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", LocalConfigFile, err)
	}

	if err := os.WriteFile(LocalConfigFile, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", LocalConfigFile, err)
	}
	return nil
}

// HasCredentials reports whether the config carries both fields the
// resolver needs.
func (c LocalConfig) HasCredentials() bool {
	return c.Project != "" && c.APIKey != ""
}
