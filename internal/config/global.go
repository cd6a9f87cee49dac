package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	// GlobalConfigDir is the directory name under the user's home.
	GlobalConfigDir = ".shov"
	// GlobalConfigFile is the registry file name.
	GlobalConfigFile = "config.json"
)

// ProjectRecord is one entry in the global project registry.
type ProjectRecord struct {
	APIKey    string    `json:"apiKey"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// GlobalConfig is the per-user registry of known projects, stored in
// ~/.shov/config.json and shared by every shov checkout on the machine.
type GlobalConfig struct {
	Email    string                   `json:"email,omitempty"`
	Projects map[string]ProjectRecord `json:"projects,omitempty"`
}

// GlobalConfigPath returns the path to the registry file, or "" when
// the home directory cannot be determined.
func GlobalConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
}

// LoadGlobal reads the global registry. A missing or unparsable file
// yields an empty config, never an error.
func LoadGlobal() GlobalConfig {
	path := GlobalConfigPath()
	if path == "" {
		return GlobalConfig{}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return GlobalConfig{}
	}

	var cfg GlobalConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return GlobalConfig{}
	}
	return cfg
}

// SaveGlobal writes the registry, creating ~/.shov if needed.
func SaveGlobal(cfg GlobalConfig) error {
	path := GlobalConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine home directory for %s", GlobalConfigFile)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding registry: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("writing registry: %w", err)
	}
	return nil
}

// AddProject upserts a registry entry and persists. Last write wins on
// name collisions; the original CreatedAt survives re-registration.
func AddProject(name, apiKey, email string) error {
	cfg := LoadGlobal()
	if cfg.Projects == nil {
		cfg.Projects = make(map[string]ProjectRecord)
	}
	created := time.Now().UTC()
	if prev, ok := cfg.Projects[name]; ok && !prev.CreatedAt.IsZero() {
		created = prev.CreatedAt
	}
	cfg.Projects[name] = ProjectRecord{
		APIKey:    apiKey,
		Email:     email,
		CreatedAt: created,
	}
	if email != "" {
		cfg.Email = email
	}
	return SaveGlobal(cfg)
}

// RemoveProject deletes a registry entry and persists. It reports
// whether an entry was actually removed.
func RemoveProject(name string) (bool, error) {
	cfg := LoadGlobal()
	if _, ok := cfg.Projects[name]; !ok {
		return false, nil
	}
	delete(cfg.Projects, name)
	if err := SaveGlobal(cfg); err != nil {
		return false, err
	}
	return true, nil
}

// ListProjects returns the registry entries keyed by project name.
func ListProjects() map[string]ProjectRecord {
	return LoadGlobal().Projects
}
