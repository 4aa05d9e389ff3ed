package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the file
const (
	EnvAPIKey      = "CLOCKIFY_API_KEY"
	EnvWorkspaceID = "CLOCKIFY_WORKSPACE_ID"
	EnvUserID      = "CLOCKIFY_USER_ID"
)

// Load reads the configuration at path on top of the defaults, applies
// environment overrides and validates the result. Files ending in .yaml or
// .yml are parsed as YAML with ${VAR} expansion; anything else as TOML.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if isYAML(path) {
		if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	} else {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.ApplyEnv()
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but returns validated defaults (plus
// environment overrides) when the file does not exist.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := DefaultConfig()
			cfg.ApplyEnv()
			cfg.Normalize()
			if err := cfg.Validate(); err != nil {
				return Config{}, fmt.Errorf("invalid configuration: %w", err)
			}
			return cfg, nil
		}
		return Config{}, err
	}
	return Load(path)
}

// ApplyEnv copies non-empty CLOCKIFY_* variables into the config
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvAPIKey); v != "" {
		c.Clockify.APIKey = v
	}
	if v := os.Getenv(EnvWorkspaceID); v != "" {
		c.Clockify.WorkspaceID = v
	}
	if v := os.Getenv(EnvUserID); v != "" {
		c.Clockify.UserID = v
	}
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
