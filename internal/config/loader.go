package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalConfigPath is the project-local config location.
const LocalConfigPath = "configs/dodge.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.dodge/config.yaml -> ./configs/dodge.yaml -> embedded default.
// Files only need to set the keys they change; everything else keeps the default.
func Load(customPath string) (DodgeConfig, error) {
	base := embeddedDefault()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := overlay(base, data)
		if err != nil {
			return base, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := overlay(base, data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(LocalConfigPath); err == nil {
		if cfg, err := overlay(base, data); err == nil {
			return cfg, nil
		}
	}

	return base, nil
}

// Parse decodes a YAML document on top of the defaults.
func Parse(data []byte) (DodgeConfig, error) {
	return overlay(embeddedDefault(), data)
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg DodgeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// UserConfigPath returns the path to the user config file, or empty if home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dodge", "config.yaml")
}

func overlay(base DodgeConfig, data []byte) (DodgeConfig, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, err
	}
	return cfg, nil
}

func embeddedDefault() DodgeConfig {
	cfg, err := overlay(DefaultDodgeConfig(), defaultDodgeYAML)
	if err != nil {
		return DefaultDodgeConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}
