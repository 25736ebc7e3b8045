package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSuperhero loads Super Hero Adventure configuration.
// Search order: customPath -> ~/.arcade/configs/superhero.yaml -> ./configs/superhero.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides the keys it sets.
func LoadSuperhero(customPath string) (SuperheroConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultSuperheroConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decodeSuperhero(data)
		if err != nil {
			return DefaultSuperheroConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("superhero.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decodeSuperhero(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/superhero.yaml"); err == nil {
		if cfg, err := decodeSuperhero(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decodeSuperhero(defaultSuperheroYAML)
	if err != nil {
		return DefaultSuperheroConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decodeSuperhero parses YAML on top of the built-in defaults and validates the result.
func decodeSuperhero(data []byte) (SuperheroConfig, error) {
	cfg := DefaultSuperheroConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
