package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LevelConfigFile is the file name searched for in the config directories.
const LevelConfigFile = "level.yaml"

// LoadLevel loads the level generation configuration. Values missing from a
// file keep their defaults.
// Search order: customPath -> ~/.dungeon/configs/level.yaml -> ./configs/level.yaml -> embedded default
func LoadLevel(customPath string) (LevelConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return LevelConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseLevel(data)
		if err != nil {
			return LevelConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(LevelConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseLevel(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", LevelConfigFile)); err == nil {
		if cfg, err := parseLevel(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseLevel(defaultLevelYAML)
	if err != nil {
		return DefaultLevelConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseLevel decodes data over the default configuration and validates the result.
func parseLevel(data []byte) (LevelConfig, error) {
	cfg := DefaultLevelConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return LevelConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return LevelConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}

// UserDir returns ~/.dungeon, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dungeon")
}

// ExpandPath expands a leading ~/ to the user's home directory.
func ExpandPath(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
