package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

func userConfigPath(configDir string) string {
	return filepath.Join(configDir, "config.toml")
}

// LoadUserConfig decodes config.toml from configDir, writing the commented
// template first if the file does not exist yet.
func LoadUserConfig(configDir string) (*UserConfig, error) {
	cfg := DefaultUserConfig()
	path := userConfigPath(configDir)

	if !FileExists(path) {
		if err := CreateDefaultUserConfig(configDir); err != nil {
			return nil, fmt.Errorf("failed to create user config: %w", err)
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse user config: %w", err)
	}

	return cfg, nil
}

func CreateDefaultUserConfig(configDir string) error {
	if err := EnsureDir(configDir); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	path := userConfigPath(configDir)
	if FileExists(path) {
		return nil
	}

	if err := os.WriteFile(path, []byte(GenerateUserConfigTemplate()), 0600); err != nil {
		return fmt.Errorf("failed to write user config: %w", err)
	}

	return nil
}
