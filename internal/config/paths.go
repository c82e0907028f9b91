package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// UserConfigPath returns the user-level config file path:
// $XDG_CONFIG_HOME/hooknotify/config.yml, falling back to ~/.config/hooknotify/config.yml.
func UserConfigPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "hooknotify", "config.yml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "hooknotify", "config.yml"), nil
}

// DefaultSettingsPath returns ~/.amplifier/settings.yaml.
func DefaultSettingsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".amplifier", "settings.yaml"), nil
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if len(path) >= 2 && path[:2] == "~/" {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
