package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ModuleName is the name the notification module is listed under in the
// host settings file.
const ModuleName = "hooks-notifications"

// ErrModuleNotConfigured is returned when the settings file has no entry for
// ModuleName.
var ErrModuleNotConfigured = errors.New("notification module not configured")

// Settings is the subset of the host settings.yaml this module reads:
//
//	modules:
//	  hooks:
//	    - module: hooks-notifications
//	      source: git+https://example.com/hooks-notifications
//	      config:
//	        notify_script: notify
//	        enabled_events: [tool:error, session:end]
//	        notify_on_ask_user: true
type Settings struct {
	Modules struct {
		Hooks []ModuleEntry `yaml:"hooks"`
	} `yaml:"modules"`
}

// ModuleEntry is one hook module entry in the settings file.
type ModuleEntry struct {
	Module string         `yaml:"module"`
	Source string         `yaml:"source"`
	Config map[string]any `yaml:"config"`
}

// LoadSettings reads the settings file at path and returns the config map of
// the ModuleName entry. An entry without a config block yields an empty map.
func LoadSettings(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	if err := ValidateYAMLSyntaxFromBytes(data, path); err != nil {
		return nil, err
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, &ValidationError{FilePath: path, Message: err.Error()}
	}

	for _, entry := range s.Modules.Hooks {
		if entry.Module != ModuleName {
			continue
		}
		if entry.Config == nil {
			return map[string]any{}, nil
		}
		return entry.Config, nil
	}
	return nil, fmt.Errorf("%s: %w", path, ErrModuleNotConfigured)
}
