// Package config loads hooknotify configuration.
//
// Sources are layered, later ones winning: defaults, the user config file,
// an explicit config file, HOOKNOTIFY_* environment variables, and finally
// options handed over by the coordinator at mount time.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"

	"github.com/ariel-frischer/hooknotify/internal/notify"
)

// EnvPrefix is the prefix of environment variable overrides.
const EnvPrefix = "HOOKNOTIFY_"

// Configuration represents the hooknotify configuration
type Configuration struct {
	NotifyScript    string   `koanf:"notify_script" yaml:"notify_script" json:"notify_script" validate:"required"`
	EnabledEvents   []string `koanf:"enabled_events" yaml:"enabled_events" json:"enabled_events" validate:"dive,required"`
	NotifyOnAskUser bool     `koanf:"notify_on_ask_user" yaml:"notify_on_ask_user" json:"notify_on_ask_user"`
	LogLevel        string   `koanf:"log_level" yaml:"log_level" json:"log_level" validate:"oneof=debug info warn error disabled"`
	LogFormat       string   `koanf:"log_format" yaml:"log_format" json:"log_format" validate:"oneof=console json"`
}

// NotifyConfig projects the notifier settings.
func (c *Configuration) NotifyConfig() notify.Config {
	return notify.Config{
		NotifyScript:    c.NotifyScript,
		EnabledEvents:   append([]string(nil), c.EnabledEvents...),
		NotifyOnAskUser: c.NotifyOnAskUser,
	}
}

// Load loads configuration from the user config file, localConfigPath and
// the environment.
// Priority: Environment variables > Local config > User config > Defaults
func Load(localConfigPath string) (*Configuration, error) {
	return LoadWithOverrides(localConfigPath, nil)
}

// LoadWithOverrides is Load with overrides applied on top of every other
// source. Keys missing from overrides, or set to nil, keep their loaded value.
func LoadWithOverrides(localConfigPath string, overrides map[string]any) (*Configuration, error) {
	k := koanf.New(".")
	setAll(k, GetDefaults())

	if userPath, err := UserConfigPath(); err == nil {
		if _, err := os.Stat(userPath); err == nil {
			if err := loadFile(k, userPath); err != nil {
				return nil, fmt.Errorf("failed to load user config: %w", err)
			}
		}
	}

	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			if err := loadFile(k, localConfigPath); err != nil {
				return nil, fmt.Errorf("failed to load local config: %w", err)
			}
		}
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	setAll(k, overrides)

	return finish(k)
}

// FromMap builds a configuration from mount options alone. Missing keys take
// their defaults; a value of the wrong type is an error.
func FromMap(options map[string]any) (*Configuration, error) {
	k := koanf.New(".")
	setAll(k, GetDefaults())
	setAll(k, options)
	return finish(k)
}

func finish(k *koanf.Koanf) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.NotifyScript = expandHomePath(cfg.NotifyScript)

	return &cfg, nil
}

// setAll sets top-level keys, skipping nil values.
func setAll(k *koanf.Koanf, values map[string]any) {
	for key, value := range values {
		if value == nil {
			continue
		}
		_ = k.Set(key, value)
	}
}

// loadFile merges a JSON or YAML config file into k.
func loadFile(k *koanf.Koanf, path string) error {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return k.Load(file.Provider(path), json.Parser())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := ValidateYAMLSyntaxFromBytes(data, path); err != nil {
		return err
	}

	var values map[string]any
	if err := yaml.Unmarshal(data, &values); err != nil {
		return &ValidationError{FilePath: path, Message: err.Error()}
	}
	setAll(k, values)
	return nil
}

// envTransform converts environment variables to config keys.
// Example: HOOKNOTIFY_NOTIFY_SCRIPT -> notify_script.
// HOOKNOTIFY_ENABLED_EVENTS is a comma-separated list. Blank values are
// treated as unset; returning an empty key makes koanf skip the variable.
func envTransform(key, value string) (string, interface{}) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	if strings.TrimSpace(value) == "" {
		return "", nil
	}
	if key == "enabled_events" {
		events := splitList(value)
		if len(events) == 0 {
			return "", nil
		}
		return key, events
	}
	return key, value
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
