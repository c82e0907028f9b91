// hooknotify - push notifications for agent session lifecycle hooks

// Package cli provides the Cobra-based hooknotify command line. The hook
// command is what a coordinator runs for each lifecycle event; the other
// commands inspect configuration and exercise the notification command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/hooknotify/internal/config"
	"github.com/ariel-frischer/hooknotify/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "hooknotify",
	Short: "Push notifications for agent session lifecycle hooks",
	Long: `hooknotify sends push notifications when an agent session hits a lifecycle
event: a tool fails, the agent asks you a question, the session ends.

Delivery is delegated to an external command, run as:
  <notify_script> <message> <title> <priority>

Configuration is loaded with the following priority (highest to lowest):
  1. Module config from the settings file (--settings, default ~/.amplifier/settings.yaml)
  2. Environment variables (HOOKNOTIFY_*)
  3. Config file (--config)
  4. User config (~/.config/hooknotify/config.yml)
  5. Built-in defaults`,
	Example: `  # Handle an event, payload on stdin
  echo '{"tool_name":"Bash","error":{"message":"not found"}}' | hooknotify hook tool:error

  # Check which events notify
  hooknotify events

  # Try the notification command
  hooknotify send "Hello from hooknotify" "Test" high`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to config file (YAML or JSON)")
	rootCmd.PersistentFlags().String("settings", "", "Path to a host settings.yaml carrying a hooks-notifications module entry")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error, disabled")
}

// loadConfig resolves the effective configuration from flags, files and the
// environment.
func loadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	configPath, _ := cmd.Flags().GetString("config")
	settingsPath, _ := cmd.Flags().GetString("settings")
	logLevel, _ := cmd.Flags().GetString("log-level")

	if settingsPath == "" {
		if path, err := config.DefaultSettingsPath(); err == nil {
			if _, statErr := os.Stat(path); statErr == nil {
				settingsPath = path
			}
		}
	}

	var overrides map[string]any
	if settingsPath != "" {
		options, err := config.LoadSettings(settingsPath)
		if err != nil && !errors.Is(err, config.ErrModuleNotConfigured) {
			return nil, err
		}
		overrides = options
	}

	cfg, err := config.LoadWithOverrides(configPath, overrides)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		if _, err := logging.ParseLevel(logLevel); err != nil {
			return nil, fmt.Errorf("--log-level: %w", err)
		}
		cfg.LogLevel = logLevel
	}
	return cfg, nil
}

// newLogger builds the stderr logger for cfg.
func newLogger(cmd *cobra.Command, cfg *config.Configuration) zerolog.Logger {
	logger, err := logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Format: logging.Format(cfg.LogFormat),
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return zerolog.Nop()
	}
	return logger
}
