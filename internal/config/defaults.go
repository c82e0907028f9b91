package config

import "github.com/ariel-frischer/hooknotify/internal/notify"

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	def := notify.DefaultConfig()
	return map[string]interface{}{
		"notify_script":      def.NotifyScript,
		"enabled_events":     def.EnabledEvents,
		"notify_on_ask_user": def.NotifyOnAskUser,
		"log_level":          "warn",
		"log_format":         "console",
	}
}

// GetDefaultConfigTemplate returns a commented YAML config with every default.
func GetDefaultConfigTemplate() string {
	return `# hooknotify configuration

# Notification command, run as: <notify_script> <message> <title> <priority>
notify_script: notify

# Events that produce a notification.
# Known events: session:start, session:end, tool:pre, tool:post, tool:error,
# prompt:submit, provider:request, provider:response
enabled_events:
  - tool:error
  - session:end

# Notify when the agent asks the user a question, even if tool:post is not enabled
notify_on_ask_user: true

# Logging (stderr): debug, info, warn, error, disabled
log_level: warn
# console or json
log_format: console
`
}
