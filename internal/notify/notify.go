package notify

import (
	"slices"
	"strings"
)

// Priority is the urgency passed to the notification command.
type Priority string

const (
	// PriorityDefault is used for informational notifications.
	PriorityDefault Priority = "default"
	// PriorityHigh is used for failures and when the user is needed.
	PriorityHigh Priority = "high"
)

// ValidPriority checks if the given string is a known priority
func ValidPriority(s string) bool {
	switch Priority(s) {
	case PriorityDefault, PriorityHigh:
		return true
	default:
		return false
	}
}

// Lifecycle events fired by the host session.
const (
	EventSessionStart     = "session:start"
	EventSessionEnd       = "session:end"
	EventToolPre          = "tool:pre"
	EventToolPost         = "tool:post"
	EventToolError        = "tool:error"
	EventPromptSubmit     = "prompt:submit"
	EventProviderRequest  = "provider:request"
	EventProviderResponse = "provider:response"
)

// KnownEvents lists the events a host session is known to fire.
// Events outside this list can still be enabled.
func KnownEvents() []string {
	return []string{
		EventSessionStart,
		EventSessionEnd,
		EventToolPre,
		EventToolPost,
		EventToolError,
		EventPromptSubmit,
		EventProviderRequest,
		EventProviderResponse,
	}
}

const (
	// HandlerPriority places the notifier after other handlers of the same event.
	HandlerPriority = 90

	// AskUserHandlerName is the name of the extra tool:post registration that
	// watches for the ask-user tool.
	AskUserHandlerName = "notify_ask_user"
)

// HandlerName returns the registration name for an enabled event,
// e.g. "tool:error" -> "notify_tool_error".
func HandlerName(event string) string {
	return "notify_" + strings.ReplaceAll(event, ":", "_")
}

// Config holds the notifier settings. It is read once at mount time and never
// modified afterwards.
type Config struct {
	// NotifyScript is the notification command, a name on PATH or a path (default: "notify")
	NotifyScript string `koanf:"notify_script" yaml:"notify_script" json:"notify_script" validate:"required"`

	// EnabledEvents are the events that produce notifications (default: tool:error, session:end)
	EnabledEvents []string `koanf:"enabled_events" yaml:"enabled_events" json:"enabled_events" validate:"dive,required"`

	// NotifyOnAskUser notifies when the ask-user tool runs, even if tool:post is not enabled (default: true)
	NotifyOnAskUser bool `koanf:"notify_on_ask_user" yaml:"notify_on_ask_user" json:"notify_on_ask_user"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() Config {
	return Config{
		NotifyScript:    "notify",
		EnabledEvents:   []string{EventToolError, EventSessionEnd},
		NotifyOnAskUser: true,
	}
}

// IsEnabled reports whether event is in EnabledEvents.
func (c Config) IsEnabled(event string) bool {
	return slices.Contains(c.EnabledEvents, event)
}

// Request is a single notification to dispatch. It is built per event and
// dropped once handed to the Sender.
type Request struct {
	Title    string
	Message  string
	Priority Priority
}

// NewRequest creates a new Request with the given parameters
func NewRequest(title, message string, priority Priority) Request {
	return Request{
		Title:    title,
		Message:  message,
		Priority: priority,
	}
}

// Empty reports whether the request carries nothing worth sending.
func (r Request) Empty() bool {
	return r.Title == "" || r.Message == ""
}
