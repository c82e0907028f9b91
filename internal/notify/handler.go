package notify

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/ariel-frischer/hooknotify/internal/hooks"
	"github.com/rs/zerolog"
)

const (
	sessionEndPreviewLen   = 60
	promptSubmitPreviewLen = 50
)

// askUserToolNames are the lower-cased spellings of the ask-user tool.
var askUserToolNames = []string{"askuserquestion", "ask_user_question", "ask-user-question"}

// EventNotifier decides which events deserve a notification and dispatches
// them through a Sender. It holds no mutable state, so Handle may run
// concurrently.
type EventNotifier struct {
	config Config
	sender Sender
	log    zerolog.Logger
}

// NewEventNotifier creates a notifier that runs cfg.NotifyScript.
func NewEventNotifier(cfg Config, logger zerolog.Logger) *EventNotifier {
	var sender Sender = noopSender{}
	if cfg.NotifyScript != "" {
		sender = NewCommandSender(cfg.NotifyScript, logger)
	}
	return NewEventNotifierWithSender(cfg, sender, logger)
}

// NewEventNotifierWithSender creates a notifier with a custom sender (for testing).
func NewEventNotifierWithSender(cfg Config, sender Sender, logger zerolog.Logger) *EventNotifier {
	cfg.EnabledEvents = slices.Clone(cfg.EnabledEvents)
	return &EventNotifier{
		config: cfg,
		sender: sender,
		log:    logger,
	}
}

// Config returns a copy of the notifier configuration.
func (n *EventNotifier) Config() Config {
	cfg := n.config
	cfg.EnabledEvents = slices.Clone(n.config.EnabledEvents)
	return cfg
}

// Handle is the hook handler. It dispatches at most one notification and
// always tells the coordinator to continue.
func (n *EventNotifier) Handle(ctx context.Context, event string, payload hooks.Payload) hooks.Result {
	if !n.config.IsEnabled(event) {
		if event == EventToolPost && n.config.NotifyOnAskUser && isAskUserTool(payload) {
			n.dispatch(ctx, event, NewRequest("User Input Needed", "Amplifier is waiting for your input", PriorityHigh))
		}
		return hooks.Continue()
	}

	req := BuildRequest(event, payload)
	if !req.Empty() {
		n.dispatch(ctx, event, req)
	}
	return hooks.Continue()
}

// dispatch sends req and swallows every failure, panics included.
func (n *EventNotifier) dispatch(ctx context.Context, event string, req Request) {
	defer func() {
		if p := recover(); p != nil {
			n.log.Debug().Str("event", event).Interface("panic", p).Msg("notification sender panicked")
		}
	}()

	if err := n.sender.Send(ctx, req); err != nil {
		n.log.Debug().Err(err).Str("event", event).Str("title", req.Title).Msg("notification dropped")
		return
	}
	n.log.Debug().Str("event", event).Str("title", req.Title).Str("priority", string(req.Priority)).Msg("notification launched")
}

// BuildRequest derives the notification for an enabled event. Events without
// a message template produce an empty Request.
func BuildRequest(event string, payload hooks.Payload) Request {
	switch event {
	case EventToolError:
		toolName := stringField(payload, "tool_name", "Unknown")
		return NewRequest("Tool Error", fmt.Sprintf("%s failed: %s", toolName, errorMessage(payload)), PriorityHigh)

	case EventSessionEnd:
		if prompt := firstNonEmpty(payload, "prompt", "parent_prompt", "initial_prompt"); prompt != "" {
			return NewRequest("Session Complete", "Re: "+preview(prompt, sessionEndPreviewLen), PriorityDefault)
		}
		sessionID := stringField(payload, "session_id", "unknown")
		return NewRequest("Session Complete", fmt.Sprintf("Session %s ended", head(sessionID, 8)), PriorityDefault)

	case EventSessionStart:
		return NewRequest("Session Started", "New session created", PriorityDefault)

	case EventToolPost:
		toolName := stringField(payload, "tool_name", "Unknown")
		return NewRequest("Tool Complete", toolName+" executed successfully", PriorityDefault)

	case EventPromptSubmit:
		prompt := stringField(payload, "prompt", "")
		return NewRequest("User Input", "Prompt: "+preview(prompt, promptSubmitPreviewLen), PriorityDefault)
	}

	return NewRequest("", "", PriorityDefault)
}

func isAskUserTool(payload hooks.Payload) bool {
	name, ok := payload["tool_name"].(string)
	if !ok {
		return false
	}
	return slices.Contains(askUserToolNames, strings.ToLower(name))
}
