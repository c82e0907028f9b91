package notify

import (
	"sync"

	"github.com/ariel-frischer/hooknotify/internal/hooks"
	"github.com/rs/zerolog"
)

// Mount registers a notifier built from cfg and returns the teardown func.
func Mount(r hooks.Registrar, cfg Config, logger zerolog.Logger) func() {
	return MountNotifier(r, NewEventNotifier(cfg, logger), logger)
}

// MountNotifier registers n.Handle for every enabled event, plus tool:post
// under AskUserHandlerName when NotifyOnAskUser is set. All registrations use
// HandlerPriority. Duplicate enabled events are registered once.
//
// The returned teardown releases every registration. A panicking release does
// not stop the others, and calling teardown again is a no-op.
func MountNotifier(r hooks.Registrar, n *EventNotifier, logger zerolog.Logger) func() {
	cfg := n.Config()

	var unregisters []hooks.Unregister
	seen := make(map[string]bool, len(cfg.EnabledEvents))
	for _, event := range cfg.EnabledEvents {
		if seen[event] {
			continue
		}
		seen[event] = true
		unregisters = append(unregisters, r.Register(hooks.Registration{
			Event:    event,
			Name:     HandlerName(event),
			Priority: HandlerPriority,
			Handler:  n.Handle,
		}))
	}

	if cfg.NotifyOnAskUser {
		unregisters = append(unregisters, r.Register(hooks.Registration{
			Event:    EventToolPost,
			Name:     AskUserHandlerName,
			Priority: HandlerPriority,
			Handler:  n.Handle,
		}))
	}

	logger.Debug().Int("registrations", len(unregisters)).Str("command", cfg.NotifyScript).Msg("notification hooks mounted")

	var once sync.Once
	return func() {
		once.Do(func() {
			for _, unregister := range unregisters {
				release(unregister, logger)
			}
			logger.Debug().Int("registrations", len(unregisters)).Msg("notification hooks unmounted")
		})
	}
}

func release(unregister hooks.Unregister, logger zerolog.Logger) {
	defer func() {
		if p := recover(); p != nil {
			logger.Warn().Interface("panic", p).Msg("unregister panicked")
		}
	}()
	if unregister != nil {
		unregister()
	}
}
