// Package lifecycle mounts the notification plugin into a hook coordinator
// and tears it down again.
//
// It is the entry point a host uses: options arrive as the loosely typed map
// the host read from its settings, are turned into a notify.Config, and the
// resulting EventNotifier is registered. Teardown releases everything that
// was registered.
package lifecycle

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ariel-frischer/hooknotify/internal/config"
	"github.com/ariel-frischer/hooknotify/internal/hooks"
	"github.com/ariel-frischer/hooknotify/internal/notify"
)

// Teardown releases every registration made by Mount. Calling it more than
// once is harmless.
type Teardown func()

// Mount registers the notification hooks described by options on r.
// Recognised options are notify_script, enabled_events and notify_on_ask_user;
// missing ones take their defaults. A value of the wrong type fails the mount.
func Mount(r hooks.Registrar, options map[string]any, logger zerolog.Logger) (Teardown, error) {
	cfg, err := config.FromMap(options)
	if err != nil {
		return nil, fmt.Errorf("mounting notification hooks: %w", err)
	}
	return MountConfig(r, cfg.NotifyConfig(), logger), nil
}

// MountConfig registers the notification hooks for an already loaded config.
func MountConfig(r hooks.Registrar, cfg notify.Config, logger zerolog.Logger) Teardown {
	return Teardown(notify.Mount(r, cfg, logger))
}

// Fire mounts cfg on a fresh registry, emits a single event and tears the
// registry down again. This is the whole life of a hook command invocation.
func Fire(ctx context.Context, cfg notify.Config, event string, payload hooks.Payload, logger zerolog.Logger) hooks.Result {
	registry := hooks.NewRegistry(logger)
	teardown := MountConfig(registry, cfg, logger)
	defer teardown()

	return registry.Emit(ctx, event, payload)
}
