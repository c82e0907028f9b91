// Package notify turns agent session lifecycle events into push notifications.
//
// An EventNotifier is mounted into a hook coordinator (see package hooks). For
// every event it receives it decides whether a notification is warranted,
// derives a title, message and priority, and hands them to an external
// notification command without waiting for it to finish.
//
// # Delivery
//
// Delivery is delegated to any executable that accepts positional arguments in
// the order message, title, priority:
//
//	notify "Bash failed: not found" "Tool Error" high
//
// The command is started synchronously so notifications launch in event order,
// then reaped on a detached goroutine. Its output is discarded and its exit
// status is only logged. Failures to launch are swallowed: a missing or broken
// notifier never affects the session.
//
// # Usage
//
//	cfg := notify.DefaultConfig()
//	cfg.EnabledEvents = append(cfg.EnabledEvents, notify.EventPromptSubmit)
//	teardown := notify.Mount(registry, cfg, logger)
//	defer teardown()
package notify
