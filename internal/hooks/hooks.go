// Package hooks defines the contract between a hook coordinator and the
// handlers mounted into it, plus a small in-process Registry that implements
// the coordinator side.
//
// A coordinator fires named lifecycle events ("tool:post", "session:end", ...)
// with a loosely typed payload. Handlers inspect the payload and answer with a
// Result telling the coordinator whether to keep going.
package hooks

import "context"

// Action is the continuation signal a handler returns to the coordinator.
type Action string

const (
	// ActionContinue tells the coordinator to keep processing the event.
	ActionContinue Action = "continue"
	// ActionHalt tells the coordinator to stop running later handlers.
	ActionHalt Action = "halt"
)

// DefaultPriority is the priority used when a registration does not care.
// Lower values run first.
const DefaultPriority = 50

// Result is returned by every handler invocation.
type Result struct {
	Action Action `json:"action" yaml:"action"`
}

// Continue returns the "keep going" result.
func Continue() Result {
	return Result{Action: ActionContinue}
}

// Payload is the event data supplied by the coordinator. No key is guaranteed
// to be present and values may have any type.
type Payload map[string]any

// HandlerFunc handles one event.
type HandlerFunc func(ctx context.Context, event string, payload Payload) Result

// Unregister releases a registration.
type Unregister func()

// Registration describes a handler to attach to an event.
type Registration struct {
	Event    string
	Name     string
	Priority int
	Handler  HandlerFunc
}

// Registrar is the part of a coordinator that plugins mount into.
type Registrar interface {
	Register(reg Registration) Unregister
}
