package hooks

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type entry struct {
	id  string
	seq uint64
	reg Registration
}

// Registry is an in-process coordinator. Handlers for an event run in
// ascending priority order; equal priorities keep registration order.
type Registry struct {
	mu      sync.RWMutex
	entries map[string][]entry
	seq     uint64
	log     zerolog.Logger
}

// NewRegistry creates an empty registry that logs through logger.
func NewRegistry(logger zerolog.Logger) *Registry {
	return &Registry{
		entries: make(map[string][]entry),
		log:     logger,
	}
}

// Register attaches reg.Handler to reg.Event. The returned Unregister is safe
// to call more than once.
func (r *Registry) Register(reg Registration) Unregister {
	id := uuid.NewString()

	r.mu.Lock()
	r.seq++
	list := append(r.entries[reg.Event], entry{id: id, seq: r.seq, reg: reg})
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].reg.Priority != list[j].reg.Priority {
			return list[i].reg.Priority < list[j].reg.Priority
		}
		return list[i].seq < list[j].seq
	})
	r.entries[reg.Event] = list
	r.mu.Unlock()

	r.log.Debug().
		Str("event", reg.Event).
		Str("handler", reg.Name).
		Int("priority", reg.Priority).
		Str("id", id).
		Msg("handler registered")

	var once sync.Once
	return func() {
		once.Do(func() { r.remove(reg.Event, id) })
	}
}

func (r *Registry) remove(event, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.entries[event]
	for i, e := range list {
		if e.id == id {
			r.entries[event] = append(list[:i:i], list[i+1:]...)
			break
		}
	}
	if len(r.entries[event]) == 0 {
		delete(r.entries, event)
	}
}

// Handlers returns the names of the handlers registered for event, in the
// order Emit would run them.
func (r *Registry) Handlers(event string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries[event]))
	for _, e := range r.entries[event] {
		names = append(names, e.reg.Name)
	}
	return names
}

// Len returns the total number of live registrations.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, list := range r.entries {
		n += len(list)
	}
	return n
}

// Emit runs every handler registered for event and returns the last result.
// A handler returning ActionHalt stops the chain. A panicking handler is
// logged and treated as ActionContinue.
func (r *Registry) Emit(ctx context.Context, event string, payload Payload) Result {
	r.mu.RLock()
	list := append([]entry(nil), r.entries[event]...)
	r.mu.RUnlock()

	if payload == nil {
		payload = Payload{}
	}

	result := Continue()
	for _, e := range list {
		if err := ctx.Err(); err != nil {
			r.log.Debug().Err(err).Str("event", event).Msg("emit cancelled")
			break
		}
		result = r.invoke(ctx, e.reg, event, payload)
		if result.Action == ActionHalt {
			r.log.Debug().Str("event", event).Str("handler", e.reg.Name).Msg("handler halted event")
			break
		}
	}
	return result
}

func (r *Registry) invoke(ctx context.Context, reg Registration, event string, payload Payload) (res Result) {
	defer func() {
		if p := recover(); p != nil {
			r.log.Warn().
				Str("event", event).
				Str("handler", reg.Name).
				Err(fmt.Errorf("handler panic: %v", p)).
				Msg("recovered from handler panic")
			res = Continue()
		}
	}()

	res = reg.Handler(ctx, event, payload)
	if res.Action == "" {
		res.Action = ActionContinue
	}
	return res
}
