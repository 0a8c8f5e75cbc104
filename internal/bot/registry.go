package bot

import (
	"fmt"
	"maps"
	"slices"
)

// Registry maps intent names to handlers.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry creates a new handler registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
	}
}

// Register adds a handler to the registry. Registering two handlers for the
// same intent is a wiring bug and panics.
func (r *Registry) Register(h Handler) {
	name := h.Intent()
	if _, dup := r.handlers[name]; dup {
		panic(fmt.Sprintf("bot: duplicate handler for intent %q", name))
	}
	r.handlers[name] = h
}

// Lookup returns the handler for intent.
func (r *Registry) Lookup(intent string) (Handler, bool) {
	h, ok := r.handlers[intent]
	return h, ok
}

// Intents returns the registered intent names in sorted order.
func (r *Registry) Intents() []string {
	return slices.Sorted(maps.Keys(r.handlers))
}
