// Package events is a small synchronous named-event hub. Handlers for a type
// run in registration order on the caller's goroutine.
package events

import (
	"sort"
	"strings"
	"sync"
)

// Built-in event types emitted by the dispatcher.
const (
	CommandError    = "commanderror"
	CommandNotFound = "commandnotfound"
	DisabledCommand = "disabledcommand"
)

// Handler receives the arguments passed to Emit verbatim.
type Handler func(args ...any)

// Hub maps event types to ordered handler lists.
type Hub struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{handlers: make(map[string][]Handler)}
}

// On registers h for every whitespace separated type in types.
// Nil handlers are ignored.
func (h *Hub) On(types string, handler Handler) {
	if handler == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, typ := range strings.Fields(types) {
		h.handlers[typ] = append(h.handlers[typ], handler)
	}
}

// OnMap registers several type/handler pairs at once. Pairs are added in
// sorted type order so repeated calls register deterministically.
func (h *Hub) OnMap(m map[string]Handler) {
	types := make([]string, 0, len(m))
	for typ := range m {
		types = append(types, typ)
	}
	sort.Strings(types)

	for _, typ := range types {
		h.On(typ, m[typ])
	}
}

// Emit calls every handler registered for typ with args. Handlers added
// while emitting are not called for this emission.
func (h *Hub) Emit(typ string, args ...any) {
	h.mu.RLock()
	list := h.handlers[typ]
	snapshot := make([]Handler, len(list))
	copy(snapshot, list)
	h.mu.RUnlock()

	for _, handler := range snapshot {
		handler(args...)
	}
}

// Has reports whether any of types has at least one handler.
func (h *Hub) Has(types ...string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, typ := range types {
		if len(h.handlers[typ]) > 0 {
			return true
		}
	}
	return false
}

// Count returns the number of handlers registered for typ.
func (h *Hub) Count(typ string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.handlers[typ])
}

// Types returns the sorted event types that have handlers.
func (h *Hub) Types() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	types := make([]string, 0, len(h.handlers))
	for typ, list := range h.handlers {
		if len(list) > 0 {
			types = append(types, typ)
		}
	}
	sort.Strings(types)
	return types
}
