// Package event provides a small synchronous event dispatcher.
//
// The stores fire events instead of surfacing errors: list-fetch failures
// are swallowed by design, and FetchFailed is the opt-in observer hook for
// callers that still want to show a toast or count failures.
package event

import (
	"sync"
)

// Event names fired by the stores.
const (
	FetchFailed        = "store.fetch_failed"        // payload: FetchFailedPayload
	TransactionCreated = "store.transaction_created" // payload: the created transaction
)

// FetchFailedPayload describes one swallowed list-fetch failure.
type FetchFailedPayload struct {
	Resource string
	Err      error
}

// Handler is a function that receives an event payload.
type Handler func(payload interface{})

var (
	mu       sync.RWMutex
	handlers = map[string][]Handler{}
)

// Listen registers a handler for the given event name.
func Listen(event string, handler Handler) {
	mu.Lock()
	defer mu.Unlock()
	handlers[event] = append(handlers[event], handler)
}

// Fire dispatches an event synchronously to all registered listeners.
func Fire(event string, payload interface{}) {
	mu.RLock()
	hs := make([]Handler, len(handlers[event]))
	copy(hs, handlers[event])
	mu.RUnlock()

	for _, h := range hs {
		h(payload)
	}
}

// Flush removes all listeners (useful in tests).
func Flush() {
	mu.Lock()
	defer mu.Unlock()
	handlers = map[string][]Handler{}
}
