package messaging

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"insurance_quotes/internal/domain/events"
)

// HandlerFunc processes one inbound envelope. A nil error acknowledges the
// message; any other error leaves it pending for redelivery, except errors
// wrapping events.ErrMalformed, which are acknowledged and dropped.
type HandlerFunc func(ctx context.Context, env events.Envelope) error

// Registry maps event kinds to the handler a service runs for them.
type Registry struct {
	mu       sync.RWMutex
	handlers map[events.Kind]HandlerFunc
}

func NewRegistry() *Registry {
	return &Registry{handlers: make(map[events.Kind]HandlerFunc)}
}

func (r *Registry) Register(kind events.Kind, h HandlerFunc) error {
	if h == nil {
		return fmt.Errorf("nil handler for kind=%s", kind)
	}
	if _, err := events.QueueFor(kind); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.handlers[kind]; exists {
		return fmt.Errorf("handler already registered for kind=%s", kind)
	}
	r.handlers[kind] = h
	return nil
}

func (r *Registry) Get(kind events.Kind) (HandlerFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[kind]
	return h, ok
}

// Queues lists the queues the registered kinds are consumed from.
func (r *Registry) Queues() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.handlers))
	for kind := range r.handlers {
		q, _ := events.QueueFor(kind)
		out = append(out, q)
	}
	sort.Strings(out)
	return out
}
