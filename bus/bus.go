// Package bus is the in-process event channel between the orchestrator and
// the open windows. Publishing is fire-and-forget: a handler error never
// propagates back to the publisher.
package bus

import (
	"errors"
	"sync"
)

var (
	ErrBusClosed          = errors.New("bus: closed")
	ErrNilHandler         = errors.New("bus: handler cannot be nil")
	ErrSubscriberExists   = errors.New("bus: subscriber id already registered")
	ErrSubscriberNotFound = errors.New("bus: subscriber id not registered")
)

// Event is one broadcast message
type Event struct {
	Name    string
	Payload any
}

// Handler receives every published event; handlers filter by Name themselves
type Handler func(Event)

// Bus fans events out to all registered subscribers
type Bus struct {
	mu          sync.RWMutex
	subscribers map[string]Handler
	closed      bool
}

func New() *Bus {
	return &Bus{subscribers: make(map[string]Handler)}
}

func (b *Bus) Subscribe(id string, h Handler) error {
	if h == nil {
		return ErrNilHandler
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrBusClosed
	}
	if _, ok := b.subscribers[id]; ok {
		return ErrSubscriberExists
	}
	b.subscribers[id] = h
	return nil
}

func (b *Bus) Unsubscribe(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrBusClosed
	}
	if _, ok := b.subscribers[id]; !ok {
		return ErrSubscriberNotFound
	}
	delete(b.subscribers, id)
	return nil
}

// Publish delivers ev to every current subscriber. Handlers run on the
// caller's goroutine, outside the bus lock, so a handler may subscribe or
// unsubscribe without deadlocking.
func (b *Bus) Publish(ev Event) error {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return ErrBusClosed
	}
	handlers := make([]Handler, 0, len(b.subscribers))
	for _, h := range b.subscribers {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(ev)
	}
	return nil
}

// Close drops all subscribers; further calls fail with ErrBusClosed
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.subscribers = nil
}
