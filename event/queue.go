package event

import (
	"sync"

	"github.com/lixenwraith/warpdrift/parameter"
)

// EventQueue buffers events between dispatch phases
// Thread-Safety:
//   - Push: any goroutine
//   - Consume: single consumer (game loop)
//
// Unlike a ring buffer it never drops events, a tick's events are bounded by entity count
type EventQueue struct {
	mu     sync.Mutex
	events []GameEvent
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{
		events: make([]GameEvent, 0, parameter.EventQueueSize),
	}
}

// Push appends an event
func (eq *EventQueue) Push(ev GameEvent) {
	eq.mu.Lock()
	eq.events = append(eq.events, ev)
	eq.mu.Unlock()
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if len(eq.events) == 0 {
		return nil
	}
	out := eq.events
	eq.events = make([]GameEvent, 0, cap(out))
	return out
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return len(eq.events)
}

// Clear drops all pending events
func (eq *EventQueue) Clear() {
	eq.mu.Lock()
	eq.events = eq.events[:0]
	eq.mu.Unlock()
}

// Discard drops pending events of type t, keeping the order of the rest
// Returns the number dropped
func (eq *EventQueue) Discard(t EventType) int {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	kept := eq.events[:0]
	for _, ev := range eq.events {
		if ev.Type != t {
			kept = append(kept, ev)
		}
	}
	n := len(eq.events) - len(kept)
	clear(eq.events[len(kept):])
	eq.events = kept
	return n
}
