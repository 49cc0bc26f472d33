package engine

import "github.com/lixenwraith/warpdrift/event"

// System is a unit of per-tick simulation logic
type System interface {
	// Name identifies the system in logs and diagnostics
	Name() string

	// Priority orders execution, lower runs first
	Priority() int

	// Init resets session state
	Init()

	// Update runs once per tick
	Update()
}

// EventHandler processes specific event types
// Systems implement this interface to receive routed events
type EventHandler interface {
	// HandleEvent processes a single event
	// Called synchronously during the dispatch phase, before systems update
	HandleEvent(ev event.GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []event.EventType
}
