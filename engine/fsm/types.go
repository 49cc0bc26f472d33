package fsm

import (
	"time"

	"github.com/lixenwraith/warpdrift/event"
)

// StateID is a unique identifier for a node
type StateID int

const (
	StateNone StateID = 0
	StateRoot StateID = 1
)

// Machine is a hierarchical finite state machine with a single active leaf
// T is the context type passed to actions and guards (e.g., *engine.World)
type Machine[T any] struct {
	// Graph data, immutable after load
	nodes map[StateID]*Node[T]

	InitialStateID StateID

	// Runtime state
	activeStateID StateID
	timeInState   time.Duration
	activePath    []StateID // Root -> ... -> Leaf
	transitioning bool

	// Dependency injection
	guardReg  map[string]GuardFunc[T]
	actionReg map[string]ActionFunc[T]
}

// Node represents a state in the hierarchy
type Node[T any] struct {
	ID       StateID
	Name     string
	ParentID StateID

	// Pre-calculated path from Root to this node for LCA lookup
	Path []StateID

	// Lifecycle actions
	OnEnter  []Action[T]
	OnUpdate []Action[T]
	OnExit   []Action[T]

	// Transitions in evaluation order
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	TargetID StateID
	Event    event.EventType // EventNone = tick transition
	Guard    GuardFunc[T]    // nil = always true
}

// Action represents a side effect
type Action[T any] struct {
	Func ActionFunc[T]
	Args any
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T, args any)
