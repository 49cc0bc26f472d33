package fsm

import (
	"fmt"
	"time"

	"github.com/lixenwraith/warpdrift/event"
)

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes:      make(map[StateID]*Node[T]),
		activePath: make([]StateID, 0, 4),
		guardReg:   make(map[string]GuardFunc[T]),
		actionReg:  make(map[string]ActionFunc[T]),
	}
}

// RegisterGuard adds a predicate function to the registry
// Guards must be registered before LoadConfig
func (m *Machine[T]) RegisterGuard(name string, fn GuardFunc[T]) {
	m.guardReg[name] = fn
}

// RegisterAction adds a side-effect function to the registry
// Actions must be registered before LoadConfig
func (m *Machine[T]) RegisterAction(name string, fn ActionFunc[T]) {
	m.actionReg[name] = fn
}

// Init enters the initial state, running OnEnter from Root down to the initial leaf
func (m *Machine[T]) Init(ctx T) error {
	node, ok := m.nodes[m.InitialStateID]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", m.InitialStateID)
	}

	m.activeStateID = node.ID
	m.timeInState = 0
	m.activePath = append(m.activePath[:0], node.Path...)

	for _, id := range m.activePath {
		if n, exists := m.nodes[id]; exists {
			runActions(ctx, n.OnEnter)
		}
	}
	return nil
}

// Update advances time in state, runs OnUpdate of the leaf and evaluates tick transitions
func (m *Machine[T]) Update(ctx T, dt time.Duration) {
	if m.activeStateID == StateNone {
		return
	}

	m.timeInState += dt

	runActions(ctx, m.nodes[m.activeStateID].OnUpdate)

	m.dispatch(ctx, event.EventNone)
}

// HandleEvent routes an event through the active path, leaf first
// Returns true if the event triggered a transition
func (m *Machine[T]) HandleEvent(ctx T, eventType event.EventType) bool {
	if m.activeStateID == StateNone || eventType == event.EventNone {
		return false
	}
	return m.dispatch(ctx, eventType)
}

func (m *Machine[T]) dispatch(ctx T, eventType event.EventType) bool {
	// Events raised by exit/enter actions of an ongoing transition are not re-entered
	if m.transitioning {
		return false
	}

	// Bubble up: Leaf -> Parent -> Root
	currID := m.activeStateID
	for currID != StateNone {
		node := m.nodes[currID]
		for _, trans := range node.Transitions {
			if trans.Event != eventType {
				continue
			}
			if trans.Guard == nil || trans.Guard(ctx) {
				m.transition(ctx, trans.TargetID)
				return true
			}
		}
		currID = node.ParentID
	}
	return false
}

// transition performs the state change with exit and enter actions around the LCA
func (m *Machine[T]) transition(ctx T, targetID StateID) {
	if m.activeStateID == targetID {
		return
	}

	targetNode, ok := m.nodes[targetID]
	if !ok {
		panic(fmt.Sprintf("FSM: attempted transition to unknown state ID %d", targetID))
	}

	m.transitioning = true
	defer func() { m.transitioning = false }()

	// Find LCA
	lcaIndex := -1
	currentPath := m.activePath
	targetPath := targetNode.Path
	for i := 0; i < min(len(currentPath), len(targetPath)); i++ {
		if currentPath[i] != targetPath[i] {
			break
		}
		lcaIndex = i
	}

	// Exit phase: walk up from current leaf to LCA (exclusive)
	for i := len(currentPath) - 1; i > lcaIndex; i-- {
		if node, exists := m.nodes[currentPath[i]]; exists {
			runActions(ctx, node.OnExit)
		}
	}

	// Enter phase: walk down from LCA (exclusive) to target leaf
	for i := lcaIndex + 1; i < len(targetPath); i++ {
		if node, exists := m.nodes[targetPath[i]]; exists {
			runActions(ctx, node.OnEnter)
		}
	}

	m.activeStateID = targetID
	m.timeInState = 0
	m.activePath = append(m.activePath[:0], targetPath...)
}

// Reset exits the active path and re-enters the initial state
func (m *Machine[T]) Reset(ctx T) error {
	if m.activeStateID != StateNone {
		for i := len(m.activePath) - 1; i >= 0; i-- {
			if node, ok := m.nodes[m.activePath[i]]; ok {
				runActions(ctx, node.OnExit)
			}
		}
	}
	m.activeStateID = StateNone
	m.activePath = m.activePath[:0]
	return m.Init(ctx)
}

// State returns the active leaf ID
func (m *Machine[T]) State() StateID {
	return m.activeStateID
}

// StateName returns the active leaf name, empty before Init
func (m *Machine[T]) StateName() string {
	if node, ok := m.nodes[m.activeStateID]; ok {
		return node.Name
	}
	return ""
}

// TimeInState returns time accumulated by Update since the last transition
func (m *Machine[T]) TimeInState() time.Duration {
	return m.timeInState
}

func runActions[T any](ctx T, actions []Action[T]) {
	for _, action := range actions {
		action.Func(ctx, action.Args)
	}
}
