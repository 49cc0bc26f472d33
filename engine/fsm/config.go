package fsm

import "github.com/lixenwraith/warpdrift/event"

// RootConfig represents the top-level graph declaration
type RootConfig struct {
	InitialState string                  `toml:"initial"`
	States       map[string]*StateConfig `toml:"states"`
}

// StateConfig represents a single state definition
type StateConfig struct {
	Parent      string             `toml:"parent"`
	OnEnter     []ActionConfig     `toml:"on_enter"`
	OnUpdate    []ActionConfig     `toml:"on_update"`
	OnExit      []ActionConfig     `toml:"on_exit"`
	Transitions []TransitionConfig `toml:"transitions"`
}

// TransitionConfig represents a transition definition
type TransitionConfig struct {
	Trigger string `toml:"trigger"` // Event name or "Tick"
	Target  string `toml:"target"`
	Guard   string `toml:"guard"`
}

// ActionConfig represents an action definition
type ActionConfig struct {
	Action string `toml:"action"`
	Event  string `toml:"event"` // EmitEvent only
}

// EmitEventArgs is the compiled argument of the EmitEvent action
type EmitEventArgs struct {
	Type event.EventType
}
