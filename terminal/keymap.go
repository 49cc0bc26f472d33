package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/warpdrift/core"
)

// Action is a front-end command bound to a key
type Action uint8

const (
	ActionNone Action = iota
	ActionTurnLeft
	ActionTurnRight
	ActionThrust
	ActionReverse
	ActionQuit
	ActionMute
	ActionRestart
	actionCount
)

// KeyMap binds special keys and runes to actions
type KeyMap struct {
	keys  map[tcell.Key]Action
	runes map[rune]Action
}

// DefaultKeyMap binds arrows and WASD to flight, q/Esc/Ctrl-C to quit, m to mute and r to restart
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		keys: map[tcell.Key]Action{
			tcell.KeyLeft:   ActionTurnLeft,
			tcell.KeyRight:  ActionTurnRight,
			tcell.KeyUp:     ActionThrust,
			tcell.KeyDown:   ActionReverse,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
		},
		runes: map[rune]Action{
			'a': ActionTurnLeft,
			'd': ActionTurnRight,
			'w': ActionThrust,
			's': ActionReverse,
			'q': ActionQuit,
			'm': ActionMute,
			'r': ActionRestart,
		},
	}
}

// Bind maps a rune to an action, replacing any previous binding
func (k *KeyMap) Bind(r rune, a Action) {
	k.runes[r] = a
}

// Lookup returns the action for a key event, ActionNone when unbound
func (k *KeyMap) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return k.runes[ev.Rune()]
	}
	return k.keys[ev.Key()]
}

// InputState turns key presses into held flight controls
// Terminals report presses and repeats but not releases, so a press holds its action for a fixed window
type InputState struct {
	hold  time.Duration
	until [actionCount]time.Time
}

// NewInputState creates an input state holding each press for hold
func NewInputState(hold time.Duration) *InputState {
	return &InputState{hold: hold}
}

// Press records a press of a at now
func (s *InputState) Press(a Action, now time.Time) {
	if a == ActionNone || a >= actionCount {
		return
	}
	s.until[a] = now.Add(s.hold)
}

// Release forgets every held action
func (s *InputState) Release() {
	s.until = [actionCount]time.Time{}
}

func (s *InputState) held(a Action, now time.Time) bool {
	return now.Before(s.until[a])
}

// Intent samples the flight controls held at now
func (s *InputState) Intent(now time.Time) core.Intent {
	return core.Intent{
		TurnLeft:      s.held(ActionTurnLeft, now),
		TurnRight:     s.held(ActionTurnRight, now),
		ThrustForward: s.held(ActionThrust, now),
		ThrustReverse: s.held(ActionReverse, now),
	}
}
