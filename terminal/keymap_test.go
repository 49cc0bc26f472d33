package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/warpdrift/core"
)

func TestKeyMapLookup(t *testing.T) {
	k := DefaultKeyMap()

	cases := []struct {
		ev   *tcell.EventKey
		want Action
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionThrust},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ActionTurnLeft},
		{tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), ActionReverse},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), ActionQuit},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
		{tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), ActionNone},
	}
	for _, c := range cases {
		if got := k.Lookup(c.ev); got != c.want {
			t.Errorf("Expected %v for %v, got %v", c.want, c.ev.Name(), got)
		}
	}

	k.Bind('z', ActionMute)
	if got := k.Lookup(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)); got != ActionMute {
		t.Errorf("Expected rebound key to mute, got %v", got)
	}
}

func TestInputStateHold(t *testing.T) {
	s := NewInputState(120 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	s.Press(ActionThrust, t0)
	s.Press(ActionTurnLeft, t0.Add(100*time.Millisecond))

	got := s.Intent(t0.Add(50 * time.Millisecond))
	if got != (core.Intent{ThrustForward: true}) {
		t.Errorf("Expected thrust only, got %+v", got)
	}

	got = s.Intent(t0.Add(150 * time.Millisecond))
	if got != (core.Intent{TurnLeft: true}) {
		t.Errorf("Expected thrust released and turn held, got %+v", got)
	}

	s.Release()
	if got := s.Intent(t0.Add(150 * time.Millisecond)); got != (core.Intent{}) {
		t.Errorf("Expected nothing held after release, got %+v", got)
	}

	// Non-flight actions never reach the intent
	s.Press(ActionQuit, t0)
	s.Press(ActionNone, t0)
	if got := s.Intent(t0); got != (core.Intent{}) {
		t.Errorf("Expected empty intent, got %+v", got)
	}
}

func TestParseColorMode(t *testing.T) {
	if ParseColorMode("256") != ColorMode256 {
		t.Error("Expected 256-color mode")
	}
	if ParseColorMode("24bit") != ColorModeTrueColor {
		t.Error("Expected true color mode")
	}
}
