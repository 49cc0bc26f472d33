package fsm

import (
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/warpdrift/event"
)

type testCtx struct {
	log   []string
	ready bool
}

const testGraph = `
initial = "Idle"

[states.Active]

[states.Idle]
parent = "Active"
on_enter = [{ action = "Log", event = "" }]
on_exit = [{ action = "Log" }]

[[states.Idle.transitions]]
trigger = "WarpEngage"
target = "Busy"
guard = "Ready"

[states.Busy]
on_enter = [{ action = "EmitEvent", event = "WarpEngaged" }]

[[states.Busy.transitions]]
trigger = "Tick"
target = "Idle"
guard = "Ready"
`

func newTestMachine(t *testing.T) *Machine[*testCtx] {
	t.Helper()
	m := NewMachine[*testCtx]()
	m.RegisterGuard("Ready", func(c *testCtx) bool { return c.ready })
	m.RegisterAction("Log", func(c *testCtx, _ any) { c.log = append(c.log, "log") })
	m.RegisterAction("EmitEvent", func(c *testCtx, args any) {
		c.log = append(c.log, "emit:"+args.(*EmitEventArgs).Type.String())
	})
	if err := m.LoadConfig([]byte(testGraph)); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	return m
}

func TestMachineGuardedEvent(t *testing.T) {
	m := newTestMachine(t)
	ctx := &testCtx{}

	if err := m.Init(ctx); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if m.StateName() != "Idle" {
		t.Fatalf("Expected Idle, got %s", m.StateName())
	}

	if m.HandleEvent(ctx, event.EventWarpEngage) {
		t.Error("Expected guard to block transition")
	}

	ctx.ready = true
	if !m.HandleEvent(ctx, event.EventWarpEngage) {
		t.Fatal("Expected transition to Busy")
	}
	if m.StateName() != "Busy" {
		t.Errorf("Expected Busy, got %s", m.StateName())
	}

	// Idle enter at Init, Idle exit, then Busy enter
	want := []string{"log", "log", "emit:WarpEngaged"}
	if strings.Join(ctx.log, ",") != strings.Join(want, ",") {
		t.Errorf("Expected %v, got %v", want, ctx.log)
	}
}

func TestMachineTickTransition(t *testing.T) {
	m := newTestMachine(t)
	ctx := &testCtx{ready: true}
	_ = m.Init(ctx)
	m.HandleEvent(ctx, event.EventWarpEngage)

	m.Update(ctx, 10*time.Millisecond)
	if m.StateName() != "Idle" {
		t.Errorf("Expected tick transition back to Idle, got %s", m.StateName())
	}
	if m.TimeInState() != 0 {
		t.Errorf("Expected time in state reset, got %v", m.TimeInState())
	}
}

// TestMachineReset verifies exit actions of the active path run before the initial state is re-entered
func TestMachineReset(t *testing.T) {
	m := newTestMachine(t)
	ctx := &testCtx{}

	// Nothing active yet, Reset only enters
	if err := m.Reset(ctx); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if strings.Join(ctx.log, ",") != "log" {
		t.Fatalf("Expected single enter, got %v", ctx.log)
	}

	m.Update(ctx, 10*time.Millisecond)
	if m.TimeInState() != 10*time.Millisecond {
		t.Fatalf("Expected 10ms in state, got %v", m.TimeInState())
	}

	ctx.log = nil
	if err := m.Reset(ctx); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	// Idle exit, then Idle enter
	if strings.Join(ctx.log, ",") != "log,log" {
		t.Errorf("Expected exit then enter, got %v", ctx.log)
	}
	if m.StateName() != "Idle" || m.TimeInState() != 0 {
		t.Errorf("Expected fresh Idle, got %s after %v", m.StateName(), m.TimeInState())
	}
}

func TestMachineLoadErrors(t *testing.T) {
	cases := map[string]string{
		"unknown target": "initial = \"A\"\n[states.A]\n[[states.A.transitions]]\ntrigger = \"Tick\"\ntarget = \"B\"\n",
		"unknown event":  "initial = \"A\"\n[states.A]\n[[states.A.transitions]]\ntrigger = \"Nope\"\ntarget = \"A\"\n",
		"unknown guard":  "initial = \"A\"\n[states.A]\n[[states.A.transitions]]\ntrigger = \"Tick\"\ntarget = \"A\"\nguard = \"Missing\"\n",
		"unknown action": "initial = \"A\"\n[states.A]\non_enter = [{ action = \"Missing\" }]\n",
		"bad initial":    "initial = \"Z\"\n[states.A]\n",
		"unknown key":    "initial = \"A\"\ncolour = 1\n[states.A]\n",
	}
	for name, data := range cases {
		m := NewMachine[*testCtx]()
		if err := m.LoadConfig([]byte(data)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
