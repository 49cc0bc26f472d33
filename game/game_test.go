package game

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/warpdrift/component"
	"github.com/lixenwraith/warpdrift/config"
	"github.com/lixenwraith/warpdrift/core"
	"github.com/lixenwraith/warpdrift/parameter"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := New(config.Default(), WithSeed(42), WithDiagnostics(true))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return g
}

func countKind(snap RenderSnapshot, kind SpriteKind) int {
	n := 0
	for _, s := range snap.Entities {
		if s.Kind == kind {
			n++
		}
	}
	return n
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Spawn.Cap = 0
	if _, err := New(cfg); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("Expected ErrInvalid, got %v", err)
	}
}

func TestNewStartsExploringFirstLevel(t *testing.T) {
	g := newTestGame(t)
	if g.State() != "Exploring" {
		t.Errorf("Expected Exploring, got %s", g.State())
	}
	if g.Seed() != 42 {
		t.Errorf("Expected seed 42, got %d", g.Seed())
	}

	snap := g.Snapshot()
	if countKind(snap, SpriteShip) != 1 {
		t.Error("Expected one ship sprite")
	}
	if countKind(snap, SpriteDestination) != 3 || countKind(snap, SpriteCommodity) != 3 {
		t.Errorf("Expected 3 destinations and 3 commodities, got %d and %d",
			countKind(snap, SpriteDestination), countKind(snap, SpriteCommodity))
	}
	for i := 1; i < len(snap.Entities); i++ {
		if snap.Entities[i].Layer < snap.Entities[i-1].Layer {
			t.Fatal("Expected sprites ordered by layer")
		}
	}

	hud := g.HUD()
	if hud.Fuel != 0 || hud.FuelMax != parameter.PlayerFuelMax || hud.Credits != 0 {
		t.Errorf("Unexpected starting HUD %+v", hud)
	}
	if hud.Mode != core.ModeExploring || hud.Phase != core.PhaseIdle {
		t.Errorf("Expected idle exploring, got %v %v", hud.Mode, hud.Phase)
	}
}

func TestTickMovesShip(t *testing.T) {
	g := newTestGame(t)
	intent := core.Intent{ThrustForward: true}
	for range 30 {
		g.Tick(parameter.FrameUpdateInterval, intent)
	}

	snap := g.Snapshot()
	var ship Sprite
	for _, s := range snap.Entities {
		if s.Kind == SpriteShip {
			ship = s
		}
	}
	if ship.Pos.Len() == 0 {
		t.Error("Expected ship moved under thrust")
	}
	if !ship.Thrusting {
		t.Error("Expected ship thrusting")
	}
	if snap.Camera != ship.Pos {
		t.Errorf("Expected camera on ship, got %v vs %v", snap.Camera, ship.Pos)
	}
	if got := g.World().Resources.Status.Ints.Get("sim.tick").Load(); got != 30 {
		t.Errorf("Expected 30 ticks recorded, got %d", got)
	}
}

func TestTickClampsDelta(t *testing.T) {
	g := newTestGame(t)
	g.Tick(time.Hour, core.Intent{})
	if d := g.World().Resources.Time.Delta; d != parameter.MaxFrameDelta {
		t.Errorf("Expected delta capped at %v, got %v", parameter.MaxFrameDelta, d)
	}
}

func TestHUDHoldingsSorted(t *testing.T) {
	g := newTestGame(t)
	w := g.World()
	player, _ := w.Player()
	w.Components.Holdings.Update(player, func(h *component.HoldingComponent) {
		h.Quantities[component.CommodityFood] = 3
		h.Quantities[component.CommodityTungsten] = 5
		h.Quantities[component.CommodityWater] = 1
	})

	hud := g.HUD()
	want := []component.CommodityKind{component.CommodityTungsten, component.CommodityWater, component.CommodityFood}
	if len(hud.Holdings) != len(want) {
		t.Fatalf("Expected %d holding lines, got %d", len(want), len(hud.Holdings))
	}
	for i, k := range want {
		if hud.Holdings[i].Kind != k {
			t.Errorf("Line %d: expected %v, got %v", i, k, hud.Holdings[i].Kind)
		}
	}
}

func TestReset(t *testing.T) {
	g := newTestGame(t)
	w := g.World()
	player, _ := w.Player()
	w.Components.Credits.Set(player, component.CreditsComponent{Amount: 99})
	for range 10 {
		g.Tick(parameter.FrameUpdateInterval, core.Intent{TurnLeft: true})
	}

	g.Reset()

	hud := g.HUD()
	if hud.Credits != 0 || hud.Frame != 0 {
		t.Errorf("Expected fresh session, got credits %d frame %d", hud.Credits, hud.Frame)
	}
	snap := g.Snapshot()
	if countKind(snap, SpriteShip) != 1 || countKind(snap, SpriteDestination) != 3 {
		t.Error("Expected a fresh ship and level after reset")
	}
	if w.Components.Cameras.Count() != 1 {
		t.Errorf("Expected one camera, got %d", w.Components.Cameras.Count())
	}
}
