package system

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/warpdrift/component"
	"github.com/lixenwraith/warpdrift/core"
	"github.com/lixenwraith/warpdrift/engine"
)

func addCandidate(w *engine.World, p mgl64.Vec2, style component.IndicatorStyle, label string) core.Entity {
	e := w.CreateEntity()
	w.Components.Transforms.Set(e, component.TransformComponent{Pos: p})
	w.Components.Revealables.Set(e, component.RevealableComponent{Style: style, Label: label})
	if style == component.IndicatorCommodity {
		w.Components.Commodities.Set(e, component.CommodityComponent{Kind: component.CommodityWater, Amount: 10})
		w.Resources.Scanner.Commodities = append(w.Resources.Scanner.Commodities, e)
	} else {
		w.Components.Destinations.Set(e, component.DestinationComponent{Label: label})
		w.Resources.Scanner.Destinations = append(w.Resources.Scanner.Destinations, e)
	}
	return e
}

// newScannerWorld moves the camera away so no candidate is on screen
func newScannerWorld(t *testing.T) *engine.World {
	w, _ := newTestWorld(t)
	camera, _ := w.Camera()
	setPos(w, camera, mgl64.Vec2{1e6, 1e6})
	w.AddSystem(NewScannerSystem(w))
	return w
}

func indicatorTargets(w *engine.World) []core.Entity {
	var targets []core.Entity
	for _, e := range w.Components.Indicators.All() {
		ind, _ := w.Components.Indicators.Get(e)
		targets = append(targets, ind.Target)
	}
	return targets
}

// TestScannerRevealsNearestFirst verifies timer reveals go nearest first and pause on an empty pool
func TestScannerRevealsNearestFirst(t *testing.T) {
	w := newScannerWorld(t)
	far := addCandidate(w, mgl64.Vec2{200, 0}, component.IndicatorCommodity, "far")
	near := addCandidate(w, mgl64.Vec2{0, 50}, component.IndicatorCommodity, "near")

	tick(w, 45*time.Second)
	if got := indicatorTargets(w); len(got) != 1 || got[0] != near {
		t.Fatalf("Expected distance-50 candidate revealed first, got %v", got)
	}
	if !w.Resources.Scanner.Active() {
		t.Error("Expected scanner still active with candidates left")
	}

	tick(w, 45*time.Second)
	if got := indicatorTargets(w); len(got) != 2 || got[1] != far {
		t.Fatalf("Expected distance-200 candidate revealed second, got %v", got)
	}
	if w.Resources.Scanner.Active() {
		t.Error("Expected scanner paused after exhausting the commodity pool")
	}
}

// TestScannerResumesForDestinations verifies the timer resumes once every commodity is gone
func TestScannerResumesForDestinations(t *testing.T) {
	w := newScannerWorld(t)
	cargo := addCandidate(w, mgl64.Vec2{100, 0}, component.IndicatorCommodity, "cargo")
	dest := addCandidate(w, mgl64.Vec2{3000, 0}, component.IndicatorDestination, "A")

	tick(w, 45*time.Second)
	if w.Resources.Scanner.Active() {
		t.Fatal("Expected pause after the commodity pool emptied")
	}

	// Commodity still in the world keeps the scanner paused
	tick(w, 45*time.Second)
	if w.Resources.Scanner.Active() {
		t.Fatal("Expected scanner paused while commodities remain")
	}

	w.QueueDestroy(cargo)
	w.Flush()
	tick(w, 16*time.Millisecond)
	if !w.Resources.Scanner.Active() {
		t.Fatal("Expected scanner resumed for destinations")
	}

	tick(w, 45*time.Second)
	disc := w.Resources.Discovery.Destinations
	if len(disc) != 1 || disc[0].Entity != dest || disc[0].Label != "A" {
		t.Errorf("Expected destination A discovered, got %v", disc)
	}
}

// TestScannerProximity verifies candidates inside the viewport are revealed immediately
func TestScannerProximity(t *testing.T) {
	w, _ := newTestWorld(t)
	w.AddSystem(NewScannerSystem(w))

	inView := addCandidate(w, mgl64.Vec2{600, 300}, component.IndicatorDestination, "B")
	outOfView := addCandidate(w, mgl64.Vec2{641, 0}, component.IndicatorCommodity, "out")

	tick(w, 16*time.Millisecond)

	got := indicatorTargets(w)
	if len(got) != 1 || got[0] != inView {
		t.Fatalf("Expected only the on-screen candidate revealed, got %v", got)
	}
	if len(w.Resources.Scanner.Commodities) != 1 || w.Resources.Scanner.Commodities[0] != outOfView {
		t.Errorf("Expected off-screen candidate kept in pool, got %v", w.Resources.Scanner.Commodities)
	}
	if len(w.Resources.Discovery.Destinations) != 1 {
		t.Errorf("Expected proximity reveal recorded in discovery")
	}
}

// TestScannerProximityRevealsAllVisible verifies every on-screen candidate is revealed in one tick
func TestScannerProximityRevealsAllVisible(t *testing.T) {
	w, _ := newTestWorld(t)
	w.AddSystem(NewScannerSystem(w))

	a := addCandidate(w, mgl64.Vec2{100, 0}, component.IndicatorCommodity, "a")
	b := addCandidate(w, mgl64.Vec2{-100, 0}, component.IndicatorCommodity, "b")
	c := addCandidate(w, mgl64.Vec2{0, 100}, component.IndicatorDestination, "C")

	tick(w, 16*time.Millisecond)

	got := indicatorTargets(w)
	if len(got) != 3 {
		t.Fatalf("Expected 3 reveals in a single tick, got %v", got)
	}
	seen := map[core.Entity]bool{}
	for _, e := range got {
		seen[e] = true
	}
	if !seen[a] || !seen[b] || !seen[c] {
		t.Errorf("Expected a, b and C revealed, got %v", got)
	}
	if len(w.Resources.Scanner.Commodities) != 0 || len(w.Resources.Scanner.Destinations) != 0 {
		t.Error("Expected both pools drained")
	}
}

func TestScannerPrunesDestroyed(t *testing.T) {
	w := newScannerWorld(t)
	gone := addCandidate(w, mgl64.Vec2{10, 0}, component.IndicatorCommodity, "gone")
	kept := addCandidate(w, mgl64.Vec2{500, 0}, component.IndicatorCommodity, "kept")

	w.QueueDestroy(gone)
	w.Flush()
	tick(w, 45*time.Second)

	if got := indicatorTargets(w); len(got) != 1 || got[0] != kept {
		t.Errorf("Expected destroyed candidate skipped, got %v", got)
	}
}
