package system

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/warpdrift/component"
	"github.com/lixenwraith/warpdrift/vmath"
)

func TestIndicatorLayout(t *testing.T) {
	w, _ := newTestWorld(t)
	w.AddSystem(NewIndicatorSystem(w))

	farTarget := w.CreateEntity()
	w.Components.Transforms.Set(farTarget, component.TransformComponent{Pos: mgl64.Vec2{2000, 0}})
	nearTarget := w.CreateEntity()
	w.Components.Transforms.Set(nearTarget, component.TransformComponent{Pos: mgl64.Vec2{640, 360}})

	farInd := SpawnIndicator(w, farTarget, component.RevealableComponent{Style: component.IndicatorDestination, Label: "A"})
	nearInd := SpawnIndicator(w, nearTarget, component.RevealableComponent{Style: component.IndicatorCommodity})
	w.Flush()

	tick(w, 16*time.Millisecond)

	ind, _ := w.Components.Indicators.Get(farInd)
	if !ind.Visible {
		t.Fatal("Expected off-screen target indicator visible")
	}
	if !nearVec(ind.Pos, mgl64.Vec2{625, 0}) || ind.Edge != vmath.EdgeRight {
		t.Errorf("Expected indicator at (625, 0) on the right edge, got %v %v", ind.Pos, ind.Edge)
	}
	if ind.Distance != 2000 || ind.Angle != 0 {
		t.Errorf("Expected distance 2000 at angle 0, got %v at %v", ind.Distance, ind.Angle)
	}

	ind, _ = w.Components.Indicators.Get(nearInd)
	if ind.Visible {
		t.Error("Expected indicator hidden for a target on the screen boundary")
	}

	w.QueueDestroy(farTarget)
	w.Flush()
	tick(w, 16*time.Millisecond)

	if w.Components.Indicators.Has(farInd) {
		t.Error("Expected indicator removed with its target")
	}
	if !w.Components.Indicators.Has(nearInd) {
		t.Error("Expected indicator of a live target kept")
	}
}
