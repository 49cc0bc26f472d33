package system

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/warpdrift/engine"
)

func newSteeringWorld(t *testing.T) *engine.World {
	t.Helper()
	w, _ := newTestWorld(t)
	w.AddSystem(NewSpatialSystem(w))
	w.AddSystem(NewSteeringSystem(w))
	return w
}

func TestSteeringTowardPlayer(t *testing.T) {
	w := newSteeringWorld(t)
	e := addEnemy(w, mgl64.Vec2{100, 0})

	tick(w, 16*time.Millisecond)

	m, _ := w.Components.Motions.Get(e)
	if !nearVec(m.Vel, mgl64.Vec2{-30, 0}) {
		t.Errorf("Expected velocity (-30, 0), got %v", m.Vel)
	}
}

func TestSteeringOnPlayerStaysStill(t *testing.T) {
	w := newSteeringWorld(t)
	e := addEnemy(w, mgl64.Vec2{})

	tick(w, 16*time.Millisecond)

	m, _ := w.Components.Motions.Get(e)
	if m.Vel != (mgl64.Vec2{}) {
		t.Errorf("Expected zero velocity on the player, got %v", m.Vel)
	}
	if math.IsNaN(m.Vel.X()) || math.IsNaN(m.Vel.Y()) {
		t.Error("Expected no NaN velocity")
	}
}

func TestSteeringSeparation(t *testing.T) {
	w := newSteeringWorld(t)
	a := addEnemy(w, mgl64.Vec2{100, 0})
	addEnemy(w, mgl64.Vec2{100, 10})
	far := addEnemy(w, mgl64.Vec2{-100, 0})

	tick(w, 16*time.Millisecond)

	m, _ := w.Components.Motions.Get(a)
	c := 30 / math.Sqrt2
	if !nearVec(m.Vel, mgl64.Vec2{-c, -c}) {
		t.Errorf("Expected velocity (%.3f, %.3f), got %v", -c, -c, m.Vel)
	}

	m, _ = w.Components.Motions.Get(far)
	if !nearVec(m.Vel, mgl64.Vec2{30, 0}) {
		t.Errorf("Expected isolated enemy unaffected by separation, got %v", m.Vel)
	}
}

// TestSteeringIgnoresFarAndUnindexed verifies a neighbour on the radius and a pellet on top never repel
func TestSteeringIgnoresFarAndUnindexed(t *testing.T) {
	w := newSteeringWorld(t)
	fuel := NewFuelSystem(w).(*FuelSystem)
	a := addEnemy(w, mgl64.Vec2{100, 0})
	addEnemy(w, mgl64.Vec2{100, 20})
	fuel.spawnPellet(mgl64.Vec2{100, 5})
	w.Flush()

	tick(w, 16*time.Millisecond)

	if n := w.Resources.Spatial.Len(); n != 2 {
		t.Errorf("Expected only the 2 enemies indexed, got %d", n)
	}
	m, _ := w.Components.Motions.Get(a)
	if !nearVec(m.Vel, mgl64.Vec2{-30, 0}) {
		t.Errorf("Expected plain pursuit (-30, 0), got %v", m.Vel)
	}
}
