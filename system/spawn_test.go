package system

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// TestSpawnAtCap verifies spawns at capacity are dropped
func TestSpawnAtCap(t *testing.T) {
	w, _ := newTestWorld(t)
	w.Resources.Config.Spawn.Cap = 2
	w.AddSystem(NewSpawnSystem(w))

	addEnemy(w, mgl64.Vec2{100, 0})
	addEnemy(w, mgl64.Vec2{-100, 0})

	tick(w, 5*time.Second)

	if n := w.Components.Enemies.Count(); n != 2 {
		t.Errorf("Expected 2 enemies at cap, got %d", n)
	}
	if got := w.Resources.Status.Ints.Get("spawn.skipped").Load(); got != 1 {
		t.Errorf("Expected 1 skipped spawn, got %d", got)
	}
}

// TestSpawnOnBoundingRect verifies a spawn lands on the rectangle around the player
func TestSpawnOnBoundingRect(t *testing.T) {
	w, player := newTestWorld(t)
	w.AddSystem(NewSpawnSystem(w))
	setPos(w, player, mgl64.Vec2{1000, -500})

	tick(w, 4*time.Second)
	if n := w.Components.Enemies.Count(); n != 0 {
		t.Fatalf("Expected no spawn before the period, got %d", n)
	}

	tick(w, time.Second)
	enemies := w.Components.Enemies.All()
	if len(enemies) != 1 {
		t.Fatalf("Expected 1 enemy, got %d", len(enemies))
	}

	d := pos(w, enemies[0]).Sub(mgl64.Vec2{1000, -500})
	onX := math.Abs(math.Abs(d.X())-700) < 1e-6 && math.Abs(d.Y()) <= 410+1e-6
	onY := math.Abs(math.Abs(d.Y())-410) < 1e-6 && math.Abs(d.X()) <= 700+1e-6
	if !onX && !onY {
		t.Errorf("Expected spawn offset on the bounding rectangle, got %v", d)
	}
}

// TestSpawnCountsPending verifies spawns staged in the same tick count toward the cap
func TestSpawnCountsPending(t *testing.T) {
	w, _ := newTestWorld(t)
	w.Resources.Config.Spawn.Cap = 3
	w.AddSystem(NewSpawnSystem(w))

	// One long tick completes many spawn periods
	tick(w, 50*time.Second)

	if n := w.Components.Enemies.Count(); n != 3 {
		t.Errorf("Expected spawns limited to cap 3, got %d", n)
	}
}

// TestSpawnRamp verifies the period strictly decreases to the floor
func TestSpawnRamp(t *testing.T) {
	w, _ := newTestWorld(t)
	w.Resources.Config.Spawn.Cap = 0
	w.AddSystem(NewSpawnSystem(w))

	want := []time.Duration{
		2500 * time.Millisecond,
		1250 * time.Millisecond,
		625 * time.Millisecond,
		500 * time.Millisecond,
		500 * time.Millisecond,
	}
	prev := w.Resources.Spawn.Period
	for i, expected := range want {
		tick(w, 30*time.Second)
		got := w.Resources.Spawn.Period
		if got != expected {
			t.Errorf("Ramp %d: expected period %v, got %v", i+1, expected, got)
		}
		if got > prev || (got == prev && got != 500*time.Millisecond) {
			t.Errorf("Ramp %d: expected period to decrease until the floor, %v -> %v", i+1, prev, got)
		}
		prev = got
	}

	w.Resources.Spawn.Reset()
	if w.Resources.Spawn.Period != 5*time.Second {
		t.Errorf("Expected reset to initial period, got %v", w.Resources.Spawn.Period)
	}
}
