package component

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/warpdrift/core"
)

// HealthComponent tracks hit points, Current never exceeds Max and never drops below zero
type HealthComponent struct {
	Current float64
	Max     float64
}

// Apply subtracts damage, clamping at zero, and reports whether the entity is dead
func (h *HealthComponent) Apply(damage float64) bool {
	h.Current -= damage
	if h.Current < 0 {
		h.Current = 0
	}
	return h.Dead()
}

// Dead reports Current <= 0
func (h HealthComponent) Dead() bool {
	return h.Current <= 0
}

// ProjectileComponent is a range-limited shot
type ProjectileComponent struct {
	Owner core.Entity

	// Origin is the spawn point, the projectile is removed once farther than Range from it
	Origin mgl64.Vec2
	Range  float64
	Damage float64

	// Piercing projectiles damage every target they pass and are never removed by a hit
	Piercing bool
}

// EnemyComponent tags hostile ships
type EnemyComponent struct{}
