package event

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/warpdrift/component"
	"github.com/lixenwraith/warpdrift/core"
)

// PickupSpawnPayload is the world point where a pickup should appear
type PickupSpawnPayload struct {
	Location mgl64.Vec2
}

// EnemyKilledPayload identifies a destroyed enemy
type EnemyKilledPayload struct {
	Entity   core.Entity
	Location mgl64.Vec2
}

// ProjectileFiredPayload identifies a new projectile and its shooter
type ProjectileFiredPayload struct {
	Owner      core.Entity
	Projectile core.Entity
	Location   mgl64.Vec2
}

// ProjectileHitPayload identifies a projectile and the target it damaged
type ProjectileHitPayload struct {
	Projectile core.Entity
	Target     core.Entity
	Damage     float64
}

// FuelCollectedPayload carries the tank level after collection
type FuelCollectedPayload struct {
	Current int
	Max     int
}

// CommodityCollectedPayload carries the collected cargo
type CommodityCollectedPayload struct {
	Kind   component.CommodityKind
	Amount int
}

// TargetRevealedPayload identifies a revealed scanner candidate
type TargetRevealedPayload struct {
	Target    core.Entity
	Style     component.IndicatorStyle
	Label     string
	Proximity bool // Revealed by entering the viewport rather than the timer
}

// WarpEngagedPayload names the destination being travelled to
type WarpEngagedPayload struct {
	Destination string
}

// WarpArrivedPayload summarises the settlement made on arrival
type WarpArrivedPayload struct {
	Destination   string
	CreditsEarned int
	Credits       int
}
