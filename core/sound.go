package core

// Cue identifies a short audio effect requested by the simulation
type Cue int

const (
	CueLaser   Cue = iota // Weapon discharge
	CueHit                // Projectile struck an enemy
	CueExplode            // Enemy destroyed
	CueFuel               // Fuel pellet collected
	CuePickup             // Commodity collected
	CueReveal             // Scanner revealed a target
	CueWarp               // Warp engaged
	CueArrive             // Warp arrival and settlement
	CueCount
)
