package parameter

import "time"

// Enemy Entity
const (
	// EnemyHealth is spawn and max hit points, one default hit kills
	EnemyHealth = 1.0

	// EnemyMaxSpeed is the steering speed in units/sec
	EnemyMaxSpeed = 30.0

	// EnemySeparationRadius is the neighbour distance that triggers repulsion
	EnemySeparationRadius = 20.0

	// EnemySeparationWeight scales the repulsion vector before blending
	EnemySeparationWeight = 1.0

	// EnemyCullDistance removes enemies left far behind the player
	EnemyCullDistance = 1500.0
)

// Enemy Spawning
const (
	// SpawnInitialPeriod is the starting interval between spawns
	SpawnInitialPeriod = 5 * time.Second

	// SpawnMinPeriod is the floor for ramped spawn intervals
	SpawnMinPeriod = 500 * time.Millisecond

	// SpawnRampInterval is how often the spawn period is halved
	SpawnRampInterval = 30 * time.Second

	// SpawnCap is the live enemy limit, spawns at capacity are skipped
	SpawnCap = 50

	// SpawnBoundsX and SpawnBoundsY are the half extents of the spawn rectangle around the player
	SpawnBoundsX = 700.0
	SpawnBoundsY = 410.0
)
