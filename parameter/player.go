package parameter

import (
	"math"
	"time"
)

// Player Ship
const (
	// PlayerStartRotation faces the ship up the screen
	PlayerStartRotation = math.Pi / 2

	// PlayerTurnRate is radians per second at full turn input
	PlayerTurnRate = 2.0

	// PlayerThrust is acceleration in units/sec² along the facing
	PlayerThrust = 100.0

	// PlayerMaxSpeed caps the ship's speed in units/sec
	PlayerMaxSpeed = 100.0

	// PlayerFuelMax is the tank capacity, travel requires a full tank
	PlayerFuelMax = 40
)

// Player Weapon
const (
	// WeaponCooldown is the interval between automatic shots
	WeaponCooldown = 1 * time.Second

	// WeaponDamage is hit point loss per projectile hit
	WeaponDamage = 1.0

	// WeaponProjectileSpeed is projectile speed along the facing in units/sec
	WeaponProjectileSpeed = 100.0

	// WeaponProjectileRange is distance from the spawn point before removal
	WeaponProjectileRange = 200.0

	// WeaponSpawnOffset places the projectile ahead of the hull
	WeaponSpawnOffset = 25.0

	// ProjectileHitRadius is the strict distance below which a projectile hits
	ProjectileHitRadius = 10.0

	// ProjectileIndexSlack widens the index query to cover one tick of index staleness
	ProjectileIndexSlack = 10.0
)
