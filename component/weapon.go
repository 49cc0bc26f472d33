package component

import "github.com/lixenwraith/warpdrift/core"

// WeaponComponent fires a projectile each time its cooldown timer completes
type WeaponComponent struct {
	Cooldown core.Timer

	Damage   float64
	Speed    float64 // Projectile speed along the facing
	Range    float64 // Projectile travel limit
	Offset   float64 // Spawn distance ahead of the hull
	Piercing bool
}
