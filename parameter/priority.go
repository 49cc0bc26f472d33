package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityInput       = 10
	PrioritySpatial     = 20 // Index rebuild, before every proximity consumer
	PrioritySteering    = 30
	PriorityFuel        = 35 // Pellet homing, before integration
	PriorityKinematics  = 40
	PriorityWeapon      = 50 // Fires from post-integration pose
	PriorityProjectile  = 60
	PriorityEnemy       = 70 // Death and culling after all damage for the tick
	PrioritySpawn       = 80
	PriorityCommodity   = 90
	PriorityScanner     = 100
	PriorityTravel      = 110
	PriorityCamera      = 120 // After travel so the overlay follows the final camera
	PriorityIndicator   = 130
	PriorityAudio       = 900
	PriorityDiagnostics = 1000 // After all others, telemetry collection
)
