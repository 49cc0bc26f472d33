package component

import "github.com/go-gl/mathgl/mgl64"

// TransformComponent is the authoritative world placement of an entity
type TransformComponent struct {
	Pos mgl64.Vec2

	// Layer is the draw band, see parameter.Layer*
	Layer float64

	// Angle is the facing in radians, mirrored from MotionComponent.Rotation when present
	Angle float64
}

// MotionComponent holds linear and angular state integrated each tick
type MotionComponent struct {
	Accel mgl64.Vec2
	Vel   mgl64.Vec2

	// AngularVel is the turn input in [-1, 1], scaled by ThrusterComponent.TurnRate
	AngularVel float64
	Rotation   float64

	// MaxSpeed caps |Vel| after integration, <= 0 disables the cap
	MaxSpeed float64
}
