package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// epsilon below which a vector is treated as zero length
const epsilon = 1e-9

// FromAngle returns the unit vector at theta radians
func FromAngle(theta float64) mgl64.Vec2 {
	s, c := math.Sincos(theta)
	return mgl64.Vec2{c, s}
}

// Angle returns atan2(v.y, v.x)
func Angle(v mgl64.Vec2) float64 {
	return math.Atan2(v.Y(), v.X())
}

// SafeNormalize returns v scaled to unit length, ok is false for a zero vector
// mgl64.Vec2.Normalize divides by the length and yields NaN for zero input
func SafeNormalize(v mgl64.Vec2) (mgl64.Vec2, bool) {
	l := v.Len()
	if l < epsilon {
		return mgl64.Vec2{}, false
	}
	return v.Mul(1 / l), true
}

// ClampLength scales v down to limit when longer, limit <= 0 disables the clamp
func ClampLength(v mgl64.Vec2, limit float64) mgl64.Vec2 {
	if limit <= 0 {
		return v
	}
	l := v.Len()
	if l <= limit {
		return v
	}
	return v.Mul(limit / l)
}

// DistanceSq returns |a-b|^2
func DistanceSq(a, b mgl64.Vec2) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}

// Distance returns |a-b|
func Distance(a, b mgl64.Vec2) float64 {
	return a.Sub(b).Len()
}

// Rotate returns v rotated counter-clockwise by theta radians
func Rotate(v mgl64.Vec2, theta float64) mgl64.Vec2 {
	return mgl64.Rotate2D(theta).Mul2x1(v)
}
