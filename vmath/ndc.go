package vmath

import "github.com/go-gl/mathgl/mgl64"

// WorldToNDC maps a world point into normalized device coordinates of an orthographic view
// centred on camera with the given half extents; the visible area maps to (-1, 1) on both axes
func WorldToNDC(camera, halfExtents, world mgl64.Vec2) mgl64.Vec2 {
	proj := mgl64.Ortho2D(
		camera.X()-halfExtents.X(), camera.X()+halfExtents.X(),
		camera.Y()-halfExtents.Y(), camera.Y()+halfExtents.Y(),
	)
	clip := proj.Mul4x1(world.Vec4(0, 1))
	return mgl64.Vec2{clip.X(), clip.Y()}
}

// InViewport reports whether an NDC point is strictly inside the view
func InViewport(ndc mgl64.Vec2) bool {
	return ndc.X() > -1 && ndc.X() < 1 && ndc.Y() > -1 && ndc.Y() < 1
}
