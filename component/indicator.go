package component

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/warpdrift/core"
	"github.com/lixenwraith/warpdrift/vmath"
)

// IndicatorStyle selects how an indicator is drawn
type IndicatorStyle uint8

const (
	IndicatorHome IndicatorStyle = iota
	IndicatorCommodity
	IndicatorDestination
)

// RevealableComponent carries the indicator settings applied when a scanner candidate is revealed
type RevealableComponent struct {
	Style IndicatorStyle
	Label string
}

// IndicatorComponent points from the player toward an off-screen target
type IndicatorComponent struct {
	Target core.Entity
	Style  IndicatorStyle
	Label  string

	// Derived each tick
	Visible  bool
	Pos      mgl64.Vec2 // World position on the indicator rectangle
	Angle    float64    // Direction to target in radians
	Distance float64    // World units to target
	Edge     vmath.Edge
}

// OverlayComponent is the full-screen warp fade
type OverlayComponent struct {
	Opacity float64
}

// PlanetComponent marks a static body such as the home planet
type PlanetComponent struct {
	Radius float64
}
