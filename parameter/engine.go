package parameter

import "time"

// Game Loop
const (
	// FrameUpdateInterval is the simulation and render interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single tick after stalls so integration stays stable
	MaxFrameDelta = 100 * time.Millisecond

	// InputHoldDuration keeps a key active after its last repeat event
	// Terminals report presses and repeats but not releases
	InputHoldDuration = 120 * time.Millisecond
)

// ECS Limits
const (
	// EventQueueSize is the initial capacity of the per-tick event buffer
	EventQueueSize = 256

	// SpatialCellSize is the width of a spatial index grid cell in world units
	SpatialCellSize = 64.0
)

// Viewport
const (
	// ViewHalfWidth and ViewHalfHeight are the visible half extents in world units
	ViewHalfWidth  = 640.0
	ViewHalfHeight = 360.0

	// IndicatorInsetX and IndicatorInsetY are the half extents indicators are pinned to
	IndicatorInsetX = 625.0
	IndicatorInsetY = 345.0
)

// Draw Layers
const (
	LayerStarfield = 0.0
	LayerObject    = 1.0
	LayerShip      = 2.0
	LayerIndicator = 3.0
	LayerOverlay   = 4.0
)
