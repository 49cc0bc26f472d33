package parameter

import "time"

// Warp Travel
const (
	// TravelApproachDuration is the starfield acceleration phase
	TravelApproachDuration = 3 * time.Second

	// TravelFadeOutDuration is the overlay fade to opaque
	TravelFadeOutDuration = 3 * time.Second

	// TravelDwellDuration is the opaque pause during which arrival is processed
	TravelDwellDuration = 1 * time.Second

	// TravelFadeInDuration is the overlay fade back to transparent
	TravelFadeInDuration = 3 * time.Second

	// TravelActivationRadius is the strict distance to a destination that allows engaging warp
	TravelActivationRadius = 80.0

	// WarpTimeDivisor slows position integration while warping
	WarpTimeDivisor = 7.0

	// StarfieldWarpBoost scales starfield drift at the end of the approach phase
	StarfieldWarpBoost = 100.0
)
