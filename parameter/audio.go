package parameter

import "time"

// Audio
const (
	AudioSampleRate   = 44100
	AudioBufferLength = 100 * time.Millisecond
	AudioMaxVoices    = 16
	AudioMasterVolume = 0.5
)

// Cue Envelopes
const (
	LaserCueDuration = 70 * time.Millisecond
	LaserCueAttack   = 2 * time.Millisecond
	LaserCueRelease  = 50 * time.Millisecond

	HitCueDuration = 60 * time.Millisecond
	HitCueAttack   = 2 * time.Millisecond
	HitCueRelease  = 40 * time.Millisecond

	ExplodeCueDuration = 350 * time.Millisecond
	ExplodeCueAttack   = 5 * time.Millisecond
	ExplodeCueRelease  = 300 * time.Millisecond

	FuelCueNote1Duration = 50 * time.Millisecond
	FuelCueNote2Duration = 90 * time.Millisecond
	FuelCueAttack        = 3 * time.Millisecond
	FuelCueRelease       = 40 * time.Millisecond

	PickupCueDuration           = 500 * time.Millisecond
	PickupCueAttack             = 5 * time.Millisecond
	PickupCueFundamentalRelease = 450 * time.Millisecond
	PickupCueOvertoneRelease    = 150 * time.Millisecond

	RevealCueDuration = 150 * time.Millisecond
	RevealCueAttack   = 10 * time.Millisecond
	RevealCueRelease  = 100 * time.Millisecond

	WarpCueDuration = 1500 * time.Millisecond
	WarpCueAttack   = 300 * time.Millisecond
	WarpCueRelease  = 600 * time.Millisecond

	ArriveCueNote1Duration = 100 * time.Millisecond
	ArriveCueNote2Duration = 350 * time.Millisecond
	ArriveCueAttack        = 5 * time.Millisecond
	ArriveCueNote1Release  = 50 * time.Millisecond
	ArriveCueNote2Release  = 250 * time.Millisecond
)
