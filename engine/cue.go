package engine

import "github.com/lixenwraith/warpdrift/core"

//go:generate go tool mockgen -destination=./mocks/cue_player_mock.go -package=mocks . CuePlayer

// CuePlayer plays short audio cues for simulation events
// Implementations must return immediately; the tick never waits on audio
type CuePlayer interface {
	// Play starts the cue, returns false when it was dropped
	Play(cue core.Cue) bool
}
