package system

import (
	"sync/atomic"

	"github.com/lixenwraith/warpdrift/core"
	"github.com/lixenwraith/warpdrift/engine"
	"github.com/lixenwraith/warpdrift/event"
	"github.com/lixenwraith/warpdrift/parameter"
)

// cueForEvent maps simulation events to audio cues
var cueForEvent = map[event.EventType]core.Cue{
	event.EventProjectileFired:    core.CueLaser,
	event.EventProjectileHit:      core.CueHit,
	event.EventEnemyKilled:        core.CueExplode,
	event.EventFuelCollected:      core.CueFuel,
	event.EventCommodityCollected: core.CuePickup,
	event.EventTargetRevealed:     core.CueReveal,
	event.EventWarpEngaged:        core.CueWarp,
	event.EventWarpArrived:        core.CueArrive,
}

// AudioSystem consumes simulation events and plays the matching cue
// Decouples game systems from the audio backend, Resources.Cues may be nil when audio is disabled
type AudioSystem struct {
	world *engine.World

	statPlayed  *atomic.Int64
	statDropped *atomic.Int64
}

// NewAudioSystem creates an audio system
func NewAudioSystem(world *engine.World) engine.System {
	s := &AudioSystem{
		world:       world,
		statPlayed:  world.Resources.Status.Ints.Get("audio.played"),
		statDropped: world.Resources.Status.Ints.Get("audio.dropped"),
	}
	s.Init()
	return s
}

func (s *AudioSystem) Init() {}

func (s *AudioSystem) Name() string {
	return "audio"
}

func (s *AudioSystem) Priority() int {
	return parameter.PriorityAudio
}

func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventProjectileFired,
		event.EventProjectileHit,
		event.EventEnemyKilled,
		event.EventFuelCollected,
		event.EventCommodityCollected,
		event.EventTargetRevealed,
		event.EventWarpEngaged,
		event.EventWarpArrived,
	}
}

func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	player := s.world.Resources.Cues
	if player == nil {
		return
	}
	cue, ok := cueForEvent[ev.Type]
	if !ok {
		return
	}
	if player.Play(cue) {
		s.statPlayed.Add(1)
	} else {
		s.statDropped.Add(1)
	}
}

// Update implements System interface (no tick-based logic)
func (s *AudioSystem) Update() {}
