// Package audio plays simulation cues through beep
package audio

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/warpdrift/core"
	"github.com/lixenwraith/warpdrift/parameter"
)

// ErrAlreadyStarted is returned by a second Start
var ErrAlreadyStarted = errors.New("audio: player already started")

// speakerLock serialises mixer changes with the speaker's playback goroutine
type speakerLock struct{}

func (speakerLock) Lock()   { speaker.Lock() }
func (speakerLock) Unlock() { speaker.Unlock() }

// Player mixes cues into the speaker, implements engine.CuePlayer
// Play never blocks on the device: cues beyond MaxVoices, or while stopped or muted, are dropped
type Player struct {
	cfg   *Config
	mixer *beep.Mixer

	// lock guards mixer, the speaker lock once started
	lock sync.Locker

	running atomic.Bool
	muted   atomic.Bool
}

// NewPlayer creates a stopped player
func NewPlayer(cfg *Config) *Player {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	p := &Player{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		lock:  &sync.Mutex{},
	}
	p.muted.Store(!cfg.Enabled)
	return p
}

// Start opens the audio device and begins playback of the mixer
func (p *Player) Start() error {
	if p.running.Load() {
		return ErrAlreadyStarted
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferLength)); err != nil {
		return err
	}
	p.lock = speakerLock{}
	speaker.Play(p.mixer)
	p.running.Store(true)
	return nil
}

// attach starts the player against an external consumer of Stream instead of the speaker
func (p *Player) attach(lock sync.Locker) {
	p.lock = lock
	p.running.Store(true)
}

// Stop silences all voices and releases the device
func (p *Player) Stop() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	p.lock.Lock()
	p.mixer.Clear()
	p.lock.Unlock()

	if _, ok := p.lock.(speakerLock); ok {
		speaker.Clear()
		speaker.Close()
	}
}

// Play queues cue, returns false when it was dropped
func (p *Player) Play(cue core.Cue) bool {
	if !p.running.Load() || p.muted.Load() {
		return false
	}

	s := CueStreamer(cue, p.cfg)
	if s == nil {
		return false
	}

	p.lock.Lock()
	defer p.lock.Unlock()
	if p.cfg.MaxVoices > 0 && p.mixer.Len() >= p.cfg.MaxVoices {
		return false
	}
	p.mixer.Add(s)
	return true
}

// Voices returns the number of cues still sounding
func (p *Player) Voices() int {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.mixer.Len()
}

// Stream pulls mixed samples, used when the player is not driving the speaker
func (p *Player) Stream(samples [][2]float64) (int, bool) {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.mixer.Stream(samples)
}

// ToggleMute flips the mute state, returns true when sound is now enabled
func (p *Player) ToggleMute() bool {
	m := !p.muted.Load()
	p.muted.Store(m)
	return !m
}

// IsMuted reports the mute state
func (p *Player) IsMuted() bool {
	return p.muted.Load()
}
