package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/warpdrift/core"
	"github.com/lixenwraith/warpdrift/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length wave with an optional linear frequency sweep
type oscillator struct {
	freq     float64
	sweep    float64 // Hz added over the full duration
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a constant frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding linearly from one frequency to another
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		sweep:    to - from,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + o.sweep*float64(o.position)/float64(o.duration)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream and ends it after the total length
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/sustain/release gain curve
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly
// math.Log2(0) is -Inf, zero volume is silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Cue recipes

func laserCue(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(1400, 500, parameter.LaserCueDuration, WaveSaw, rate)
	return NewEnvelope(osc, parameter.LaserCueDuration, parameter.LaserCueAttack, parameter.LaserCueRelease, rate)
}

func hitCue(rate beep.SampleRate) beep.Streamer {
	noise := NewOscillator(0, parameter.HitCueDuration, WaveNoise, rate)
	return NewEnvelope(noise, parameter.HitCueDuration, parameter.HitCueAttack, parameter.HitCueRelease, rate)
}

func explodeCue(rate beep.SampleRate) beep.Streamer {
	d := parameter.ExplodeCueDuration
	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, parameter.ExplodeCueAttack, parameter.ExplodeCueRelease, rate)
	rumble := NewEnvelope(NewSweep(90, 40, d, WaveSine, rate), d, parameter.ExplodeCueAttack, parameter.ExplodeCueRelease, rate)
	return beep.Mix(newVolume(noise, 0.5), newVolume(rumble, 0.5))
}

func fuelCue(rate beep.SampleRate) beep.Streamer {
	n1 := NewEnvelope(NewOscillator(660, parameter.FuelCueNote1Duration, WaveSine, rate),
		parameter.FuelCueNote1Duration, parameter.FuelCueAttack, parameter.FuelCueRelease, rate)
	n2 := NewEnvelope(NewOscillator(990, parameter.FuelCueNote2Duration, WaveSine, rate),
		parameter.FuelCueNote2Duration, parameter.FuelCueAttack, parameter.FuelCueRelease, rate)
	return beep.Seq(n1, n2)
}

func pickupCue(rate beep.SampleRate) beep.Streamer {
	d := parameter.PickupCueDuration
	fund := NewEnvelope(NewOscillator(880, d, WaveSine, rate), d, parameter.PickupCueAttack, parameter.PickupCueFundamentalRelease, rate)
	over := NewEnvelope(NewOscillator(1760, d, WaveSine, rate), d, parameter.PickupCueAttack, parameter.PickupCueOvertoneRelease, rate)
	return beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))
}

// revealCue is a pure tone from beep's generator, bounded by Take
func revealCue(rate beep.SampleRate) beep.Streamer {
	d := parameter.RevealCueDuration
	tone, err := generators.SineTone(rate, 1320)
	if err != nil {
		tone = NewOscillator(1320, d, WaveSine, rate)
	}
	return NewEnvelope(beep.Take(rate.N(d), tone), d, parameter.RevealCueAttack, parameter.RevealCueRelease, rate)
}

func warpCue(rate beep.SampleRate) beep.Streamer {
	d := parameter.WarpCueDuration
	return NewEnvelope(NewSweep(80, 420, d, WaveSaw, rate), d, parameter.WarpCueAttack, parameter.WarpCueRelease, rate)
}

func arriveCue(rate beep.SampleRate) beep.Streamer {
	n1 := NewEnvelope(NewOscillator(987.77, parameter.ArriveCueNote1Duration, WaveSquare, rate),
		parameter.ArriveCueNote1Duration, parameter.ArriveCueAttack, parameter.ArriveCueNote1Release, rate)
	n2 := NewEnvelope(NewOscillator(1318.51, parameter.ArriveCueNote2Duration, WaveSquare, rate),
		parameter.ArriveCueNote2Duration, parameter.ArriveCueAttack, parameter.ArriveCueNote2Release, rate)
	return beep.Seq(n1, n2)
}

// CueStreamer returns a fresh finite streamer for cue at the configured volume, nil for unknown cues
func CueStreamer(cue core.Cue, cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var s beep.Streamer
	switch cue {
	case core.CueLaser:
		s = laserCue(rate)
	case core.CueHit:
		s = hitCue(rate)
	case core.CueExplode:
		s = explodeCue(rate)
	case core.CueFuel:
		s = fuelCue(rate)
	case core.CuePickup:
		s = pickupCue(rate)
	case core.CueReveal:
		s = revealCue(rate)
	case core.CueWarp:
		s = warpCue(rate)
	case core.CueArrive:
		s = arriveCue(rate)
	default:
		return nil
	}
	return newVolume(s, cfg.CueVolumes[cue]*cfg.MasterVolume)
}
