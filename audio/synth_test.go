package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/warpdrift/core"
)

// drain streams s to exhaustion and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer, limit int) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 256)
	total := 0
	peak := 0.0
	for total <= limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = max(peak, buf[i][0], -buf[i][0])
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatalf("Expected streamer to end within %d samples", limit)
	return 0, 0
}

// TestOscillatorRange verifies every wave stays within [-1, 1]
func TestOscillatorRange(t *testing.T) {
	rate := beep.SampleRate(8000)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 50*time.Millisecond, wave, rate)
		samples := make([][2]float64, 100)
		n, ok := osc.Stream(samples)
		if !ok || n != 100 {
			t.Fatalf("Wave %d: expected 100 samples, got %d ok=%v", wave, n, ok)
		}
		for i := 0; i < n; i++ {
			if v := samples[i][0]; v < -1 || v > 1 {
				t.Errorf("Wave %d: sample %d out of range: %f", wave, i, v)
			}
		}
	}
}

// TestOscillatorDuration verifies the oscillator ends after its duration
func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(8000)
	osc := NewOscillator(440, 10*time.Millisecond, WaveSine, rate)

	n, _ := drain(t, osc, 1000)
	if n != rate.N(10*time.Millisecond) {
		t.Errorf("Expected %d samples, got %d", rate.N(10*time.Millisecond), n)
	}
	if n, ok := osc.Stream(make([][2]float64, 10)); n != 0 || ok {
		t.Errorf("Expected drained oscillator, got n=%d ok=%v", n, ok)
	}
}

// TestEnvelopeShape verifies silence at the start and end and full gain in between
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, time.Second, WaveSquare, rate) // constant +1
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 200)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("Expected envelope to cut at 100 samples, got %d", n)
	}
	if samples[0][0] != 0 {
		t.Errorf("Expected zero gain at attack start, got %f", samples[0][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("Expected full gain in sustain, got %f", samples[50][0])
	}
	if samples[99][0] <= 0 || samples[99][0] >= samples[90][0] {
		t.Errorf("Expected release ramp, got %f after %f", samples[99][0], samples[90][0])
	}
}

// TestCueStreamersAreFinite verifies every cue is audible and ends
func TestCueStreamersAreFinite(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SampleRate = 8000
	rate := beep.SampleRate(cfg.SampleRate)

	for cue := core.Cue(0); cue < core.CueCount; cue++ {
		s := CueStreamer(cue, cfg)
		if s == nil {
			t.Fatalf("Expected streamer for cue %d", cue)
		}
		n, peak := drain(t, s, rate.N(2*time.Second))
		if n == 0 || peak == 0 {
			t.Errorf("Cue %d: expected audible samples, got n=%d peak=%f", cue, n, peak)
		}
	}

	if CueStreamer(core.CueCount, cfg) != nil {
		t.Error("Expected nil streamer for unknown cue")
	}
}

func TestCueVolumeSilent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SampleRate = 8000
	cfg.MasterVolume = 0

	_, peak := drain(t, CueStreamer(core.CuePickup, cfg), 8000)
	if peak != 0 {
		t.Errorf("Expected silence at zero master volume, got peak %f", peak)
	}
}
