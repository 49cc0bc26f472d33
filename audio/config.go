package audio

import (
	"os"
	"strconv"

	"github.com/lixenwraith/warpdrift/core"
	"github.com/lixenwraith/warpdrift/parameter"
)

// Config holds cue player settings
type Config struct {
	Enabled      bool
	MasterVolume float64
	SampleRate   int

	// MaxVoices bounds concurrently sounding cues, further cues are dropped
	MaxVoices int

	// CueVolumes scales each cue before the master volume
	CueVolumes [core.CueCount]float64
}

// DefaultConfig returns enabled audio at the default mix
func DefaultConfig() *Config {
	cfg := &Config{
		Enabled:      true,
		MasterVolume: parameter.AudioMasterVolume,
		SampleRate:   parameter.AudioSampleRate,
		MaxVoices:    parameter.AudioMaxVoices,
	}
	for i := range cfg.CueVolumes {
		cfg.CueVolumes[i] = 1
	}
	cfg.CueVolumes[core.CueLaser] = 0.4
	cfg.CueVolumes[core.CueHit] = 0.6
	cfg.CueVolumes[core.CueWarp] = 0.8
	return cfg
}

// LoadConfig reads overrides from the environment over the defaults
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if v := os.Getenv("WARPDRIFT_AUDIO_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = b
		}
	}

	// Master volume is 0-100
	if v := os.Getenv("WARPDRIFT_MASTER_VOLUME"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MasterVolume = min(max(float64(n)/100, 0), 1)
		}
	}

	if v := os.Getenv("WARPDRIFT_SAMPLE_RATE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SampleRate = n
		}
	}
	return cfg
}
