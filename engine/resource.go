package engine

import (
	"math/rand/v2"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/warpdrift/component"
	"github.com/lixenwraith/warpdrift/config"
	"github.com/lixenwraith/warpdrift/core"
	"github.com/lixenwraith/warpdrift/status"
)

// Resources holds the world's singleton state, owned by the world and passed to systems by pointer
// Each stateful resource has a Reset invoked by the travel arrival step
type Resources struct {
	Time   *TimeResource
	Input  *InputResource
	Config *config.Config
	RNG    *rand.Rand

	Spatial   *SpatialIndex
	Travel    *TravelResource
	Scanner   *ScannerResource
	Discovery *DiscoveryResource
	Spawn     *SpawnResource
	Starfield *StarfieldResource

	// Telemetry
	Status *status.Registry

	// Cues is nil when audio is disabled
	Cues CuePlayer
}

// NewResources builds resources from configuration with a seeded generator
func NewResources(cfg *config.Config, seed uint64) *Resources {
	return &Resources{
		Time:      &TimeResource{},
		Input:     &InputResource{},
		Config:    cfg,
		RNG:       rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		Spatial:   NewSpatialIndex(0),
		Travel:    NewTravelResource(cfg.Travel),
		Scanner:   NewScannerResource(cfg.Scanner.Period.Duration),
		Discovery: &DiscoveryResource{},
		Spawn:     NewSpawnResource(cfg.Spawn),
		Starfield: &StarfieldResource{},
		Status:    status.NewRegistry(),
	}
}

// === World Resources ===

// TimeResource is updated by World.Tick before any system runs
type TimeResource struct {
	// Delta is the simulated duration of the current tick
	Delta time.Duration

	// Seconds is Delta in seconds for integration
	Seconds float64

	// Elapsed is the total simulated time
	Elapsed time.Duration

	// Frame is the current tick count, starting at 1
	Frame int64
}

func (t *TimeResource) advance(dt time.Duration, frame int64) {
	t.Delta = dt
	t.Seconds = dt.Seconds()
	t.Elapsed += dt
	t.Frame = frame
}

// InputResource holds the intent sampled for the current tick
type InputResource struct {
	Intent core.Intent
}

// StarfieldResource is the parallax background offset
type StarfieldResource struct {
	Offset mgl64.Vec2
}

// === Travel ===

// TravelResource is the warp animation state and the sale captured at engage
type TravelResource struct {
	Mode core.TravelMode

	Approach core.Timer
	FadeOut  core.Timer
	Dwell    core.Timer
	FadeIn   core.Timer

	// Pending is the destination's price sheet captured at engage, nil when idle
	Pending     *component.PriceSheet
	Destination string

	// Overlay is the fade entity, NoEntity outside FadeOut..FadeIn
	Overlay core.Entity

	cfg config.TravelConfig
}

// NewTravelResource creates an idle travel state
func NewTravelResource(cfg config.TravelConfig) *TravelResource {
	t := &TravelResource{cfg: cfg}
	t.Reset()
	return t
}

// Reset returns every timer to its inert state and drops the pending sale
// The approach timer is left unpaused because it only ticks while warping
func (t *TravelResource) Reset() {
	t.Approach = core.NewTimer(t.cfg.Approach.Duration, core.TimerOnce)
	t.FadeOut = core.NewPausedTimer(t.cfg.FadeOut.Duration, core.TimerOnce)
	t.Dwell = core.NewPausedTimer(t.cfg.Dwell.Duration, core.TimerOnce)
	t.FadeIn = core.NewPausedTimer(t.cfg.FadeIn.Duration, core.TimerOnce)
	t.Pending = nil
	t.Destination = ""
	t.Overlay = core.NoEntity
}

// Phase reports the active animation step
func (t *TravelResource) Phase() core.TravelPhase {
	if t.Mode == core.ModeWarping {
		switch {
		case !t.Approach.Finished():
			return core.PhaseApproach
		case !t.FadeOut.Paused() && !t.FadeOut.Finished():
			return core.PhaseFadeOut
		default:
			return core.PhaseDwell
		}
	}
	if !t.FadeIn.Paused() && !t.FadeIn.Finished() {
		return core.PhaseFadeIn
	}
	return core.PhaseIdle
}

// === Discovery ===

// ScannerResource holds the periodic reveal timer and unrevealed candidate pools
type ScannerResource struct {
	Timer core.Timer

	// Commodities are revealed first, Destinations once no commodity candidate remains
	Commodities  []core.Entity
	Destinations []core.Entity

	period time.Duration
}

// NewScannerResource creates a running scanner with empty pools
func NewScannerResource(period time.Duration) *ScannerResource {
	s := &ScannerResource{period: period}
	s.Reset()
	return s
}

// Reset restarts the timer and empties both pools
func (s *ScannerResource) Reset() {
	s.Timer = core.NewTimer(s.period, core.TimerRepeating)
	s.Commodities = s.Commodities[:0]
	s.Destinations = s.Destinations[:0]
}

// Active reports whether the timer is counting toward a reveal
func (s *ScannerResource) Active() bool {
	return !s.Timer.Paused()
}

// DiscoveredDestination is a revealed destination and its market
type DiscoveredDestination struct {
	Entity core.Entity
	Label  string
	Prices component.PriceSheet
}

// DiscoveryResource lists destinations revealed this level in reveal order
type DiscoveryResource struct {
	Destinations []DiscoveredDestination
}

// Reset forgets all discoveries
func (d *DiscoveryResource) Reset() {
	d.Destinations = d.Destinations[:0]
}

// === Population ===

// SpawnResource holds the spawn and ramp timers and the current spawn period
type SpawnResource struct {
	Timer  core.Timer
	Ramp   core.Timer
	Period time.Duration

	cfg config.SpawnConfig
}

// NewSpawnResource creates spawn state at the initial period
func NewSpawnResource(cfg config.SpawnConfig) *SpawnResource {
	s := &SpawnResource{cfg: cfg}
	s.Reset()
	return s
}

// Reset restores the initial period and restarts both timers
func (s *SpawnResource) Reset() {
	s.Period = s.cfg.InitialPeriod.Duration
	s.Timer = core.NewTimer(s.Period, core.TimerRepeating)
	s.Ramp = core.NewTimer(s.cfg.RampInterval.Duration, core.TimerRepeating)
}

// Halve shortens the spawn period by half, bounded below by the configured floor
// Elapsed progress toward the next spawn is kept
func (s *SpawnResource) Halve() {
	next := s.Period / 2
	if next < s.cfg.MinPeriod.Duration {
		next = s.cfg.MinPeriod.Duration
	}
	s.Period = next
	s.Timer.SetDuration(next)
}
