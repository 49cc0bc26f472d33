// Package game composes the world and its systems and exposes read-only snapshots to front-ends
package game

import (
	"fmt"
	"time"

	"github.com/lixenwraith/warpdrift/config"
	"github.com/lixenwraith/warpdrift/core"
	"github.com/lixenwraith/warpdrift/engine"
	"github.com/lixenwraith/warpdrift/parameter"
	"github.com/lixenwraith/warpdrift/system"
)

// Option configures a Game at construction
type Option func(*options)

type options struct {
	seed        uint64
	cues        engine.CuePlayer
	diagnostics bool
}

// WithSeed overrides the configured seed
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed = seed }
}

// WithCuePlayer routes audio cues to p
func WithCuePlayer(p engine.CuePlayer) Option {
	return func(o *options) { o.cues = p }
}

// WithDiagnostics enables the telemetry collection system
func WithDiagnostics(enabled bool) Option {
	return func(o *options) { o.diagnostics = enabled }
}

// Game owns a world and its systems
// Not safe for concurrent use; front-ends drive it from a single loop goroutine
type Game struct {
	world  *engine.World
	travel *system.TravelSystem
	seed   uint64
}

// New validates cfg, builds the world and enters the first level
func New(cfg *config.Config, opts ...Option) (*Game, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	o := options{seed: cfg.Seed}
	for _, opt := range opts {
		opt(&o)
	}
	if o.seed == 0 {
		o.seed = uint64(time.Now().UnixNano())
	}

	w := engine.NewWorld(cfg, o.seed)
	w.Resources.Cues = o.cues

	system.SpawnPlayer(w)
	system.SpawnCamera(w)
	w.Flush()

	g := &Game{world: w, seed: o.seed}

	// Priorities order execution, registration order only matters for ties
	w.AddSystem(system.NewInputSystem(w))
	w.AddSystem(system.NewSpatialSystem(w))
	w.AddSystem(system.NewSteeringSystem(w))
	w.AddSystem(system.NewFuelSystem(w))
	w.AddSystem(system.NewKinematicsSystem(w))
	w.AddSystem(system.NewWeaponSystem(w))
	w.AddSystem(system.NewProjectileSystem(w))
	w.AddSystem(system.NewEnemySystem(w))
	w.AddSystem(system.NewSpawnSystem(w))
	w.AddSystem(system.NewCommoditySystem(w))
	w.AddSystem(system.NewScannerSystem(w))

	g.travel = system.NewTravelSystem(w).(*system.TravelSystem)
	w.AddSystem(g.travel)

	w.AddSystem(system.NewCameraSystem(w))
	w.AddSystem(system.NewIndicatorSystem(w))
	w.AddSystem(system.NewAudioSystem(w))
	if o.diagnostics {
		w.AddSystem(system.NewDiagnosticsSystem(w))
	}

	// Commit the first level
	w.Flush()
	return g, nil
}

// Tick advances the simulation, dt is capped at parameter.MaxFrameDelta
func (g *Game) Tick(dt time.Duration, intent core.Intent) {
	if dt > parameter.MaxFrameDelta {
		dt = parameter.MaxFrameDelta
	}
	if dt < 0 {
		dt = 0
	}
	g.world.Tick(dt, intent)
}

// Reset discards all entities and restarts at a fresh level with zero credits
func (g *Game) Reset() {
	w := g.world
	w.Clear()
	*w.Resources.Time = engine.TimeResource{}
	*w.Resources.Starfield = engine.StarfieldResource{}

	system.SpawnPlayer(w)
	system.SpawnCamera(w)
	w.Flush()

	for _, s := range w.Systems() {
		s.Init()
	}
	w.Flush()
}

// World exposes the underlying world for tests and tooling
func (g *Game) World() *engine.World {
	return g.world
}

// Seed returns the seed the world was created with
func (g *Game) Seed() uint64 {
	return g.seed
}

// State returns the travel state machine's active state name
func (g *Game) State() string {
	return g.travel.State()
}
