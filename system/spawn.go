package system

import (
	"math"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/warpdrift/component"
	"github.com/lixenwraith/warpdrift/core"
	"github.com/lixenwraith/warpdrift/engine"
	"github.com/lixenwraith/warpdrift/parameter"
	"github.com/lixenwraith/warpdrift/vmath"
)

// SpawnSystem places enemies on a rectangle around the player and ramps the spawn rate
//
// Spawns at capacity are dropped, not deferred. The ramp halves the period down to its
// floor; both timers restart when a travel cycle arrives
type SpawnSystem struct {
	world *engine.World

	statSpawned    *atomic.Int64
	statSkipped    *atomic.Int64
	statPeriodMs   *atomic.Int64
	statDegenerate *atomic.Int64
	statMissing    *atomic.Int64
}

// NewSpawnSystem creates a new enemy spawn system
func NewSpawnSystem(world *engine.World) engine.System {
	reg := world.Resources.Status
	s := &SpawnSystem{
		world:          world,
		statSpawned:    reg.Ints.Get("enemy.spawned"),
		statSkipped:    reg.Ints.Get("spawn.skipped"),
		statPeriodMs:   reg.Ints.Get("spawn.period_ms"),
		statDegenerate: reg.Ints.Get(statDegenerateSpawn),
		statMissing:    reg.Ints.Get(statMissingSingleton),
	}
	s.Init()
	return s
}

func (s *SpawnSystem) Init() {
	s.world.Resources.Spawn.Reset()
	s.statSpawned.Store(0)
	s.statSkipped.Store(0)
	s.statPeriodMs.Store(s.world.Resources.Spawn.Period.Milliseconds())
}

func (s *SpawnSystem) Name() string {
	return "spawn"
}

func (s *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

func (s *SpawnSystem) Update() {
	if s.world.Resources.Travel.Mode != core.ModeExploring {
		return
	}

	sp := s.world.Resources.Spawn
	dt := s.world.Resources.Time.Delta

	sp.Ramp.Tick(dt)
	for range sp.Ramp.TimesFinishedThisTick() {
		sp.Halve()
	}
	s.statPeriodMs.Store(sp.Period.Milliseconds())

	sp.Timer.Tick(dt)
	for range sp.Timer.TimesFinishedThisTick() {
		s.trySpawn()
	}
}

func (s *SpawnSystem) trySpawn() {
	cfg := s.world.Resources.Config

	live := s.world.Components.Enemies.Count() + s.world.PendingCount(s.world.Components.Enemies)
	if live >= cfg.Spawn.Cap {
		s.statSkipped.Add(1)
		return
	}

	_, playerT, err := s.world.PlayerTransform()
	if err != nil {
		s.statMissing.Add(1)
		return
	}

	theta := s.world.Resources.RNG.Float64() * 2 * math.Pi
	bounds := mgl64.Vec2{cfg.Spawn.BoundsX, cfg.Spawn.BoundsY}
	offset, _, err := vmath.ProjectOntoBoundingRect(vmath.FromAngle(theta), bounds.Mul(-1), bounds)
	if err != nil {
		s.statDegenerate.Add(1)
		return
	}

	SpawnEnemy(s.world, playerT.Pos.Add(offset))
	s.statSpawned.Add(1)
}

// SpawnEnemy stages an enemy at pos with configured health and speed
func SpawnEnemy(world *engine.World, pos mgl64.Vec2) core.Entity {
	cfg := world.Resources.Config.Enemy

	eb := world.NewEntity()
	engine.With(eb, world.Components.Transforms, component.TransformComponent{Pos: pos, Layer: parameter.LayerShip})
	engine.With(eb, world.Components.Motions, component.MotionComponent{MaxSpeed: cfg.MaxSpeed})
	engine.With(eb, world.Components.Healths, component.HealthComponent{Current: cfg.Health, Max: cfg.Health})
	engine.With(eb, world.Components.Enemies, component.EnemyComponent{})
	engine.With(eb, world.Components.Indexables, component.IndexableComponent{})
	engine.With(eb, world.Components.Resettables, component.ResettableComponent{})
	return eb.Build()
}
