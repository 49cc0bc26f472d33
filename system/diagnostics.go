package system

import (
	"sync/atomic"

	"github.com/lixenwraith/warpdrift/engine"
	"github.com/lixenwraith/warpdrift/parameter"
)

const diagnosticsSampleInterval = 60

// DiagnosticsSystem collects store sizes and consistency checks for leak detection
type DiagnosticsSystem struct {
	world *engine.World

	tickCounter int64

	statTick *atomic.Int64

	// Store counts
	statTransformCount  *atomic.Int64
	statMotionCount     *atomic.Int64
	statEnemyCount      *atomic.Int64
	statProjectileCount *atomic.Int64
	statPelletCount     *atomic.Int64
	statIndicatorCount  *atomic.Int64
	statResettableCount *atomic.Int64

	// Consistency checks
	statOrphanIndicator *atomic.Int64
	statOrphanMotion    *atomic.Int64
}

// NewDiagnosticsSystem creates a new diagnostics system
func NewDiagnosticsSystem(world *engine.World) engine.System {
	reg := world.Resources.Status

	s := &DiagnosticsSystem{
		world:    world,
		statTick: reg.Ints.Get("sim.tick"),

		statTransformCount:  reg.Ints.Get("store.transform.count"),
		statMotionCount:     reg.Ints.Get("store.motion.count"),
		statEnemyCount:      reg.Ints.Get("store.enemy.count"),
		statProjectileCount: reg.Ints.Get("store.projectile.count"),
		statPelletCount:     reg.Ints.Get("store.pellet.count"),
		statIndicatorCount:  reg.Ints.Get("store.indicator.count"),
		statResettableCount: reg.Ints.Get("store.resettable.count"),

		statOrphanIndicator: reg.Ints.Get("consistency.indicator_without_target"),
		statOrphanMotion:    reg.Ints.Get("consistency.motion_without_transform"),
	}

	s.Init()
	return s
}

func (s *DiagnosticsSystem) Init() {
	s.tickCounter = 0
}

func (s *DiagnosticsSystem) Name() string {
	return "diagnostics"
}

func (s *DiagnosticsSystem) Priority() int {
	return parameter.PriorityDiagnostics
}

func (s *DiagnosticsSystem) Update() {
	s.tickCounter++
	s.statTick.Store(s.world.Frame())

	// Sample expensive operations
	if s.tickCounter%diagnosticsSampleInterval != 0 {
		return
	}

	s.collectStoreCounts()
	s.collectConsistencyChecks()
}

func (s *DiagnosticsSystem) collectStoreCounts() {
	c := s.world.Components
	s.statTransformCount.Store(int64(c.Transforms.Count()))
	s.statMotionCount.Store(int64(c.Motions.Count()))
	s.statEnemyCount.Store(int64(c.Enemies.Count()))
	s.statProjectileCount.Store(int64(c.Projectiles.Count()))
	s.statPelletCount.Store(int64(c.FuelPellets.Count()))
	s.statIndicatorCount.Store(int64(c.Indicators.Count()))
	s.statResettableCount.Store(int64(c.Resettables.Count()))
}

func (s *DiagnosticsSystem) collectConsistencyChecks() {
	var orphanIndicator, orphanMotion int64

	for _, e := range s.world.Components.Indicators.All() {
		ind, ok := s.world.Components.Indicators.Get(e)
		if ok && !s.world.Components.Transforms.Has(ind.Target) {
			orphanIndicator++
		}
	}

	for _, e := range s.world.Components.Motions.All() {
		if !s.world.Components.Transforms.Has(e) {
			orphanMotion++
		}
	}

	s.statOrphanIndicator.Store(orphanIndicator)
	s.statOrphanMotion.Store(orphanMotion)
}
