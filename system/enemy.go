package system

import (
	"sync/atomic"

	"github.com/lixenwraith/warpdrift/engine"
	"github.com/lixenwraith/warpdrift/event"
	"github.com/lixenwraith/warpdrift/parameter"
	"github.com/lixenwraith/warpdrift/vmath"
)

// EnemySystem removes dead enemies, requesting a pickup where they fell, and culls stragglers
type EnemySystem struct {
	world *engine.World

	statCount   *atomic.Int64
	statKilled  *atomic.Int64
	statCulled  *atomic.Int64
	statMissing *atomic.Int64
}

// NewEnemySystem creates a new enemy lifecycle system
func NewEnemySystem(world *engine.World) engine.System {
	reg := world.Resources.Status
	s := &EnemySystem{
		world:       world,
		statCount:   reg.Ints.Get("enemy.count"),
		statKilled:  reg.Ints.Get("enemy.killed"),
		statCulled:  reg.Ints.Get("enemy.culled"),
		statMissing: reg.Ints.Get(statMissingSingleton),
	}
	s.Init()
	return s
}

func (s *EnemySystem) Init() {
	s.statCount.Store(0)
	s.statKilled.Store(0)
	s.statCulled.Store(0)
}

func (s *EnemySystem) Name() string {
	return "enemy"
}

func (s *EnemySystem) Priority() int {
	return parameter.PriorityEnemy
}

func (s *EnemySystem) Update() {
	enemies := s.world.Query().
		With(s.world.Components.Enemies).
		With(s.world.Components.Healths).
		With(s.world.Components.Transforms).
		Execute()
	s.statCount.Store(int64(s.world.Components.Enemies.Count()))

	for _, e := range enemies {
		h, _ := s.world.Components.Healths.Get(e)
		if !h.Dead() || s.world.IsQueuedForDestroy(e) {
			continue
		}
		t, _ := s.world.Components.Transforms.Get(e)

		s.world.QueueDestroy(e)
		s.statKilled.Add(1)
		s.world.PushEvent(event.EventPickupSpawnRequest, &event.PickupSpawnPayload{Location: t.Pos})
		s.world.PushEvent(event.EventEnemyKilled, &event.EnemyKilledPayload{Entity: e, Location: t.Pos})
	}

	_, playerT, err := s.world.PlayerTransform()
	if err != nil {
		s.statMissing.Add(1)
		return
	}

	cull := s.world.Resources.Config.Enemy.CullDistance
	for _, e := range enemies {
		if s.world.IsQueuedForDestroy(e) {
			continue
		}
		t, _ := s.world.Components.Transforms.Get(e)
		if vmath.DistanceSq(t.Pos, playerT.Pos) > cull*cull {
			s.world.QueueDestroy(e)
			s.statCulled.Add(1)
		}
	}
}
