package system

import (
	"sync/atomic"

	"github.com/lixenwraith/warpdrift/component"
	"github.com/lixenwraith/warpdrift/core"
	"github.com/lixenwraith/warpdrift/engine"
	"github.com/lixenwraith/warpdrift/event"
	"github.com/lixenwraith/warpdrift/parameter"
	"github.com/lixenwraith/warpdrift/vmath"
)

// ProjectileSystem resolves projectile hits against enemies and removes projectiles past their range
//
// Candidates come from the spatial index with a widened radius, then each one is
// re-verified against its current transform since the index is a tick behind integration
type ProjectileSystem struct {
	world *engine.World

	statCount *atomic.Int64
	statHits  *atomic.Int64
}

// NewProjectileSystem creates a new projectile collision system
func NewProjectileSystem(world *engine.World) engine.System {
	s := &ProjectileSystem{
		world:     world,
		statCount: world.Resources.Status.Ints.Get("projectile.count"),
		statHits:  world.Resources.Status.Ints.Get("projectile.hits"),
	}
	s.Init()
	return s
}

func (s *ProjectileSystem) Init() {
	s.statCount.Store(0)
	s.statHits.Store(0)
}

func (s *ProjectileSystem) Name() string {
	return "projectile"
}

func (s *ProjectileSystem) Priority() int {
	return parameter.PriorityProjectile
}

func (s *ProjectileSystem) Update() {
	cfg := s.world.Resources.Config.Weapon
	projectiles := s.world.Components.Projectiles.All()
	s.statCount.Store(int64(len(projectiles)))

	for _, p := range projectiles {
		proj, _ := s.world.Components.Projectiles.Get(p)
		t, ok := s.world.Components.Transforms.Get(p)
		if !ok {
			continue
		}

		s.resolveHits(p, proj, t, cfg.HitRadius)

		if vmath.DistanceSq(t.Pos, proj.Origin) > proj.Range*proj.Range {
			s.world.QueueDestroy(p)
		}
	}
}

// resolveHits damages verified candidates nearest first, a non-piercing projectile stops at the first
func (s *ProjectileSystem) resolveHits(p core.Entity, proj component.ProjectileComponent, t component.TransformComponent, hitRadius float64) {
	if s.world.IsQueuedForDestroy(p) {
		return
	}

	candidates := s.world.Resources.Spatial.Within(t.Pos, hitRadius+parameter.ProjectileIndexSlack)
	for _, c := range candidates {
		if !s.world.Components.Enemies.Has(c.Entity) || s.world.IsQueuedForDestroy(c.Entity) {
			continue
		}
		target, ok := s.world.Components.Transforms.Get(c.Entity)
		if !ok || vmath.DistanceSq(target.Pos, t.Pos) >= hitRadius*hitRadius {
			continue
		}

		hit := false
		s.world.Components.Healths.Update(c.Entity, func(h *component.HealthComponent) {
			if h.Dead() {
				return
			}
			h.Apply(proj.Damage)
			hit = true
		})
		if !hit {
			continue
		}

		s.statHits.Add(1)
		s.world.PushEvent(event.EventProjectileHit, &event.ProjectileHitPayload{
			Projectile: p,
			Target:     c.Entity,
			Damage:     proj.Damage,
		})

		if !proj.Piercing {
			s.world.QueueDestroy(p)
			return
		}
	}
}
