package system

import (
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/warpdrift/component"
	"github.com/lixenwraith/warpdrift/core"
	"github.com/lixenwraith/warpdrift/engine"
	"github.com/lixenwraith/warpdrift/parameter"
	"github.com/lixenwraith/warpdrift/vmath"
)

// separationNeighbors is self plus the nearest other enemy
const separationNeighbors = 2

// SteeringSystem points every enemy at the player, blended with repulsion from its nearest neighbour
type SteeringSystem struct {
	world *engine.World

	statMissing *atomic.Int64
}

// NewSteeringSystem creates a new enemy steering system
func NewSteeringSystem(world *engine.World) engine.System {
	s := &SteeringSystem{
		world:       world,
		statMissing: world.Resources.Status.Ints.Get(statMissingSingleton),
	}
	s.Init()
	return s
}

func (s *SteeringSystem) Init() {}

func (s *SteeringSystem) Name() string {
	return "steering"
}

func (s *SteeringSystem) Priority() int {
	return parameter.PrioritySteering
}

func (s *SteeringSystem) Update() {
	if s.world.Resources.Travel.Mode != core.ModeExploring {
		return
	}

	_, playerT, err := s.world.PlayerTransform()
	if err != nil {
		s.statMissing.Add(1)
		return
	}

	cfg := s.world.Resources.Config.Enemy
	for _, e := range s.world.Components.Enemies.All() {
		t, ok := s.world.Components.Transforms.Get(e)
		if !ok {
			continue
		}

		heading, _ := vmath.SafeNormalize(playerT.Pos.Sub(t.Pos))
		if away, ok := s.separation(e, t.Pos, cfg.SeparationRadius); ok {
			heading = heading.Add(away.Mul(cfg.SeparationWeight))
		}

		s.world.Components.Motions.Update(e, func(m *component.MotionComponent) {
			dir, ok := vmath.SafeNormalize(heading)
			if !ok {
				m.Vel = mgl64.Vec2{}
				return
			}
			m.Vel = dir.Mul(m.MaxSpeed)
		})
	}
}

// separation returns the unit vector away from the nearest other enemy inside radius
// Only enemies are indexed, so the first neighbour that is not self is the candidate
func (s *SteeringSystem) separation(self core.Entity, pos mgl64.Vec2, radius float64) (mgl64.Vec2, bool) {
	for _, n := range s.world.Resources.Spatial.Nearest(pos, separationNeighbors) {
		if n.Entity == self {
			continue
		}
		if n.DistSq >= radius*radius || !s.world.Components.Enemies.Has(n.Entity) {
			break
		}
		return vmath.SafeNormalize(pos.Sub(n.Pos))
	}
	return mgl64.Vec2{}, false
}
