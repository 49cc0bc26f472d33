package system

import (
	"github.com/lixenwraith/warpdrift/component"
	"github.com/lixenwraith/warpdrift/core"
	"github.com/lixenwraith/warpdrift/engine"
	"github.com/lixenwraith/warpdrift/parameter"
	"github.com/lixenwraith/warpdrift/vmath"
)

// KinematicsSystem integrates thrust, velocity, rotation and position
// While warping only positions advance, on a slowed clock
type KinematicsSystem struct {
	world *engine.World
}

// NewKinematicsSystem creates a new kinematics system
func NewKinematicsSystem(world *engine.World) engine.System {
	s := &KinematicsSystem{world: world}
	s.Init()
	return s
}

func (s *KinematicsSystem) Init() {}

func (s *KinematicsSystem) Name() string {
	return "kinematics"
}

func (s *KinematicsSystem) Priority() int {
	return parameter.PriorityKinematics
}

func (s *KinematicsSystem) Update() {
	dt := s.world.Resources.Time.Seconds
	if dt <= 0 {
		return
	}

	if s.world.Resources.Travel.Mode == core.ModeWarping {
		s.drift(dt / s.world.Resources.Config.Travel.TimeDivisor)
		return
	}

	for _, e := range s.world.Components.Motions.All() {
		m, _ := s.world.Components.Motions.Get(e)
		t, ok := s.world.Components.Transforms.Get(e)
		if !ok {
			continue
		}

		th, hasThruster := s.world.Components.Thrusters.Get(e)
		if hasThruster {
			m.Accel = vmath.FromAngle(m.Rotation).Mul(th.Thrust * th.Status.Sign())
		}

		m.Vel = vmath.ClampLength(m.Vel.Add(m.Accel.Mul(dt)), m.MaxSpeed)

		if hasThruster {
			m.Rotation += m.AngularVel * dt * th.TurnRate
			t.Angle = m.Rotation
		}

		t.Pos = t.Pos.Add(m.Vel.Mul(dt))

		s.world.Components.Motions.Set(e, m)
		s.world.Components.Transforms.Set(e, t)
	}
}

// drift advances positions only, velocities and rotations are frozen
func (s *KinematicsSystem) drift(dt float64) {
	for _, e := range s.world.Components.Motions.All() {
		m, _ := s.world.Components.Motions.Get(e)
		s.world.Components.Transforms.Update(e, func(t *component.TransformComponent) {
			t.Pos = t.Pos.Add(m.Vel.Mul(dt))
		})
	}
}
