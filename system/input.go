package system

import (
	"sync/atomic"

	"github.com/lixenwraith/warpdrift/component"
	"github.com/lixenwraith/warpdrift/core"
	"github.com/lixenwraith/warpdrift/engine"
	"github.com/lixenwraith/warpdrift/parameter"
)

// InputSystem turns the sampled intent into the player's turn rate and thruster status
// Input is ignored while warping
type InputSystem struct {
	world *engine.World

	statMissing *atomic.Int64
}

// NewInputSystem creates a new input system
func NewInputSystem(world *engine.World) engine.System {
	s := &InputSystem{
		world:       world,
		statMissing: world.Resources.Status.Ints.Get(statMissingSingleton),
	}
	s.Init()
	return s
}

func (s *InputSystem) Init() {}

func (s *InputSystem) Name() string {
	return "input"
}

func (s *InputSystem) Priority() int {
	return parameter.PriorityInput
}

func (s *InputSystem) Update() {
	if s.world.Resources.Travel.Mode != core.ModeExploring {
		return
	}

	player, err := s.world.Player()
	if err != nil {
		s.statMissing.Add(1)
		return
	}

	intent := s.world.Resources.Input.Intent

	s.world.Components.Motions.Update(player, func(m *component.MotionComponent) {
		m.AngularVel = intent.Turn()
	})
	s.world.Components.Thrusters.Update(player, func(t *component.ThrusterComponent) {
		t.Status = thrusterStatus(intent)
	})
}

func thrusterStatus(intent core.Intent) component.ThrusterStatus {
	switch {
	case intent.ThrustForward && !intent.ThrustReverse:
		return component.ThrusterForward
	case intent.ThrustReverse && !intent.ThrustForward:
		return component.ThrusterReverse
	default:
		return component.ThrusterIdle
	}
}
