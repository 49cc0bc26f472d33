package system

import (
	"sync/atomic"

	"github.com/lixenwraith/warpdrift/component"
	"github.com/lixenwraith/warpdrift/core"
	"github.com/lixenwraith/warpdrift/engine"
	"github.com/lixenwraith/warpdrift/parameter"
	"github.com/lixenwraith/warpdrift/status"
	"github.com/lixenwraith/warpdrift/vmath"
)

// CameraSystem centres the camera on the player, keeps the travel overlay on the camera and
// scrolls the starfield, faster as the warp approach builds up
type CameraSystem struct {
	world *engine.World

	statMissing *atomic.Int64
	statBoost   *status.AtomicFloat
}

// NewCameraSystem creates a new camera follow system
func NewCameraSystem(world *engine.World) engine.System {
	s := &CameraSystem{
		world:       world,
		statMissing: world.Resources.Status.Ints.Get(statMissingSingleton),
		statBoost:   world.Resources.Status.Floats.Get("starfield.boost"),
	}
	s.Init()
	return s
}

func (s *CameraSystem) Init() {}

func (s *CameraSystem) Name() string {
	return "camera"
}

func (s *CameraSystem) Priority() int {
	return parameter.PriorityCamera
}

func (s *CameraSystem) Update() {
	player, playerT, err := s.world.PlayerTransform()
	if err != nil {
		s.statMissing.Add(1)
		return
	}
	camera, err := s.world.Camera()
	if err != nil {
		s.statMissing.Add(1)
		return
	}

	s.world.Components.Transforms.Update(camera, func(t *component.TransformComponent) {
		t.Pos = playerT.Pos
	})

	for _, e := range s.world.Components.Overlays.All() {
		s.world.Components.Transforms.Update(e, func(t *component.TransformComponent) {
			t.Pos = playerT.Pos
		})
	}

	travel := s.world.Resources.Travel
	starfield := s.world.Resources.Starfield
	if travel.Mode != core.ModeWarping {
		starfield.Offset = playerT.Pos
		s.statBoost.Store(1)
		return
	}

	m, _ := s.world.Components.Motions.Get(player)
	boost := 1 + vmath.QuadraticIn(travel.Approach.Percent())*parameter.StarfieldWarpBoost
	starfield.Offset = starfield.Offset.Add(m.Vel.Mul(s.world.Resources.Time.Seconds * boost))
	s.statBoost.Store(boost)
}
