package system

import (
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/warpdrift/component"
	"github.com/lixenwraith/warpdrift/engine"
	"github.com/lixenwraith/warpdrift/parameter"
	"github.com/lixenwraith/warpdrift/vmath"
)

// IndicatorSystem pins each indicator to the screen edge in the direction of its target
// Indicators hide while the target is on screen and are removed with their target
type IndicatorSystem struct {
	world *engine.World

	statVisible *atomic.Int64
	statMissing *atomic.Int64
}

// NewIndicatorSystem creates a new indicator layout system
func NewIndicatorSystem(world *engine.World) engine.System {
	s := &IndicatorSystem{
		world:       world,
		statVisible: world.Resources.Status.Ints.Get("indicator.visible"),
		statMissing: world.Resources.Status.Ints.Get(statMissingSingleton),
	}
	s.Init()
	return s
}

func (s *IndicatorSystem) Init() {}

func (s *IndicatorSystem) Name() string {
	return "indicator"
}

func (s *IndicatorSystem) Priority() int {
	return parameter.PriorityIndicator
}

func (s *IndicatorSystem) Update() {
	_, playerT, err := s.world.PlayerTransform()
	if err != nil {
		s.statMissing.Add(1)
		return
	}

	vp := s.world.Resources.Config.Viewport
	view := mgl64.Vec2{vp.HalfWidth, vp.HalfHeight}
	inset := mgl64.Vec2{vp.InsetX, vp.InsetY}

	var visible int64
	for _, e := range s.world.Components.Indicators.All() {
		ind, _ := s.world.Components.Indicators.Get(e)

		target, ok := s.world.Components.Transforms.Get(ind.Target)
		if !ok || s.world.IsQueuedForDestroy(ind.Target) {
			s.world.QueueDestroy(e)
			continue
		}

		diff := target.Pos.Sub(playerT.Pos)
		ind.Distance = diff.Len()
		ind.Angle = vmath.Angle(diff)

		if vmath.PointInRect(diff, view.Mul(-1), view) {
			ind.Visible = false
			ind.Edge = vmath.EdgeNone
		} else {
			offset, edge, err := vmath.ProjectOntoBoundingRect(diff, inset.Mul(-1), inset)
			if err != nil {
				ind.Visible = false
			} else {
				ind.Visible = true
				ind.Pos = playerT.Pos.Add(offset)
				ind.Edge = edge
				visible++
			}
		}

		s.world.Components.Indicators.Set(e, ind)
		s.world.Components.Transforms.Update(e, func(t *component.TransformComponent) {
			t.Pos = ind.Pos
			t.Angle = ind.Angle
		})
	}
	s.statVisible.Store(visible)
}
