package system

import (
	"sync/atomic"

	"github.com/lixenwraith/warpdrift/engine"
	"github.com/lixenwraith/warpdrift/parameter"
)

// SpatialSystem rebuilds the spatial index from every indexable transform
type SpatialSystem struct {
	world *engine.World

	statIndexed *atomic.Int64
}

// NewSpatialSystem creates a new spatial index rebuild system
func NewSpatialSystem(world *engine.World) engine.System {
	s := &SpatialSystem{
		world:       world,
		statIndexed: world.Resources.Status.Ints.Get("spatial.indexed"),
	}
	s.Init()
	return s
}

func (s *SpatialSystem) Init() {
	s.world.Resources.Spatial.Clear()
}

func (s *SpatialSystem) Name() string {
	return "spatial"
}

func (s *SpatialSystem) Priority() int {
	return parameter.PrioritySpatial
}

func (s *SpatialSystem) Update() {
	index := s.world.Resources.Spatial
	index.Clear()

	for _, e := range s.world.Components.Indexables.All() {
		t, ok := s.world.Components.Transforms.Get(e)
		if !ok {
			continue
		}
		index.Insert(e, t.Pos)
	}

	s.statIndexed.Store(int64(index.Len()))
}
