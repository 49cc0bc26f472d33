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

// CommoditySystem moves cargo pods touched by the player into the holding
type CommoditySystem struct {
	world *engine.World

	statCollected *atomic.Int64
	statMissing   *atomic.Int64
}

// NewCommoditySystem creates a new commodity pickup system
func NewCommoditySystem(world *engine.World) engine.System {
	s := &CommoditySystem{
		world:         world,
		statCollected: world.Resources.Status.Ints.Get("commodity.collected"),
		statMissing:   world.Resources.Status.Ints.Get(statMissingSingleton),
	}
	s.Init()
	return s
}

func (s *CommoditySystem) Init() {
	s.statCollected.Store(0)
}

func (s *CommoditySystem) Name() string {
	return "commodity"
}

func (s *CommoditySystem) Priority() int {
	return parameter.PriorityCommodity
}

func (s *CommoditySystem) Update() {
	if s.world.Resources.Travel.Mode != core.ModeExploring {
		return
	}

	player, playerT, err := s.world.PlayerTransform()
	if err != nil {
		s.statMissing.Add(1)
		return
	}

	radius := s.world.Resources.Config.Level.CommodityRadius
	for _, e := range s.world.Components.Commodities.All() {
		t, ok := s.world.Components.Transforms.Get(e)
		if !ok || s.world.IsQueuedForDestroy(e) {
			continue
		}
		if vmath.DistanceSq(t.Pos, playerT.Pos) >= radius*radius {
			continue
		}

		c, _ := s.world.Components.Commodities.Get(e)
		s.world.Components.Holdings.Update(player, func(h *component.HoldingComponent) {
			if h.Quantities == nil {
				h.Quantities = make(map[component.CommodityKind]int)
			}
			h.Quantities[c.Kind] += c.Amount
		})

		s.world.QueueDestroy(e)
		s.statCollected.Add(1)
		s.world.PushEvent(event.EventCommodityCollected, &event.CommodityCollectedPayload{
			Kind:   c.Kind,
			Amount: c.Amount,
		})
	}
}
