package system

import (
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/warpdrift/component"
	"github.com/lixenwraith/warpdrift/core"
	"github.com/lixenwraith/warpdrift/engine"
	"github.com/lixenwraith/warpdrift/event"
	"github.com/lixenwraith/warpdrift/parameter"
	"github.com/lixenwraith/warpdrift/vmath"
)

// FuelSystem drops fuel pellets where enemies die, homes them onto a nearby player and fills the tank
type FuelSystem struct {
	world *engine.World

	statPellets   *atomic.Int64
	statCollected *atomic.Int64
	statMissing   *atomic.Int64
}

// NewFuelSystem creates a new fuel pickup system
func NewFuelSystem(world *engine.World) engine.System {
	reg := world.Resources.Status
	s := &FuelSystem{
		world:         world,
		statPellets:   reg.Ints.Get("fuel.pellets"),
		statCollected: reg.Ints.Get("fuel.collected"),
		statMissing:   reg.Ints.Get(statMissingSingleton),
	}
	s.Init()
	return s
}

func (s *FuelSystem) Init() {
	s.statPellets.Store(0)
	s.statCollected.Store(0)
}

func (s *FuelSystem) Name() string {
	return "fuel"
}

func (s *FuelSystem) Priority() int {
	return parameter.PriorityFuel
}

func (s *FuelSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPickupSpawnRequest,
	}
}

func (s *FuelSystem) HandleEvent(ev event.GameEvent) {
	if payload, ok := ev.Payload.(*event.PickupSpawnPayload); ok {
		s.spawnPellet(payload.Location)
	}
}

func (s *FuelSystem) spawnPellet(pos mgl64.Vec2) core.Entity {
	eb := s.world.NewEntity()
	engine.With(eb, s.world.Components.Transforms, component.TransformComponent{Pos: pos, Layer: parameter.LayerObject})
	engine.With(eb, s.world.Components.Motions, component.MotionComponent{MaxSpeed: s.world.Resources.Config.Fuel.MaxSpeed})
	engine.With(eb, s.world.Components.FuelPellets, component.FuelPelletComponent{})
	engine.With(eb, s.world.Components.Resettables, component.ResettableComponent{})
	return eb.Build()
}

func (s *FuelSystem) Update() {
	pellets := s.world.Components.FuelPellets.All()
	s.statPellets.Store(int64(len(pellets)))

	if s.world.Resources.Travel.Mode != core.ModeExploring {
		return
	}

	player, playerT, err := s.world.PlayerTransform()
	if err != nil {
		s.statMissing.Add(1)
		return
	}

	cfg := s.world.Resources.Config.Fuel
	for _, e := range pellets {
		t, ok := s.world.Components.Transforms.Get(e)
		if !ok || s.world.IsQueuedForDestroy(e) {
			continue
		}

		diff := playerT.Pos.Sub(t.Pos)
		distSq := diff.Dot(diff)

		if distSq < cfg.CollectRadius*cfg.CollectRadius {
			s.collect(player, e)
			continue
		}

		vel := mgl64.Vec2{}
		if distSq < cfg.AttractRadius*cfg.AttractRadius {
			if dir, ok := vmath.SafeNormalize(diff); ok {
				vel = dir.Mul(cfg.HomingSpeed)
			}
		}
		s.world.Components.Motions.Update(e, func(m *component.MotionComponent) {
			m.Vel = vel
		})
	}
}

func (s *FuelSystem) collect(player, pellet core.Entity) {
	s.world.QueueDestroy(pellet)
	s.statCollected.Add(1)

	var tank component.FuelTankComponent
	s.world.Components.FuelTanks.Update(player, func(f *component.FuelTankComponent) {
		f.Current = min(f.Current+1, f.Max)
		tank = *f
	})

	s.world.PushEvent(event.EventFuelCollected, &event.FuelCollectedPayload{
		Current: tank.Current,
		Max:     tank.Max,
	})
}
