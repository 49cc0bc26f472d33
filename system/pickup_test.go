package system

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/warpdrift/component"
	"github.com/lixenwraith/warpdrift/event"
)

// TestFuelPelletLifecycle verifies spawn on request, homing in range and collection
func TestFuelPelletLifecycle(t *testing.T) {
	w, player := newTestWorld(t)
	w.AddSystem(NewFuelSystem(w))

	w.PushEvent(event.EventPickupSpawnRequest, &event.PickupSpawnPayload{Location: mgl64.Vec2{50, 0}})
	w.PushEvent(event.EventPickupSpawnRequest, &event.PickupSpawnPayload{Location: mgl64.Vec2{0, 200}})
	tick(w, 16*time.Millisecond)

	pellets := w.Components.FuelPellets.All()
	if len(pellets) != 2 {
		t.Fatalf("Expected 2 pellets, got %d", len(pellets))
	}

	near, far := pellets[0], pellets[1]
	m, _ := w.Components.Motions.Get(near)
	if !nearVec(m.Vel, mgl64.Vec2{-100, 0}) {
		t.Errorf("Expected homing velocity (-100, 0), got %v", m.Vel)
	}
	m, _ = w.Components.Motions.Get(far)
	if m.Vel != (mgl64.Vec2{}) {
		t.Errorf("Expected out of range pellet at rest, got %v", m.Vel)
	}
	if !w.Components.Resettables.Has(near) {
		t.Error("Expected pellet removed on level reset")
	}

	setPos(w, near, mgl64.Vec2{5, 0})
	tick(w, 16*time.Millisecond)

	if w.Components.FuelPellets.Has(near) {
		t.Error("Expected collected pellet removed")
	}
	tank, _ := w.Components.FuelTanks.Get(player)
	if tank.Current != 1 {
		t.Errorf("Expected fuel 1, got %d", tank.Current)
	}
}

func TestFuelCapped(t *testing.T) {
	w, player := newTestWorld(t)
	w.AddSystem(NewFuelSystem(w))
	w.Components.FuelTanks.Update(player, func(f *component.FuelTankComponent) { f.Current = f.Max })

	w.PushEvent(event.EventPickupSpawnRequest, &event.PickupSpawnPayload{Location: mgl64.Vec2{1, 0}})
	tick(w, 16*time.Millisecond)
	tick(w, 16*time.Millisecond)

	tank, _ := w.Components.FuelTanks.Get(player)
	if tank.Current != tank.Max {
		t.Errorf("Expected fuel capped at %d, got %d", tank.Max, tank.Current)
	}
	if w.Components.FuelPellets.Count() != 0 {
		t.Error("Expected pellet consumed even with a full tank")
	}
}

func TestCommodityCollected(t *testing.T) {
	w, player := newTestWorld(t)
	w.AddSystem(NewCommoditySystem(w))

	near := w.CreateEntity()
	w.Components.Transforms.Set(near, component.TransformComponent{Pos: mgl64.Vec2{10, 0}})
	w.Components.Commodities.Set(near, component.CommodityComponent{Kind: component.CommodityWater, Amount: 7})

	edge := w.CreateEntity()
	w.Components.Transforms.Set(edge, component.TransformComponent{Pos: mgl64.Vec2{0, 20}})
	w.Components.Commodities.Set(edge, component.CommodityComponent{Kind: component.CommodityFood, Amount: 3})

	tick(w, 16*time.Millisecond)

	h, _ := w.Components.Holdings.Get(player)
	if h.Quantities[component.CommodityWater] != 7 {
		t.Errorf("Expected 7 water in holding, got %d", h.Quantities[component.CommodityWater])
	}
	if h.Quantities[component.CommodityFood] != 0 {
		t.Error("Expected commodity at exactly the pickup radius left in place")
	}
	if w.Components.Commodities.Has(near) {
		t.Error("Expected collected commodity removed")
	}
}
