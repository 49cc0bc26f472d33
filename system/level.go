package system

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/warpdrift/component"
	"github.com/lixenwraith/warpdrift/core"
	"github.com/lixenwraith/warpdrift/engine"
	"github.com/lixenwraith/warpdrift/parameter"
	"github.com/lixenwraith/warpdrift/vmath"
)

// Level content is staged through the world command buffer and becomes visible at the next flush
// Scanner pools are filled immediately with the reserved handles

// SpawnPlayer stages the player ship at the origin
func SpawnPlayer(world *engine.World) core.Entity {
	cfg := world.Resources.Config

	eb := world.NewEntity()
	engine.With(eb, world.Components.Players, component.PlayerComponent{})
	engine.With(eb, world.Components.Transforms, component.TransformComponent{
		Layer: parameter.LayerShip,
		Angle: parameter.PlayerStartRotation,
	})
	engine.With(eb, world.Components.Motions, component.MotionComponent{
		Rotation: parameter.PlayerStartRotation,
		MaxSpeed: cfg.Player.MaxSpeed,
	})
	engine.With(eb, world.Components.Thrusters, component.ThrusterComponent{
		Thrust:   cfg.Player.Thrust,
		TurnRate: cfg.Player.TurnRate,
	})
	engine.With(eb, world.Components.FuelTanks, component.FuelTankComponent{Max: cfg.Player.FuelMax})
	engine.With(eb, world.Components.Credits, component.CreditsComponent{})
	engine.With(eb, world.Components.Holdings, component.NewHolding())
	engine.With(eb, world.Components.Weapons, component.WeaponComponent{
		Cooldown: core.NewTimer(cfg.Weapon.Cooldown.Duration, core.TimerRepeating),
		Damage:   cfg.Weapon.Damage,
		Speed:    cfg.Weapon.Speed,
		Range:    cfg.Weapon.Range,
		Offset:   cfg.Weapon.Offset,
		Piercing: cfg.Weapon.Piercing,
	})
	return eb.Build()
}

// SpawnCamera stages the camera at the origin
func SpawnCamera(world *engine.World) core.Entity {
	eb := world.NewEntity()
	engine.With(eb, world.Components.Cameras, component.CameraComponent{})
	engine.With(eb, world.Components.Transforms, component.TransformComponent{})
	return eb.Build()
}

// ResetPlayer returns the ship to the origin with an empty tank and no motion
// Credits, holdings and heading are kept
func ResetPlayer(world *engine.World, player core.Entity) {
	world.Components.Transforms.Update(player, func(t *component.TransformComponent) {
		t.Pos = mgl64.Vec2{}
	})
	world.Components.Motions.Update(player, func(m *component.MotionComponent) {
		m.Vel = mgl64.Vec2{}
		m.Accel = mgl64.Vec2{}
		m.AngularVel = 0
	})
	world.Components.FuelTanks.Update(player, func(f *component.FuelTankComponent) {
		f.Current = 0
	})
}

// GenerateLevel stages the home planet, destinations and commodities of a new level
func GenerateLevel(world *engine.World) error {
	spawnHome(world)

	if err := spawnDestinations(world); err != nil {
		return fmt.Errorf("level destinations: %w", err)
	}
	if err := spawnCommodities(world); err != nil {
		return fmt.Errorf("level commodities: %w", err)
	}
	return nil
}

func spawnHome(world *engine.World) {
	eb := world.NewEntity()
	engine.With(eb, world.Components.Transforms, component.TransformComponent{Layer: parameter.LayerObject})
	engine.With(eb, world.Components.Planets, component.PlanetComponent{Radius: parameter.HomePlanetRadius})
	engine.With(eb, world.Components.Resettables, component.ResettableComponent{})
	home := eb.Build()

	SpawnIndicator(world, home, component.RevealableComponent{Style: component.IndicatorHome, Label: "Home"})
}

func spawnDestinations(world *engine.World) error {
	cfg := world.Resources.Config.Level
	rng := world.Resources.RNG

	angles, err := vmath.RandomCircularDistribution(rng, cfg.DestinationCount, cfg.MinSeparationDeg, 360)
	if err != nil {
		return err
	}

	for i, deg := range angles {
		label := string(rune('A' + i))
		dist := vmath.UniformRange(rng, cfg.DestinationMin, cfg.DestinationMax)
		pos := vmath.FromAngle(deg * math.Pi / 180).Mul(dist)

		eb := world.NewEntity()
		engine.With(eb, world.Components.Transforms, component.TransformComponent{Pos: pos, Layer: parameter.LayerObject})
		engine.With(eb, world.Components.Destinations, component.DestinationComponent{
			Label:  label,
			Prices: RandomPriceSheet(rng),
		})
		engine.With(eb, world.Components.Planets, component.PlanetComponent{Radius: parameter.LevelDestinationRadius})
		engine.With(eb, world.Components.Revealables, component.RevealableComponent{
			Style: component.IndicatorDestination,
			Label: label,
		})
		engine.With(eb, world.Components.Resettables, component.ResettableComponent{})
		e := eb.Build()

		world.Resources.Scanner.Destinations = append(world.Resources.Scanner.Destinations, e)
	}
	return nil
}

func spawnCommodities(world *engine.World) error {
	cfg := world.Resources.Config.Level
	rng := world.Resources.RNG

	amounts, err := vmath.RandomSubdivisions(rng, cfg.CommodityCount, cfg.CommodityTotal, cfg.CommodityMinAmount)
	if err != nil {
		return err
	}
	angles, err := vmath.RandomCircularDistribution(rng, cfg.CommodityCount, cfg.MinSeparationDeg, 360)
	if err != nil {
		return err
	}
	kinds := rng.Perm(int(component.CommodityKindCount))

	for i, amount := range amounts {
		kind := component.CommodityKind(kinds[i])
		dist := vmath.UniformRange(rng, cfg.CommodityMinDistance, cfg.CommodityMaxDistance)
		pos := vmath.FromAngle(angles[i] * math.Pi / 180).Mul(dist)

		eb := world.NewEntity()
		engine.With(eb, world.Components.Transforms, component.TransformComponent{Pos: pos, Layer: parameter.LayerObject})
		engine.With(eb, world.Components.Commodities, component.CommodityComponent{Kind: kind, Amount: amount})
		engine.With(eb, world.Components.Revealables, component.RevealableComponent{
			Style: component.IndicatorCommodity,
			Label: kind.String(),
		})
		engine.With(eb, world.Components.Resettables, component.ResettableComponent{})
		e := eb.Build()

		world.Resources.Scanner.Commodities = append(world.Resources.Scanner.Commodities, e)
	}
	return nil
}

// RandomPriceSheet lists two or three distinct kinds with multipliers 1 ± k/10, k in 1..5
func RandomPriceSheet(rng *rand.Rand) component.PriceSheet {
	n := parameter.PriceSheetMinEntries + rng.IntN(parameter.PriceSheetMaxEntries-parameter.PriceSheetMinEntries+1)
	kinds := rng.Perm(int(component.CommodityKindCount))[:n]

	sheet := component.PriceSheet{Entries: make([]component.PriceEntry, n)}
	for i, k := range kinds {
		step := float64(1+rng.IntN(parameter.PriceSheetMaxSteps)) / 10
		if rng.IntN(2) == 0 {
			step = -step
		}
		sheet.Entries[i] = component.PriceEntry{
			Kind:       component.CommodityKind(k),
			Multiplier: 1 + step,
		}
	}
	return sheet
}

// SpawnIndicator stages an off-screen pointer to target
func SpawnIndicator(world *engine.World, target core.Entity, r component.RevealableComponent) core.Entity {
	eb := world.NewEntity()
	engine.With(eb, world.Components.Indicators, component.IndicatorComponent{
		Target: target,
		Style:  r.Style,
		Label:  r.Label,
	})
	engine.With(eb, world.Components.Transforms, component.TransformComponent{Layer: parameter.LayerIndicator})
	engine.With(eb, world.Components.Resettables, component.ResettableComponent{})
	return eb.Build()
}
