package engine

import (
	"github.com/lixenwraith/warpdrift/component"
)

// ComponentStore provides cached pointers to typed component stores
// Systems copy it once at construction to avoid runtime lookup
type ComponentStore struct {
	// Spatial
	Transforms *Store[component.TransformComponent]
	Motions    *Store[component.MotionComponent]
	Thrusters  *Store[component.ThrusterComponent]
	Indexables *Store[component.IndexableComponent]

	// Combat
	Healths     *Store[component.HealthComponent]
	Weapons     *Store[component.WeaponComponent]
	Projectiles *Store[component.ProjectileComponent]
	Enemies     *Store[component.EnemyComponent]

	// Economy
	FuelTanks    *Store[component.FuelTankComponent]
	Credits      *Store[component.CreditsComponent]
	Holdings     *Store[component.HoldingComponent]
	Commodities  *Store[component.CommodityComponent]
	Destinations *Store[component.DestinationComponent]
	FuelPellets  *Store[component.FuelPelletComponent]

	// Presentation
	Revealables *Store[component.RevealableComponent]
	Indicators  *Store[component.IndicatorComponent]
	Overlays    *Store[component.OverlayComponent]
	Planets     *Store[component.PlanetComponent]

	// Roles and lifecycle
	Players     *Store[component.PlayerComponent]
	Cameras     *Store[component.CameraComponent]
	Resettables *Store[component.ResettableComponent]
}

// newComponentStore allocates every store and returns them as a type-erased list for lifecycle use
func newComponentStore() (ComponentStore, []AnyStore) {
	cs := ComponentStore{
		Transforms: NewStore[component.TransformComponent](),
		Motions:    NewStore[component.MotionComponent](),
		Thrusters:  NewStore[component.ThrusterComponent](),
		Indexables: NewStore[component.IndexableComponent](),

		Healths:     NewStore[component.HealthComponent](),
		Weapons:     NewStore[component.WeaponComponent](),
		Projectiles: NewStore[component.ProjectileComponent](),
		Enemies:     NewStore[component.EnemyComponent](),

		FuelTanks:    NewStore[component.FuelTankComponent](),
		Credits:      NewStore[component.CreditsComponent](),
		Holdings:     NewStore[component.HoldingComponent](),
		Commodities:  NewStore[component.CommodityComponent](),
		Destinations: NewStore[component.DestinationComponent](),
		FuelPellets:  NewStore[component.FuelPelletComponent](),

		Revealables: NewStore[component.RevealableComponent](),
		Indicators:  NewStore[component.IndicatorComponent](),
		Overlays:    NewStore[component.OverlayComponent](),
		Planets:     NewStore[component.PlanetComponent](),

		Players:     NewStore[component.PlayerComponent](),
		Cameras:     NewStore[component.CameraComponent](),
		Resettables: NewStore[component.ResettableComponent](),
	}

	all := []AnyStore{
		cs.Transforms, cs.Motions, cs.Thrusters, cs.Indexables,
		cs.Healths, cs.Weapons, cs.Projectiles, cs.Enemies,
		cs.FuelTanks, cs.Credits, cs.Holdings, cs.Commodities, cs.Destinations, cs.FuelPellets,
		cs.Revealables, cs.Indicators, cs.Overlays, cs.Planets,
		cs.Players, cs.Cameras, cs.Resettables,
	}
	return cs, all
}
