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

// WeaponSystem ticks weapon cooldowns and fires a projectile along the hull facing on every completion
// Weapons hold fire while warping
type WeaponSystem struct {
	world *engine.World

	statFired *atomic.Int64
}

// NewWeaponSystem creates a new weapon system
func NewWeaponSystem(world *engine.World) engine.System {
	s := &WeaponSystem{
		world:     world,
		statFired: world.Resources.Status.Ints.Get("weapon.fired"),
	}
	s.Init()
	return s
}

func (s *WeaponSystem) Init() {
	s.statFired.Store(0)
}

func (s *WeaponSystem) Name() string {
	return "weapon"
}

func (s *WeaponSystem) Priority() int {
	return parameter.PriorityWeapon
}

func (s *WeaponSystem) Update() {
	if s.world.Resources.Travel.Mode != core.ModeExploring {
		return
	}

	dt := s.world.Resources.Time.Delta
	for _, e := range s.world.Components.Weapons.All() {
		t, ok := s.world.Components.Transforms.Get(e)
		if !ok {
			continue
		}

		var (
			fire   bool
			weapon component.WeaponComponent
		)
		s.world.Components.Weapons.Update(e, func(w *component.WeaponComponent) {
			w.Cooldown.Tick(dt)
			fire = w.Cooldown.JustFinished()
			weapon = *w
		})

		if fire {
			s.fire(e, t, weapon)
		}
	}
}

func (s *WeaponSystem) fire(owner core.Entity, t component.TransformComponent, w component.WeaponComponent) {
	origin := t.Pos.Add(vmath.Rotate(mgl64.Vec2{w.Offset, 0}, t.Angle))
	vel := vmath.FromAngle(t.Angle).Mul(w.Speed)

	eb := s.world.NewEntity()
	engine.With(eb, s.world.Components.Transforms, component.TransformComponent{
		Pos:   origin,
		Layer: parameter.LayerObject,
		Angle: t.Angle,
	})
	engine.With(eb, s.world.Components.Motions, component.MotionComponent{
		Vel:      vel,
		Rotation: t.Angle,
		MaxSpeed: w.Speed,
	})
	engine.With(eb, s.world.Components.Projectiles, component.ProjectileComponent{
		Owner:    owner,
		Origin:   origin,
		Range:    w.Range,
		Damage:   w.Damage,
		Piercing: w.Piercing,
	})
	engine.With(eb, s.world.Components.Resettables, component.ResettableComponent{})
	projectile := eb.Build()

	s.statFired.Add(1)
	s.world.PushEvent(event.EventProjectileFired, &event.ProjectileFiredPayload{
		Owner:      owner,
		Projectile: projectile,
		Location:   origin,
	})
}
