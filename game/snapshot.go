package game

import (
	"cmp"
	"slices"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/warpdrift/component"
	"github.com/lixenwraith/warpdrift/core"
	"github.com/lixenwraith/warpdrift/engine"
	"github.com/lixenwraith/warpdrift/vmath"
)

// SpriteKind selects how a renderer draws an entity
type SpriteKind uint8

const (
	SpriteShip SpriteKind = iota
	SpriteEnemy
	SpriteProjectile
	SpritePellet
	SpriteCommodity
	SpriteDestination
	SpritePlanet
	SpriteIndicator
)

func (k SpriteKind) String() string {
	switch k {
	case SpriteShip:
		return "ship"
	case SpriteEnemy:
		return "enemy"
	case SpriteProjectile:
		return "projectile"
	case SpritePellet:
		return "pellet"
	case SpriteCommodity:
		return "commodity"
	case SpriteDestination:
		return "destination"
	case SpritePlanet:
		return "planet"
	case SpriteIndicator:
		return "indicator"
	default:
		return "unknown"
	}
}

// Sprite is one drawable entity in world coordinates
type Sprite struct {
	Entity core.Entity
	Kind   SpriteKind
	Pos    mgl64.Vec2
	Angle  float64
	Layer  float64
	Label  string

	Visible   bool
	Thrusting bool

	// Indicator only
	Style    component.IndicatorStyle
	Distance float64
	Edge     vmath.Edge
}

// RenderSnapshot is everything a renderer needs for one frame, sprites ordered by layer
type RenderSnapshot struct {
	Camera    mgl64.Vec2
	Entities  []Sprite
	Overlay   float64
	Starfield mgl64.Vec2
	Viewport  mgl64.Vec2 // Half extents in world units
}

// Snapshot copies the drawable state out of the world
func (g *Game) Snapshot() RenderSnapshot {
	w := g.world
	snap := RenderSnapshot{
		Starfield: w.Resources.Starfield.Offset,
		Viewport:  mgl64.Vec2{w.Resources.Config.Viewport.HalfWidth, w.Resources.Config.Viewport.HalfHeight},
	}
	if camera, err := w.Camera(); err == nil {
		t, _ := w.Components.Transforms.Get(camera)
		snap.Camera = t.Pos
	}

	for _, e := range w.Components.Transforms.All() {
		t, _ := w.Components.Transforms.Get(e)

		if w.Components.Overlays.Has(e) {
			o, _ := w.Components.Overlays.Get(e)
			snap.Overlay = o.Opacity
			continue
		}

		sp, ok := sprite(w, e)
		if !ok {
			continue
		}
		sp.Entity = e
		sp.Layer = t.Layer
		if sp.Kind != SpriteIndicator {
			sp.Pos = t.Pos
			sp.Angle = t.Angle
			sp.Visible = true
		}
		snap.Entities = append(snap.Entities, sp)
	}

	slices.SortStableFunc(snap.Entities, func(a, b Sprite) int {
		return cmp.Compare(a.Layer, b.Layer)
	})
	return snap
}

// sprite classifies an entity, ok is false for entities with nothing to draw
func sprite(w *engine.World, e core.Entity) (Sprite, bool) {
	c := w.Components
	switch {
	case c.Players.Has(e):
		th, _ := c.Thrusters.Get(e)
		return Sprite{Kind: SpriteShip, Thrusting: th.Status != component.ThrusterIdle}, true
	case c.Enemies.Has(e):
		return Sprite{Kind: SpriteEnemy}, true
	case c.Projectiles.Has(e):
		return Sprite{Kind: SpriteProjectile}, true
	case c.FuelPellets.Has(e):
		return Sprite{Kind: SpritePellet}, true
	case c.Commodities.Has(e):
		cm, _ := c.Commodities.Get(e)
		return Sprite{Kind: SpriteCommodity, Label: cm.Kind.String()}, true
	case c.Destinations.Has(e):
		d, _ := c.Destinations.Get(e)
		return Sprite{Kind: SpriteDestination, Label: d.Label}, true
	case c.Planets.Has(e):
		return Sprite{Kind: SpritePlanet}, true
	case c.Indicators.Has(e):
		ind, _ := c.Indicators.Get(e)
		return Sprite{
			Kind:     SpriteIndicator,
			Pos:      ind.Pos,
			Angle:    ind.Angle,
			Label:    ind.Label,
			Visible:  ind.Visible,
			Style:    ind.Style,
			Distance: ind.Distance,
			Edge:     ind.Edge,
		}, true
	}
	return Sprite{}, false
}
