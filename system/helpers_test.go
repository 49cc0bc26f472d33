package system

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/warpdrift/component"
	"github.com/lixenwraith/warpdrift/core"
	"github.com/lixenwraith/warpdrift/engine"
)

// newTestWorld creates a world holding a committed player and camera at the origin
func newTestWorld(t *testing.T) (*engine.World, core.Entity) {
	t.Helper()
	w := engine.NewTestWorld()
	player := SpawnPlayer(w)
	SpawnCamera(w)
	w.Flush()
	return w, player
}

// tick advances the world once with no input
func tick(w *engine.World, dt time.Duration) {
	w.Tick(dt, core.Intent{})
}

func addEnemy(w *engine.World, pos mgl64.Vec2) core.Entity {
	e := SpawnEnemy(w, pos)
	w.Flush()
	return e
}

func setPos(w *engine.World, e core.Entity, pos mgl64.Vec2) {
	w.Components.Transforms.Update(e, func(t *component.TransformComponent) {
		t.Pos = pos
	})
}

func pos(w *engine.World, e core.Entity) mgl64.Vec2 {
	t, _ := w.Components.Transforms.Get(e)
	return t.Pos
}

func nearVec(a, b mgl64.Vec2) bool {
	return math.Abs(a.X()-b.X()) < 1e-6 && math.Abs(a.Y()-b.Y()) < 1e-6
}
