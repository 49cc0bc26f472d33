package engine

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/warpdrift/component"
)

// TestEntityBuilderDeferredCommit verifies components become visible only at Flush
func TestEntityBuilderDeferredCommit(t *testing.T) {
	w := NewTestWorld()

	builder := With(
		With(w.NewEntity(), w.Components.Transforms, component.TransformComponent{Pos: mgl64.Vec2{5, 10}}),
		w.Components.Enemies, component.EnemyComponent{},
	)
	reservedID := builder.Entity()
	e := builder.Build()

	if e == 0 {
		t.Error("Expected non-zero entity ID")
	}
	if reservedID != e {
		t.Errorf("Expected reserved ID %d to match final ID %d", reservedID, e)
	}
	if w.Components.Transforms.Has(e) {
		t.Error("Expected transform hidden before Flush")
	}
	if got := w.PendingCount(w.Components.Enemies); got != 1 {
		t.Errorf("Expected 1 pending enemy, got %d", got)
	}

	w.Flush()

	tr, ok := w.Components.Transforms.Get(e)
	if !ok {
		t.Fatal("Expected transform component to exist")
	}
	if tr.Pos != (mgl64.Vec2{5, 10}) {
		t.Errorf("Expected position (5, 10), got %v", tr.Pos)
	}
	if !w.Components.Enemies.Has(e) {
		t.Error("Expected enemy component on entity")
	}
	if got := w.PendingCount(w.Components.Enemies); got != 0 {
		t.Errorf("Expected 0 pending after Flush, got %d", got)
	}
}

// TestEntityBuilder_Panic_With verifies panic behavior
func TestEntityBuilder_Panic_With(t *testing.T) {
	w := NewTestWorld()

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when adding component to built entity")
		}
	}()

	builder := w.NewEntity()
	builder.Build()
	With(builder, w.Components.Enemies, component.EnemyComponent{})
}

// TestQueueDestroyDeduplicates verifies repeated destroy requests are collapsed and applied at Flush
func TestQueueDestroyDeduplicates(t *testing.T) {
	w := NewTestWorld()

	e := With(
		With(w.NewEntity(), w.Components.Transforms, component.TransformComponent{}),
		w.Components.Healths, component.HealthComponent{Current: 1, Max: 1},
	).Build()
	w.Flush()

	w.QueueDestroy(e)
	w.QueueDestroy(e)
	if !w.IsQueuedForDestroy(e) {
		t.Error("Expected entity queued for destroy")
	}
	if len(w.destroy) != 1 {
		t.Errorf("Expected 1 queued destroy, got %d", len(w.destroy))
	}
	if !w.Alive(e) {
		t.Error("Expected entity alive until Flush")
	}

	w.Flush()

	if w.Alive(e) {
		t.Error("Expected every component removed after Flush")
	}
	if w.IsQueuedForDestroy(e) {
		t.Error("Expected destroy set cleared after Flush")
	}
}

// TestFlushCreatesBeforeDestroys verifies an entity built and destroyed in one tick does not survive
func TestFlushCreatesBeforeDestroys(t *testing.T) {
	w := NewTestWorld()

	e := With(w.NewEntity(), w.Components.Enemies, component.EnemyComponent{}).Build()
	w.QueueDestroy(e)
	w.Flush()

	if w.Components.Enemies.Has(e) {
		t.Error("Expected entity created and destroyed within one flush to be gone")
	}
}

func TestSingletonLookup(t *testing.T) {
	w := NewTestWorld()

	if _, err := w.Player(); err == nil {
		t.Error("Expected error without player entity")
	}
	if _, _, err := w.PlayerTransform(); err == nil {
		t.Error("Expected error without player transform")
	}

	p := With(
		With(w.NewEntity(), w.Components.Players, component.PlayerComponent{}),
		w.Components.Transforms, component.TransformComponent{Pos: mgl64.Vec2{1, 2}},
	).Build()
	w.Flush()

	got, err := w.Player()
	if err != nil {
		t.Fatalf("Expected player, got %v", err)
	}
	if got != p {
		t.Errorf("Expected player %d, got %d", p, got)
	}
	if _, tr, err := w.PlayerTransform(); err != nil || tr.Pos != (mgl64.Vec2{1, 2}) {
		t.Errorf("Expected player transform at (1, 2), got %v err=%v", tr.Pos, err)
	}
}
