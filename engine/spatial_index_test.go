package engine

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/warpdrift/core"
)

func TestSpatialWithinOrdering(t *testing.T) {
	s := NewSpatialIndex(10)
	s.Insert(1, mgl64.Vec2{5, 0})
	s.Insert(2, mgl64.Vec2{-3, 0})
	s.Insert(3, mgl64.Vec2{0, 3}) // ties with 2, inserted later
	s.Insert(4, mgl64.Vec2{100, 100})

	got := s.Within(mgl64.Vec2{}, 6)
	want := []core.Entity{2, 3, 1}
	if len(got) != len(want) {
		t.Fatalf("Expected %d neighbors, got %d", len(want), len(got))
	}
	for i, n := range got {
		if n.Entity != want[i] {
			t.Errorf("Expected entity %d at %d, got %d", want[i], i, n.Entity)
		}
	}

	if got := s.Within(mgl64.Vec2{}, 5); len(got) != 3 {
		t.Errorf("Expected boundary point included, got %d neighbors", len(got))
	}
}

func TestSpatialNearest(t *testing.T) {
	s := NewSpatialIndex(10)
	s.Insert(1, mgl64.Vec2{0, 0})
	s.Insert(2, mgl64.Vec2{12, 0})
	s.Insert(3, mgl64.Vec2{-45, 0})
	s.Insert(4, mgl64.Vec2{200, 0})

	got := s.Nearest(mgl64.Vec2{1, 0}, 2)
	if len(got) != 2 || got[0].Entity != 1 || got[1].Entity != 2 {
		t.Fatalf("Expected [1 2], got %v", got)
	}

	// Only far entries, the ring search must still reach them
	got = s.Nearest(mgl64.Vec2{190, 0}, 1)
	if len(got) != 1 || got[0].Entity != 4 {
		t.Errorf("Expected [4], got %v", got)
	}

	if got := s.Nearest(mgl64.Vec2{}, 10); len(got) != 4 {
		t.Errorf("Expected all 4 entries when k exceeds size, got %d", len(got))
	}

	s.Clear()
	if s.Len() != 0 || s.Nearest(mgl64.Vec2{}, 1) != nil {
		t.Error("Expected empty index after Clear")
	}
}
