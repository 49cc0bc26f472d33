package engine

import (
	"slices"
	"testing"

	"github.com/lixenwraith/warpdrift/core"
)

func TestStoreOrderPreserved(t *testing.T) {
	s := NewStore[int]()
	for i := core.Entity(1); i <= 5; i++ {
		s.Set(i, int(i)*10)
	}
	s.Set(3, 99) // update keeps position

	s.Remove(2)
	if got := s.All(); !slices.Equal(got, []core.Entity{1, 3, 4, 5}) {
		t.Errorf("Expected order [1 3 4 5], got %v", got)
	}

	s.RemoveBatch([]core.Entity{1, 5, 42})
	if got := s.All(); !slices.Equal(got, []core.Entity{3, 4}) {
		t.Errorf("Expected order [3 4], got %v", got)
	}

	if v, _ := s.Get(3); v != 99 {
		t.Errorf("Expected updated value 99, got %d", v)
	}
	if first, ok := s.First(); !ok || first != 3 {
		t.Errorf("Expected first entity 3, got %d", first)
	}
}

func TestStoreUpdate(t *testing.T) {
	s := NewStore[int]()
	s.Set(1, 1)

	if !s.Update(1, func(v *int) { *v += 4 }) {
		t.Error("Expected update on present entity")
	}
	if v, _ := s.Get(1); v != 5 {
		t.Errorf("Expected 5, got %d", v)
	}
	if s.Update(2, func(v *int) { *v = 7 }) {
		t.Error("Expected update on absent entity to report false")
	}
	if s.Has(2) {
		t.Error("Expected update not to insert")
	}
}
