package status

import (
	"strings"
	"testing"
)

// TestRegistryCachedPointers verifies repeated Get returns the same metric
func TestRegistryCachedPointers(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get("enemy.count")
	b := r.Ints.Get("enemy.count")
	if a != b {
		t.Fatal("Expected cached pointer for the same key")
	}

	a.Add(3)
	if b.Load() != 3 {
		t.Errorf("Expected 3, got %d", b.Load())
	}
	if r.TotalCount() != 1 {
		t.Errorf("Expected 1 metric, got %d", r.TotalCount())
	}
}

func TestRegistrySummarySorted(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("travel.cycles").Store(2)
	r.Ints.Get("enemy.killed").Store(7)
	r.Floats.Get("spawn.period_s").Store(2.5)
	r.Strings.Get("session.id").Store("abc")

	got := r.Summary()
	want := "enemy.killed=7 travel.cycles=2 spawn.period_s=2.50 session.id=abc"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestAtomicFloatAdd(t *testing.T) {
	var f AtomicFloat
	f.Store(1.5)
	if v := f.Add(0.25); v != 1.75 {
		t.Errorf("Expected 1.75, got %f", v)
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	s.Store(strings.Repeat("x", MaxStringLen+5))
	if len(s.Load()) != MaxStringLen {
		t.Errorf("Expected length %d, got %d", MaxStringLen, len(s.Load()))
	}
}
