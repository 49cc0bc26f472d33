package event

import (
	"sync"
	"testing"
)

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	q.Push(GameEvent{Type: EventProjectileFired, Frame: 1})
	q.Push(GameEvent{Type: EventEnemyKilled, Frame: 1})
	q.Push(GameEvent{Type: EventPickupSpawnRequest, Frame: 2})

	if q.Len() != 3 {
		t.Fatalf("Expected 3 pending, got %d", q.Len())
	}

	got := q.Consume()
	want := []EventType{EventProjectileFired, EventEnemyKilled, EventPickupSpawnRequest}
	for i, ev := range got {
		if ev.Type != want[i] {
			t.Errorf("Expected %v at %d, got %v", want[i], i, ev.Type)
		}
	}

	if q.Consume() != nil {
		t.Error("Expected nil after draining")
	}
}

// TestQueueConsumeDetaches verifies pushes after Consume don't alias the returned slice
func TestQueueConsumeDetaches(t *testing.T) {
	q := NewEventQueue()
	q.Push(GameEvent{Type: EventFuelCollected})
	first := q.Consume()
	q.Push(GameEvent{Type: EventTargetRevealed})

	if first[0].Type != EventFuelCollected {
		t.Errorf("Expected consumed slice untouched, got %v", first[0].Type)
	}
}

// TestQueueDiscard verifies only the named type is dropped and the rest keep their order
func TestQueueDiscard(t *testing.T) {
	q := NewEventQueue()
	q.Push(GameEvent{Type: EventPickupSpawnRequest, Frame: 1})
	q.Push(GameEvent{Type: EventEnemyKilled, Frame: 1})
	q.Push(GameEvent{Type: EventPickupSpawnRequest, Frame: 2})
	q.Push(GameEvent{Type: EventFuelCollected, Frame: 2})

	if n := q.Discard(EventPickupSpawnRequest); n != 2 {
		t.Fatalf("Expected 2 dropped, got %d", n)
	}
	if n := q.Discard(EventPickupSpawnRequest); n != 0 {
		t.Errorf("Expected nothing left to drop, got %d", n)
	}

	got := q.Consume()
	if len(got) != 2 || got[0].Type != EventEnemyKilled || got[1].Type != EventFuelCollected {
		t.Errorf("Expected [EnemyKilled FuelCollected], got %v", got)
	}
}

func TestQueueConcurrentPush(t *testing.T) {
	q := NewEventQueue()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				q.Push(GameEvent{Type: EventProjectileHit})
			}
		}()
	}
	wg.Wait()

	if n := len(q.Consume()); n != 800 {
		t.Errorf("Expected 800 events, got %d", n)
	}
}

func TestEventTypeString(t *testing.T) {
	if EventWarpArrived.String() != "WarpArrived" {
		t.Errorf("Expected WarpArrived, got %s", EventWarpArrived.String())
	}
	if EventType(999).String() != "Unknown" {
		t.Error("Expected Unknown for out-of-range type")
	}
}
