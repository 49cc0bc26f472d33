package engine

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/lixenwraith/warpdrift/component"
	"github.com/lixenwraith/warpdrift/config"
	"github.com/lixenwraith/warpdrift/core"
	"github.com/lixenwraith/warpdrift/event"
)

// ErrMissingSingleton is returned when a role expected exactly once (player, camera) has no entity
var ErrMissingSingleton = errors.New("engine: missing singleton entity")

// World contains all entities and their components using typed stores
// A World is confined to one goroutine; Store locks only guard snapshot readers
type World struct {
	nextEntityID core.Entity

	Components ComponentStore
	Resources  *Resources

	stores  []AnyStore
	systems []System

	events *event.EventQueue
	router *EventRouter

	// Deferred structural changes applied by Flush
	pending    []*EntityBuilder
	destroy    []core.Entity
	destroySet map[core.Entity]struct{}
}

// NewWorld creates an empty world with resources derived from cfg
func NewWorld(cfg *config.Config, seed uint64) *World {
	components, stores := newComponentStore()
	queue := event.NewEventQueue()

	return &World{
		nextEntityID: 1,
		Components:   components,
		Resources:    NewResources(cfg, seed),
		stores:       stores,
		events:       queue,
		router:       NewEventRouter(queue),
		destroySet:   make(map[core.Entity]struct{}),
	}
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// QueueDestroy schedules removal of all of e's components at the next Flush
// Repeated requests for the same entity are collapsed
func (w *World) QueueDestroy(e core.Entity) {
	if _, queued := w.destroySet[e]; queued {
		return
	}
	w.destroySet[e] = struct{}{}
	w.destroy = append(w.destroy, e)
}

// IsQueuedForDestroy reports whether e will be removed at the next Flush
func (w *World) IsQueuedForDestroy(e core.Entity) bool {
	_, queued := w.destroySet[e]
	return queued
}

// Flush commits staged entities in Build order, then applies queued destruction
func (w *World) Flush() {
	if len(w.pending) > 0 {
		pending := w.pending
		w.pending = nil
		for _, eb := range pending {
			eb.commit()
		}
	}

	if len(w.destroy) > 0 {
		for _, s := range w.stores {
			s.RemoveBatch(w.destroy)
		}
		w.destroy = w.destroy[:0]
		clear(w.destroySet)
	}
}

// PendingCount returns how many staged entities will add a component to store
func (w *World) PendingCount(store AnyStore) int {
	n := 0
	for _, eb := range w.pending {
		if slices.Contains(eb.stores, store) {
			n++
		}
	}
	return n
}

// Alive reports whether e holds any component
func (w *World) Alive(e core.Entity) bool {
	for _, s := range w.stores {
		if s.Has(e) {
			return true
		}
	}
	return false
}

// Clear removes all entities, staged changes and queued events
func (w *World) Clear() {
	for _, s := range w.stores {
		s.Clear()
	}
	w.pending = nil
	w.destroy = w.destroy[:0]
	clear(w.destroySet)
	w.events.Clear()
	w.Resources.Spatial.Clear()
}

// AddSystem adds a system, keeps the list ordered by priority and registers event handlers
// Systems with equal priority run in registration order
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
	slices.SortStableFunc(w.systems, func(a, b System) int {
		return a.Priority() - b.Priority()
	})

	if h, ok := system.(EventHandler); ok {
		w.router.Register(h)
	}
}

// Systems returns a copy of all registered systems in execution order
func (w *World) Systems() []System {
	return slices.Clone(w.systems)
}

// Tick advances the simulation by dt
//
// Order:
//  1. time and input resources
//  2. dispatch of events emitted during the previous tick
//  3. flush of changes made by handlers
//  4. systems in priority order
//  5. flush of changes made by systems
func (w *World) Tick(dt time.Duration, intent core.Intent) {
	frame := w.Resources.Time.Frame + 1
	w.Resources.Time.advance(dt, frame)
	w.Resources.Input.Intent = intent

	w.router.DispatchAll()
	w.Flush()

	for _, s := range w.systems {
		s.Update()
	}
	w.Flush()
}

// Frame returns the current tick count
func (w *World) Frame() int64 {
	return w.Resources.Time.Frame
}

// PushEvent emits a game event stamped with the current frame
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.events.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.Resources.Time.Frame,
	})
}

// DiscardEvents drops events of type t emitted this tick before they reach handlers
func (w *World) DiscardEvents(t event.EventType) int {
	return w.events.Discard(t)
}

// Player returns the player entity
func (w *World) Player() (core.Entity, error) {
	if e, ok := w.Components.Players.First(); ok {
		return e, nil
	}
	return core.NoEntity, fmt.Errorf("%w: player", ErrMissingSingleton)
}

// Camera returns the camera entity
func (w *World) Camera() (core.Entity, error) {
	if e, ok := w.Components.Cameras.First(); ok {
		return e, nil
	}
	return core.NoEntity, fmt.Errorf("%w: camera", ErrMissingSingleton)
}

// PlayerTransform returns the player entity with its transform
func (w *World) PlayerTransform() (core.Entity, component.TransformComponent, error) {
	e, err := w.Player()
	if err != nil {
		return core.NoEntity, component.TransformComponent{}, err
	}
	t, ok := w.Components.Transforms.Get(e)
	if !ok {
		return core.NoEntity, component.TransformComponent{}, fmt.Errorf("%w: player transform", ErrMissingSingleton)
	}
	return e, t, nil
}
