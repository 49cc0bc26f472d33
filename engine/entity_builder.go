package engine

import "github.com/lixenwraith/warpdrift/core"

// EntityBuilder provides a fluent, type-safe interface for constructing entities with components.
// It reserves an entity ID upfront and stages components; Build hands the entity to the world,
// which commits every component at the next Flush so no system observes a partial entity.
//
// Example usage:
//
//	e := With(With(world.NewEntity(), world.Components.Transforms, t), world.Components.Enemies, component.EnemyComponent{}).Build()
type EntityBuilder struct {
	world  *World
	entity core.Entity
	ops    []func()
	stores []AnyStore
	built  bool
}

// NewEntity creates a new EntityBuilder with a reserved entity ID
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{
		world:  w,
		entity: w.CreateEntity(),
	}
}

// With stages a component of type T on the entity being built
// Panics if called after Build()
func With[T any](eb *EntityBuilder, store *Store[T], comp T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	e := eb.entity
	eb.ops = append(eb.ops, func() { store.Set(e, comp) })
	eb.stores = append(eb.stores, store)
	return eb
}

// Entity returns the reserved ID before Build
func (eb *EntityBuilder) Entity() core.Entity {
	return eb.entity
}

// Build stages the entity for commit at the next World.Flush and returns its ID
func (eb *EntityBuilder) Build() core.Entity {
	if eb.built {
		panic("entity already built")
	}
	eb.built = true
	eb.world.pending = append(eb.world.pending, eb)
	return eb.entity
}

func (eb *EntityBuilder) commit() {
	for _, op := range eb.ops {
		op()
	}
	eb.ops = nil
}
