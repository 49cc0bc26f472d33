package engine

import (
	"github.com/lixenwraith/warpdrift/core"
)

// AnyStore provides type-erased operations for lifecycle management
// World uses it to destroy entities and run queries without knowing the concrete type
type AnyStore interface {
	// Remove deletes a component from an entity
	Remove(e core.Entity)

	// RemoveBatch deletes components from many entities in one pass
	RemoveBatch(entities []core.Entity)

	// Has checks if an entity has this component
	Has(e core.Entity) bool

	// Count returns the number of entities with this component
	Count() int

	// All returns entities that have this component type
	All() []core.Entity

	// Clear removes all components from this store
	Clear()
}
