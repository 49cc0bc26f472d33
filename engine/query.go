package engine

import (
	"slices"

	"github.com/lixenwraith/warpdrift/core"
)

// QueryBuilder finds entities present in every given store
// The smallest store drives iteration so results follow its insertion order
type QueryBuilder struct {
	stores   []AnyStore
	executed bool
	results  []core.Entity
}

// Query creates a new QueryBuilder
//
// Example:
//
//	enemies := world.Query().
//	    With(world.Components.Enemies).
//	    With(world.Components.Transforms).
//	    Execute()
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{
		stores: make([]AnyStore, 0, 4),
	}
}

// With adds a component store to the query filter
// Panics if called after Execute()
func (qb *QueryBuilder) With(store AnyStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.stores = append(qb.stores, store)
	return qb
}

// Execute runs the query, repeated calls return the cached result
func (qb *QueryBuilder) Execute() []core.Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.stores) == 0 {
		qb.results = make([]core.Entity, 0)
		return qb.results
	}

	// Stable so equal-sized stores keep caller order
	slices.SortStableFunc(qb.stores, func(a, b AnyStore) int {
		return a.Count() - b.Count()
	})

	candidates := qb.stores[0].All()
	for _, store := range qb.stores[1:] {
		n := 0
		for _, e := range candidates {
			if store.Has(e) {
				candidates[n] = e
				n++
			}
		}
		candidates = candidates[:n]
		if n == 0 {
			break
		}
	}

	qb.results = candidates
	return qb.results
}
