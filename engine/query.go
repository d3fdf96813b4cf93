package engine

import (
	"sort"

	"github.com/lixenwraith/brickbreaker/core"
)

// QueryBuilder finds entities present in every given store
// Intersection starts from the smallest store; result order follows that store's iteration order
type QueryBuilder struct {
	stores []AnyStore
}

// Query creates a new QueryBuilder
//
// Example:
//
//	balls := w.Query().
//	    With(w.Components.Ball).
//	    With(w.Components.Transform).
//	    Execute()
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{stores: make([]AnyStore, 0, 4)}
}

// With adds a component store to the query filter
func (qb *QueryBuilder) With(store AnyStore) *QueryBuilder {
	qb.stores = append(qb.stores, store)
	return qb
}

// Execute returns all entities that have components in all specified stores
func (qb *QueryBuilder) Execute() []core.Entity {
	if len(qb.stores) == 0 {
		return nil
	}

	sort.SliceStable(qb.stores, func(i, j int) bool {
		return qb.stores[i].CountEntity() < qb.stores[j].CountEntity()
	})

	candidates := qb.stores[0].AllEntity()
	for _, store := range qb.stores[1:] {
		filtered := candidates[:0]
		for _, e := range candidates {
			if store.HasComponent(e) {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered
		if len(candidates) == 0 {
			break
		}
	}
	return candidates
}
