package engine

import (
	"sort"

	"github.com/lixenwraith/brickbreaker/core"
)

// World contains all entities and their components using typed stores
// Single-threaded: systems run sequentially from Update, structural changes are deferred to Maintain
type World struct {
	// Global ResourceStore
	Resources *ResourceStore

	// Typed stores, also registered in stores for lifecycle operations
	Components ComponentStore
	stores     []AnyStore

	// Entity allocator, index is the entity ID, slot 0 is never used
	generations []uint32
	alive       []bool
	free        []uint32
	live        int

	// Deferred structural changes, applied in Maintain
	pendingInserts []func()
	pendingDeletes []core.Entity
	deleting       map[core.Entity]struct{}

	systems []System
}

// NewWorld creates a world with every component store registered
func NewWorld() *World {
	w := &World{
		Resources:   NewResourceStore(),
		generations: []uint32{0},
		alive:       []bool{false},
		deleting:    make(map[core.Entity]struct{}),
	}
	initComponentStores(w)
	return w
}

// registerStore adds a store to lifecycle management
func (w *World) registerStore(s AnyStore) {
	w.stores = append(w.stores, s)
}

// CreateEntity reserves a live entity immediately
// Components for it are usually inserted through Defer or LazyInsert
func (w *World) CreateEntity() core.Entity {
	var id uint32
	if n := len(w.free); n > 0 {
		id = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		id = uint32(len(w.generations))
		w.generations = append(w.generations, 0)
		w.alive = append(w.alive, false)
	}
	w.generations[id]++
	w.alive[id] = true
	w.live++
	return core.Entity{ID: id, Gen: w.generations[id]}
}

// Alive reports whether e refers to a current, undeleted entity
// Entities pending deletion are still alive until Maintain
func (w *World) Alive(e core.Entity) bool {
	if e.ID == 0 || int(e.ID) >= len(w.generations) {
		return false
	}
	return w.alive[e.ID] && w.generations[e.ID] == e.Gen
}

// Defer queues fn to run at the next Maintain, in queue order
func (w *World) Defer(fn func()) {
	w.pendingInserts = append(w.pendingInserts, fn)
}

// LazyInsert queues a component insertion committed at the next Maintain
// Dropped if the entity no longer exists by then
func LazyInsert[T any](w *World, s *Store[T], e core.Entity, val T) {
	w.Defer(func() {
		if w.Alive(e) {
			s.Insert(e, val)
		}
	})
}

// Delete queues e for removal at the next Maintain
func (w *World) Delete(e core.Entity) {
	if !w.Alive(e) {
		return
	}
	if _, ok := w.deleting[e]; ok {
		return
	}
	w.deleting[e] = struct{}{}
	w.pendingDeletes = append(w.pendingDeletes, e)
}

// Deleting reports whether e is queued for removal this tick
func (w *World) Deleting(e core.Entity) bool {
	_, ok := w.deleting[e]
	return ok
}

// DeleteAll queues every live entity for removal
func (w *World) DeleteAll() {
	for id := 1; id < len(w.alive); id++ {
		if w.alive[id] {
			w.Delete(core.Entity{ID: uint32(id), Gen: w.generations[id]})
		}
	}
}

// Maintain commits deferred work: queued inserts first, then deletions
// Deleted entities lose every component (logging removals) and their ID slot is recycled with a new generation
func (w *World) Maintain() {
	// Inserts may queue further inserts, drain until stable
	for len(w.pendingInserts) > 0 {
		pending := w.pendingInserts
		w.pendingInserts = nil
		for _, fn := range pending {
			fn()
		}
	}

	for _, e := range w.pendingDeletes {
		w.destroy(e)
	}
	w.pendingDeletes = w.pendingDeletes[:0]
	clear(w.deleting)
}

func (w *World) destroy(e core.Entity) {
	if !w.Alive(e) {
		return
	}
	for _, s := range w.stores {
		s.RemoveComponent(e)
	}
	w.alive[e.ID] = false
	w.free = append(w.free, e.ID)
	w.live--
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return w.live
}

// RotateChanges compacts every store change log
func (w *World) RotateChanges() {
	for _, s := range w.stores {
		s.RotateChanges()
	}
}

// AddSystem adds a system to the world, keeping execution order by priority
// Systems with equal priority keep registration order
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns a copy of all registered systems in execution order
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update runs all systems sequentially
func (w *World) Update() {
	for _, system := range w.systems {
		system.Update()
	}
}
