package engine

import (
	"github.com/lixenwraith/brickbreaker/core"
	"github.com/lixenwraith/brickbreaker/event"
	"github.com/lixenwraith/brickbreaker/parameter"
)

// Store is a generic container for a specific component type T
// Uses sparse set pattern: dense value/entity slices indexed by a map, iteration order is insertion order with swap-remove
// Every gameplay mutation is appended to a change log readers consume through their own cursor
type Store[T any] struct {
	index    map[core.Entity]int
	entities []core.Entity
	values   []T
	changes  *event.Channel[event.ComponentChange]
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		index:    make(map[core.Entity]int),
		entities: make([]core.Entity, 0, 64),
		values:   make([]T, 0, 64),
		changes:  event.NewChannel[event.ComponentChange](parameter.ChangeLogCapacity),
	}
}

// Insert adds or replaces the component for e and logs an insertion
// Replacing counts as a fresh insertion, consumers treat it as a new component
func (s *Store[T]) Insert(e core.Entity, val T) {
	if i, ok := s.index[e]; ok {
		s.values[i] = val
	} else {
		s.index[e] = len(s.values)
		s.entities = append(s.entities, e)
		s.values = append(s.values, val)
	}
	s.changes.Write(event.ComponentChange{Kind: event.ComponentInserted, Entity: e})
}

// Get returns a copy of the component for e
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	if i, ok := s.index[e]; ok {
		return s.values[i], true
	}
	var zero T
	return zero, false
}

// Has checks if entity has this component
func (s *Store[T]) Has(e core.Entity) bool {
	_, ok := s.index[e]
	return ok
}

// Set overwrites an existing component and logs a modification
// Returns false without logging if e has no component
func (s *Store[T]) Set(e core.Entity, val T) bool {
	i, ok := s.index[e]
	if !ok {
		return false
	}
	s.values[i] = val
	s.changes.Write(event.ComponentChange{Kind: event.ComponentModified, Entity: e})
	return true
}

// Mutate applies fn to the stored component in place and logs a modification
// fn must not insert into or remove from this store
func (s *Store[T]) Mutate(e core.Entity, fn func(*T)) bool {
	i, ok := s.index[e]
	if !ok {
		return false
	}
	fn(&s.values[i])
	s.changes.Write(event.ComponentChange{Kind: event.ComponentModified, Entity: e})
	return true
}

// SetUnflagged overwrites an existing component without logging
// Reserved for write-back of externally simulated state; gameplay code uses Set or Mutate
func (s *Store[T]) SetUnflagged(e core.Entity, val T) bool {
	i, ok := s.index[e]
	if !ok {
		return false
	}
	s.values[i] = val
	return true
}

// Remove deletes the component for e and logs a removal
func (s *Store[T]) Remove(e core.Entity) bool {
	i, ok := s.index[e]
	if !ok {
		return false
	}
	last := len(s.values) - 1
	if i != last {
		s.values[i] = s.values[last]
		s.entities[i] = s.entities[last]
		s.index[s.entities[i]] = i
	}
	var zero T
	s.values[last] = zero
	s.values = s.values[:last]
	s.entities = s.entities[:last]
	delete(s.index, e)
	s.changes.Write(event.ComponentChange{Kind: event.ComponentRemoved, Entity: e})
	return true
}

// All returns a snapshot of entities with this component, safe to iterate while mutating
func (s *Store[T]) All() []core.Entity {
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Count returns number of entities with this component
func (s *Store[T]) Count() int {
	return len(s.entities)
}

// Changes returns the store's change log
// Register readers before the first tick, earlier entries are not replayed
func (s *Store[T]) Changes() *event.Channel[event.ComponentChange] {
	return s.changes
}

// Clear removes every component, logging a removal for each
func (s *Store[T]) Clear() {
	for len(s.entities) > 0 {
		s.Remove(s.entities[len(s.entities)-1])
	}
}

// AnyStore implementation

func (s *Store[T]) RemoveComponent(e core.Entity) { s.Remove(e) }
func (s *Store[T]) HasComponent(e core.Entity) bool { return s.Has(e) }
func (s *Store[T]) CountEntity() int                { return s.Count() }
func (s *Store[T]) ClearAllComponent()              { s.Clear() }
func (s *Store[T]) AllEntity() []core.Entity        { return s.All() }
func (s *Store[T]) RotateChanges()                  { s.changes.Rotate() }
