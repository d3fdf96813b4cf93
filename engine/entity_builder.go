package engine

import "github.com/lixenwraith/brickbreaker/core"

// EntityBuilder assembles an entity whose components are inserted at the next Maintain
// The entity ID is reserved immediately so it can be referenced (held ball, active paddle) in the same tick
//
// Example usage:
//
//	e := engine.With(engine.With(w.NewEntity(),
//	    w.Components.Transform, component.NewTransform(pos)),
//	    w.Components.Ball, component.BallComponent{}).
//	    Build()
type EntityBuilder struct {
	world  *World
	entity core.Entity
	built  bool
}

// NewEntity reserves an entity and returns a builder for it
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{
		world:  w,
		entity: w.CreateEntity(),
	}
}

// With queues a component of type T for the entity being built
// Panics if called after Build
func With[T any](eb *EntityBuilder, store *Store[T], component T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	LazyInsert(eb.world, store, eb.entity, component)
	return eb
}

// Entity returns the reserved entity without finalizing
func (eb *EntityBuilder) Entity() core.Entity {
	return eb.entity
}

// Build finalizes the builder and returns the entity
func (eb *EntityBuilder) Build() core.Entity {
	eb.built = true
	return eb.entity
}
