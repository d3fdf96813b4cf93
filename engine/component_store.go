package engine

import (
	"github.com/lixenwraith/brickbreaker/component"
)

// ComponentStore provides cached pointer to typed component store
// Initialized once with the world; pointers remain valid for application lifetime
type ComponentStore struct {
	// Placement and physics
	Transform *Store[component.TransformComponent]
	Rigidbody *Store[component.RigidbodyComponent]
	Collider  *Store[component.ColliderComponent]

	// Gameplay tags
	Ball   *Store[component.BallComponent]
	Brick  *Store[component.BrickComponent]
	Paddle *Store[component.PaddleComponent]

	// Render
	Sprite *Store[component.SpriteComponent]
}

// initComponentStores creates and registers all stores
// Registration order is removal order on entity deletion
func initComponentStores(w *World) {
	w.Components = ComponentStore{
		Transform: NewStore[component.TransformComponent](),
		Rigidbody: NewStore[component.RigidbodyComponent](),
		Collider:  NewStore[component.ColliderComponent](),
		Ball:      NewStore[component.BallComponent](),
		Brick:     NewStore[component.BrickComponent](),
		Paddle:    NewStore[component.PaddleComponent](),
		Sprite:    NewStore[component.SpriteComponent](),
	}
	c := w.Components
	for _, s := range []AnyStore{c.Transform, c.Rigidbody, c.Collider, c.Ball, c.Brick, c.Paddle, c.Sprite} {
		w.registerStore(s)
	}
}
