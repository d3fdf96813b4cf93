package component

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// TransformComponent is the world placement of an entity in pixel space
// LastPosition holds the previous tick's position for render interpolation
type TransformComponent struct {
	Position     mgl64.Vec2
	LastPosition mgl64.Vec2
	Origin       mgl32.Vec2 // Sprite pivot, pixels from the sprite's top-left
	Scale        mgl32.Vec2
}

// NewTransform places an entity at pos with unit scale and no pending interpolation
func NewTransform(pos mgl64.Vec2) TransformComponent {
	return TransformComponent{
		Position:     pos,
		LastPosition: pos,
		Scale:        mgl32.Vec2{1, 1},
	}
}
