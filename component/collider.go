package component

import "github.com/go-gl/mathgl/mgl64"

// ColliderHandle identifies a collision shape inside the physics bridge
type ColliderHandle uint32

// ShapeKind selects the collider geometry
type ShapeKind uint8

const (
	ShapeCircle ShapeKind = iota
	ShapeBox
)

// Shape is a circle (Radius) or an axis-aligned box (HalfExtents), pixel units
type Shape struct {
	Kind        ShapeKind
	Radius      float64
	HalfExtents mgl64.Vec2
}

// Circle returns a circle shape
func Circle(radius float64) Shape {
	return Shape{Kind: ShapeCircle, Radius: radius}
}

// Box returns a box shape from half extents
func Box(halfWidth, halfHeight float64) Shape {
	return Shape{Kind: ShapeBox, HalfExtents: mgl64.Vec2{halfWidth, halfHeight}}
}

// CollisionGroups filters contact generation
// Two colliders touch only if each one's Membership intersects the other's Mask
type CollisionGroups struct {
	Membership uint32
	Mask       uint32
}

// Group returns the bit for collision group index i
func Group(i uint) uint32 {
	return 1 << i
}

// Interacts reports whether colliders in groups g and o generate contacts
func (g CollisionGroups) Interacts(o CollisionGroups) bool {
	return g.Membership&o.Mask != 0 && o.Membership&g.Mask != 0
}

// ColliderComponent is the collision geometry of an entity
// Without a rigidbody the collider is static and anchored at the entity's transform position
type ColliderComponent struct {
	Shape      Shape
	Offset     mgl64.Vec2 // Local offset from the body origin, pixels
	Groups     CollisionGroups
	Density    float64
	Elasticity float64
	Friction   float64

	Handle *ColliderHandle
}
