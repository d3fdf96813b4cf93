package event

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/brickbreaker/core"
)

// ComponentChange is one entry of a store's change log
type ComponentChange struct {
	Kind   ChangeKind
	Entity core.Entity
}

// Collision is a newly started contact between two colliders
// Either entity is nil when that collider has no gameplay owner
// Normal points from EntityA towards EntityB; nil when the manifold was empty
// Point is the deepest manifold point in pixel space
type Collision struct {
	EntityA *core.Entity
	EntityB *core.Entity
	Normal  *mgl64.Vec2
	Point   *mgl64.Vec2
}

// Other returns the side of the pair that is not e
// ok is false when e is on neither side or the other side is unassociated
func (c Collision) Other(e core.Entity) (other core.Entity, ok bool) {
	switch {
	case c.EntityA != nil && *c.EntityA == e && c.EntityB != nil:
		return *c.EntityB, true
	case c.EntityB != nil && *c.EntityB == e && c.EntityA != nil:
		return *c.EntityA, true
	}
	return core.NoEntity, false
}

// SpawnBall requests a ball; drained by the spawn system after physics receive
// Paddle non-nil spawns the ball held by that paddle
type SpawnBall struct {
	Position mgl64.Vec2
	Velocity mgl64.Vec2
	Paddle   *core.Entity
}

// LoadLevel requests the level collaborator to rebuild the world
// Restart marks a new run after game over rather than an advance
type LoadLevel struct {
	Level   int
	Restart bool
}
