package physics

import (
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"

	"github.com/lixenwraith/brickbreaker/component"
	"github.com/lixenwraith/brickbreaker/core"
	"github.com/lixenwraith/brickbreaker/engine"
	"github.com/lixenwraith/brickbreaker/event"
	"github.com/lixenwraith/brickbreaker/parameter"
	"github.com/lixenwraith/brickbreaker/status"
)

// collisionTypeGameplay tags every shape so a single handler sees all contacts
const collisionTypeGameplay cp.CollisionType = 1

// bodyEntry is a materialized rigidbody and the colliders riding on it
type bodyEntry struct {
	entity   core.Entity
	body     *cp.Body
	shapes   []component.ColliderHandle
	disabled bool
}

// colliderEntry is a materialized collider
// owner is zero for static colliders on the ground anchor
type colliderEntry struct {
	entity core.Entity
	shape  *cp.Shape
	owner  component.BodyHandle
	groups component.CollisionGroups
}

// Bridge keeps the physics engine consistent with Rigidbody, Collider and Transform components
// It exclusively owns the engine space and every handle; systems thread it explicitly
type Bridge struct {
	space  *cp.Space
	ground *cp.Body

	// Entity to handle maps and the handle sets they index
	bodies    map[core.Entity]component.BodyHandle
	colliders map[core.Entity]component.ColliderHandle
	bodySet   map[component.BodyHandle]*bodyEntry
	shapeSet  map[component.ColliderHandle]*colliderEntry
	owners    map[*cp.Shape]core.Entity

	nextBody     component.BodyHandle
	nextCollider component.ColliderHandle

	transforms  *engine.Store[component.TransformComponent]
	rigidbodies *engine.Store[component.RigidbodyComponent]
	colliderCmp *engine.Store[component.ColliderComponent]

	transformReader event.ReaderID
	rigidbodyReader event.ReaderID
	colliderReader  event.ReaderID

	// Collision pipeline output and per-step pair dedup
	collisions *event.Channel[event.Collision]
	stepPairs  map[pairKey]struct{}

	statBodies    *atomic.Int64
	statColliders *atomic.Int64
	statContacts  *atomic.Int64
	statAnomalies *atomic.Int64
}

// NewBridge creates a zero-gravity space and registers change readers on the world's stores
// Must be constructed before the first tick so no component change is missed
func NewBridge(w *engine.World, reg *status.Registry) *Bridge {
	if reg == nil {
		reg = status.NewRegistry()
	}

	space := cp.NewSpace()
	space.Iterations = parameter.PhysicsIterations
	space.SetGravity(cp.Vector{})

	b := &Bridge{
		space:     space,
		ground:    space.StaticBody,
		bodies:    make(map[core.Entity]component.BodyHandle),
		colliders: make(map[core.Entity]component.ColliderHandle),
		bodySet:   make(map[component.BodyHandle]*bodyEntry),
		shapeSet:  make(map[component.ColliderHandle]*colliderEntry),
		owners:    make(map[*cp.Shape]core.Entity),

		nextBody:     1,
		nextCollider: 1,

		transforms:  w.Components.Transform,
		rigidbodies: w.Components.Rigidbody,
		colliderCmp: w.Components.Collider,

		collisions: event.NewChannel[event.Collision](parameter.CollisionLogCapacity),
		stepPairs:  make(map[pairKey]struct{}),

		statBodies:    reg.Ints.Get("physics.bodies"),
		statColliders: reg.Ints.Get("physics.colliders"),
		statContacts:  reg.Ints.Get("physics.contacts"),
		statAnomalies: reg.Ints.Get("physics.anomalies"),
	}

	b.transformReader = b.transforms.Changes().Register()
	b.rigidbodyReader = b.rigidbodies.Changes().Register()
	b.colliderReader = b.colliderCmp.Changes().Register()

	handler := space.NewCollisionHandler(collisionTypeGameplay, collisionTypeGameplay)
	handler.UserData = b
	handler.BeginFunc = beginContact

	return b
}

// Collisions returns the per-tick collision log
// Consumers register a reader before the first tick
func (b *Bridge) Collisions() *event.Channel[event.Collision] {
	return b.collisions
}

// BodyCount returns the number of live engine bodies
func (b *Bridge) BodyCount() int {
	return len(b.bodySet)
}

// ColliderCount returns the number of live engine shapes
func (b *Bridge) ColliderCount() int {
	return len(b.shapeSet)
}

// HasBody reports whether e currently owns an engine body
func (b *Bridge) HasBody(e core.Entity) bool {
	_, ok := b.bodies[e]
	return ok
}

// HasCollider reports whether e currently owns an engine shape
func (b *Bridge) HasCollider(e core.Entity) bool {
	_, ok := b.colliders[e]
	return ok
}

// BodyState returns the engine position and velocity of e's body in pixel units
func (b *Bridge) BodyState(e core.Entity) (pos, vel mgl64.Vec2, ok bool) {
	entry := b.bodyOf(e)
	if entry == nil {
		return pos, vel, false
	}
	return ToPixels(entry.body.Position()), ToPixels(entry.body.Velocity()), true
}

func (b *Bridge) bodyOf(e core.Entity) *bodyEntry {
	h, ok := b.bodies[e]
	if !ok {
		return nil
	}
	return b.bodySet[h]
}

func (b *Bridge) anomaly() {
	b.statAnomalies.Add(1)
}

func (b *Bridge) publishCounts() {
	b.statBodies.Store(int64(len(b.bodySet)))
	b.statColliders.Store(int64(len(b.shapeSet)))
}
