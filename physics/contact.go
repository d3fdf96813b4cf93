package physics

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"

	"github.com/lixenwraith/brickbreaker/core"
	"github.com/lixenwraith/brickbreaker/event"
)

// pairKey is an unordered entity pair, lower entity first
// Unassociated sides use core.NoEntity
type pairKey struct {
	lo, hi core.Entity
}

func makePairKey(a, b core.Entity) pairKey {
	if b.ID < a.ID || (b.ID == a.ID && b.Gen < a.Gen) {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

// Step advances the engine by one fixed tick and publishes newly started contacts
// At most one collision event per unordered entity pair per step
func (b *Bridge) Step(dt float64) {
	clear(b.stepPairs)
	b.space.Step(dt)
}

// beginContact is the engine's contact-started callback
// Contact-stopped is not translated
func beginContact(arb *cp.Arbiter, _ *cp.Space, userData interface{}) bool {
	b, ok := userData.(*Bridge)
	if !ok || b == nil {
		return true
	}
	shapeA, shapeB := arb.Shapes()
	ea, okA := b.owners[shapeA]
	eb, okB := b.owners[shapeB]
	if !okA && !okB {
		return true
	}

	key := makePairKey(ea, eb)
	if _, seen := b.stepPairs[key]; seen {
		return true
	}
	b.stepPairs[key] = struct{}{}

	ev := event.Collision{}
	if okA {
		ev.EntityA = ea.Ref()
	}
	if okB {
		ev.EntityB = eb.Ref()
	}
	ev.Normal, ev.Point = deepestContact(arb)

	b.collisions.Write(ev)
	b.statContacts.Add(1)
	return true
}

// deepestContact extracts the normal and the most penetrating manifold point
// Both are nil for an empty manifold
func deepestContact(arb *cp.Arbiter) (*mgl64.Vec2, *mgl64.Vec2) {
	set := arb.ContactPointSet()
	if set.Count == 0 {
		return nil, nil
	}
	deepest := 0
	for i := 1; i < set.Count; i++ {
		if set.Points[i].Distance < set.Points[deepest].Distance {
			deepest = i
		}
	}
	p := set.Points[deepest]
	normal := mgl64.Vec2{set.Normal.X, set.Normal.Y}
	point := ToPixels(p.PointA.Add(p.PointB).Mult(0.5))
	return &normal, &point
}
