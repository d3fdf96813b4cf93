package physics

import (
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"

	"github.com/lixenwraith/brickbreaker/component"
	"github.com/lixenwraith/brickbreaker/core"
	"github.com/lixenwraith/brickbreaker/event"
	"github.com/lixenwraith/brickbreaker/parameter"
)

// velocityEpsilon is the world-unit difference below which a velocity push is skipped
const velocityEpsilon = 1e-9

// changeSet splits a change log into unique entities per kind, first-seen order
type changeSet struct {
	inserted []core.Entity
	modified []core.Entity
	removed  []core.Entity
}

func collect(changes []event.ComponentChange) changeSet {
	var cs changeSet
	seen := make(map[event.ComponentChange]struct{}, len(changes))
	for _, c := range changes {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		switch c.Kind {
		case event.ComponentInserted:
			cs.inserted = append(cs.inserted, c.Entity)
		case event.ComponentModified:
			cs.modified = append(cs.modified, c.Entity)
		case event.ComponentRemoved:
			cs.removed = append(cs.removed, c.Entity)
		}
	}
	return cs
}

// insertedSet indexes the entities inserted in the same batch
func (cs changeSet) insertedSet() map[core.Entity]struct{} {
	set := make(map[core.Entity]struct{}, len(cs.inserted))
	for _, e := range cs.inserted {
		set[e] = struct{}{}
	}
	return set
}

// Send pushes this tick's gameplay-side component changes into the engine
// Removals apply first so a component removed and re-added within one tick is rebuilt cleanly
func (b *Bridge) Send() {
	rb := collect(b.rigidbodies.Changes().Read(b.rigidbodyReader))
	col := collect(b.colliderCmp.Changes().Read(b.colliderReader))
	tr := collect(b.transforms.Changes().Read(b.transformReader))

	// A component inserted and removed within one batch never reached the engine
	colBorn, rbBorn := col.insertedSet(), rb.insertedSet()

	for _, e := range col.removed {
		if h, ok := b.colliders[e]; ok {
			b.destroyCollider(h)
		} else if _, born := colBorn[e]; !born && !b.colliderCmp.Has(e) {
			log.Printf("[PHYSICS] collider removed for %v with no engine shape", e)
			b.anomaly()
		}
	}
	for _, e := range rb.removed {
		if h, ok := b.bodies[e]; ok {
			b.destroyBody(h)
		} else if _, born := rbBorn[e]; !born && !b.rigidbodies.Has(e) {
			log.Printf("[PHYSICS] rigidbody removed for %v with no engine body", e)
			b.anomaly()
		}
	}

	for _, e := range rb.inserted {
		b.insertBody(e)
	}
	for _, e := range rb.modified {
		b.pushRigidbody(e)
	}

	for _, e := range col.inserted {
		b.insertCollider(e)
	}
	for _, e := range col.modified {
		if h, ok := b.colliders[e]; ok {
			b.destroyCollider(h)
		}
		b.insertCollider(e)
	}

	// Shapes and bodies built this pass already sit at the current transform
	fresh := make(map[core.Entity]struct{}, len(rb.inserted)+len(col.inserted))
	for _, e := range rb.inserted {
		fresh[e] = struct{}{}
	}
	for _, e := range col.inserted {
		fresh[e] = struct{}{}
	}
	for _, e := range append(tr.inserted, tr.modified...) {
		if _, ok := fresh[e]; ok {
			continue
		}
		b.pushTransform(e)
	}

	b.publishCounts()
}

// insertBody materializes a dynamic body for e's rigidbody
// An existing body for e is an anomaly: it is discarded, never merged
func (b *Bridge) insertBody(e core.Entity) {
	rb, ok := b.rigidbodies.Get(e)
	if !ok {
		return
	}
	reattach := false
	if old, exists := b.bodies[e]; exists {
		log.Printf("[PHYSICS] duplicate body for %v (handle %d), replacing", e, old)
		b.anomaly()
		reattach = b.HasCollider(e)
		b.destroyBody(old)
	}

	tr, ok := b.transforms.Get(e)
	if !ok {
		log.Printf("[PHYSICS] rigidbody for %v has no transform, placing at origin", e)
	}

	mass := rb.Mass
	if mass <= 0 {
		mass = parameter.PhysicsDefaultMass
	}
	body := cp.NewBody(mass, math.Inf(1))
	body.SetPosition(ToWorld(tr.Position))
	v := ToWorld(rb.Velocity)
	body.SetVelocity(v.X, v.Y)
	body.SetAngularVelocity(rb.AngularVelocity)
	b.space.AddBody(body)

	h := b.nextBody
	b.nextBody++
	b.bodies[e] = h
	b.bodySet[h] = &bodyEntry{entity: e, body: body, disabled: rb.Disabled}

	rb.Handle = &h
	b.rigidbodies.SetUnflagged(e, rb)

	if reattach {
		b.insertCollider(e)
	}
}

// destroyBody removes a body and every collider attached to it
func (b *Bridge) destroyBody(h component.BodyHandle) {
	entry, ok := b.bodySet[h]
	if !ok {
		return
	}
	for _, ch := range append([]component.ColliderHandle(nil), entry.shapes...) {
		if ce, ok := b.shapeSet[ch]; ok && b.colliderCmp.Has(ce.entity) {
			log.Printf("[PHYSICS] collider of %v detached with its body", ce.entity)
		}
		b.destroyCollider(ch)
	}
	b.space.RemoveBody(entry.body)
	delete(b.bodySet, h)
	if b.bodies[entry.entity] == h {
		delete(b.bodies, entry.entity)
	}
}

// pushRigidbody applies a gameplay write to the engine body
// Velocity is pushed only when it differs; a Disabled flip swaps the shapes' contact filter
func (b *Bridge) pushRigidbody(e core.Entity) {
	rb, ok := b.rigidbodies.Get(e)
	if !ok {
		return
	}
	entry := b.bodyOf(e)
	if entry == nil {
		log.Printf("[PHYSICS] rigidbody modified for %v with no engine body", e)
		b.anomaly()
		return
	}

	target := ToWorld(rb.Velocity)
	current := entry.body.Velocity()
	if math.Abs(current.X-target.X) > velocityEpsilon || math.Abs(current.Y-target.Y) > velocityEpsilon {
		entry.body.SetVelocity(target.X, target.Y)
	}
	if entry.body.AngularVelocity() != rb.AngularVelocity {
		entry.body.SetAngularVelocity(rb.AngularVelocity)
	}

	if entry.disabled != rb.Disabled {
		entry.disabled = rb.Disabled
		for _, ch := range entry.shapes {
			if ce, ok := b.shapeSet[ch]; ok {
				ce.shape.SetFilter(filterFor(ce.groups, entry.disabled))
			}
		}
	}
}

// insertCollider attaches e's collider to its own body, or to the ground anchor at its transform position
func (b *Bridge) insertCollider(e core.Entity) {
	col, ok := b.colliderCmp.Get(e)
	if !ok {
		return
	}
	if old, exists := b.colliders[e]; exists {
		log.Printf("[PHYSICS] duplicate collider for %v (handle %d), replacing", e, old)
		b.anomaly()
		b.destroyCollider(old)
	}

	h := b.nextCollider
	b.nextCollider++
	if !b.attachCollider(e, h, col) {
		return
	}

	col.Handle = &h
	b.colliderCmp.SetUnflagged(e, col)
}

// attachCollider builds the engine shape for col under handle h
func (b *Bridge) attachCollider(e core.Entity, h component.ColliderHandle, col component.ColliderComponent) bool {
	var (
		body     *cp.Body
		owner    component.BodyHandle
		offset   = col.Offset
		disabled bool
	)
	if bh, ok := b.bodies[e]; ok {
		entry := b.bodySet[bh]
		body, owner, disabled = entry.body, bh, entry.disabled
	} else {
		tr, ok := b.transforms.Get(e)
		if !ok {
			log.Printf("[PHYSICS] static collider for %v has no transform, skipped", e)
			b.anomaly()
			return false
		}
		body = b.ground
		offset = tr.Position.Add(col.Offset)
	}

	shape := newShape(body, col.Shape, offset)
	shape.SetElasticity(col.Elasticity)
	shape.SetFriction(col.Friction)
	shape.SetCollisionType(collisionTypeGameplay)
	shape.SetFilter(filterFor(col.Groups, disabled))
	if owner != 0 && col.Density > 0 {
		shape.SetDensity(col.Density * parameter.PixelsPerWorldUnit * parameter.PixelsPerWorldUnit)
	}
	b.space.AddShape(shape)

	b.colliders[e] = h
	b.shapeSet[h] = &colliderEntry{entity: e, shape: shape, owner: owner, groups: col.Groups}
	b.owners[shape] = e
	if owner != 0 {
		entry := b.bodySet[owner]
		entry.shapes = append(entry.shapes, h)
	}
	return true
}

// destroyCollider removes a shape from the engine and every index
func (b *Bridge) destroyCollider(h component.ColliderHandle) {
	ce, ok := b.shapeSet[h]
	if !ok {
		return
	}
	b.space.RemoveShape(ce.shape)
	delete(b.owners, ce.shape)
	delete(b.shapeSet, h)
	if b.colliders[ce.entity] == h {
		delete(b.colliders, ce.entity)
	}
	if entry, ok := b.bodySet[ce.owner]; ok {
		for i, sh := range entry.shapes {
			if sh == h {
				entry.shapes = append(entry.shapes[:i], entry.shapes[i+1:]...)
				break
			}
		}
	}
}

// pushTransform teleports e's body, or rebuilds its static collider at the new position
func (b *Bridge) pushTransform(e core.Entity) {
	tr, ok := b.transforms.Get(e)
	if !ok {
		return
	}
	if entry := b.bodyOf(e); entry != nil {
		entry.body.SetPosition(ToWorld(tr.Position))
		return
	}

	h, ok := b.colliders[e]
	if !ok {
		return
	}
	ce := b.shapeSet[h]
	if ce == nil || ce.owner != 0 {
		return
	}
	col, ok := b.colliderCmp.Get(e)
	if !ok {
		return
	}
	b.destroyCollider(h)
	b.attachCollider(e, h, col)
}

// Receive copies engine state back into components after a step
// Writes are unflagged so the next Send does not echo them into the engine
func (b *Bridge) Receive() {
	for _, e := range b.rigidbodies.All() {
		rb, _ := b.rigidbodies.Get(e)
		if rb.Handle == nil {
			continue
		}
		h, ok := b.bodies[e]
		entry := b.bodySet[h]
		if !ok || entry == nil || h != *rb.Handle {
			log.Printf("[PHYSICS] receive: %v has handle %d with no matching engine body", e, *rb.Handle)
			b.anomaly()
			continue
		}
		tr, ok := b.transforms.Get(e)
		if !ok {
			log.Printf("[PHYSICS] receive: %v has a body but no transform", e)
			b.anomaly()
			continue
		}

		tr.LastPosition = tr.Position
		rb.LastVelocity = rb.Velocity
		rb.LastAngularVelocity = rb.AngularVelocity

		tr.Position = ToPixels(entry.body.Position())
		rb.Velocity = ToPixels(entry.body.Velocity())
		rb.AngularVelocity = entry.body.AngularVelocity()

		b.transforms.SetUnflagged(e, tr)
		b.rigidbodies.SetUnflagged(e, rb)
	}
}

// newShape builds a circle or box shape on body at a pixel offset
func newShape(body *cp.Body, s component.Shape, offset mgl64.Vec2) *cp.Shape {
	o := ToWorld(offset)
	switch s.Kind {
	case component.ShapeBox:
		hx := toWorldScalar(s.HalfExtents.X())
		hy := toWorldScalar(s.HalfExtents.Y())
		return cp.NewBox2(body, cp.BB{L: o.X - hx, B: o.Y - hy, R: o.X + hx, T: o.Y + hy}, 0)
	default:
		return cp.NewCircle(body, toWorldScalar(s.Radius), o)
	}
}

// filterFor maps collision groups to an engine shape filter
// Disabled shapes belong to no category and so generate no contacts
func filterFor(g component.CollisionGroups, disabled bool) cp.ShapeFilter {
	if disabled {
		return cp.NewShapeFilter(0, 0, 0)
	}
	return cp.NewShapeFilter(0, uint(g.Membership), uint(g.Mask))
}
