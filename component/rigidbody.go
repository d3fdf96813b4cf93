package component

import "github.com/go-gl/mathgl/mgl64"

// BodyHandle identifies a body inside the physics bridge
type BodyHandle uint32

// RigidbodyComponent is the gameplay-facing physics identity of an entity
// Velocity is in pixels per second; gameplay writes it, the bridge receive phase overwrites it
// Handle stays nil until the bridge has materialized the body
type RigidbodyComponent struct {
	Velocity            mgl64.Vec2
	LastVelocity        mgl64.Vec2
	AngularVelocity     float64
	LastAngularVelocity float64

	Handle *BodyHandle
	Mass   float64

	// Disabled bodies are pinned by gameplay and generate no contacts
	Disabled bool
}
