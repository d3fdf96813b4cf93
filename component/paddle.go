package component

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/brickbreaker/core"
)

// PaddleComponent is the player-controlled paddle
type PaddleComponent struct {
	HeldBall         *core.Entity
	HeldBallPosition mgl64.Vec2
	LevelWidth       float64
	Velocity         float64 // Last lateral velocity, pixels per second

	// Hit box
	HalfWidth  float64
	HalfHeight float64
}
