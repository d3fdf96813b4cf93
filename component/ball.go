package component

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/brickbreaker/core"
)

// BallComponent marks a ball entity
// Velocity is the authoritative gameplay velocity, re-applied to the rigidbody every tick
type BallComponent struct {
	LastPos       mgl64.Vec2
	HoldingPaddle *core.Entity // Non-nil while riding the paddle before launch
	Velocity      mgl64.Vec2
	Radius        float64
}

// Held reports whether the ball is still attached to a paddle
func (b *BallComponent) Held() bool {
	return b.HoldingPaddle != nil
}
