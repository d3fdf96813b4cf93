package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/brickbreaker/parameter"
)

// ClampSpeed scales v down to magnitude limit, direction preserved
func ClampSpeed(v mgl64.Vec2, limit float64) mgl64.Vec2 {
	l := v.Len()
	if l <= limit || l == 0 {
		return v
	}
	return v.Mul(limit / l)
}

// HitRatio is the signed horizontal offset of a paddle hit, -1 at the left edge and 1 at the right
func HitRatio(contactX, paddleX, halfWidth float64) float64 {
	if halfWidth <= 0 {
		return 0
	}
	return mgl64.Clamp((contactX-paddleX)/halfWidth, -1, 1)
}

// DeflectVelocity is the unclamped paddle response: lateral speed from the hit ratio, damped vertical speed upward
func DeflectVelocity(incoming mgl64.Vec2, ratio float64) mgl64.Vec2 {
	return mgl64.Vec2{ratio * parameter.BallBaseForce, -math.Abs(incoming.Y()) * parameter.BallPaddleDamping}
}

// ReflectVelocity mirrors v about unit normal n and applies the speed-up multiplier, unclamped
func ReflectVelocity(v, n mgl64.Vec2, multiplier float64) mgl64.Vec2 {
	return v.Sub(n.Mul(2 * v.Dot(n))).Mul(multiplier)
}

// AxisNormal snaps a direction to the dominant axis, for contacts without a manifold normal
// Returns false for a zero direction
func AxisNormal(dir mgl64.Vec2) (mgl64.Vec2, bool) {
	ax, ay := math.Abs(dir.X()), math.Abs(dir.Y())
	switch {
	case ax == 0 && ay == 0:
		return mgl64.Vec2{}, false
	case ax >= ay:
		return mgl64.Vec2{math.Copysign(1, dir.X()), 0}, true
	default:
		return mgl64.Vec2{0, math.Copysign(1, dir.Y())}, true
	}
}
