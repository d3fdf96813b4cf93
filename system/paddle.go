package system

import (
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/brickbreaker/component"
	"github.com/lixenwraith/brickbreaker/core"
	"github.com/lixenwraith/brickbreaker/engine"
	"github.com/lixenwraith/brickbreaker/input"
	"github.com/lixenwraith/brickbreaker/parameter"
	"github.com/lixenwraith/brickbreaker/prefab"
)

// PaddleSystem moves paddles from held input, maintains the held-ball anchor and launches held balls
type PaddleSystem struct {
	engine.SystemBase

	statLaunches *atomic.Int64
}

// NewPaddleSystem creates a new paddle system
func NewPaddleSystem(world *engine.World) *PaddleSystem {
	s := &PaddleSystem{SystemBase: engine.NewSystemBase(world)}
	s.statLaunches = s.Resource.Status.Ints.Get("paddle.launches")
	return s
}

func (s *PaddleSystem) Name() string {
	return "paddle"
}

func (s *PaddleSystem) Priority() int {
	return parameter.PriorityPaddle
}

func (s *PaddleSystem) Update() {
	in := s.Resource.Input.State
	dt := s.Resource.Time.DT()

	dir := 0.0
	if in.HeldAny(input.KeyLeft, input.KeyA) {
		dir--
	}
	if in.HeldAny(input.KeyRight, input.KeyD) {
		dir++
	}
	launch := in.Pressed(input.KeySpace)

	for _, e := range s.Component.Paddle.All() {
		paddle, _ := s.Component.Paddle.Get(e)
		tr, ok := s.Component.Transform.Get(e)
		if !ok {
			continue
		}

		oldX := tr.Position.X()
		x := ClampPaddleX(oldX+dir*parameter.PaddleSpeed*dt, paddle.HalfWidth, paddle.LevelWidth)
		if dt > 0 {
			paddle.Velocity = (x - oldX) / dt
		}

		if x != oldX {
			tr.LastPosition = tr.Position
			tr.Position = mgl64.Vec2{x, tr.Position.Y()}
			s.Component.Transform.Set(e, tr)
		} else if tr.LastPosition != tr.Position {
			// Settle interpolation without re-pushing the static collider
			tr.LastPosition = tr.Position
			s.Component.Transform.SetUnflagged(e, tr)
		}
		paddle.HeldBallPosition = prefab.HeldBallAnchor(tr.Position, paddle.HalfHeight)

		if launch && paddle.HeldBall != nil {
			s.launch(*paddle.HeldBall, paddle.Velocity)
			paddle.HeldBall = nil
		}
		s.Component.Paddle.Set(e, paddle)
	}
}

// launch releases a held ball with part of the paddle's lateral velocity and a fixed upward speed
func (s *PaddleSystem) launch(ball core.Entity, paddleVelocity float64) {
	vel := ClampSpeed(LaunchVelocity(paddleVelocity), parameter.BallMaxLinearVelocity)
	ok := s.Component.Ball.Mutate(ball, func(b *component.BallComponent) {
		b.HoldingPaddle = nil
		b.Velocity = vel
	})
	if ok {
		s.statLaunches.Add(1)
	}
}

// ClampPaddleX keeps a paddle of halfWidth inside [0, levelWidth]
// A paddle wider than the level is centered
func ClampPaddleX(x, halfWidth, levelWidth float64) float64 {
	if levelWidth <= 2*halfWidth {
		return levelWidth / 2
	}
	return mgl64.Clamp(x, halfWidth, levelWidth-halfWidth)
}

// LaunchVelocity is the release velocity of a held ball
func LaunchVelocity(paddleVelocity float64) mgl64.Vec2 {
	return mgl64.Vec2{paddleVelocity * parameter.BallLaunchCarry, -parameter.BallLaunchSpeed}
}
