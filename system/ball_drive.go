package system

import (
	"log"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/brickbreaker/component"
	"github.com/lixenwraith/brickbreaker/core"
	"github.com/lixenwraith/brickbreaker/engine"
	"github.com/lixenwraith/brickbreaker/event"
	"github.com/lixenwraith/brickbreaker/parameter"
)

// BallDriveSystem runs before the physics send: pins held balls to their paddle,
// detects lost balls and re-applies every free ball's authoritative velocity to its rigidbody
type BallDriveSystem struct {
	engine.SystemBase

	statLost *atomic.Int64
}

// NewBallDriveSystem creates a new ball drive system
func NewBallDriveSystem(world *engine.World) *BallDriveSystem {
	s := &BallDriveSystem{SystemBase: engine.NewSystemBase(world)}
	s.statLost = s.Resource.Status.Ints.Get("ball.lost")
	return s
}

func (s *BallDriveSystem) Name() string {
	return "ball_drive"
}

func (s *BallDriveSystem) Priority() int {
	return parameter.PriorityBallDrive
}

func (s *BallDriveSystem) Update() {
	for _, e := range s.Component.Ball.All() {
		if s.World.Deleting(e) {
			continue
		}
		ball, _ := s.Component.Ball.Get(e)
		tr, ok := s.Component.Transform.Get(e)
		if !ok {
			continue
		}
		ball.LastPos = tr.Position

		if ball.HoldingPaddle != nil {
			if s.pin(e, &ball, tr) {
				s.Component.Ball.Set(e, ball)
				continue
			}
			// Holder vanished, release straight up
			ball.HoldingPaddle = nil
			ball.Velocity = LaunchVelocity(0)
		}

		if tr.Position.Y() > s.Resource.Run.Height-parameter.BallLostMargin {
			s.lose(e)
			continue
		}

		s.Component.Ball.Set(e, ball)
		vel := ball.Velocity
		s.Component.Rigidbody.Mutate(e, func(rb *component.RigidbodyComponent) {
			rb.Disabled = false
			rb.Velocity = vel
		})
	}
}

// pin keeps a held ball on its paddle anchor with a disabled, motionless body
// Returns false if the holding paddle no longer exists
func (s *BallDriveSystem) pin(e core.Entity, ball *component.BallComponent, tr component.TransformComponent) bool {
	holder := *ball.HoldingPaddle
	paddle, ok := s.Component.Paddle.Get(holder)
	if !ok || !s.World.Alive(holder) {
		return false
	}

	ball.Velocity = mgl64.Vec2{}
	if tr.Position != paddle.HeldBallPosition {
		tr.LastPosition = tr.Position
		tr.Position = paddle.HeldBallPosition
		s.Component.Transform.Set(e, tr)
	}

	rb, ok := s.Component.Rigidbody.Get(e)
	if ok && (!rb.Disabled || rb.Velocity != (mgl64.Vec2{})) {
		s.Component.Rigidbody.Mutate(e, func(rb *component.RigidbodyComponent) {
			rb.Disabled = true
			rb.Velocity = mgl64.Vec2{}
		})
	}
	return true
}

// lose deletes a ball past the bottom edge, costs a life and requests a replacement while lives remain
func (s *BallDriveSystem) lose(e core.Entity) {
	s.World.Delete(e)
	s.statLost.Add(1)
	s.Resource.Audio.Play(core.SoundBallDeath)

	run := s.Resource.Run
	if !run.LoseLife() {
		log.Printf("[GAME] game over at level %d, score %d", run.Level, run.Score)
		return
	}

	req := event.SpawnBall{Position: mgl64.Vec2{run.Width / 2, run.Height / 2}}
	if run.Paddle != nil && s.World.Alive(*run.Paddle) {
		req.Paddle = run.Paddle
		if paddle, ok := s.Component.Paddle.Get(*run.Paddle); ok {
			req.Position = paddle.HeldBallPosition
		}
	}
	s.Resource.Event.Spawn.Write(req)
}
