package system

import (
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/brickbreaker/component"
	"github.com/lixenwraith/brickbreaker/core"
	"github.com/lixenwraith/brickbreaker/engine"
	"github.com/lixenwraith/brickbreaker/event"
	"github.com/lixenwraith/brickbreaker/parameter"
)

// BallCollisionSystem turns collision events involving a ball into velocity changes
// Paddle hits deflect by hit position; anything else reflects about the contact normal
// At most one response changes a ball per tick
type BallCollisionSystem struct {
	engine.SystemBase

	collisions *event.Channel[event.Collision]
	reader     event.ReaderID

	// Balls already reflected this tick
	bounced map[core.Entity]struct{}

	statDeflects *atomic.Int64
	statReflects *atomic.Int64
	statIgnored  *atomic.Int64
}

// NewBallCollisionSystem creates a ball collision system reading from collisions
// Must be constructed before the first tick
func NewBallCollisionSystem(world *engine.World, collisions *event.Channel[event.Collision]) *BallCollisionSystem {
	s := &BallCollisionSystem{
		SystemBase: engine.NewSystemBase(world),
		collisions: collisions,
		reader:     collisions.Register(),
		bounced:    make(map[core.Entity]struct{}),
	}
	s.statDeflects = s.Resource.Status.Ints.Get("ball.deflects")
	s.statReflects = s.Resource.Status.Ints.Get("ball.reflects")
	s.statIgnored = s.Resource.Status.Ints.Get("ball.bounces_ignored")
	return s
}

func (s *BallCollisionSystem) Name() string {
	return "ball_collision"
}

func (s *BallCollisionSystem) Priority() int {
	return parameter.PriorityBallCollision
}

func (s *BallCollisionSystem) Update() {
	clear(s.bounced)
	for _, ev := range s.collisions.Read(s.reader) {
		s.handle(ev)
	}
}

// handle dispatches one collision event; pairs without a ball or with an unassociated side are no-ops
func (s *BallCollisionSystem) handle(ev event.Collision) {
	if ev.EntityA == nil || ev.EntityB == nil {
		return
	}

	var ball, other core.Entity
	var normal *mgl64.Vec2
	switch {
	case s.Component.Ball.Has(*ev.EntityA):
		ball, other = *ev.EntityA, *ev.EntityB
		normal = ev.Normal
	case s.Component.Ball.Has(*ev.EntityB):
		ball, other = *ev.EntityB, *ev.EntityA
		// Normal points A to B; seen from the ball it must point ball to obstacle
		if ev.Normal != nil {
			n := ev.Normal.Mul(-1)
			normal = &n
		}
	default:
		return
	}
	if s.Component.Ball.Has(other) || s.World.Deleting(ball) {
		return
	}

	b, _ := s.Component.Ball.Get(ball)
	if b.Held() {
		return
	}

	if s.Component.Paddle.Has(other) {
		s.deflect(ball, &b, other, ev.Point)
		return
	}
	s.reflect(ball, &b, other, normal, ev.Point)
}

// deflect applies the paddle response unless the ball already changed this tick
func (s *BallCollisionSystem) deflect(e core.Entity, b *component.BallComponent, paddleEntity core.Entity, point *mgl64.Vec2) {
	if _, done := s.bounced[e]; done {
		s.statIgnored.Add(1)
		return
	}

	paddle, _ := s.Component.Paddle.Get(paddleEntity)
	paddleTr, ok := s.Component.Transform.Get(paddleEntity)
	if !ok {
		return
	}

	contactX := s.ballPosition(e).X()
	if point != nil {
		contactX = point.X()
	}
	ratio := HitRatio(contactX, paddleTr.Position.X(), paddle.HalfWidth)
	b.Velocity = ClampSpeed(DeflectVelocity(b.Velocity, ratio), parameter.BallMaxLinearVelocity)

	s.Component.Ball.Set(e, *b)
	s.bounced[e] = struct{}{}
	s.statDeflects.Add(1)
	s.Resource.Audio.Play(core.SoundPaddleHit)
}

// reflect mirrors the ball velocity about the contact normal
// Applies only while the ball moves into the obstacle and nothing else changed it this tick
func (s *BallCollisionSystem) reflect(e core.Entity, b *component.BallComponent, other core.Entity, normal, point *mgl64.Vec2) {
	if _, done := s.bounced[e]; done {
		s.statIgnored.Add(1)
		return
	}

	n, ok := s.contactNormal(e, other, normal, point)
	if !ok || b.Velocity.Dot(n) <= 0 {
		return
	}

	v := ReflectVelocity(b.Velocity, n, parameter.BallSpeedUpMultiplier)
	b.Velocity = ClampSpeed(v, parameter.BallMaxLinearVelocity)

	s.Component.Ball.Set(e, *b)
	s.bounced[e] = struct{}{}
	s.statReflects.Add(1)
	if !s.Component.Brick.Has(other) {
		s.Resource.Audio.Play(core.SoundWallHit)
	}
}

// contactNormal returns the unit normal pointing from the ball into the obstacle
// Without a manifold normal it falls back to the axis towards the contact point, then towards the obstacle
func (s *BallCollisionSystem) contactNormal(e, other core.Entity, normal, point *mgl64.Vec2) (mgl64.Vec2, bool) {
	if normal != nil && normal.Len() > 0 {
		return normal.Normalize(), true
	}
	pos := s.ballPosition(e)
	if point != nil {
		if n, ok := AxisNormal(point.Sub(pos)); ok {
			return n, true
		}
	}
	if tr, ok := s.Component.Transform.Get(other); ok {
		return AxisNormal(tr.Position.Sub(pos))
	}
	return mgl64.Vec2{}, false
}

func (s *BallCollisionSystem) ballPosition(e core.Entity) mgl64.Vec2 {
	tr, _ := s.Component.Transform.Get(e)
	return tr.Position
}
