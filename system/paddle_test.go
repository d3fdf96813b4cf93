package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/brickbreaker/component"
	"github.com/lixenwraith/brickbreaker/engine"
	"github.com/lixenwraith/brickbreaker/input"
	"github.com/lixenwraith/brickbreaker/parameter"
)

// TestPaddleMovesWithHeldKey verifies one tick of held input moves the paddle by speed times dt
func TestPaddleMovesWithHeldKey(t *testing.T) {
	env := newTestEnv(t)
	s := NewPaddleSystem(env.world)

	paddle := env.addPaddle(mgl64.Vec2{160, 224})
	env.input.Press(input.KeyRight)
	s.Update()

	dt := engine.MustGetResource[*engine.TimeResource](env.world.Resources).DT()
	tr, _ := env.world.Components.Transform.Get(paddle)
	want := 160 + parameter.PaddleSpeed*dt
	if !approx(tr.Position.X(), want) {
		t.Errorf("Expected x %v, got %v", want, tr.Position.X())
	}
	if tr.LastPosition.X() != 160 {
		t.Errorf("Expected last x 160, got %v", tr.LastPosition.X())
	}
	p, _ := env.world.Components.Paddle.Get(paddle)
	if !approx(p.Velocity, parameter.PaddleSpeed) {
		t.Errorf("Expected velocity %v, got %v", parameter.PaddleSpeed, p.Velocity)
	}
	if p.HeldBallPosition.X() != tr.Position.X() {
		t.Errorf("Expected anchor to follow paddle, got %v", p.HeldBallPosition)
	}

	// Opposite keys cancel
	env.input.Press(input.KeyA)
	s.Update()
	tr2, _ := env.world.Components.Transform.Get(paddle)
	if tr2.Position.X() != tr.Position.X() {
		t.Errorf("Expected no movement with both directions held, got %v", tr2.Position.X())
	}
}

// TestPaddleClamped verifies the paddle never leaves the playfield
func TestPaddleClamped(t *testing.T) {
	env := newTestEnv(t)
	s := NewPaddleSystem(env.world)

	paddle := env.addPaddle(mgl64.Vec2{parameter.PaddleHalfWidth + 1, 224})
	env.input.Press(input.KeyLeft)
	for i := 0; i < 10; i++ {
		s.Update()
	}

	tr, _ := env.world.Components.Transform.Get(paddle)
	if tr.Position.X() != parameter.PaddleHalfWidth {
		t.Errorf("Expected x clamped to %v, got %v", parameter.PaddleHalfWidth, tr.Position.X())
	}
}

func TestClampPaddleX(t *testing.T) {
	tests := []struct {
		x, half, width, want float64
	}{
		{100, 29, 320, 100},
		{10, 29, 320, 29},
		{400, 29, 320, 291},
		{100, 200, 320, 160},
	}
	for _, tt := range tests {
		if got := ClampPaddleX(tt.x, tt.half, tt.width); got != tt.want {
			t.Errorf("ClampPaddleX(%v, %v, %v): expected %v, got %v", tt.x, tt.half, tt.width, tt.want, got)
		}
	}
}

// TestPaddleLaunch verifies space releases the held ball with part of the paddle's velocity
func TestPaddleLaunch(t *testing.T) {
	env := newTestEnv(t)
	s := NewPaddleSystem(env.world)

	paddle := env.addPaddle(mgl64.Vec2{160, 224})
	ball := env.addBall(mgl64.Vec2{160, 213}, mgl64.Vec2{})
	env.world.Components.Ball.Mutate(ball, func(b *component.BallComponent) {
		b.HoldingPaddle = paddle.Ref()
	})
	env.world.Components.Paddle.Mutate(paddle, func(p *component.PaddleComponent) {
		p.HeldBall = ball.Ref()
	})

	env.input.Press(input.KeyRight)
	env.input.Tap(input.KeySpace)
	s.Update()

	b, _ := env.world.Components.Ball.Get(ball)
	if b.Held() {
		t.Fatal("Expected ball released")
	}
	want := LaunchVelocity(parameter.PaddleSpeed)
	if !approxVec(b.Velocity, want) {
		t.Errorf("Expected launch velocity %v, got %v", want, b.Velocity)
	}
	p, _ := env.world.Components.Paddle.Get(paddle)
	if p.HeldBall != nil {
		t.Error("Expected paddle to drop its held ball")
	}
}
