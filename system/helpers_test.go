package system

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/brickbreaker/component"
	"github.com/lixenwraith/brickbreaker/core"
	"github.com/lixenwraith/brickbreaker/engine"
	"github.com/lixenwraith/brickbreaker/event"
	"github.com/lixenwraith/brickbreaker/input"
	"github.com/lixenwraith/brickbreaker/parameter"
	"github.com/lixenwraith/brickbreaker/render"
	"github.com/lixenwraith/brickbreaker/status"
)

// recordingAudio captures played sounds in order
type recordingAudio struct {
	played []core.SoundType
}

func (a *recordingAudio) Play(sound core.SoundType) {
	a.played = append(a.played, sound)
}

func (a *recordingAudio) count(sound core.SoundType) int {
	n := 0
	for _, s := range a.played {
		if s == sound {
			n++
		}
	}
	return n
}

// testEnv is a world with every resource a system needs and a hand-fed collision log
type testEnv struct {
	world      *engine.World
	run        *engine.RunState
	input      *input.State
	events     *engine.EventResource
	audio      *recordingAudio
	collisions *event.Channel[event.Collision]
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	w := engine.NewWorld()
	env := &testEnv{
		world:      w,
		run:        engine.NewRunState(parameter.LevelWidth, parameter.LevelHeight, 3),
		input:      input.NewState(),
		events:     &engine.EventResource{Spawn: event.NewChannel[event.SpawnBall](parameter.SpawnLogCapacity)},
		audio:      &recordingAudio{},
		collisions: event.NewChannel[event.Collision](parameter.CollisionLogCapacity),
	}
	env.run.Level = 1

	engine.AddResource(w.Resources, &engine.TimeResource{DeltaTime: time.Second / parameter.TickRate})
	engine.AddResource(w.Resources, env.run)
	engine.AddResource(w.Resources, &engine.InputResource{State: env.input})
	engine.AddResource(w.Resources, env.events)
	engine.AddResource(w.Resources, &engine.AudioResource{Player: env.audio})
	engine.AddResource(w.Resources, &engine.RenderResource{Queue: render.NewQueue()})
	engine.AddResource(w.Resources, status.NewRegistry())
	return env
}

// addBall inserts a free ball directly into the stores
func (env *testEnv) addBall(pos, vel mgl64.Vec2) core.Entity {
	w := env.world
	e := w.CreateEntity()
	w.Components.Transform.Insert(e, component.NewTransform(pos))
	w.Components.Rigidbody.Insert(e, component.RigidbodyComponent{Velocity: vel, Mass: 1})
	w.Components.Ball.Insert(e, component.BallComponent{LastPos: pos, Velocity: vel, Radius: parameter.BallRadius})
	return e
}

// addPaddle inserts a paddle centered at pos
func (env *testEnv) addPaddle(pos mgl64.Vec2) core.Entity {
	w := env.world
	e := w.CreateEntity()
	w.Components.Transform.Insert(e, component.NewTransform(pos))
	w.Components.Paddle.Insert(e, component.PaddleComponent{
		HeldBallPosition: mgl64.Vec2{pos.X(), pos.Y() - parameter.PaddleHalfHeight - parameter.BallRadius - parameter.HeldBallMargin},
		LevelWidth:       env.run.Width,
		HalfWidth:        parameter.PaddleHalfWidth,
		HalfHeight:       parameter.PaddleHalfHeight,
	})
	env.run.Paddle = e.Ref()
	return e
}

// addBrick inserts a brick with hp hit points, non-positive for indestructible
func (env *testEnv) addBrick(pos mgl64.Vec2, hp int32) core.Entity {
	w := env.world
	e := w.CreateEntity()
	w.Components.Transform.Insert(e, component.NewTransform(pos))
	w.Components.Brick.Insert(e, component.NewBrick(component.BrickGreen, hp))
	return e
}

// addWall inserts a plain obstacle
func (env *testEnv) addWall(pos mgl64.Vec2) core.Entity {
	e := env.world.CreateEntity()
	env.world.Components.Transform.Insert(e, component.NewTransform(pos))
	return e
}

func (env *testEnv) collide(a, b core.Entity, normal, point *mgl64.Vec2) {
	env.collisions.Write(event.Collision{EntityA: a.Ref(), EntityB: b.Ref(), Normal: normal, Point: point})
}

func vec(x, y float64) *mgl64.Vec2 {
	v := mgl64.Vec2{x, y}
	return &v
}

func approx(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9
}

func approxVec(a, b mgl64.Vec2) bool {
	return approx(a.X(), b.X()) && approx(a.Y(), b.Y())
}
