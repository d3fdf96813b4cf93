// Package game wires the world, physics bridge, resources and systems into a fixed-step simulation
package game

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/brickbreaker/engine"
	"github.com/lixenwraith/brickbreaker/event"
	"github.com/lixenwraith/brickbreaker/input"
	"github.com/lixenwraith/brickbreaker/parameter"
	"github.com/lixenwraith/brickbreaker/physics"
	"github.com/lixenwraith/brickbreaker/render"
	"github.com/lixenwraith/brickbreaker/status"
	"github.com/lixenwraith/brickbreaker/system"
)

// Options configures a new game
type Options struct {
	Width      float64
	Height     float64
	TickRate   int
	Lives      int
	StartLevel int

	Loader system.LevelLoader
	Audio  engine.AudioPlayer
	Status *status.Registry
}

// RunEnd describes a finished level attempt: cleared, or lost at game over
type RunEnd struct {
	Level    int
	Score    int64
	GameOver bool
}

// Game owns one world and advances it one fixed step per Tick
// Not safe for concurrent use; the caller's loop drives Tick and Draw
type Game struct {
	World  *engine.World
	Bridge *physics.Bridge
	Run    *engine.RunState
	Input  *input.State
	Status *status.Registry

	// OnRunEnd observes cleared levels and game overs, called from Tick
	OnRunEnd func(RunEnd)

	time    *engine.TimeResource
	events  *engine.EventResource
	queue   *render.Queue
	sprites *system.SpriteRenderer

	gameOver bool

	statTick   *atomic.Int64
	statTickNs *atomic.Int64
	statLevel  *atomic.Int64
}

// New builds the world and registers systems in tick order
// The start level is requested immediately and loaded on the first tick
func New(opts Options) *Game {
	if opts.TickRate <= 0 {
		opts.TickRate = parameter.TickRate
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = parameter.LevelWidth, parameter.LevelHeight
	}
	if opts.Lives <= 0 {
		opts.Lives = parameter.PlayerDefaultLives
	}
	if opts.StartLevel <= 0 {
		opts.StartLevel = parameter.FirstLevel
	}
	if opts.Status == nil {
		opts.Status = status.NewRegistry()
	}

	w := engine.NewWorld()
	g := &Game{
		World:  w,
		Run:    engine.NewRunState(opts.Width, opts.Height, opts.Lives),
		Input:  input.NewState(),
		Status: opts.Status,
		time:   &engine.TimeResource{DeltaTime: time.Second / time.Duration(opts.TickRate)},
		events: &engine.EventResource{Spawn: event.NewChannel[event.SpawnBall](parameter.SpawnLogCapacity)},
		queue:  render.NewQueue(),

		statTick:   opts.Status.Ints.Get("game.tick"),
		statTickNs: opts.Status.Ints.Get("game.tick_ns"),
		statLevel:  opts.Status.Ints.Get("game.level"),
	}

	engine.AddResource(w.Resources, g.time)
	engine.AddResource(w.Resources, g.Run)
	engine.AddResource(w.Resources, &engine.InputResource{State: g.Input})
	engine.AddResource(w.Resources, g.events)
	engine.AddResource(w.Resources, &engine.AudioResource{Player: opts.Audio})
	engine.AddResource(w.Resources, &engine.RenderResource{Queue: g.queue})
	engine.AddResource(w.Resources, opts.Status)

	// Bridge readers must exist before the collision consumers register theirs
	g.Bridge = physics.NewBridge(w, opts.Status)
	collisions := g.Bridge.Collisions()

	levels := system.NewLevelSystem(w, opts.Loader, opts.StartLevel)
	levels.OnLoad = g.levelEnded

	w.AddSystem(levels)
	w.AddSystem(system.NewPaddleSystem(w))
	w.AddSystem(system.NewBallDriveSystem(w))
	w.AddSystem(system.NewPhysicsSendSystem(g.Bridge))
	w.AddSystem(system.NewPhysicsStepSystem(w, g.Bridge))
	w.AddSystem(system.NewBallCollisionSystem(w, collisions))
	w.AddSystem(system.NewBrickSystem(w, collisions))
	w.AddSystem(system.NewPhysicsReceiveSystem(g.Bridge))
	w.AddSystem(system.NewSpawnSystem(w))

	g.sprites = system.NewSpriteRenderer(w)

	g.Run.RequestLoad(event.LoadLevel{Level: opts.StartLevel})
	log.Printf("[GAME] world ready: %vx%v px, %d Hz, %d systems",
		opts.Width, opts.Height, opts.TickRate, len(w.Systems()))
	return g
}

// Tick advances the simulation by one fixed step
func (g *Game) Tick() {
	start := time.Now()

	g.queue.Clear()
	g.World.Update()
	g.World.Maintain()

	g.Bridge.Collisions().Rotate()
	g.events.Spawn.Rotate()
	g.World.RotateChanges()
	g.Input.EndTick()
	g.time.Tick++

	g.checkGameOver()

	g.statTick.Store(g.time.Tick)
	g.statTickNs.Store(time.Since(start).Nanoseconds())
	g.statLevel.Store(int64(g.Run.Level))
}

// Draw returns the layer-sorted draw commands blended alpha of the way into the next tick
func (g *Game) Draw(alpha float64) []render.DrawCommand {
	g.time.Alpha = alpha
	g.sprites.Render(alpha)
	return g.queue.Drain()
}

// TickCount returns the number of completed ticks
func (g *Game) TickCount() int64 {
	return g.time.Tick
}

// StepDuration returns the fixed simulation step
func (g *Game) StepDuration() time.Duration {
	return g.time.DeltaTime
}

func (g *Game) checkGameOver() {
	if !g.Run.GameOver {
		g.gameOver = false
		return
	}
	if g.gameOver {
		return
	}
	g.gameOver = true
	log.Printf("[GAME] game over on level %d, score %d", g.Run.Level, g.Run.Score)
	g.endRun(RunEnd{Level: g.Run.Level, Score: g.Run.Score, GameOver: true})
}

// levelEnded records a cleared level before the loader resets the run
// Restarts after game over were already recorded when the game ended
func (g *Game) levelEnded(run engine.RunState, req event.LoadLevel) {
	if req.Restart {
		return
	}
	g.endRun(RunEnd{Level: run.Level, Score: run.Score})
}

func (g *Game) endRun(end RunEnd) {
	if g.OnRunEnd != nil {
		g.OnRunEnd(end)
	}
}
