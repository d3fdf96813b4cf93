package system

import (
	"sync/atomic"

	"github.com/lixenwraith/brickbreaker/component"
	"github.com/lixenwraith/brickbreaker/engine"
	"github.com/lixenwraith/brickbreaker/event"
	"github.com/lixenwraith/brickbreaker/parameter"
	"github.com/lixenwraith/brickbreaker/prefab"
)

// SpawnSystem drains spawn requests after physics receive and creates balls
// Components land at the end-of-tick Maintain, the bridge materializes them next tick
type SpawnSystem struct {
	engine.SystemBase

	reader event.ReaderID

	statSpawned *atomic.Int64
}

// NewSpawnSystem creates a new spawn system
// Must be constructed before the first tick
func NewSpawnSystem(world *engine.World) *SpawnSystem {
	s := &SpawnSystem{SystemBase: engine.NewSystemBase(world)}
	s.reader = s.Resource.Event.Spawn.Register()
	s.statSpawned = s.Resource.Status.Ints.Get("ball.spawned")
	return s
}

func (s *SpawnSystem) Name() string {
	return "spawn"
}

func (s *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

func (s *SpawnSystem) Update() {
	for _, req := range s.Resource.Event.Spawn.Read(s.reader) {
		s.spawnBall(req)
	}
}

func (s *SpawnSystem) spawnBall(req event.SpawnBall) {
	pos := req.Position
	holder := req.Paddle
	if holder != nil {
		paddle, ok := s.Component.Paddle.Get(*holder)
		if !ok || !s.World.Alive(*holder) || s.World.Deleting(*holder) {
			holder = nil
		} else {
			pos = paddle.HeldBallPosition
		}
	}

	e := prefab.Ball(s.World, pos, req.Velocity, holder)
	if holder != nil {
		s.Component.Paddle.Mutate(*holder, func(p *component.PaddleComponent) {
			p.HeldBall = e.Ref()
		})
	}
	s.statSpawned.Add(1)
}
