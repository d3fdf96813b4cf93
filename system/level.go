package system

import (
	"log"

	"github.com/lixenwraith/brickbreaker/engine"
	"github.com/lixenwraith/brickbreaker/event"
	"github.com/lixenwraith/brickbreaker/input"
	"github.com/lixenwraith/brickbreaker/parameter"
)

// LevelLoader rebuilds the world for a level request
// Implementations clear the world, repopulate it, and reset the run state
type LevelLoader interface {
	Load(w *engine.World, req event.LoadLevel) error
}

// LevelSystem hands pending level-load requests to the loader at the start of a tick
// It also turns a restart key after game over into a restart request
type LevelSystem struct {
	engine.SystemBase

	loader     LevelLoader
	startLevel int

	// OnLoad observes the finished run state before the loader resets it
	OnLoad func(run engine.RunState, req event.LoadLevel)
}

// NewLevelSystem creates a new level system
func NewLevelSystem(world *engine.World, loader LevelLoader, startLevel int) *LevelSystem {
	return &LevelSystem{
		SystemBase: engine.NewSystemBase(world),
		loader:     loader,
		startLevel: startLevel,
	}
}

func (s *LevelSystem) Name() string {
	return "level"
}

func (s *LevelSystem) Priority() int {
	return parameter.PriorityLevel
}

func (s *LevelSystem) Update() {
	run := s.Resource.Run
	if run.GameOver && s.Resource.Input.State.PressedAny(input.KeyR, input.KeyEnter) {
		run.RequestLoad(event.LoadLevel{Level: s.startLevel, Restart: true})
	}
	if run.PendingLoad == nil {
		return
	}

	req := *run.PendingLoad
	if s.OnLoad != nil && run.Level > 0 {
		s.OnLoad(*run, req)
	}
	if err := s.loader.Load(s.World, req); err != nil {
		log.Printf("[LEVEL] load %d failed: %v", req.Level, err)
		run.PendingLoad = nil
		run.GameOver = true
	}
}
