package engine

import (
	"github.com/lixenwraith/brickbreaker/core"
	"github.com/lixenwraith/brickbreaker/event"
)

// RunState is the process-wide level and run bookkeeping
// Mutated by the ball and brick systems, reset by the level collaborator on every load
type RunState struct {
	Score  int64
	Lives  int
	Level  int
	Paddle *core.Entity

	// PendingLoad is consumed by the level collaborator
	PendingLoad *event.LoadLevel

	// Playfield in pixels
	Width  float64
	Height float64

	GameOver bool

	// StartLives is the lives count restored by Reset
	StartLives int
}

// NewRunState creates the run state for a playfield
func NewRunState(width, height float64, lives int) *RunState {
	return &RunState{
		Lives:      lives,
		Width:      width,
		Height:     height,
		StartLives: lives,
	}
}

// Reset starts a level: score and lives restored, paddle rebound, pending load cleared
func (s *RunState) Reset(level int, paddle core.Entity) {
	s.Score = 0
	s.Lives = s.StartLives
	s.Level = level
	s.Paddle = paddle.Ref()
	s.PendingLoad = nil
	s.GameOver = false
}

// RequestLoad queues a level load unless one is already pending
// Returns false when suppressed
func (s *RunState) RequestLoad(req event.LoadLevel) bool {
	if s.PendingLoad != nil {
		return false
	}
	s.PendingLoad = &req
	return true
}

// LoseLife decrements lives and flags game over at zero
// Returns true while lives remain
func (s *RunState) LoseLife() bool {
	if s.Lives > 0 {
		s.Lives--
	}
	if s.Lives == 0 {
		s.GameOver = true
		return false
	}
	return true
}
