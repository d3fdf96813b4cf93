package system

import (
	"errors"
	"testing"

	"github.com/lixenwraith/brickbreaker/core"
	"github.com/lixenwraith/brickbreaker/engine"
	"github.com/lixenwraith/brickbreaker/event"
	"github.com/lixenwraith/brickbreaker/input"
)

// fakeLoader records requests and resets the run like a real loader
type fakeLoader struct {
	requests []event.LoadLevel
	err      error
}

func (l *fakeLoader) Load(w *engine.World, req event.LoadLevel) error {
	l.requests = append(l.requests, req)
	if l.err != nil {
		return l.err
	}
	run := engine.MustGetResource[*engine.RunState](w.Resources)
	run.Reset(req.Level, core.Entity{ID: 1, Gen: 1})
	return nil
}

// TestLevelLoadsPendingOnce verifies a pending request reaches the loader exactly once
func TestLevelLoadsPendingOnce(t *testing.T) {
	env := newTestEnv(t)
	loader := &fakeLoader{}
	s := NewLevelSystem(env.world, loader, 1)

	var observed []int
	s.OnLoad = func(run engine.RunState, req event.LoadLevel) {
		observed = append(observed, run.Level)
	}

	env.run.Score = 500
	env.run.RequestLoad(event.LoadLevel{Level: 2})
	s.Update()
	s.Update()

	if len(loader.requests) != 1 || loader.requests[0].Level != 2 {
		t.Fatalf("Expected one load of level 2, got %+v", loader.requests)
	}
	if env.run.Level != 2 || env.run.PendingLoad != nil {
		t.Errorf("Expected level 2 with no pending load, got %d / %+v", env.run.Level, env.run.PendingLoad)
	}
	if len(observed) != 1 || observed[0] != 1 {
		t.Errorf("Expected OnLoad to observe level 1 before reset, got %v", observed)
	}
}

// TestLevelRestartAfterGameOver verifies the restart key requests the start level only after game over
func TestLevelRestartAfterGameOver(t *testing.T) {
	env := newTestEnv(t)
	loader := &fakeLoader{}
	s := NewLevelSystem(env.world, loader, 3)

	env.input.Tap(input.KeyR)
	s.Update()
	if len(loader.requests) != 0 {
		t.Fatalf("Restart must be ignored during play, got %+v", loader.requests)
	}

	env.run.GameOver = true
	env.input.Tap(input.KeyEnter)
	s.Update()
	if len(loader.requests) != 1 {
		t.Fatalf("Expected one restart load, got %+v", loader.requests)
	}
	if req := loader.requests[0]; req.Level != 3 || !req.Restart {
		t.Errorf("Expected restart of level 3, got %+v", req)
	}
	if env.run.GameOver {
		t.Error("Expected game over cleared by the load")
	}
}

// TestLevelLoadFailure verifies a failing loader ends the run instead of retrying every tick
func TestLevelLoadFailure(t *testing.T) {
	env := newTestEnv(t)
	loader := &fakeLoader{err: errors.New("boom")}
	s := NewLevelSystem(env.world, loader, 1)

	env.run.RequestLoad(event.LoadLevel{Level: 4})
	s.Update()
	s.Update()

	if len(loader.requests) != 1 {
		t.Errorf("Expected a single attempt, got %d", len(loader.requests))
	}
	if !env.run.GameOver || env.run.PendingLoad != nil {
		t.Errorf("Expected game over with no pending load, got over=%v pending=%+v", env.run.GameOver, env.run.PendingLoad)
	}
}
