package scoreboard

import (
	"context"
	"log"

	"github.com/lixenwraith/brickbreaker/config"
)

// Service owns the score store and its recorder for the process lifetime
// An unreachable backend degrades to NopStore so the game still runs
type Service struct {
	cfg      config.ScoreboardConfig
	store    Store
	recorder *Recorder
	live     bool
}

// NewService creates a scoreboard service for cfg
func NewService(cfg config.ScoreboardConfig) *Service {
	return &Service{cfg: cfg}
}

// Name implements Service
func (s *Service) Name() string {
	return "scoreboard"
}

// Dependencies implements Service
func (s *Service) Dependencies() []string {
	return nil
}

// Init implements Service
// Connects to the configured backend within cfg.Timeout
func (s *Service) Init(ctx context.Context) error {
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	store, err := New(ctx, s.cfg)
	if err != nil {
		log.Printf("[SCORE] %s backend unavailable, scores not kept: %v", s.cfg.Backend, err)
		store = NopStore{}
	}
	s.store = store
	_, nop := store.(NopStore)
	s.live = !nop
	return nil
}

// Start implements Service
// Launches the recorder worker and queues the first leaderboard load
func (s *Service) Start() error {
	if s.recorder != nil {
		return nil
	}
	if s.store == nil {
		s.store = NopStore{}
	}
	s.recorder = NewRecorder(s.store, s.cfg.Timeout)
	s.recorder.Refresh()
	return nil
}

// Stop implements Service
// Flushes pending records before closing the store
func (s *Service) Stop() error {
	if s.recorder != nil {
		err := s.recorder.Close()
		s.recorder = nil
		s.store = nil
		return err
	}
	if s.store != nil {
		err := s.store.Close()
		s.store = nil
		return err
	}
	return nil
}

// Recorder returns the running recorder, nil before Start
func (s *Service) Recorder() *Recorder {
	return s.recorder
}

// Live reports whether records reach a real backend
func (s *Service) Live() bool {
	return s.live
}
