package audio

import (
	"context"
	"log"
	"sync/atomic"

	"github.com/lixenwraith/brickbreaker/engine"
)

// AudioService wraps SoundManager as a Service
// Handles graceful degradation when no audio backend is available
type AudioService struct {
	cfg      *AudioConfig
	manager  *SoundManager
	disabled atomic.Bool
}

// NewService creates a new audio service
func NewService(cfg *AudioConfig) *AudioService {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &AudioService{cfg: cfg}
}

// Name implements Service
func (s *AudioService) Name() string {
	return "audio"
}

// Dependencies implements Service
func (s *AudioService) Dependencies() []string {
	return nil
}

// Init implements Service
// A disabled config leaves the service silent without error
func (s *AudioService) Init(context.Context) error {
	if !s.cfg.Enabled {
		s.disabled.Store(true)
		return nil
	}
	s.manager = NewSoundManager(s.cfg)
	return nil
}

// Start implements Service
// Opens the speaker; sets disabled on failure (no error returned)
func (s *AudioService) Start() error {
	if s.disabled.Load() || s.manager == nil {
		return nil
	}
	if err := s.manager.Initialize(); err != nil {
		log.Printf("[AUDIO] init failed, continuing without sound: %v", err)
		s.disabled.Store(true)
		s.manager = nil
	}
	return nil
}

// Stop implements Service
func (s *AudioService) Stop() error {
	if s.manager != nil {
		s.manager.Cleanup()
	}
	return nil
}

// IsDisabled returns true if audio is unavailable
func (s *AudioService) IsDisabled() bool {
	return s.disabled.Load()
}

// Manager returns the sound manager, nil while disabled
func (s *AudioService) Manager() *SoundManager {
	if s.disabled.Load() {
		return nil
	}
	return s.manager
}

// Player returns the sink for game systems; a NullPlayer while disabled
func (s *AudioService) Player() engine.AudioPlayer {
	if m := s.Manager(); m != nil {
		return m
	}
	return NullPlayer{}
}
