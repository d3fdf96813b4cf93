// Package scoreboard persists finished runs and serves the leaderboard
package scoreboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/brickbreaker/config"
)

// ErrUnknownBackend is returned by New for an unsupported backend name
var ErrUnknownBackend = errors.New("unknown scoreboard backend")

// Reason a record was written
const (
	ReasonLevelClear = "level_clear"
	ReasonGameOver   = "game_over"
)

// Record is one scored level attempt
type Record struct {
	RunID  uuid.UUID
	Level  int
	Score  int64
	Reason string
	At     time.Time
}

// Entry is one leaderboard row, best score per run
type Entry struct {
	Rank  int
	RunID uuid.UUID
	Level int
	Score int64
}

// Store persists records and ranks runs by best score
type Store interface {
	Save(ctx context.Context, r Record) error
	Top(ctx context.Context, n int) ([]Entry, error)
	Close() error
}

// New opens the store selected by cfg.Backend
func New(ctx context.Context, cfg config.ScoreboardConfig) (Store, error) {
	switch cfg.Backend {
	case "", config.BackendNone:
		return NopStore{}, nil
	case config.BackendRedis:
		return NewRedisStore(ctx, cfg.Redis)
	case config.BackendPostgres:
		return NewPostgresStore(ctx, cfg.Postgres.DSN())
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}

// NopStore discards records and has no leaderboard
type NopStore struct{}

func (NopStore) Save(context.Context, Record) error        { return nil }
func (NopStore) Top(context.Context, int) ([]Entry, error) { return nil, nil }
func (NopStore) Close() error                              { return nil }
