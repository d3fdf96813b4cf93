package scoreboard

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/lixenwraith/brickbreaker/config"
)

// runTTL bounds how long per-run detail hashes are kept
const runTTL = 30 * 24 * time.Hour

// RedisStore keeps the leaderboard in a sorted set keyed by run id
// Per-run details live in a hash next to it
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore connects and pings the server
func NewRedisStore(ctx context.Context, cfg config.RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	log.Printf("[SCORE] connected to redis %s", cfg.Addr)
	return &RedisStore{client: client, key: cfg.Key}, nil
}

// runKey names the detail hash of a run
func runKey(base string, id uuid.UUID) string {
	return base + ":run:" + id.String()
}

// Save raises the run's score in the sorted set, keeping the best, and updates its details
func (s *RedisStore) Save(ctx context.Context, r Record) error {
	member := r.RunID.String()

	best, err := s.client.ZScore(ctx, s.key, member).Result()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("redis zscore: %w", err)
	}
	if err == nil && float64(r.Score) <= best {
		return nil
	}

	detail := runKey(s.key, r.RunID)
	pipe := s.client.TxPipeline()
	pipe.ZAdd(ctx, s.key, &redis.Z{Score: float64(r.Score), Member: member})
	pipe.HSet(ctx, detail,
		"level", r.Level,
		"score", r.Score,
		"reason", r.Reason,
		"at", r.At.UTC().Format(time.RFC3339))
	pipe.Expire(ctx, detail, runTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis save run %s: %w", member, err)
	}
	return nil
}

// Top returns the n best runs, highest first
func (s *RedisStore) Top(ctx context.Context, n int) ([]Entry, error) {
	members, err := s.client.ZRevRangeWithScores(ctx, s.key, 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis zrevrange: %w", err)
	}

	entries := make([]Entry, 0, len(members))
	for i, m := range members {
		name, ok := m.Member.(string)
		if !ok {
			continue
		}
		id, err := uuid.Parse(name)
		if err != nil {
			continue
		}
		entry := Entry{Rank: i + 1, RunID: id, Score: int64(m.Score)}

		level, err := s.client.HGet(ctx, runKey(s.key, id), "level").Result()
		switch {
		case err == redis.Nil:
		case err != nil:
			return nil, fmt.Errorf("redis hget: %w", err)
		default:
			entry.Level, _ = strconv.Atoi(level)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
