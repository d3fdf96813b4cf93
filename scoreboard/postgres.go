package scoreboard

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

const (
	createRunsTable = `
		CREATE TABLE IF NOT EXISTS runs (
			id         BIGSERIAL PRIMARY KEY,
			run_id     UUID        NOT NULL,
			level      INTEGER     NOT NULL,
			score      BIGINT      NOT NULL,
			reason     TEXT        NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`

	insertRun = `
		INSERT INTO runs (run_id, level, score, reason, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	selectTop = `
		SELECT run_id, MAX(level) AS level, MAX(score) AS best
		FROM runs
		GROUP BY run_id
		ORDER BY best DESC
		LIMIT $1`
)

// PostgresStore appends every record to a run history table
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens the database, pings it and ensures the table exists
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := db.ExecContext(ctx, createRunsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create runs table: %w", err)
	}
	log.Printf("[SCORE] connected to postgres")
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Save(ctx context.Context, r Record) error {
	_, err := s.db.ExecContext(ctx, insertRun, r.RunID.String(), r.Level, r.Score, r.Reason, r.At)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", r.RunID, err)
	}
	return nil
}

func (s *PostgresStore) Top(ctx context.Context, n int) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, selectTop, n)
	if err != nil {
		return nil, fmt.Errorf("query top runs: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			id    string
			entry Entry
		)
		if err := rows.Scan(&id, &entry.Level, &entry.Score); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if entry.RunID, err = uuid.Parse(id); err != nil {
			continue
		}
		entry.Rank = len(entries) + 1
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
