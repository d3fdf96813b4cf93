package scoreboard

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/brickbreaker/config"
)

// memStore is an in-memory Store keeping the best score per run
type memStore struct {
	mu      sync.Mutex
	records []Record
	best    map[uuid.UUID]Record
	saveErr error
	closed  bool
}

func newMemStore() *memStore {
	return &memStore{best: make(map[uuid.UUID]Record)}
}

func (m *memStore) Save(_ context.Context, r Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.records = append(m.records, r)
	if cur, ok := m.best[r.RunID]; !ok || r.Score > cur.Score {
		m.best[r.RunID] = r
	}
	return nil
}

func (m *memStore) Top(_ context.Context, n int) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entries := make([]Entry, 0, len(m.best))
	for id, r := range m.best {
		entries = append(entries, Entry{RunID: id, Level: r.Level, Score: r.Score})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Score > entries[j].Score })
	if len(entries) > n {
		entries = entries[:n]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

func (m *memStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *memStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

func TestRecorderFlushesOnClose(t *testing.T) {
	store := newMemStore()
	rec := NewRecorder(store, time.Second)

	run := uuid.New()
	for i := 1; i <= 3; i++ {
		if !rec.Submit(Record{RunID: run, Level: i, Score: int64(i * 100), Reason: ReasonLevelClear, At: time.Now()}) {
			t.Fatalf("submit %d dropped", i)
		}
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if got := store.count(); got != 3 {
		t.Errorf("saved %d records, want 3", got)
	}
	if !store.closed {
		t.Error("store should be closed")
	}
	leaders := rec.Leaders()
	if len(leaders) != 1 || leaders[0].Score != 300 || leaders[0].Rank != 1 {
		t.Errorf("leaders = %+v, want one run with best 300", leaders)
	}
}

func TestRecorderLeaderboardOrder(t *testing.T) {
	store := newMemStore()
	rec := NewRecorder(store, time.Second)

	scores := []int64{500, 1200, 300}
	for _, s := range scores {
		rec.Submit(Record{RunID: uuid.New(), Level: 1, Score: s, Reason: ReasonGameOver})
	}
	rec.Close()

	leaders := rec.Leaders()
	if len(leaders) != 3 {
		t.Fatalf("leaders = %d, want 3", len(leaders))
	}
	for i := 1; i < len(leaders); i++ {
		if leaders[i-1].Score < leaders[i].Score {
			t.Errorf("leaders not descending: %+v", leaders)
		}
	}
}

func TestRecorderSubmitAfterClose(t *testing.T) {
	rec := NewRecorder(newMemStore(), time.Second)
	rec.Close()
	if rec.Submit(Record{RunID: uuid.New(), Level: 1}) {
		t.Error("submit after close should be dropped")
	}
	if err := rec.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestRecorderCountsFailures(t *testing.T) {
	store := newMemStore()
	store.saveErr = errors.New("disk full")
	rec := NewRecorder(store, time.Second)
	rec.Submit(Record{RunID: uuid.New(), Level: 1, Score: 10})
	rec.Close()
	if rec.Failures() != 1 {
		t.Errorf("Failures = %d, want 1", rec.Failures())
	}
}

func TestRecorderRefreshSkipsSave(t *testing.T) {
	store := newMemStore()
	rec := NewRecorder(store, time.Second)
	rec.Refresh()
	rec.Close()
	if store.count() != 0 {
		t.Errorf("refresh saved %d records", store.count())
	}
}

func TestNewBackends(t *testing.T) {
	store, err := New(context.Background(), config.ScoreboardConfig{Backend: config.BackendNone})
	if err != nil {
		t.Fatalf("New(none): %v", err)
	}
	if _, ok := store.(NopStore); !ok {
		t.Errorf("New(none) = %T, want NopStore", store)
	}

	_, err = New(context.Background(), config.ScoreboardConfig{Backend: "sqlite"})
	if !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("New(sqlite) = %v, want ErrUnknownBackend", err)
	}
}

func TestRunKey(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	want := "brickbreaker:scores:run:6ba7b810-9dad-11d1-80b4-00c04fd430c8"
	if got := runKey("brickbreaker:scores", id); got != want {
		t.Errorf("runKey = %q, want %q", got, want)
	}
}

// TestServiceLifecycle verifies the service runs a recorder over the selected store and stops cleanly
func TestServiceLifecycle(t *testing.T) {
	s := NewService(config.ScoreboardConfig{Backend: config.BackendNone, Timeout: time.Second})
	if err := s.Init(context.Background()); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if s.Live() {
		t.Error("none backend must not be live")
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	rec := s.Recorder()
	if rec == nil {
		t.Fatal("Recorder is nil after Start")
	}
	if !rec.Submit(Record{RunID: uuid.New(), Level: 1, Score: 5}) {
		t.Error("Submit rejected on a running service")
	}
	if err := s.Stop(); err != nil {
		t.Errorf("Stop: %v", err)
	}
	if err := s.Stop(); err != nil {
		t.Errorf("second Stop: %v", err)
	}
	if s.Recorder() != nil {
		t.Error("Recorder should be released after Stop")
	}
}

// TestServiceDegradesOnBadBackend verifies an unusable backend falls back to NopStore without failing Init
func TestServiceDegradesOnBadBackend(t *testing.T) {
	s := NewService(config.ScoreboardConfig{Backend: "sqlite", Timeout: time.Second})
	if err := s.Init(context.Background()); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if _, ok := s.store.(NopStore); !ok || s.Live() {
		t.Errorf("store = %T live=%v, want NopStore and not live", s.store, s.Live())
	}
	if err := s.Stop(); err != nil {
		t.Errorf("Stop before Start: %v", err)
	}
}
