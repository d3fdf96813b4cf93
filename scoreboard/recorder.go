package scoreboard

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/lixenwraith/brickbreaker/core"
)

// LeaderboardSize is the number of runs kept in the cached leaderboard
const LeaderboardSize = 10

const (
	recorderQueue   = 32
	recorderTimeout = 2 * time.Second
)

// Recorder saves records on a worker goroutine so the game loop never blocks on storage
// After each save the leaderboard snapshot is refreshed
type Recorder struct {
	store   Store
	timeout time.Duration
	queue   chan Record
	done    chan struct{}

	mu      sync.RWMutex
	leaders []Entry
	failed  int
	closed  bool
}

// NewRecorder starts the worker; timeout bounds each store call
func NewRecorder(store Store, timeout time.Duration) *Recorder {
	if timeout <= 0 {
		timeout = recorderTimeout
	}
	r := &Recorder{
		store:   store,
		timeout: timeout,
		queue:   make(chan Record, recorderQueue),
		done:    make(chan struct{}),
	}
	core.Go(r.run)
	return r
}

// Submit queues a record without blocking; returns false when dropped
func (r *Recorder) Submit(rec Record) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return false
	}
	select {
	case r.queue <- rec:
		return true
	default:
		log.Printf("[SCORE] queue full, dropped run %s level %d", rec.RunID, rec.Level)
		return false
	}
}

// Leaders returns a copy of the latest leaderboard snapshot
func (r *Recorder) Leaders() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry, len(r.leaders))
	copy(out, r.leaders)
	return out
}

// Failures returns how many store calls failed
func (r *Recorder) Failures() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.failed
}

// Refresh queues a leaderboard reload without a record
func (r *Recorder) Refresh() {
	r.Submit(Record{})
}

// Close flushes queued records, stops the worker and closes the store
func (r *Recorder) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	close(r.queue)
	r.mu.Unlock()

	<-r.done
	return r.store.Close()
}

func (r *Recorder) run() {
	defer close(r.done)
	for rec := range r.queue {
		if rec.Level > 0 {
			r.save(rec)
		}
		r.reload()
	}
}

func (r *Recorder) save(rec Record) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	if err := r.store.Save(ctx, rec); err != nil {
		log.Printf("[SCORE] save failed: %v", err)
		r.fail()
		return
	}
	log.Printf("[SCORE] saved run %s level %d score %d (%s)", rec.RunID, rec.Level, rec.Score, rec.Reason)
}

func (r *Recorder) reload() {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	top, err := r.store.Top(ctx, LeaderboardSize)
	if err != nil {
		log.Printf("[SCORE] leaderboard failed: %v", err)
		r.fail()
		return
	}
	r.mu.Lock()
	r.leaders = top
	r.mu.Unlock()
}

func (r *Recorder) fail() {
	r.mu.Lock()
	r.failed++
	r.mu.Unlock()
}
