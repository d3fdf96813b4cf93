package engine

import (
	"testing"

	"github.com/lixenwraith/brickbreaker/core"
	"github.com/lixenwraith/brickbreaker/event"
)

type testComponent struct {
	Value int
}

func drainKinds(t *testing.T, s *Store[testComponent], r event.ReaderID) []event.ChangeKind {
	t.Helper()
	var kinds []event.ChangeKind
	for _, c := range s.Changes().Read(r) {
		kinds = append(kinds, c.Kind)
	}
	return kinds
}

// TestStoreChangeTracking verifies each write path logs the expected change kind
func TestStoreChangeTracking(t *testing.T) {
	s := NewStore[testComponent]()
	r := s.Changes().Register()
	e := core.Entity{ID: 1, Gen: 1}

	s.Insert(e, testComponent{Value: 1})
	s.Set(e, testComponent{Value: 2})
	s.Mutate(e, func(c *testComponent) { c.Value++ })
	s.SetUnflagged(e, testComponent{Value: 10})
	s.Insert(e, testComponent{Value: 11})
	s.Remove(e)

	want := []event.ChangeKind{
		event.ComponentInserted,
		event.ComponentModified,
		event.ComponentModified,
		event.ComponentInserted,
		event.ComponentRemoved,
	}
	got := drainKinds(t, s, r)
	if len(got) != len(want) {
		t.Fatalf("Expected %d changes, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("change %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

// TestStoreUnflaggedWrite verifies SetUnflagged updates the value silently
func TestStoreUnflaggedWrite(t *testing.T) {
	s := NewStore[testComponent]()
	e := core.Entity{ID: 1, Gen: 1}
	s.Insert(e, testComponent{Value: 1})
	r := s.Changes().Register()

	if !s.SetUnflagged(e, testComponent{Value: 5}) {
		t.Fatal("Expected SetUnflagged to succeed")
	}
	if v, _ := s.Get(e); v.Value != 5 {
		t.Errorf("Expected 5, got %d", v.Value)
	}
	if s.Changes().Pending(r) != 0 {
		t.Error("Expected no change logged by SetUnflagged")
	}
}

// TestStoreMissingEntity verifies writes to absent components fail without logging
func TestStoreMissingEntity(t *testing.T) {
	s := NewStore[testComponent]()
	r := s.Changes().Register()
	e := core.Entity{ID: 3, Gen: 1}

	if s.Set(e, testComponent{}) || s.Mutate(e, func(*testComponent) {}) || s.SetUnflagged(e, testComponent{}) || s.Remove(e) {
		t.Error("Expected writes to a missing component to fail")
	}
	if s.Changes().Pending(r) != 0 {
		t.Error("Expected no changes for a missing component")
	}
}

// TestStoreSwapRemove verifies removal keeps the remaining entries addressable
func TestStoreSwapRemove(t *testing.T) {
	s := NewStore[testComponent]()
	es := []core.Entity{{ID: 1, Gen: 1}, {ID: 2, Gen: 1}, {ID: 3, Gen: 1}}
	for i, e := range es {
		s.Insert(e, testComponent{Value: i})
	}
	s.Remove(es[0])

	if s.Count() != 2 {
		t.Fatalf("Expected 2 components, got %d", s.Count())
	}
	for i, e := range es[1:] {
		v, ok := s.Get(e)
		if !ok || v.Value != i+1 {
			t.Errorf("entity %v: expected %d, got %d (ok=%v)", e, i+1, v.Value, ok)
		}
	}
}

// TestStoreGenerationDistinct verifies a recycled id with a new generation is a different key
func TestStoreGenerationDistinct(t *testing.T) {
	s := NewStore[testComponent]()
	old := core.Entity{ID: 1, Gen: 1}
	recycled := core.Entity{ID: 1, Gen: 2}
	s.Insert(old, testComponent{Value: 1})

	if s.Has(recycled) {
		t.Error("Expected recycled entity to have no component")
	}
}
