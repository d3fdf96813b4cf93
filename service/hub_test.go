package service

import (
	"context"
	"errors"
	"testing"
)

// fakeService appends lifecycle calls to a shared journal
type fakeService struct {
	name    string
	deps    []string
	initErr error
	journal *[]string
}

func (f *fakeService) Name() string           { return f.name }
func (f *fakeService) Dependencies() []string { return f.deps }

func (f *fakeService) Init(context.Context) error {
	f.log("init")
	return f.initErr
}

func (f *fakeService) Start() error {
	f.log("start")
	return nil
}

func (f *fakeService) Stop() error {
	f.log("stop")
	return nil
}

func (f *fakeService) log(op string) {
	*f.journal = append(*f.journal, op+":"+f.name)
}

func equalJournal(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, got)
		}
	}
}

// TestHubLifecycleOrder verifies dependencies init and start first and stop last
func TestHubLifecycleOrder(t *testing.T) {
	var journal []string
	h := NewHub()
	h.Register(&fakeService{name: "scoreboard", deps: []string{"audio"}, journal: &journal})
	h.Register(&fakeService{name: "audio", journal: &journal})

	if err := h.InitAll(context.Background()); err != nil {
		t.Fatalf("InitAll failed: %v", err)
	}
	if err := h.StartAll(); err != nil {
		t.Fatalf("StartAll failed: %v", err)
	}
	h.StopAll()
	h.StopAll()

	equalJournal(t, journal, []string{
		"init:audio", "init:scoreboard",
		"start:audio", "start:scoreboard",
		"stop:scoreboard", "stop:audio",
	})
}

func TestHubRegisterDuplicate(t *testing.T) {
	var journal []string
	h := NewHub()
	if err := h.Register(&fakeService{name: "audio", journal: &journal}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := h.Register(&fakeService{name: "audio", journal: &journal}); err == nil {
		t.Error("Expected duplicate registration to fail")
	}
}

func TestHubDependencyErrors(t *testing.T) {
	var journal []string

	missing := NewHub()
	missing.Register(&fakeService{name: "a", deps: []string{"ghost"}, journal: &journal})
	if err := missing.InitAll(context.Background()); err == nil {
		t.Error("Expected error for unregistered dependency")
	}

	cycle := NewHub()
	cycle.Register(&fakeService{name: "a", deps: []string{"b"}, journal: &journal})
	cycle.Register(&fakeService{name: "b", deps: []string{"a"}, journal: &journal})
	if err := cycle.InitAll(context.Background()); err == nil {
		t.Error("Expected error for circular dependency")
	}
	if len(journal) != 0 {
		t.Errorf("No service may init on a bad graph, got %v", journal)
	}
}

// TestHubInitRollback verifies a failed init stops the services initialized before it
func TestHubInitRollback(t *testing.T) {
	var journal []string
	boom := errors.New("boom")
	h := NewHub()
	h.Register(&fakeService{name: "a", journal: &journal})
	h.Register(&fakeService{name: "b", deps: []string{"a"}, initErr: boom, journal: &journal})

	err := h.InitAll(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("Expected wrapped init error, got %v", err)
	}
	equalJournal(t, journal, []string{"init:a", "init:b", "stop:a"})
}

func TestHubGet(t *testing.T) {
	var journal []string
	h := NewHub()
	svc := &fakeService{name: "audio", journal: &journal}
	h.Register(svc)

	if got := MustGet[*fakeService](h, "audio"); got != svc {
		t.Error("Expected MustGet to return the registered instance")
	}
	if _, ok := h.Get("missing"); ok {
		t.Error("Expected missing service lookup to fail")
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected MustGet to panic on unknown name")
		}
	}()
	MustGet[*fakeService](h, "missing")
}
