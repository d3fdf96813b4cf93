package terminal

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/brickbreaker/core"
)

// Screen owns the tcell screen and its event poller
type Screen struct {
	tcell.Screen
	events chan tcell.Event
	once   sync.Once
}

// NewScreen initializes the real terminal
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return Wrap(s), nil
}

// Wrap adopts an already initialized screen, e.g. a simulation screen in tests
func Wrap(s tcell.Screen) *Screen {
	s.HideCursor()
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.Clear()
	return &Screen{Screen: s, events: make(chan tcell.Event, 256)}
}

// Events starts the poller on first call and returns its channel
// The channel closes when the screen is finalized
func (s *Screen) Events() <-chan tcell.Event {
	s.once.Do(func() {
		core.Go(s.poll)
	})
	return s.events
}

func (s *Screen) poll() {
	defer close(s.events)
	for {
		ev := s.PollEvent()
		if ev == nil {
			return
		}
		s.events <- ev
	}
}

// EmergencyReset writes the escape sequences that restore a usable terminal
// Used from panic handlers where the tcell screen may be in an unknown state
func EmergencyReset(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	// Show cursor, leave alternate screen, reset attributes
	fmt.Fprint(w, "\x1b[?25h\x1b[?1049l\x1b[0m")
}
