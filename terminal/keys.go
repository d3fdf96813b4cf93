package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/brickbreaker/input"
)

// Terminals deliver key-down and autorepeat only; a held key is assumed released
// when no repeat arrives inside the window
const (
	// InitialHoldWindow covers the autorepeat delay after the first press
	InitialHoldWindow = 550 * time.Millisecond

	// RepeatHoldWindow covers the gap between autorepeats
	RepeatHoldWindow = 90 * time.Millisecond
)

// KeyAction is what a mapped key does to the input snapshot
type KeyAction uint8

const (
	ActionNone KeyAction = iota
	// ActionHold keys stay held until the hold window lapses
	ActionHold
	// ActionTap keys register a single press
	ActionTap
)

// Translate maps a tcell key to a game key and how it should be applied
func Translate(k tcell.Key, r rune) (input.Key, KeyAction) {
	switch k {
	case tcell.KeyLeft:
		return input.KeyLeft, ActionHold
	case tcell.KeyRight:
		return input.KeyRight, ActionHold
	case tcell.KeyEnter:
		return input.KeyEnter, ActionTap
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.KeyEscape, ActionTap
	case tcell.KeyRune:
		switch r {
		case 'a', 'A':
			return input.KeyA, ActionHold
		case 'd', 'D':
			return input.KeyD, ActionHold
		case ' ':
			return input.KeySpace, ActionTap
		case 'r', 'R':
			return input.KeyR, ActionTap
		case 'm', 'M':
			return input.KeyM, ActionTap
		case 'p', 'P':
			return input.KeyP, ActionTap
		case 'q', 'Q':
			return input.KeyQ, ActionTap
		}
	}
	return input.KeyNone, ActionNone
}

// KeyMapper feeds terminal key events into an input snapshot
type KeyMapper struct {
	state    *input.State
	lastSeen [input.KeyCount]time.Time
	repeated [input.KeyCount]bool
}

// NewKeyMapper creates a mapper writing to state
func NewKeyMapper(state *input.State) *KeyMapper {
	return &KeyMapper{state: state}
}

// HandleKey applies one key event received at now
// Returns false for keys the game does not use
func (m *KeyMapper) HandleKey(k tcell.Key, r rune, now time.Time) bool {
	key, action := Translate(k, r)
	switch action {
	case ActionHold:
		m.repeated[key] = m.state.Held(key)
		m.state.Press(key)
		m.lastSeen[key] = now
	case ActionTap:
		m.state.Tap(key)
	default:
		return false
	}
	return true
}

// Expire releases held keys whose hold window lapsed by now
func (m *KeyMapper) Expire(now time.Time) {
	for k := input.Key(1); k < input.KeyCount; k++ {
		if !m.state.Held(k) {
			continue
		}
		window := InitialHoldWindow
		if m.repeated[k] {
			window = RepeatHoldWindow
		}
		if now.Sub(m.lastSeen[k]) > window {
			m.state.Release(k)
			m.repeated[k] = false
		}
	}
}

// ReleaseAll drops every held key, used when focus or pause interrupts input
func (m *KeyMapper) ReleaseAll() {
	for k := input.Key(1); k < input.KeyCount; k++ {
		m.state.Release(k)
		m.repeated[k] = false
	}
}
