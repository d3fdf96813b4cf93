package input

// State is the per-tick input snapshot
// Held persists until Release; Pressed is edge-triggered and cleared by EndTick
type State struct {
	held    [KeyCount]bool
	pressed [KeyCount]bool
}

// NewState creates an empty snapshot
func NewState() *State {
	return &State{}
}

// Press marks k held and pressed this tick
// A repeat while already held does not register a new press
func (s *State) Press(k Key) {
	if k == KeyNone || k >= KeyCount {
		return
	}
	if !s.held[k] {
		s.pressed[k] = true
	}
	s.held[k] = true
}

// Tap registers a press without holding the key, for backends without release events
func (s *State) Tap(k Key) {
	if k == KeyNone || k >= KeyCount {
		return
	}
	s.pressed[k] = true
}

// Release clears the held state of k
func (s *State) Release(k Key) {
	if k >= KeyCount {
		return
	}
	s.held[k] = false
}

// Held reports whether k is currently held
func (s *State) Held(k Key) bool {
	return k < KeyCount && s.held[k]
}

// Pressed reports whether k went down this tick
func (s *State) Pressed(k Key) bool {
	return k < KeyCount && s.pressed[k]
}

// HeldAny reports whether any of keys is held
func (s *State) HeldAny(keys ...Key) bool {
	for _, k := range keys {
		if s.Held(k) {
			return true
		}
	}
	return false
}

// PressedAny reports whether any of keys went down this tick
func (s *State) PressedAny(keys ...Key) bool {
	for _, k := range keys {
		if s.Pressed(k) {
			return true
		}
	}
	return false
}

// EndTick clears edge-triggered presses
func (s *State) EndTick() {
	s.pressed = [KeyCount]bool{}
}

// Reset clears everything
func (s *State) Reset() {
	*s = State{}
}
