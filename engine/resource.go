package engine

import (
	"time"

	"github.com/lixenwraith/brickbreaker/core"
	"github.com/lixenwraith/brickbreaker/event"
	"github.com/lixenwraith/brickbreaker/input"
	"github.com/lixenwraith/brickbreaker/render"
	"github.com/lixenwraith/brickbreaker/status"
)

// Resource holds cached pointers to singleton game resources
type Resource struct {
	Time   *TimeResource
	Run    *RunState
	Input  *InputResource
	Event  *EventResource
	Audio  *AudioResource
	Render *RenderResource

	// Telemetry
	Status *status.Registry
}

// GetResourceStore populates Resource from the world's resource store
// Call once during system construction; pointers remain valid for application lifetime
func GetResourceStore(w *World) Resource {
	return Resource{
		Time:   MustGetResource[*TimeResource](w.Resources),
		Run:    MustGetResource[*RunState](w.Resources),
		Input:  MustGetResource[*InputResource](w.Resources),
		Event:  MustGetResource[*EventResource](w.Resources),
		Audio:  MustGetResource[*AudioResource](w.Resources),
		Render: MustGetResource[*RenderResource](w.Resources),
		Status: MustGetResource[*status.Registry](w.Resources),
	}
}

// TimeResource carries the fixed step and tick counter
type TimeResource struct {
	// DeltaTime is the fixed simulation step
	DeltaTime time.Duration

	// Tick is the number of completed ticks
	Tick int64

	// Alpha is the interpolation fraction for the next draw, in [0, 1]
	Alpha float64
}

// DT returns the step in seconds
func (t *TimeResource) DT() float64 {
	return t.DeltaTime.Seconds()
}

// InputResource wraps the per-tick input snapshot
type InputResource struct {
	State *input.State
}

// EventResource holds the broadcast logs systems write to
type EventResource struct {
	Spawn *event.Channel[event.SpawnBall]
}

// AudioPlayer is the fire-and-forget sound sink
type AudioPlayer interface {
	Play(sound core.SoundType)
}

// AudioResource wraps the audio player interface
type AudioResource struct {
	Player AudioPlayer
}

// Play forwards to the player when one is attached
func (a *AudioResource) Play(sound core.SoundType) {
	if a != nil && a.Player != nil {
		a.Player.Play(sound)
	}
}

// RenderResource wraps the draw command queue
type RenderResource struct {
	Queue *render.Queue
}
