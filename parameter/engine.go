package parameter

import "time"

// Game Loop & Engine Timing
const (
	// TickRate is the fixed simulation rate in ticks per second
	TickRate = 60

	// TickDuration is the fixed simulation step
	TickDuration = time.Second / TickRate

	// MaxTicksPerFrame caps catch-up ticks after a stall so the loop never spirals
	MaxTicksPerFrame = 5

	// FrameInterval is the render pacing interval (~60 FPS)
	FrameInterval = 16 * time.Millisecond
)

// ECS & Event Limits
const (
	// ChangeLogCapacity bounds unread entries per component change log
	ChangeLogCapacity = 4096

	// CollisionLogCapacity bounds unread collision events
	CollisionLogCapacity = 1024

	// SpawnLogCapacity bounds unread spawn requests
	SpawnLogCapacity = 64
)
