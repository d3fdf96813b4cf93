package engine

// System is one stage of the fixed tick pipeline
type System interface {
	// Name identifies the system in logs and metrics
	Name() string

	// Priority orders execution, lower runs first
	Priority() int

	// Update runs one tick
	Update()
}
