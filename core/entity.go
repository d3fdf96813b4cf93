package core

import "fmt"

// Entity identifies one game object across its components
// Gen is bumped each time the ID slot is recycled so stale references never match a live entity
type Entity struct {
	ID  uint32
	Gen uint32
}

// NoEntity is the zero value, never handed out by the allocator
var NoEntity = Entity{}

// IsZero reports whether e is the unset entity
func (e Entity) IsZero() bool {
	return e == NoEntity
}

func (e Entity) String() string {
	return fmt.Sprintf("%d:%d", e.ID, e.Gen)
}

// Ref returns a pointer to a copy of e for optional entity fields
func (e Entity) Ref() *Entity {
	return &e
}
