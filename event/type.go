package event

// ChangeKind classifies a component store mutation
type ChangeKind uint8

const (
	// ComponentInserted fires when a component is added or replaced wholesale
	// Trigger: Store.Insert, deferred inserts committed by World.Maintain
	// Consumer: physics bridge send phase | Payload: ComponentChange
	ComponentInserted ChangeKind = iota

	// ComponentModified fires when gameplay code writes an existing component
	// Trigger: Store.Set, Store.Mutate (never Store.SetUnflagged)
	// Consumer: physics bridge send phase | Payload: ComponentChange
	ComponentModified

	// ComponentRemoved fires when a component is removed or its entity deleted
	// Trigger: Store.Remove, World.Maintain
	// Consumer: physics bridge send phase | Payload: ComponentChange
	ComponentRemoved
)

func (k ChangeKind) String() string {
	switch k {
	case ComponentInserted:
		return "inserted"
	case ComponentModified:
		return "modified"
	case ComponentRemoved:
		return "removed"
	default:
		return "unknown"
	}
}
