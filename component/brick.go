package component

// BrickKind is the level-file brick type, also selects color and hit points
type BrickKind uint8

const (
	BrickAir BrickKind = iota
	BrickGrey
	BrickGreen
	BrickBlue
	BrickRed
	BrickPurple
)

// BrickComponent is a destructible or permanent obstacle
type BrickComponent struct {
	HP             int32
	Indestructible bool
	Kind           BrickKind
}

// NewBrick creates a brick; non-positive hp marks it indestructible
func NewBrick(kind BrickKind, hp int32) BrickComponent {
	return BrickComponent{
		HP:             hp,
		Indestructible: hp <= 0,
		Kind:           kind,
	}
}
