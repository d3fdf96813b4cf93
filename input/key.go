package input

// Key is a logical game key, independent of the terminal backend
type Key uint8

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyA
	KeyD
	KeySpace
	KeyEnter
	KeyR
	KeyM
	KeyP
	KeyQ
	KeyEscape
	KeyCount
)

var keyNames = [KeyCount]string{
	KeyNone:   "none",
	KeyLeft:   "left",
	KeyRight:  "right",
	KeyA:      "a",
	KeyD:      "d",
	KeySpace:  "space",
	KeyEnter:  "enter",
	KeyR:      "r",
	KeyM:      "m",
	KeyP:      "p",
	KeyQ:      "q",
	KeyEscape: "escape",
}

func (k Key) String() string {
	if k >= KeyCount {
		return "unknown"
	}
	return keyNames[k]
}
