package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // q, Esc, Ctrl+C
	IntentResize // Terminal resize event

	// Pointer intents, primary button only
	IntentPress   // Button went down
	IntentDrag    // Motion with button held
	IntentMove    // Motion with no button held
	IntentRelease // Button went up
)

// String returns human-readable intent name
func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "quit"
	case IntentResize:
		return "resize"
	case IntentPress:
		return "press"
	case IntentDrag:
		return "drag"
	case IntentMove:
		return "move"
	case IntentRelease:
		return "release"
	default:
		return "none"
	}
}

// Intent is a parsed terminal event
// X/Y carry the cell for pointer intents and the new size for IntentResize
type Intent struct {
	Type IntentType
	X, Y int
}

// IsPointer reports whether the intent carries a pointer position
func (i Intent) IsPointer() bool {
	return i.Type >= IntentPress && i.Type <= IntentRelease
}
