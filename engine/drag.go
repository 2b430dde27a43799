package engine

// DragTarget identifies which endpoint an active drag is moving
type DragTarget uint8

const (
	DragNone DragTarget = iota
	DragStart
	DragEnd
)

// String returns human-readable target name
func (t DragTarget) String() string {
	switch t {
	case DragStart:
		return "start"
	case DragEnd:
		return "end"
	default:
		return "none"
	}
}
