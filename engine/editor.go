package engine

import (
	"github.com/lixenwraith/dirline/vmath"
)

// State is a snapshot of the editor handed to the presentation layer
type State struct {
	Start     vmath.Point
	End       vmath.Point
	Direction vmath.Point
	Target    DragTarget
	Reverse   bool
}

// Dragging reports whether any drag gesture is active
func (s State) Dragging() bool {
	return s.Target != DragNone
}

// Editor owns the two endpoints, the reverse flag and the derived direction
// point. Every mutating call finishes by recomputing the direction point, so a
// snapshot taken between calls is always consistent.
// Not safe for concurrent use; the session drives it from one goroutine.
type Editor struct {
	state State
}

// NewEditor creates an editor with endpoints at the default positions
func NewEditor() *Editor {
	return NewEditorAt(vmath.DefaultStart, vmath.DefaultEnd)
}

// NewEditorAt creates an editor with the given endpoints
// Both points must already lie within [0,1].
func NewEditorAt(start, end vmath.Point) *Editor {
	e := &Editor{
		state: State{Start: start, End: end},
	}
	e.recompute()
	return e
}

// Snapshot returns a copy of the current state
func (e *Editor) Snapshot() State {
	return e.state
}

// Target returns the endpoint being dragged, DragNone when idle
func (e *Editor) Target() DragTarget {
	return e.state.Target
}

// Dragging reports whether a drag gesture is active
func (e *Editor) Dragging() bool {
	return e.state.Target != DragNone
}

// BeginDrag starts dragging target
// Ignored while another drag is active; the first gesture keeps ownership
// until it is released. Returns true if the drag started.
func (e *Editor) BeginDrag(target DragTarget) bool {
	if target == DragNone || e.state.Target != DragNone {
		return false
	}
	e.state.Target = target
	return true
}

// UpdateDrag moves the dragged endpoint to the pointer position (screen
// units) and recomputes the direction point. No effect without an active drag.
// rect must be valid; callers check Rect.Valid before dispatching.
// Returns true if the state changed.
func (e *Editor) UpdateDrag(px, py float64, rect vmath.Rect) bool {
	var dst *vmath.Point
	switch e.state.Target {
	case DragStart:
		dst = &e.state.Start
	case DragEnd:
		dst = &e.state.End
	default:
		return false
	}

	p := vmath.MapPointerToBoard(px, py, rect)
	if *dst == p {
		return false
	}
	*dst = p

	// Reads back the endpoint just written
	e.recompute()
	return true
}

// EndDrag releases the active drag, if any
func (e *Editor) EndDrag() {
	e.state.Target = DragNone
}

// ToggleReverse flips the indicator side and recomputes immediately
func (e *Editor) ToggleReverse() bool {
	e.state.Reverse = !e.state.Reverse
	e.recompute()
	return e.state.Reverse
}

func (e *Editor) recompute() {
	e.state.Direction = vmath.ComputeDirectionPoint(e.state.Start, e.state.End, e.state.Reverse)
}
