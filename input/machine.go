package input

import (
	"github.com/gdamore/tcell/v2"
)

// Machine is the input state machine
// Parses tcell events into Intent. Terminals report mouse state as a button
// mask per event, so press and release are derived from mask transitions.
// A release the terminal never reports keeps the button down until the next
// focus change, which is delivered as a release at the last known position.
type Machine struct {
	state ButtonState
	lastX int
	lastY int
}

// NewMachine creates a new input machine
func NewMachine() *Machine {
	return &Machine{state: ButtonUp}
}

// Process converts a terminal event into an intent
// Unhandled events yield IntentNone
func (m *Machine) Process(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		return Intent{Type: IntentResize, X: w, Y: h}
	case *tcell.EventFocus:
		return m.processFocus()
	}
	return Intent{}
}

// processFocus ends a held gesture; the button state is unknown after the
// terminal loses or regains focus
func (m *Machine) processFocus() Intent {
	if m.state != ButtonDown {
		return Intent{}
	}
	m.state = ButtonUp
	return Intent{Type: IntentRelease, X: m.lastX, Y: m.lastY}
}

func (m *Machine) processKey(ev *tcell.EventKey) Intent {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return Intent{Type: IntentQuit}
	case tcell.KeyRune:
		if ev.Rune() == 'q' || ev.Rune() == 'Q' {
			return Intent{Type: IntentQuit}
		}
	}
	return Intent{}
}

func (m *Machine) processMouse(ev *tcell.EventMouse) Intent {
	x, y := ev.Position()
	m.lastX, m.lastY = x, y
	held := ev.Buttons()&tcell.Button1 != 0

	switch {
	case held && m.state == ButtonUp:
		m.state = ButtonDown
		return Intent{Type: IntentPress, X: x, Y: y}
	case held:
		return Intent{Type: IntentDrag, X: x, Y: y}
	case m.state == ButtonDown:
		m.state = ButtonUp
		return Intent{Type: IntentRelease, X: x, Y: y}
	case ev.Buttons()&(tcell.WheelUp|tcell.WheelDown|tcell.WheelLeft|tcell.WheelRight) != 0:
		return Intent{}
	default:
		return Intent{Type: IntentMove, X: x, Y: y}
	}
}
