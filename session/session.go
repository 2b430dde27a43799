// Package session runs the editor against a terminal screen: it turns tcell
// events into editor operations, plays cues and redraws after every event.
package session

import (
	"context"
	"io"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/dirline/engine"
	"github.com/lixenwraith/dirline/input"
	"github.com/lixenwraith/dirline/render"
)

// eventQueueSize bounds events buffered between the poller and the loop
const eventQueueSize = 64

// Sound plays interaction cues
type Sound interface {
	PlayGrab()
	PlayDrop()
	PlayFlip(reverse bool)
}

type silent struct{}

func (silent) PlayGrab()     {}
func (silent) PlayDrop()     {}
func (silent) PlayFlip(bool) {}

// Options configures a Session; zero values select defaults
type Options struct {
	// Rows is the requested board height, 0 fits the terminal
	Rows int

	Theme  *render.Theme
	Sound  Sound
	Logger logrus.FieldLogger

	// CrashHandler runs when the event poller panics; it should restore the
	// terminal and exit. Nil re-panics.
	CrashHandler func(r any)
}

// Session owns the editor and everything needed to drive it from a screen
type Session struct {
	screen       tcell.Screen
	editor       *engine.Editor
	input        *input.Machine
	orchestrator *render.RenderOrchestrator

	rows   int
	layout render.Layout
	theme  render.Theme

	sound Sound
	log   logrus.FieldLogger
	crash func(r any)
}

// New creates a session on an initialized screen with mouse reporting enabled
func New(screen tcell.Screen, opts Options) *Session {
	s := &Session{
		screen:       screen,
		editor:       engine.NewEditor(),
		input:        input.NewMachine(),
		orchestrator: render.NewDefaultOrchestrator(screen),
		rows:         opts.Rows,
		theme:        render.DefaultTheme(),
		sound:        opts.Sound,
		crash:        opts.CrashHandler,
	}

	if opts.Theme != nil {
		s.theme = *opts.Theme
	}
	if s.sound == nil {
		s.sound = silent{}
	}

	logger := opts.Logger
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	s.log = logger.WithField("session", uuid.NewString())

	w, h := screen.Size()
	s.layout = render.NewLayout(w, h, s.rows)
	s.logLayout()

	return s
}

// Editor exposes the underlying editor
func (s *Session) Editor() *engine.Editor {
	return s.editor
}

// Layout returns the current screen layout
func (s *Session) Layout() render.Layout {
	return s.layout
}

// HandleEvent applies one terminal event
// Returns false when the user asked to quit.
func (s *Session) HandleEvent(ev tcell.Event) bool {
	intent := s.input.Process(ev)

	// Hit tests and mapping need a board; a release still ends the gesture
	if intent.IsPointer() && intent.Type != input.IntentRelease && !s.layout.Valid() {
		return true
	}

	switch intent.Type {
	case input.IntentQuit:
		s.log.Info("quit requested")
		return false
	case input.IntentResize:
		s.resize(intent.X, intent.Y)
	case input.IntentPress:
		s.press(intent.X, intent.Y)
	case input.IntentDrag, input.IntentMove:
		s.move(intent.X, intent.Y)
	case input.IntentRelease:
		s.release()
	}
	return true
}

// Draw renders the current state
func (s *Session) Draw() {
	ctx := render.NewRenderContext(s.editor.Snapshot(), s.layout, s.theme)
	s.orchestrator.RenderFrame(ctx)
}

// Run draws and processes events until quit, screen closure or ctx cancellation
// Events are read on a separate goroutine; all editor changes happen here.
func (s *Session) Run(ctx context.Context) error {
	events := make(chan tcell.Event, eventQueueSize)
	done := make(chan struct{})
	defer close(done)

	go s.poll(events, done)

	s.Draw()
	for {
		select {
		case <-ctx.Done():
			s.log.WithError(ctx.Err()).Debug("context done")
			return nil
		case ev, ok := <-events:
			if !ok {
				s.log.Debug("screen closed")
				return nil
			}
			if !s.HandleEvent(ev) {
				return nil
			}
			s.Draw()
		}
	}
}

func (s *Session) poll(events chan<- tcell.Event, done <-chan struct{}) {
	defer func() {
		if r := recover(); r != nil {
			if s.crash == nil {
				panic(r)
			}
			s.crash(r)
		}
	}()

	for {
		ev := s.screen.PollEvent()
		// Nil after Fini
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func (s *Session) press(col, row int) {
	if s.layout.HitsButton(col, row) {
		reverse := s.editor.ToggleReverse()
		s.sound.PlayFlip(reverse)
		s.log.WithFields(logrus.Fields{
			"reverse":   reverse,
			"direction": s.editor.Snapshot().Direction,
		}).Info("reverse toggled")
		return
	}

	target := s.markerAt(col, row)
	if target == engine.DragNone {
		return
	}
	if s.editor.BeginDrag(target) {
		s.sound.PlayGrab()
		s.log.WithField("target", target.String()).Debug("drag begin")
	}
}

// markerAt returns the marker under (col, row); end wins ties as it is drawn on top
func (s *Session) markerAt(col, row int) engine.DragTarget {
	state := s.editor.Snapshot()
	switch {
	case s.layout.HitsMarker(state.End, col, row):
		return engine.DragEnd
	case s.layout.HitsMarker(state.Start, col, row):
		return engine.DragStart
	default:
		return engine.DragNone
	}
}

func (s *Session) move(col, row int) {
	px, py := s.layout.PointerAt(col, row)
	s.editor.UpdateDrag(px, py, s.layout.Rect())
}

func (s *Session) release() {
	if target := s.editor.Target(); target != engine.DragNone {
		state := s.editor.Snapshot()
		s.sound.PlayDrop()
		s.log.WithFields(logrus.Fields{
			"target":    target.String(),
			"start":     state.Start,
			"end":       state.End,
			"direction": state.Direction,
		}).Debug("drag end")
	}
	s.editor.EndDrag()
}

func (s *Session) resize(w, h int) {
	s.layout = render.NewLayout(w, h, s.rows)
	s.orchestrator.Resize()
	s.logLayout()
}

func (s *Session) logLayout() {
	fields := logrus.Fields{
		"width":  s.layout.ScreenW,
		"height": s.layout.ScreenH,
		"rows":   s.layout.Rows,
	}
	if !s.layout.Valid() {
		s.log.WithFields(fields).Warn("terminal too small for board")
		return
	}
	s.log.WithFields(fields).Debug("layout")
}
