package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dirline/engine"
	"github.com/lixenwraith/dirline/vmath"
)

// Marker glyphs
const (
	GlyphMarker   = '●'
	GlyphGrabbed  = '◉'
	tooSmallLabel = "terminal too small"
)

// BoardRenderer fills the board and draws its frame
type BoardRenderer struct{}

func (BoardRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	l := ctx.Layout
	if !l.Valid() {
		return
	}

	for row := l.BoardY; row < l.BoardY+l.Rows; row++ {
		for col := l.BoardX; col < l.BoardX+l.Cols; col++ {
			screen.SetContent(col, row, ' ', nil, ctx.Theme.Board)
		}
	}

	left, right := l.BoardX-1, l.BoardX+l.Cols
	top, bottom := l.BoardY-1, l.BoardY+l.Rows
	for col := l.BoardX; col < right; col++ {
		screen.SetContent(col, top, '─', nil, ctx.Theme.Border)
		screen.SetContent(col, bottom, '─', nil, ctx.Theme.Border)
	}
	for row := l.BoardY; row < bottom; row++ {
		screen.SetContent(left, row, '│', nil, ctx.Theme.Border)
		screen.SetContent(right, row, '│', nil, ctx.Theme.Border)
	}
	screen.SetContent(left, top, '┌', nil, ctx.Theme.Border)
	screen.SetContent(right, top, '┐', nil, ctx.Theme.Border)
	screen.SetContent(left, bottom, '└', nil, ctx.Theme.Border)
	screen.SetContent(right, bottom, '┘', nil, ctx.Theme.Border)
}

// SegmentRenderer draws the primary line between the endpoints
type SegmentRenderer struct{}

func (SegmentRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	if !ctx.Layout.Valid() {
		return
	}
	drawClipped(ctx.Layout, screen, ctx.State.Start, ctx.State.End, ctx.Theme.Line)
}

// DirectionRenderer draws the indicator from the midpoint to the direction point
// Cells past the board edge are dropped.
type DirectionRenderer struct{}

func (DirectionRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	if !ctx.Layout.Valid() {
		return
	}
	mid := vmath.Midpoint(ctx.State.Start, ctx.State.End)
	drawClipped(ctx.Layout, screen, mid, ctx.State.Direction, ctx.Theme.Direction)
}

// MarkerRenderer draws both endpoints, end on top
type MarkerRenderer struct{}

func (MarkerRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	l := ctx.Layout
	if !l.Valid() {
		return
	}

	s := ctx.State
	style := ctx.Theme.Marker
	if s.Dragging() {
		style = ctx.Theme.Active
	}

	markers := []struct {
		p      vmath.Point
		target engine.DragTarget
	}{
		{s.Start, engine.DragStart},
		{s.End, engine.DragEnd},
	}
	for _, m := range markers {
		glyph := GlyphMarker
		if s.Target == m.target {
			glyph = GlyphGrabbed
		}
		col, row := l.CellAt(m.p)
		screen.SetContent(col, row, glyph, nil, style)
	}
}

// ButtonRenderer draws the reverse control, inverted while reverse is on
type ButtonRenderer struct{}

func (ButtonRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	l := ctx.Layout
	if !l.Valid() {
		return
	}
	style := ctx.Theme.Button
	if ctx.State.Reverse {
		style = style.Reverse(true)
	}
	drawText(screen, l.ButtonX, l.ButtonY, l.ScreenW, ButtonLabel, style)
}

// StatusBarRenderer prints the editor state on the last row
type StatusBarRenderer struct{}

func (StatusBarRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	l := ctx.Layout
	if l.StatusY < 0 {
		return
	}
	drawText(screen, 0, l.StatusY, l.ScreenW, StatusLine(ctx.State), ctx.Theme.Status)
}

// TooSmallRenderer replaces the board with a notice when no layout fits
type TooSmallRenderer struct{}

func (TooSmallRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	if ctx.Layout.Valid() {
		return
	}
	drawText(screen, 0, 0, ctx.Layout.ScreenW, tooSmallLabel, ctx.Theme.Warning)
}

// StatusLine formats the editor state for the status bar
func StatusLine(s engine.State) string {
	reverse := "off"
	if s.Reverse {
		reverse = "on"
	}
	return fmt.Sprintf("start %s  end %s  dir %s  reverse %s  drag %s",
		formatPoint(s.Start), formatPoint(s.End), formatPoint(s.Direction), reverse, s.Target)
}

func formatPoint(p vmath.Point) string {
	return fmt.Sprintf("(%.2f,%.2f)", p.X, p.Y)
}

// drawClipped rasterizes a-b in board cells, skipping cells outside the board
func drawClipped(l Layout, screen tcell.Screen, a, b vmath.Point, style tcell.Style) {
	glyph := LineGlyph(b.X-a.X, b.Y-a.Y)
	x1, y1 := l.CellAt(a)
	x2, y2 := l.CellAt(b)
	Traverse(x1, y1, x2, y2, func(x, y int) bool {
		if l.InBoard(x, y) {
			screen.SetContent(x, y, glyph, nil, style)
		}
		return true
	})
}

// drawText writes s from (x, y), truncated at maxX
func drawText(screen tcell.Screen, x, y, maxX int, s string, style tcell.Style) {
	for _, r := range s {
		if x >= maxX {
			return
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
