package render

import (
	"math"

	"github.com/lixenwraith/dirline/vmath"
)

// Screen units per terminal cell. Cells are roughly twice as tall as wide,
// so a board of Rows rows and 2*Rows columns is square in screen units.
const (
	CellUnitsX = 1.0
	CellUnitsY = 2.0
)

const (
	// MinBoardRows is the smallest board that still separates two markers
	MinBoardRows = 3

	// ButtonLabel is the clickable reverse control
	ButtonLabel = "[ reverse ]"
)

// Layout places the board, the reverse control and the status bar on screen
// Board cells span [BoardX, BoardX+Cols) x [BoardY, BoardY+Rows); the border
// sits one cell outside that range.
type Layout struct {
	ScreenW, ScreenH int

	BoardX, BoardY int
	Cols, Rows     int

	ButtonX, ButtonY, ButtonW int

	StatusY int
}

// NewLayout fits a board into a screen of the given size
// rows <= 0 uses the largest board that fits; larger requests are capped.
// A screen too small for MinBoardRows yields a layout with Valid() false.
func NewLayout(screenW, screenH, rows int) Layout {
	l := Layout{ScreenW: screenW, ScreenH: screenH, StatusY: screenH - 1}

	// Border (2) + button row + status row
	fit := min(screenH-4, (screenW-2)/2)
	if rows <= 0 || rows > fit {
		rows = fit
	}
	if rows < MinBoardRows {
		return l
	}

	l.Rows = rows
	l.Cols = rows * 2
	l.BoardY = 1
	l.BoardX = 1 + (screenW-2-l.Cols)/2

	l.ButtonW = len(ButtonLabel)
	l.ButtonY = l.BoardY + l.Rows + 1
	l.ButtonX = l.BoardX + (l.Cols-l.ButtonW)/2
	if l.ButtonX < 0 {
		l.ButtonX = 0
	}

	return l
}

// Valid reports whether a board could be placed
func (l Layout) Valid() bool {
	return l.Rows >= MinBoardRows
}

// Rect returns the board rectangle in screen units
func (l Layout) Rect() vmath.Rect {
	return vmath.Rect{
		Left:   float64(l.BoardX) * CellUnitsX,
		Top:    float64(l.BoardY) * CellUnitsY,
		Width:  float64(l.Cols) * CellUnitsX,
		Height: float64(l.Rows) * CellUnitsY,
	}
}

// PointerAt returns the screen-unit position of the center of cell (col, row)
func (l Layout) PointerAt(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * CellUnitsX, (float64(row) + 0.5) * CellUnitsY
}

// CellAt returns the screen cell holding normalized point p
// Points outside [0,1] give cells outside the board; check with InBoard.
func (l Layout) CellAt(p vmath.Point) (col, row int) {
	return l.BoardX + axisCell(p.X, l.Cols), l.BoardY + axisCell(p.Y, l.Rows)
}

// InBoard reports whether the cell lies inside the board
func (l Layout) InBoard(col, row int) bool {
	return col >= l.BoardX && col < l.BoardX+l.Cols &&
		row >= l.BoardY && row < l.BoardY+l.Rows
}

// HitsMarker reports whether a press at (col, row) grabs the marker at p
// Markers accept one column of slack on either side.
func (l Layout) HitsMarker(p vmath.Point, col, row int) bool {
	mc, mr := l.CellAt(p)
	return row == mr && col >= mc-1 && col <= mc+1
}

// HitsButton reports whether (col, row) is on the reverse control
func (l Layout) HitsButton(col, row int) bool {
	if !l.Valid() {
		return false
	}
	return row == l.ButtonY && col >= l.ButtonX && col < l.ButtonX+l.ButtonW
}

// axisCell maps v in [0,1] to a cell index in [0,n); 1 lands on the last cell
func axisCell(v float64, n int) int {
	i := int(math.Floor(v * float64(n)))
	if i == n && v <= 1 {
		i = n - 1
	}
	return i
}
