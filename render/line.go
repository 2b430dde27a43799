package render

import "math"

// Traverse visits every cell on the line from (x1, y1) to (x2, y2), endpoints included
// Integer Bresenham; the callback returns false to stop early.
func Traverse(x1, y1, x2, y2 int, callback func(x, y int) bool) {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	e := dx + dy
	x, y := x1, y1
	for {
		if !callback(x, y) {
			return
		}
		if x == x2 && y == y2 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

// LineGlyph picks a box-drawing rune approximating the direction (dx, dy)
// Screen y grows downward, so a down-right vector draws as '╲'.
func LineGlyph(dx, dy float64) rune {
	if dx == 0 && dy == 0 {
		return '·'
	}

	deg := math.Atan2(dy, dx) * 180 / math.Pi
	if deg < 0 {
		deg += 180
	}

	switch {
	case deg < 22.5 || deg >= 157.5:
		return '─'
	case deg < 67.5:
		return '╲'
	case deg < 112.5:
		return '│'
	default:
		return '╱'
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
