package vmath

// Rect is the board's bounding rectangle in screen units
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// Valid reports whether the rectangle can be used for pointer mapping
func (r Rect) Valid() bool {
	return r.Height > 0 && r.Width > 0
}

// MapPointerToBoard converts a screen-space pointer position into normalized
// board coordinates, clamped per axis to [0,1]
//
// Both axes divide by the rectangle height so drags keep the same scale on
// each axis. The caller must only pass a valid rectangle.
func MapPointerToBoard(px, py float64, rect Rect) Point {
	return Point{
		X: Clamp01((px - rect.Left) / rect.Height),
		Y: Clamp01((py - rect.Top) / rect.Height),
	}
}
