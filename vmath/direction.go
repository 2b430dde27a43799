package vmath

import "math"

// IndicatorLength is the fixed indicator length used for horizontal segments
const IndicatorLength = 0.1

// Default endpoint positions
var (
	DefaultStart = Point{X: 0.3, Y: 0.5}
	DefaultEnd   = Point{X: 0.7, Y: 0.5}
)

// ComputeDirectionPoint returns the tip of the perpendicular indicator
// anchored at the midpoint of p1-p2
//
// Horizontal segments point up (p1 left of p2) or down (p1 right of p2) by
// IndicatorLength, clamped to the board, and ignore reverse. Segments with a
// non-finite dy/dx ratio, including zero-length ones, collapse to (0,0).
// Otherwise the tip sits half the segment length away on the side selected
// by reverse and is not clamped.
func ComputeDirectionPoint(p1, p2 Point, reverse bool) Point {
	dx := p1.X - p2.X
	dy := p1.Y - p2.Y
	mid := Midpoint(p1, p2)

	if dy == 0 && p1.X < p2.X {
		return Point{X: mid.X, Y: math.Max(mid.Y-IndicatorLength, 0)}
	}
	if dy == 0 && p1.X > p2.X {
		return Point{X: mid.X, Y: math.Min(mid.Y+IndicatorLength, 1)}
	}

	ratio := dy / dx
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return Point{}
	}

	angle := math.Atan2(dy, dx)
	perpendicular := angle + math.Pi/2
	if reverse {
		perpendicular = angle - math.Pi/2
	}
	half := p1.Sub(p2).Length() / 2

	arm := Point{X: math.Cos(perpendicular), Y: math.Sin(perpendicular)}
	return mid.Add(arm.Scale(half))
}
