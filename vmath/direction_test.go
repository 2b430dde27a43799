package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func TestComputeDirectionPoint_Horizontal(t *testing.T) {
	tests := []struct {
		name    string
		p1, p2  Point
		reverse bool
		want    Point
	}{
		{"left to right points up", Pt(0.3, 0.5), Pt(0.7, 0.5), false, Pt(0.5, 0.4)},
		{"reverse ignored", Pt(0.3, 0.5), Pt(0.7, 0.5), true, Pt(0.5, 0.4)},
		{"right to left points down", Pt(0.7, 0.5), Pt(0.3, 0.5), false, Pt(0.5, 0.6)},
		{"right to left reverse ignored", Pt(0.7, 0.5), Pt(0.3, 0.5), true, Pt(0.5, 0.6)},
		{"clamped at top", Pt(0.2, 0.05), Pt(0.4, 0.05), false, Pt(0.3, 0)},
		{"clamped at bottom", Pt(0.9, 0.95), Pt(0.1, 0.95), false, Pt(0.5, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeDirectionPoint(tt.p1, tt.p2, tt.reverse)
			assert.InDelta(t, tt.want.X, got.X, eps)
			assert.InDelta(t, tt.want.Y, got.Y, eps)
		})
	}
}

func TestComputeDirectionPoint_Degenerate(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 Point
	}{
		{"vertical", Pt(0.5, 0.2), Pt(0.5, 0.8)},
		{"vertical upward", Pt(0.1, 0.9), Pt(0.1, 0.3)},
		{"zero length", Pt(0.4, 0.4), Pt(0.4, 0.4)},
		{"zero length at origin", Pt(0, 0), Pt(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, reverse := range []bool{false, true} {
				assert.Equal(t, Point{}, ComputeDirectionPoint(tt.p1, tt.p2, reverse))
			}
		})
	}
}

func TestComputeDirectionPoint_General(t *testing.T) {
	// p1-p2 = (-0.4, -0.4): angle -3pi/4, +pi/2 gives -pi/4
	p1, p2 := Pt(0.3, 0.3), Pt(0.7, 0.7)
	got := ComputeDirectionPoint(p1, p2, false)

	half := math.Sqrt(0.32) / 2
	assert.InDelta(t, 0.5+half*math.Cos(-math.Pi/4), got.X, eps)
	assert.InDelta(t, 0.5+half*math.Sin(-math.Pi/4), got.Y, eps)

	rev := ComputeDirectionPoint(p1, p2, true)
	assert.InDelta(t, 0.5-half*math.Cos(-math.Pi/4), rev.X, eps)
	assert.InDelta(t, 0.5-half*math.Sin(-math.Pi/4), rev.Y, eps)
}

func TestComputeDirectionPoint_ReverseIsReflection(t *testing.T) {
	pairs := [][2]Point{
		{Pt(0.3, 0.3), Pt(0.7, 0.7)},
		{Pt(0.1, 0.8), Pt(0.9, 0.2)},
		{Pt(0.6, 0.1), Pt(0.2, 0.15)},
		{Pt(0, 0), Pt(1, 1)},
		{Pt(0.51, 0.2), Pt(0.5, 0.8)},
	}

	for _, pair := range pairs {
		p1, p2 := pair[0], pair[1]
		mid := Midpoint(p1, p2)
		a := ComputeDirectionPoint(p1, p2, false)
		b := ComputeDirectionPoint(p1, p2, true)

		assert.InDelta(t, 2*mid.X, a.X+b.X, eps, "x for %v-%v", p1, p2)
		assert.InDelta(t, 2*mid.Y, a.Y+b.Y, eps, "y for %v-%v", p1, p2)
	}
}

func TestComputeDirectionPoint_PerpendicularHalfLength(t *testing.T) {
	p1, p2 := Pt(0.1, 0.8), Pt(0.9, 0.2)
	mid := Midpoint(p1, p2)
	seg := p1.Sub(p2)

	for _, reverse := range []bool{false, true} {
		arm := ComputeDirectionPoint(p1, p2, reverse).Sub(mid)
		assert.InDelta(t, 0, arm.X*seg.X+arm.Y*seg.Y, eps, "arm must be perpendicular")
		assert.InDelta(t, seg.Length()/2, arm.Length(), eps)
	}
}

// General-case results are not clamped to the board
func TestComputeDirectionPoint_Unclamped(t *testing.T) {
	got := ComputeDirectionPoint(Pt(0.1, 0.9), Pt(0.9, 0.95), true)
	assert.Greater(t, got.Y, 1.0)
	assert.False(t, inUnit(got), "expected %+v outside the board", got)
}
