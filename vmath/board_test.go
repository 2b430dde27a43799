package vmath

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapPointerToBoard(t *testing.T) {
	rect := Rect{Left: 10, Top: 20, Width: 100, Height: 100}

	tests := []struct {
		name   string
		px, py float64
		want   Point
	}{
		{"origin", 10, 20, Pt(0, 0)},
		{"center", 60, 70, Pt(0.5, 0.5)},
		{"far corner", 110, 120, Pt(1, 1)},
		{"left of board", -40, 70, Pt(0, 0.5)},
		{"below board", 35, 500, Pt(0.25, 1)},
		{"above and right", 400, -3, Pt(1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapPointerToBoard(tt.px, tt.py, rect)
			assert.InDelta(t, tt.want.X, got.X, 1e-12)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-12)
		})
	}
}

// Both axes divide by height, so a wide rectangle saturates x early
func TestMapPointerToBoard_NormalizesByHeight(t *testing.T) {
	rect := Rect{Left: 0, Top: 0, Width: 200, Height: 100}

	got := MapPointerToBoard(50, 50, rect)
	assert.Equal(t, Pt(0.5, 0.5), got)

	got = MapPointerToBoard(150, 50, rect)
	assert.Equal(t, Pt(1, 0.5), got)
}

func TestMapPointerToBoard_AlwaysInUnitSquare(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 5000; i++ {
		rect := Rect{
			Left:   rng.Float64()*2000 - 1000,
			Top:    rng.Float64()*2000 - 1000,
			Width:  rng.Float64()*500 + 1,
			Height: rng.Float64()*500 + 1,
		}
		px := rng.Float64()*6000 - 3000
		py := rng.Float64()*6000 - 3000

		p := MapPointerToBoard(px, py, rect)
		if !inUnit(p) {
			t.Fatalf("MapPointerToBoard(%v, %v, %+v) = %+v, outside unit square", px, py, rect, p)
		}
	}
}

func TestRectValid(t *testing.T) {
	assert.True(t, Rect{Width: 1, Height: 1}.Valid())
	assert.False(t, Rect{}.Valid())
	assert.False(t, Rect{Width: 10, Height: 0}.Valid())
	assert.False(t, Rect{Width: 0, Height: 10}.Valid())
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, Clamp01(-0.5))
	assert.Equal(t, 0.25, Clamp01(0.25))
	assert.Equal(t, 1.0, Clamp01(3))
}
