package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collect(x1, y1, x2, y2 int) [][2]int {
	var cells [][2]int
	Traverse(x1, y1, x2, y2, func(x, y int) bool {
		cells = append(cells, [2]int{x, y})
		return true
	})
	return cells
}

func TestTraverse(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 int
		want           [][2]int
	}{
		{"single cell", 3, 3, 3, 3, [][2]int{{3, 3}}},
		{"horizontal", 0, 0, 3, 0, [][2]int{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{"vertical up", 2, 5, 2, 3, [][2]int{{2, 5}, {2, 4}, {2, 3}}},
		{"diagonal", 0, 0, 2, 2, [][2]int{{0, 0}, {1, 1}, {2, 2}}},
		{"anti diagonal", 2, 0, 0, 2, [][2]int{{2, 0}, {1, 1}, {0, 2}}},
		{"negative coords", -1, -1, 1, -1, [][2]int{{-1, -1}, {0, -1}, {1, -1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, collect(tt.x1, tt.y1, tt.x2, tt.y2))
		})
	}
}

func TestTraverse_EndpointsAndContinuity(t *testing.T) {
	cells := collect(1, 2, 17, 9)
	assert.Equal(t, [2]int{1, 2}, cells[0])
	assert.Equal(t, [2]int{17, 9}, cells[len(cells)-1])

	for i := 1; i < len(cells); i++ {
		dx := abs(cells[i][0] - cells[i-1][0])
		dy := abs(cells[i][1] - cells[i-1][1])
		assert.LessOrEqual(t, dx, 1)
		assert.LessOrEqual(t, dy, 1)
	}
}

func TestTraverse_StopsEarly(t *testing.T) {
	n := 0
	Traverse(0, 0, 10, 0, func(x, y int) bool {
		n++
		return x < 4
	})
	assert.Equal(t, 5, n)
}

func TestLineGlyph(t *testing.T) {
	tests := []struct {
		dx, dy float64
		want   rune
	}{
		{0, 0, '·'},
		{1, 0, '─'},
		{-1, 0, '─'},
		{0, 1, '│'},
		{0, -0.1, '│'},
		{1, 1, '╲'},
		{-1, -1, '╲'},
		{1, -1, '╱'},
		{-1, 1, '╱'},
		{1, 0.2, '─'},
	}

	for _, tt := range tests {
		assert.Equal(t, string(tt.want), string(LineGlyph(tt.dx, tt.dy)), "dx=%v dy=%v", tt.dx, tt.dy)
	}
}
