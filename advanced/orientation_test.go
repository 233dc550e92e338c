package advanced

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointTest(t *testing.T) {
	cases := []struct {
		a, b, c  Point
		expected Orientation
	}{
		{Point{0, 0}, Point{2, 0}, Point{1, 1}, Left},
		{Point{0, 0}, Point{2, 0}, Point{1, -1}, Right},
		{Point{0, 0}, Point{2, 0}, Point{1, 0}, OnEdge},
		{Point{0, 0}, Point{2, 0}, Point{0, 0}, OnEdge},
		{Point{0, 0}, Point{2, 0}, Point{2, 0}, OnEdge},
		{Point{0, 0}, Point{2, 0}, Point{-1, 0}, Before},
		{Point{0, 0}, Point{2, 0}, Point{3, 0}, Behind},
		// Reversed horizontal edge
		{Point{2, 0}, Point{0, 0}, Point{3, 0}, Before},
		{Point{2, 0}, Point{0, 0}, Point{-1, 0}, Behind},
		{Point{2, 0}, Point{0, 0}, Point{1, 1}, Right},
		// Vertical edges sort along y
		{Point{0, 0}, Point{0, 2}, Point{0, -1}, Before},
		{Point{0, 0}, Point{0, 2}, Point{0, 3}, Behind},
		{Point{0, 0}, Point{0, 2}, Point{0, 1}, OnEdge},
		{Point{0, 0}, Point{0, 2}, Point{-1, 1}, Left},
		{Point{0, 2}, Point{0, 0}, Point{0, 3}, Before},
		// Diagonal
		{Point{0, 0}, Point{1, 2}, Point{2, 4}, Behind},
		{Point{0, 0}, Point{1, 2}, Point{-1, -2}, Before},
		// Degenerate edge
		{Point{1, 1}, Point{1, 1}, Point{2, 2}, Undefined},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%v %v %v", c.a, c.b, c.c), func(t *testing.T) {
			assert.Equal(t, c.expected, PointTest(c.a, c.b, c.c))
		})
	}
}

func TestOrientationString(t *testing.T) {
	assert.Equal(t, "Left", Left.String())
	assert.Equal(t, "Behind", Behind.String())
	assert.Equal(t, "Undefined", Orientation(42).String())
}
