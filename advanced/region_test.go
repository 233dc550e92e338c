package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWholePlaneRegion(t *testing.T) {
	region := Region{Kernel: Point{3, 3}}
	assert.True(t, region.IsWholePlane())
	assert.False(t, region.IsOpen())
	assert.Empty(t, region.Edges())
	assert.True(t, region.ContainsPoint(Point{-100, 100}))

	clipped, ok := region.ClipTo(NewBox(0, 0, 10, 10))
	require.True(t, ok)
	assert.InDelta(t, 100, clipped.SignedArea(), epsilon)
}

func TestClosedRegion(t *testing.T) {
	region := Region{
		Points: []Point{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}},
		Kernel: Point{0, 0},
	}
	assert.False(t, region.IsWholePlane())
	assert.False(t, region.IsOpen())
	edges := region.Edges()
	require.Len(t, edges, 4)
	assert.Equal(t, Segment{Point{1, 1}, Point{-1, 1}}, edges[2])

	assert.True(t, region.ContainsPoint(Point{0.5, 0.5}))
	assert.True(t, region.ContainsPoint(Point{0, 0}))
	assert.False(t, region.ContainsPoint(Point{2, 0}))

	clipped, ok := region.ClipTo(NewBox(0, 0, 10, 10))
	require.True(t, ok)
	assert.InDelta(t, 1, clipped.SignedArea(), epsilon)

	_, ok = region.ClipTo(NewBox(5, 5, 10, 10))
	assert.False(t, ok)
}

func TestOpenRegion(t *testing.T) {
	// Cell of (0,0) against (10,0): everything left of x=5, as the two rays
	// along the bisector.
	region := Region{
		Points: []Point{{5, 0}, {5, 20}, Infinity, {5, -20}, {5, 0}},
		Kernel: Point{0, 0},
	}
	assert.True(t, region.IsOpen())

	edges := region.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, Ray{Point{5, 0}, Point{0, 20}}, edges[0])
	assert.Equal(t, Ray{Point{5, 0}, Point{0, -20}}, edges[1])

	assert.True(t, region.ContainsPoint(Point{-50, 30}))
	assert.False(t, region.ContainsPoint(Point{6, 0}))

	clipped, ok := region.ClipTo(NewBox(-10, -10, 10, 10))
	require.True(t, ok)
	assert.InDelta(t, 300, clipped.SignedArea(), epsilon)
}

func TestOpenRegionCorner(t *testing.T) {
	// Cell of (0,0) among (10,0) and (0,10): the quadrant x<5, y<5.
	region := Region{
		Points: []Point{{5, 5}, {-15, 5}, Infinity, {5, -15}},
		Kernel: Point{0, 0},
	}
	edges := region.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, Ray{Point{5, 5}, Point{-20, 0}}, edges[0])
	assert.Equal(t, Ray{Point{5, 5}, Point{0, -20}}, edges[1])

	clipped, ok := region.ClipTo(NewBox(-20, -20, 30, 30))
	require.True(t, ok)
	assert.InDelta(t, 625, clipped.SignedArea(), epsilon)
	assert.True(t, clipped.ContainsPoint(Point{-10, -10}))
	assert.False(t, clipped.ContainsPoint(Point{10, 0}))
}
