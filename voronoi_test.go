package voronoi

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagram(t *testing.T) {
	d := New()
	for _, p := range []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}} {
		require.NoError(t, d.Insert(p.X, p.Y))
	}
	assert.Equal(t, 4, d.Size())
	assert.False(t, d.IsCollinear())

	err := d.Insert(10, 10)
	assert.True(t, errors.Is(err, ErrDuplicateSite))

	hull, err := d.HullPolygon()
	require.NoError(t, err)
	assert.Len(t, hull.Points, 4)

	inside, err := d.InHull(Point{X: 5, Y: 5})
	require.NoError(t, err)
	assert.True(t, inside)

	region, err := d.ProbeRegion(Point{X: 5, Y: 5})
	require.NoError(t, err)
	cell, ok := region.ClipTo(NewBox(-100, -100, 100, 100))
	require.True(t, ok)
	assert.InDelta(t, 50, cell.SignedArea(), 1e-9)
	assert.Equal(t, 4, d.Size())

	require.NoError(t, d.Insert(5, 5))
	region, err = d.Region(Point{X: 5, Y: 5})
	require.NoError(t, err)
	assert.False(t, region.IsOpen())

	site, ok, err := d.Locate(Point{X: 1, Y: 2})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Point{X: 0, Y: 0}, site)

	neighbor, ok, err := d.NearestNeighbor(Point{X: 0, Y: 0})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Point{X: 5, Y: 5}, neighbor)

	circle, ok, err := d.LargestEmptyCircle()
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 5, circle.Radius, 1e-9)

	near, ok, err := d.FindNear(9, 9, 2)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Point{X: 10, Y: 10}, near)

	edges, err := d.Structure()
	require.NoError(t, err)
	assert.Len(t, edges, 8)

	require.NoError(t, d.Move(Point{X: 5, Y: 5}, 6, 4))
	assert.Equal(t, Point{X: 6, Y: 4}, d.Points()[4])

	deleted, err := d.Delete(Point{X: 6, Y: 4})
	require.NoError(t, err)
	assert.True(t, deleted)
	deleted, err = d.Delete(Point{X: 6, Y: 4})
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = d.Region(Point{X: 6, Y: 4})
	assert.True(t, errors.Is(err, ErrSiteNotFound))

	d.Clear()
	assert.Equal(t, 0, d.Size())
	_, err = d.Region(Point{X: 0, Y: 0})
	assert.True(t, errors.Is(err, ErrEmptyDiagram))
}

func TestFromPoints(t *testing.T) {
	d, err := FromPoints([]Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}, {X: 2, Y: 0}})
	require.NoError(t, err)
	assert.Equal(t, []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, d.Points())
	assert.True(t, d.IsCollinear())

	edges, err := d.Structure()
	require.NoError(t, err)
	assert.Nil(t, edges)
}

func TestNearlyCollinearInsert(t *testing.T) {
	d := New()
	require.NoError(t, d.Insert(27.115744632158528, 16.557872316079262))
	require.NoError(t, d.Insert(273.8418304689928, 139.9209152344964))
	require.NoError(t, d.Insert(103.16065974432472, 54.58032987216236))
	assert.Equal(t, 3, d.Size())

	assert.False(t, d.IsCollinear())

	hull, err := d.HullPolygon()
	require.NoError(t, err)
	assert.Len(t, hull.Points, 3)
}

func TestCollinearNearestNeighbor(t *testing.T) {
	d, err := FromPoints([]Point{{X: 2, Y: 3}, {X: 3, Y: 2}, {X: 1, Y: 4}})
	require.NoError(t, err)
	require.True(t, d.IsCollinear())

	neighbor, ok, err := d.NearestNeighbor(Point{X: 1, Y: 4})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Point{X: 2, Y: 3}, neighbor)
}

func TestExportLayers(t *testing.T) {
	d, err := FromPoints([]Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 5, Y: 5}})
	require.NoError(t, err)

	shapes, err := d.ExportElements(nil, Layers{Sites: true})
	require.NoError(t, err)
	assert.Len(t, shapes, 5)

	shapes, err = d.ExportElements(nil, Layers{Triangulation: true, Hull: true, LargestCircle: true})
	require.NoError(t, err)
	assert.Len(t, shapes, 4+1+1)

	shapes, err = d.ExportElements(nil, Layers{Regions: true, Voronoi: true, Sites: true})
	require.NoError(t, err)
	// 4 segments around the center and 4 rays out of the hull
	assert.Len(t, shapes, 5+8+5)

	box := d.Bounds(5)
	assert.Equal(t, NewBox(-5, -5, 15, 15), box)

	var svg bytes.Buffer
	require.NoError(t, ExportSVG(&svg, shapes, box))
	assert.Contains(t, svg.String(), "<svg")

	var png bytes.Buffer
	require.NoError(t, DrawPNG(&png, shapes, box, 3))
	assert.NotZero(t, png.Len())

	var yaml bytes.Buffer
	require.NoError(t, SaveSites(&yaml, d.Points()))
	loaded, err := LoadSites(&yaml)
	require.NoError(t, err)
	assert.Equal(t, d.Points(), loaded)
}

func TestConcurrentInsert(t *testing.T) {
	d := New()
	var wg sync.WaitGroup
	for worker := 0; worker < 4; worker++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				x := float64(worker*25+i) * 1.37
				y := float64((worker*25+i)*(worker*25+i)%97) * 0.61
				assert.NoError(t, d.Insert(x, y), fmt.Sprintf("worker %d point %d", worker, i))
			}
		}(worker)
	}
	wg.Wait()
	assert.Equal(t, 100, d.Size())

	hull, err := d.HullPolygon()
	require.NoError(t, err)
	assert.Greater(t, hull.SignedArea(), 0.0)
}
