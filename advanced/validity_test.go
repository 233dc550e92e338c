package advanced

// This contains no actual tests. It is just a helper for testing
// triangulation validity.

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation is valid. The rules are:
// 1. Neighbor links are symmetric and real neighbors share an edge.
// 2. Every real triangle is counterclockwise with nonzero area.
// 3. No site is strictly inside the circumcircle of a real triangle.
// 4. Every site is a vertex of the mesh.
// 5. The arena holds exactly the 2n-2 triangles of the mesh, of which 2n-2-h
//    are real, where h is the number of sites on the hull boundary.
func AssertValidDelaunay(t *testing.T, tr *Triangulation) {
	t.Helper()
	AssertMeshSymmetry(t, tr)

	n := tr.Size()
	if n < 2 {
		require.Equal(t, NoTriangle, tr.FirstTriangle())
		return
	}

	seen := make(map[SiteID]bool)
	real, halfplanes := 0, 0
	tr.VisitTriangles(func(id TriangleID, tri MeshTriangle) {
		seen[tri.A] = true
		seen[tri.B] = true
		if tri.Halfplane {
			halfplanes++
			return
		}
		real++
		seen[tri.C] = true

		a, b, c := tr.point(tri.A), tr.point(tri.B), tr.point(tri.C)
		require.Equal(t, Left, PointTest(a, b, c), "not counterclockwise: %s", tr.triangleString(id))

		for i, site := range tr.sites {
			if tri.HasVertex(SiteID(i)) {
				continue
			}
			if inCircle(a, b, c, site) {
				if testing.Verbose() {
					tr.dbgDraw(4)
				}
				t.Fatalf("site %v is inside the circumcircle of %s", site, tr.triangleString(id))
			}
		}
	})

	assert.Len(t, seen, n, "every site must be a mesh vertex")
	assert.Equal(t, 2*n-2, real+halfplanes)
	assert.Equal(t, len(tr.triangles), real+halfplanes, "arena must not hold dead triangles")
	if tr.IsCollinear() {
		assert.Equal(t, 0, real)
	} else {
		assert.Equal(t, 2*n-2-halfplanes, real)
	}
}

func AssertMeshSymmetry(t *testing.T, tr *Triangulation) {
	t.Helper()
	tr.VisitTriangles(func(id TriangleID, tri MeshTriangle) {
		for i, neighbor := range tri.Neighbors() {
			require.NotEqual(t, NoTriangle, neighbor, "%s has a missing neighbor", tr.triangleString(id))
			other := tr.Triangle(neighbor)
			back := other.Neighbors()
			require.Contains(t, back[:], id, "%s does not point back to %s", tr.triangleString(neighbor), tr.triangleString(id))

			if tri.Halfplane || other.Halfplane {
				continue
			}
			edge := [3][2]SiteID{{tri.A, tri.B}, {tri.B, tri.C}, {tri.C, tri.A}}[i]
			assert.True(t, other.HasVertex(edge[0]) && other.HasVertex(edge[1]),
				"%s and %s do not share an edge", tr.triangleString(id), tr.triangleString(neighbor))
		}
	})
}

// Hull by monotone chain, counterclockwise, without collinear points.
func bruteForceHull(points []Point) []Point {
	sorted := append([]Point(nil), points...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Compare(sorted[j]) < 0 })
	cross := func(o, a, b Point) float64 { return a.Sub(o).Cross(b.Sub(o)) }

	var hull []Point
	for pass := 0; pass < 2; pass++ {
		start := len(hull)
		for _, p := range sorted {
			for len(hull) >= start+2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
				hull = hull[:len(hull)-1]
			}
			hull = append(hull, p)
		}
		hull = hull[:len(hull)-1]
		for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
			sorted[i], sorted[j] = sorted[j], sorted[i]
		}
	}
	return hull
}

// Rotate a closed ring so that its lexicographically smallest point is first.
func normalizeRing(points []Point) []Point {
	if len(points) == 0 {
		return points
	}
	lowest := 0
	for i, p := range points {
		if p.Compare(points[lowest]) < 0 {
			lowest = i
		}
	}
	return append(append([]Point(nil), points[lowest:]...), points[:lowest]...)
}

// Drop ring vertices that lie on the line through their neighbors.
func withoutCollinear(points []Point) []Point {
	var result []Point
	for i, p := range points {
		previous := points[CircularIndex(i-1, len(points))]
		next := points[CircularIndex(i+1, len(points))]
		if PointTest(previous, next, p) != OnEdge {
			result = append(result, p)
		}
	}
	return result
}

func buildTriangulation(t *testing.T, points []Point) *Triangulation {
	t.Helper()
	tr := NewTriangulation()
	for _, p := range points {
		_, err := tr.Insert(p)
		require.NoError(t, err)
	}
	return tr
}
