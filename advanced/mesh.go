package advanced

import (
	"fmt"

	"github.com/logrusorgru/aurora"
)

// A triangle of the Delaunay mesh. Real triangles are counterclockwise. A
// halfplane triangle has C == A and stands for the open space to the left of
// its hull edge A->B; its AB neighbor is the real triangle inside the hull, BC
// and CA are the next and previous hull triangles.
type MeshTriangle struct {
	A, B, C SiteID

	NeighborAB, NeighborBC, NeighborCA TriangleID

	Halfplane    bool
	Circumcircle Circle
}

func (t *MeshTriangle) HasVertex(site SiteID) bool {
	return t.A == site || t.B == site || t.C == site
}

// The neighbor following site counterclockwise around it. A is checked first,
// which matters for halfplanes.
func (t *MeshTriangle) Neighbor(site SiteID) TriangleID {
	switch site {
	case t.A:
		return t.NeighborCA
	case t.B:
		return t.NeighborAB
	case t.C:
		return t.NeighborBC
	}
	return NoTriangle
}

func (t *MeshTriangle) Neighbors() [3]TriangleID {
	return [3]TriangleID{t.NeighborAB, t.NeighborBC, t.NeighborCA}
}

func (t *MeshTriangle) replaceNeighbor(old, replacement TriangleID) bool {
	switch old {
	case t.NeighborAB:
		t.NeighborAB = replacement
	case t.NeighborBC:
		t.NeighborBC = replacement
	case t.NeighborCA:
		t.NeighborCA = replacement
	default:
		return false
	}
	return true
}

func (tr *Triangulation) t(id TriangleID) *MeshTriangle {
	return &tr.triangles[id]
}

func (tr *Triangulation) point(id SiteID) Point {
	return tr.sites[id]
}

func (tr *Triangulation) newTriangle(a, b, c SiteID) TriangleID {
	id := TriangleID(len(tr.triangles))
	tr.triangles = append(tr.triangles, MeshTriangle{
		A: a, B: b, C: c,
		NeighborAB: NoTriangle, NeighborBC: NoTriangle, NeighborCA: NoTriangle,
	})
	tr.refresh(id)
	return id
}

func (tr *Triangulation) newHalfplane(a, b SiteID) TriangleID {
	id := tr.newTriangle(a, b, a)
	tr.t(id).Halfplane = true
	tr.refresh(id)
	return id
}

// Recompute the cached circumcircle after a vertex changed.
func (tr *Triangulation) refresh(id TriangleID) {
	t := tr.t(id)
	if t.Halfplane {
		t.Circumcircle = Circle{tr.point(t.A), inf}
		return
	}
	t.Circumcircle = NewCircumcircle(tr.point(t.A), tr.point(t.B), tr.point(t.C))
}

func (tr *Triangulation) replaceNeighbor(id, old, replacement TriangleID) {
	if old == replacement {
		return
	}
	if !tr.t(id).replaceNeighbor(old, replacement) {
		fatalf("%s is not a neighbor of %s", tr.DbgName(old), tr.DbgName(id))
	}
}

func (tr *Triangulation) isHalfplane(id TriangleID) bool {
	return tr.t(id).Halfplane
}

// Geometry of a mesh triangle.
func (tr *Triangulation) Geometry(id TriangleID) Triangle {
	t := tr.t(id)
	return Triangle{tr.point(t.A), tr.point(t.B), tr.point(t.C)}
}

// Whether p is inside a mesh triangle. For a halfplane, inside means left of
// the hull edge; a point on the edge line counts as on the boundary.
func (tr *Triangulation) PointInTriangle(id TriangleID, p Point) Containment {
	t := tr.t(id)
	if !t.Halfplane {
		return tr.Geometry(id).Contains(p)
	}
	switch PointTest(tr.point(t.A), tr.point(t.B), p) {
	case Left:
		return Inside
	case Right:
		return Outside
	}
	return OnBoundary
}

// The empty circle test used for flipping. A halfplane's "circle" is the
// interior side of its hull edge.
func (tr *Triangulation) PointInCircumcircle(id TriangleID, p Point) bool {
	t := tr.t(id)
	if t.Halfplane {
		return PointTest(tr.point(t.A), tr.point(t.B), p) == Right
	}
	a, b, c := tr.point(t.A), tr.point(t.B), tr.point(t.C)
	// A flat triangle left by splitting a hull edge always gives way.
	if PointTest(a, b, c) != Left {
		return true
	}
	return inCircle(a, b, c, p)
}

func (tr *Triangulation) DbgName(id TriangleID) string {
	if id == NoTriangle {
		return "Ø"
	}
	name := tr.names.Name(id)
	t := tr.t(id)
	switch {
	case t.Halfplane:
		return aurora.Red(name).String()
	case t.Circumcircle.IsDegenerate():
		return aurora.Yellow(name).String()
	}
	return aurora.Green(name).String()
}

func (tr *Triangulation) triangleString(id TriangleID) string {
	t := tr.t(id)
	if t.Halfplane {
		return fmt.Sprintf("%s: halfplane %v -> %v", tr.DbgName(id), tr.point(t.A), tr.point(t.B))
	}
	return fmt.Sprintf(
		"%s: %v %v %v [%s %s %s]",
		tr.DbgName(id),
		tr.point(t.A), tr.point(t.B), tr.point(t.C),
		tr.DbgName(t.NeighborAB), tr.DbgName(t.NeighborBC), tr.DbgName(t.NeighborCA),
	)
}

// Depth first walk over the mesh, following neighbor links from a start
// triangle. Each iterator keeps its own visited set, so walks can nest.
type TriangleIterator struct {
	tr    *Triangulation
	stack []TriangleID
	seen  bitset
}

func (tr *Triangulation) IterateTriangles() *TriangleIterator {
	iter := &TriangleIterator{tr: tr, seen: newBitset(len(tr.triangles))}
	if tr.firstTriangle != NoTriangle {
		iter.stack = append(iter.stack, tr.firstTriangle)
	}
	return iter
}

// The next unvisited triangle, or NoTriangle when the walk is done.
func (iter *TriangleIterator) Next() TriangleID {
	for len(iter.stack) > 0 {
		id := iter.stack[len(iter.stack)-1]
		iter.stack = iter.stack[:len(iter.stack)-1]
		// Skip if we've seen the triangle before
		if iter.seen.has(int(id)) {
			continue
		}
		iter.seen.set(int(id))

		for _, neighbor := range iter.tr.t(id).Neighbors() {
			if neighbor != NoTriangle && !iter.seen.has(int(neighbor)) {
				iter.stack = append(iter.stack, neighbor)
			}
		}
		return id
	}
	return NoTriangle
}

func (iter *TriangleIterator) Visited(id TriangleID) bool {
	return iter.seen.has(int(id))
}

// Call fn for every triangle reachable from the first one, halfplanes
// included.
func (tr *Triangulation) VisitTriangles(fn func(id TriangleID, t MeshTriangle)) {
	iter := tr.IterateTriangles()
	for id := iter.Next(); id != NoTriangle; id = iter.Next() {
		fn(id, *tr.t(id))
	}
}

type bitset []uint64

func newBitset(n int) bitset {
	return make(bitset, (n+63)/64)
}

func (b bitset) has(i int) bool {
	return b[i/64]&(1<<(uint(i)%64)) != 0
}

func (b bitset) set(i int) {
	b[i/64] |= 1 << (uint(i) % 64)
}
