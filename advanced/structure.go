package advanced

import (
	"fmt"

	"github.com/osuushi/voronoi/dbg"
)

// One edge of the Voronoi diagram, dual to an edge of the triangulation. The
// edge runs from the circumcenter of the triangle that created it to the
// circumcenter across the Delaunay edge, or out to infinity along Direction
// when the Delaunay edge is on the hull.
//
// RightSite and LeftSite are the Delaunay edge's endpoints. The four links are
// the next edges counterclockwise (Right) and clockwise (Left) around each
// endpoint.
type DualEdge struct {
	Start     Point
	End       Point
	Direction Point

	RightSite Point
	LeftSite  Point

	StartRight *DualEdge
	StartLeft  *DualEdge
	EndRight   *DualEdge
	EndLeft    *DualEdge

	startTriangle TriangleID
	endTriangle   TriangleID
}

func (e *DualEdge) IsRay() bool {
	return e.endTriangle == NoTriangle
}

func (e *DualEdge) ToEdge() Edge {
	if e.IsRay() {
		return Ray{e.Start, e.Direction}
	}
	return Segment{e.Start, e.End}
}

func (e *DualEdge) String() string {
	end := fmt.Sprint(e.End)
	if e.IsRay() {
		end = fmt.Sprintf("ray %v", e.Direction)
	}
	return fmt.Sprintf(
		"%s: %v -> %s between %v and %v [start %s %s, end %s %s]",
		dbg.Name(e), e.Start, end, e.RightSite, e.LeftSite,
		dbg.Name(e.StartRight), dbg.Name(e.StartLeft), dbg.Name(e.EndRight), dbg.Name(e.EndLeft),
	)
}

func (e *DualEdge) connectRight(next *DualEdge, at TriangleID) {
	switch at {
	case e.endTriangle:
		e.EndRight = next
	case e.startTriangle:
		e.StartRight = next
	}
}

func (e *DualEdge) connectLeft(next *DualEdge, at TriangleID) {
	switch at {
	case e.endTriangle:
		e.EndLeft = next
	case e.startTriangle:
		e.StartLeft = next
	}
}

// Build the linked edge graph of the diagram, one edge per Delaunay edge that
// touches a real triangle. Collinear diagrams have no vertices and give nil.
func (v *VoronoiDiagram) Structure() []*DualEdge {
	tr := v.tr
	if tr.allCollinear {
		return nil
	}

	owned := make([][3]*DualEdge, len(tr.triangles))
	built := newBitset(len(tr.triangles))
	var result []*DualEdge

	iter := tr.IterateTriangles()
	for id := iter.Next(); id != NoTriangle; id = iter.Next() {
		t := tr.t(id)
		if t.Halfplane {
			continue
		}
		sides := [3][2]SiteID{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}}
		for i, neighbor := range t.Neighbors() {
			if !tr.isHalfplane(neighbor) && built.has(int(neighbor)) {
				owned[id][i] = owned[neighbor][tr.sideFacing(neighbor, id)]
				continue
			}

			right, left := tr.point(sides[i][0]), tr.point(sides[i][1])
			edge := &DualEdge{
				Start:         t.Circumcircle.Center,
				End:           Infinity,
				RightSite:     right,
				LeftSite:      left,
				startTriangle: id,
				endTriangle:   NoTriangle,
			}
			if tr.isHalfplane(neighbor) {
				edge.Direction = right.Sub(left).Perp()
			} else {
				edge.End = tr.t(neighbor).Circumcircle.Center
				edge.endTriangle = neighbor
			}
			owned[id][i] = edge
			result = append(result, edge)
		}
		built.set(int(id))
	}

	iter = tr.IterateTriangles()
	for id := iter.Next(); id != NoTriangle; id = iter.Next() {
		if tr.isHalfplane(id) {
			continue
		}
		ab, bc, ca := owned[id][0], owned[id][1], owned[id][2]
		ab.connectRight(ca, id)
		ab.connectLeft(bc, id)
		bc.connectRight(ab, id)
		bc.connectLeft(ca, id)
		ca.connectRight(bc, id)
		ca.connectLeft(ab, id)
	}
	return result
}

// Index of the edge of triangle id shared with other, in AB, BC, CA order.
func (tr *Triangulation) sideFacing(id, other TriangleID) int {
	for i, neighbor := range tr.t(id).Neighbors() {
		if neighbor == other {
			return i
		}
	}
	fatalf("%s is not a neighbor of %s", tr.DbgName(other), tr.DbgName(id))
	return -1
}
