package advanced

// Read only view of the hull ring of a triangulation.
type ConvexHull struct {
	tr *Triangulation
}

func NewConvexHull(tr *Triangulation) *ConvexHull {
	return &ConvexHull{tr}
}

// Walk the hull ring once, starting at the first hull triangle.
func (h *ConvexHull) eachHalfplane(fn func(id TriangleID, t *MeshTriangle)) {
	tr := h.tr
	start := tr.firstHullTriangle
	if start == NoTriangle {
		return
	}
	id := start
	for steps := 0; steps <= len(tr.triangles); steps++ {
		fn(id, tr.t(id))
		id = tr.t(id).NeighborCA
		if id == start {
			return
		}
		if !tr.isHalfplane(id) {
			fatalf("hull ring left the hull at %s", tr.triangleString(id))
		}
	}
	fatalf("hull ring does not close")
}

// Hull vertices in counterclockwise order. A single site gives a one point
// polygon; collinear sites give the line walked there and back.
func (h *ConvexHull) Polygon() Polygon {
	tr := h.tr
	if len(tr.sites) == 1 {
		return Polygon{[]Point{tr.sites[0]}}
	}
	var poly Polygon
	h.eachHalfplane(func(_ TriangleID, t *MeshTriangle) {
		poly.Points = append(poly.Points, tr.point(t.A))
	})
	return poly
}

// Whether p is inside the hull or on its boundary.
func (h *ConvexHull) ContainsPoint(p Point) bool {
	tr := h.tr
	switch len(tr.sites) {
	case 0:
		return false
	case 1:
		return tr.sites[0].Equal(p)
	}
	if tr.allCollinear {
		return PointTest(tr.point(tr.firstPoint), tr.point(tr.lastPoint), p) == OnEdge
	}
	inside := true
	h.eachHalfplane(func(_ TriangleID, t *MeshTriangle) {
		// The exterior is to the left of A->B.
		if PointTest(tr.point(t.A), tr.point(t.B), p) == Left {
			inside = false
		}
	})
	return inside
}
