package advanced

// A region with at most one boundary point is the whole plane. This is the
// cell of the only site of a diagram.
func (r Region) IsWholePlane() bool {
	return len(r.Points) <= 1
}

func (r Region) IsOpen() bool {
	for _, p := range r.Points {
		if p.IsInfinity() {
			return true
		}
	}
	return false
}

// Boundary pieces of the region. Finite neighbours become segments; the pair
// around each Infinity becomes two rays, each starting at the finite point
// next to its direction point.
func (r Region) Edges() []Edge {
	if r.IsWholePlane() {
		return nil
	}
	n := len(r.Points)
	var edges []Edge
	for i := 0; i < n; i++ {
		p := r.Points[i]
		q := r.Points[CircularIndex(i+1, n)]
		next := r.Points[CircularIndex(i+2, n)]
		switch {
		case q.IsInfinity():
			continue
		case next.IsInfinity():
			edges = append(edges, Ray{p, q.Sub(p)})
			i++
		case p.IsInfinity():
			edges = append(edges, Ray{next, q.Sub(next)})
			i++
		case !p.Equal(q):
			edges = append(edges, Segment{p, q})
		}
	}
	return edges
}

// A point is inside when the segment to the kernel crosses no boundary.
func (r Region) ContainsPoint(p Point) bool {
	if p.Equal(r.Kernel) {
		return true
	}
	toKernel := Segment{p, r.Kernel}
	for _, edge := range r.Edges() {
		if _, ok := edge.Intersect(toKernel); ok {
			return false
		}
	}
	return true
}

// The part of the box inside the region. Every boundary edge cuts the box
// polygon down to its kernel side.
func (r Region) ClipTo(box Box) (Polygon, bool) {
	points := BoxPolygon(box).Points
	for _, edge := range r.Edges() {
		origin, direction, _, _ := edge.parametric()
		keep := edge.PointTest(r.Kernel)
		if keep != Left && keep != Right {
			continue
		}
		points = cutHalfplane(points, origin, direction, keep)
	}
	if len(points) < 3 {
		return Polygon{}, false
	}
	return Polygon{points}, true
}
