package advanced

// Even-odd point-in-polygon.
func (poly Polygon) ContainsPoint(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Crossing count helper for even odd rule. Counts the edges crossed by a ray
// from p towards +X.
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]
		if (vertex.Y > p.Y) == (nextVertex.Y > p.Y) {
			continue
		}
		x := vertex.X + (p.Y-vertex.Y)*(nextVertex.X-vertex.X)/(nextVertex.Y-vertex.Y)
		if p.X < x {
			crossingCount++
		}
	}
	return crossingCount
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Shoelace area, positive for counterclockwise polygons.
func (poly Polygon) SignedArea() float64 {
	area := 0.0
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]
		area += vertex.Cross(nextVertex)
	}
	return area / 2
}

func (poly Polygon) Segments() []Segment {
	if len(poly.Points) < 2 {
		return nil
	}
	segments := make([]Segment, len(poly.Points))
	for i, vertex := range poly.Points {
		segments[i] = Segment{vertex, poly.Points[CircularIndex(i+1, len(poly.Points))]}
	}
	return segments
}

// Cut the polygon against each side of the box in turn. The result is false
// when nothing of the polygon is left.
func (poly Polygon) ClipTo(box Box) (Polygon, bool) {
	points := poly.Points
	points = cutPolygon(points, func(p Point) float64 { return p.X - box.X.Lo })
	points = cutPolygon(points, func(p Point) float64 { return box.X.Hi - p.X })
	points = cutPolygon(points, func(p Point) float64 { return p.Y - box.Y.Lo })
	points = cutPolygon(points, func(p Point) float64 { return box.Y.Hi - p.Y })
	if len(points) < 3 {
		return Polygon{}, false
	}
	return Polygon{points}, true
}
