package advanced

import (
	"math"

	"github.com/golang/geo/r2"
)

// One Sutherland-Hodgman pass. side must be affine in the point; the part of
// the ring where it is non-negative is kept.
func cutPolygon(points []Point, side func(Point) float64) []Point {
	if len(points) == 0 {
		return nil
	}
	result := make([]Point, 0, len(points)+1)
	for i, current := range points {
		previous := points[CircularIndex(i-1, len(points))]
		currentSide := side(current)
		previousSide := side(previous)
		if currentSide >= 0 {
			if previousSide < 0 {
				result = append(result, crossing(previous, current, previousSide, currentSide))
			}
			result = append(result, current)
		} else if previousSide >= 0 {
			result = append(result, crossing(previous, current, previousSide, currentSide))
		}
	}
	return result
}

func crossing(a, b Point, sideA, sideB float64) Point {
	t := sideA / (sideA - sideB)
	return a.Add(b.Sub(a).Scale(t))
}

// Keep the part of the ring on the given side of the line through origin.
func cutHalfplane(points []Point, origin, direction Point, keep Orientation) []Point {
	sign := 1.0
	if keep == Right {
		sign = -1
	}
	return cutPolygon(points, func(p Point) float64 {
		return sign * direction.Cross(p.Sub(origin))
	})
}

func fromR2(p r2.Point) Point {
	return Point{p.X, p.Y}
}

func toR2(p Point) r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

// Corners in counterclockwise order starting at the lower left.
func BoxPolygon(box Box) Polygon {
	vertices := box.Vertices()
	points := make([]Point, len(vertices))
	for i, v := range vertices {
		points[i] = fromR2(v)
	}
	return Polygon{points}
}

// Bounding box of the points, grown by margin on every side.
func BoundingBox(points []Point, margin float64) Box {
	if len(points) == 0 {
		return NewBox(-margin, -margin, margin, margin)
	}
	r2Points := make([]r2.Point, 0, len(points))
	for _, p := range points {
		if !p.IsInfinity() {
			r2Points = append(r2Points, toR2(p))
		}
	}
	return r2.RectFromPoints(r2Points...).ExpandedByMargin(margin)
}

// Clip any shape to the box. Edges come back as segments, areas as polygons.
// Points and circles are returned unchanged when they touch the box.
func ClipShape(shape Shape, box Box) (Shape, bool) {
	switch s := shape.(type) {
	case Point:
		return s, box.ContainsPoint(toR2(s))
	case Circle:
		if s.IsDegenerate() {
			return nil, false
		}
		dx := math.Max(0, math.Max(box.X.Lo-s.Center.X, s.Center.X-box.X.Hi))
		dy := math.Max(0, math.Max(box.Y.Lo-s.Center.Y, s.Center.Y-box.Y.Hi))
		return s, math.Hypot(dx, dy) <= s.Radius
	case Edge:
		return s.ClipTo(box)
	case Triangle:
		return Polygon{s.Points()}.ClipTo(box)
	case Polygon:
		return s.ClipTo(box)
	case Region:
		return s.ClipTo(box)
	}
	return nil, false
}
