package advanced

import "math"

type CircleSide int

const (
	OutOfCircle CircleSide = iota
	OnCircle
	InCircle
)

// Circle through three points. Collinear input gives a degenerate circle
// centered on a with infinite radius.
func NewCircumcircle(a, b, c Point) Circle {
	u := ((a.X-b.X)*(a.X+b.X) + (a.Y-b.Y)*(a.Y+b.Y)) / 2
	v := ((b.X-c.X)*(b.X+c.X) + (b.Y-c.Y)*(b.Y+c.Y)) / 2
	den := (a.X-b.X)*(b.Y-c.Y) - (b.X-c.X)*(a.Y-b.Y)
	if den == 0 {
		return Circle{a, math.Inf(1)}
	}
	center := Point{
		(u*(b.Y-c.Y) - v*(a.Y-b.Y)) / den,
		(v*(a.X-b.X) - u*(b.X-c.X)) / den,
	}
	return Circle{center, center.Distance(a)}
}

func (c Circle) IsDegenerate() bool {
	return math.IsInf(c.Radius, 0) || math.IsNaN(c.Radius)
}

func (c Circle) Contains(p Point) CircleSide {
	d := c.Center.Distance(p)
	switch {
	case d < c.Radius:
		return InCircle
	case d == c.Radius:
		return OnCircle
	}
	return OutOfCircle
}
