package advanced

import "math"

// Points closer than this are the same site.
const Close = 1e-4

// Edges whose direction cross product is smaller than this don't intersect.
const Parallel = 1e-5

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (p Point) IsInfinity() bool {
	return math.IsInf(p.X, 0) || math.IsInf(p.Y, 0)
}

// Distance based equality. Infinity only equals itself.
func (p Point) Equal(other Point) bool {
	if p.IsInfinity() || other.IsInfinity() {
		return p.IsInfinity() && other.IsInfinity()
	}
	return p.Distance(other) < Close
}

func (p Point) Distance(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// Lexicographic order, x first.
func (p Point) Compare(other Point) int {
	switch {
	case p.X < other.X:
		return -1
	case p.X > other.X:
		return 1
	case p.Y < other.Y:
		return -1
	case p.Y > other.Y:
		return 1
	}
	return 0
}

func (p Point) Add(other Point) Point {
	return Point{p.X + other.X, p.Y + other.Y}
}

func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

func (p Point) Mid(other Point) Point {
	return Point{(p.X + other.X) / 2, (p.Y + other.Y) / 2}
}

// Rotate by 90 degrees counterclockwise.
func (p Point) Perp() Point {
	return Point{-p.Y, p.X}
}

func (p Point) Cross(other Point) float64 {
	return p.X*other.Y - p.Y*other.X
}

func (p Point) Dot(other Point) float64 {
	return p.X*other.X + p.Y*other.Y
}

func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

var inf = math.Inf(1)
