package advanced

type Containment int

const (
	Outside Containment = iota
	OnBoundary
	Inside
)

func (c Containment) String() string {
	switch c {
	case Inside:
		return "Inside"
	case OnBoundary:
		return "OnBoundary"
	}
	return "Outside"
}

// Positive for counterclockwise triangles.
func (t Triangle) SignedArea() float64 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)) / 2
}

func (t Triangle) Circumcircle() Circle {
	return NewCircumcircle(t.A, t.B, t.C)
}

// Works for either winding.
func (t Triangle) Contains(p Point) Containment {
	a, b, c := t.A, t.B, t.C
	if PointTest(a, b, c) == Right {
		a, b = b, a
	}
	sides := [3]Orientation{PointTest(a, b, p), PointTest(b, c, p), PointTest(c, a, p)}
	left := 0
	for _, side := range sides {
		switch side {
		case OnEdge:
			return OnBoundary
		case Left:
			left++
		}
	}
	if left == 3 {
		return Inside
	}
	return Outside
}

func (t Triangle) Points() []Point {
	return []Point{t.A, t.B, t.C}
}
