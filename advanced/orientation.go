package advanced

// Where a point lies relative to a directed edge a->b.
type Orientation int

const (
	Undefined Orientation = iota
	Left
	Right
	// On the line between a and b
	OnEdge
	// On the line, before a
	Before
	// On the line, past b
	Behind
)

func (o Orientation) String() string {
	switch o {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case OnEdge:
		return "OnEdge"
	case Before:
		return "Before"
	case Behind:
		return "Behind"
	}
	return "Undefined"
}

// Classify c against the directed edge a->b. Collinear points are sorted along
// the edge by whichever axis the edge moves along. A zero length edge gives
// Undefined. The side is exact, so c is Left of a->b exactly when it is Right
// of b->a.
func PointTest(a, b, c Point) Orientation {
	switch orientation(a, b, c) {
	case 1:
		return Left
	case -1:
		return Right
	}

	dx := b.X - a.X
	dy := b.Y - a.Y
	switch {
	case dx > 0:
		return sortAlong(c.X < a.X, b.X < c.X)
	case dx < 0:
		return sortAlong(c.X > a.X, b.X > c.X)
	case dy > 0:
		return sortAlong(c.Y < a.Y, b.Y < c.Y)
	case dy < 0:
		return sortAlong(c.Y > a.Y, b.Y > c.Y)
	}
	return Undefined
}

func sortAlong(before, behind bool) Orientation {
	if before {
		return Before
	}
	if behind {
		return Behind
	}
	return OnEdge
}
