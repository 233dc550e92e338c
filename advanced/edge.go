package advanced

import "math"

// Edge is a straight boundary piece: a segment, a ray or a full line. All three
// are a start point plus a direction with a different parameter range.
type Edge interface {
	Shape
	PointTest(p Point) Orientation
	Intersect(other Edge) (Point, bool)
	ClipTo(box Box) (Segment, bool)
	parametric() (origin, direction Point, lo, hi float64)
}

func (s Segment) parametric() (Point, Point, float64, float64) {
	return s.Start, s.End.Sub(s.Start), 0, 1
}

func (r Ray) parametric() (Point, Point, float64, float64) {
	return r.Start, r.Direction, 0, math.Inf(1)
}

func (l Line) parametric() (Point, Point, float64, float64) {
	return l.Start, l.Direction, math.Inf(-1), math.Inf(1)
}

func (s Segment) PointTest(p Point) Orientation {
	return PointTest(s.Start, s.End, p)
}

func (r Ray) PointTest(p Point) Orientation {
	return PointTest(r.Start, r.Start.Add(r.Direction), p)
}

func (l Line) PointTest(p Point) Orientation {
	return PointTest(l.Start, l.Start.Add(l.Direction), p)
}

func (s Segment) Intersect(other Edge) (Point, bool) { return intersect(s, other) }
func (r Ray) Intersect(other Edge) (Point, bool)     { return intersect(r, other) }
func (l Line) Intersect(other Edge) (Point, bool)    { return intersect(l, other) }

func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}

func (s Segment) Mid() Point {
	return s.Start.Mid(s.End)
}

// Point at the given distance from the start of the ray.
func (r Ray) PointOnRay(distance float64) Point {
	length := r.Direction.Length()
	if length == 0 {
		return r.Start
	}
	return r.Start.Add(r.Direction.Scale(distance / length))
}

// Solve start1 + m*dir1 = start2 + n*dir2 and check both parameters against
// their edge's range.
func intersect(e1, e2 Edge) (Point, bool) {
	o1, d1, lo1, hi1 := e1.parametric()
	o2, d2, lo2, hi2 := e2.parametric()
	den := d1.Cross(d2)
	if math.Abs(den) < Parallel {
		return Point{}, false
	}
	w := o2.Sub(o1)
	m := w.Cross(d2) / den
	n := w.Cross(d1) / den
	if m < lo1 || m > hi1 || n < lo2 || n > hi2 {
		return Point{}, false
	}
	return o1.Add(d1.Scale(m)), true
}

func (s Segment) ClipTo(box Box) (Segment, bool) {
	return clipSegment(s.Start, s.End, box)
}

func (r Ray) ClipTo(box Box) (Segment, bool) {
	reach, ok := reachBeyond(r.Start, r.Direction, box)
	if !ok {
		return Segment{}, false
	}
	return clipSegment(r.Start, r.Start.Add(reach), box)
}

func (l Line) ClipTo(box Box) (Segment, bool) {
	reach, ok := reachBeyond(l.Start, l.Direction, box)
	if !ok {
		return Segment{}, false
	}
	return clipSegment(l.Start.Sub(reach), l.Start.Add(reach), box)
}

// A vector along direction long enough to carry origin past every corner of
// the box.
func reachBeyond(origin, direction Point, box Box) (Point, bool) {
	length := direction.Length()
	if length == 0 || origin.IsInfinity() {
		return Point{}, false
	}
	center := fromR2(box.Center())
	size := box.Size()
	distance := origin.Distance(center) + math.Hypot(size.X, size.Y) + 1
	return direction.Scale(distance / length), true
}

const (
	clipLeft = 1 << iota
	clipRight
	clipBottom
	clipTop
)

func outcode(p Point, box Box) int {
	code := 0
	if p.X < box.X.Lo {
		code |= clipLeft
	} else if p.X > box.X.Hi {
		code |= clipRight
	}
	if p.Y < box.Y.Lo {
		code |= clipBottom
	} else if p.Y > box.Y.Hi {
		code |= clipTop
	}
	return code
}

// Cohen-Sutherland line clipping.
func clipSegment(a, b Point, box Box) (Segment, bool) {
	codeA := outcode(a, box)
	codeB := outcode(b, box)
	for {
		if codeA|codeB == 0 {
			return Segment{a, b}, true
		}
		if codeA&codeB != 0 {
			return Segment{}, false
		}

		code := codeA
		if code == 0 {
			code = codeB
		}
		var p Point
		switch {
		case code&clipTop != 0:
			p = Point{a.X + (b.X-a.X)*(box.Y.Hi-a.Y)/(b.Y-a.Y), box.Y.Hi}
		case code&clipBottom != 0:
			p = Point{a.X + (b.X-a.X)*(box.Y.Lo-a.Y)/(b.Y-a.Y), box.Y.Lo}
		case code&clipRight != 0:
			p = Point{box.X.Hi, a.Y + (b.Y-a.Y)*(box.X.Hi-a.X)/(b.X-a.X)}
		default:
			p = Point{box.X.Lo, a.Y + (b.Y-a.Y)*(box.X.Lo-a.X)/(b.X-a.X)}
		}

		if code == codeA {
			a = p
			codeA = outcode(a, box)
		} else {
			b = p
			codeB = outcode(b, box)
		}
	}
}
