package advanced

import (
	"math"
	"math/big"
)

// The orientation and in-circle tests decide the structure of the mesh, so
// they have to agree with each other no matter how the arguments are ordered.
// Both compute the determinant in floating point first, together with a bound
// on its rounding error. Only when the result is within that bound is it
// recomputed exactly.

const (
	// Error bounds for the float determinants, relative to the sum of the
	// magnitudes of their terms.
	orientErrorBound   = 3.3306690738754716e-16
	inCircleErrorBound = 1.1102230246251577e-15
)

func newBigFloat() *big.Float { return new(big.Float).SetPrec(big.MaxPrec) }

func exact(x float64) *big.Float { return newBigFloat().SetFloat64(x) }

func isFinite(points ...Point) bool {
	for _, p := range points {
		if math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) || math.IsNaN(p.X) || math.IsNaN(p.Y) {
			return false
		}
	}
	return true
}

// Sign of the cross product (b-a) x (c-a): positive when a, b, c turn
// counterclockwise, zero when they are collinear. Swapping any two arguments
// negates the result.
func orientation(a, b, c Point) int {
	left := (b.X - a.X) * (c.Y - a.Y)
	right := (c.X - a.X) * (b.Y - a.Y)
	det := left - right
	bound := orientErrorBound * (math.Abs(left) + math.Abs(right))
	switch {
	case det > bound:
		return 1
	case -det > bound:
		return -1
	case !isFinite(a, b, c):
		return floatSign(det)
	}
	return exactOrientation(a, b, c)
}

func exactOrientation(a, b, c Point) int {
	bax := newBigFloat().Sub(exact(b.X), exact(a.X))
	bay := newBigFloat().Sub(exact(b.Y), exact(a.Y))
	cax := newBigFloat().Sub(exact(c.X), exact(a.X))
	cay := newBigFloat().Sub(exact(c.Y), exact(a.Y))
	left := newBigFloat().Mul(bax, cay)
	right := newBigFloat().Mul(cax, bay)
	return left.Cmp(right)
}

// Reports whether d lies strictly inside the circle through the
// counterclockwise triangle a, b, c. Cocircular points are not inside.
func inCircle(a, b, c, d Point) bool {
	adx, ady := a.X-d.X, a.Y-d.Y
	bdx, bdy := b.X-d.X, b.Y-d.Y
	cdx, cdy := c.X-d.X, c.Y-d.Y

	alift := adx*adx + ady*ady
	blift := bdx*bdx + bdy*bdy
	clift := cdx*cdx + cdy*cdy

	bc := bdx*cdy - cdx*bdy
	ca := cdx*ady - adx*cdy
	ab := adx*bdy - bdx*ady

	det := alift*bc + blift*ca + clift*ab
	permanent := alift*(math.Abs(bdx*cdy)+math.Abs(cdx*bdy)) +
		blift*(math.Abs(cdx*ady)+math.Abs(adx*cdy)) +
		clift*(math.Abs(adx*bdy)+math.Abs(bdx*ady))
	bound := inCircleErrorBound * permanent
	switch {
	case det > bound:
		return true
	case -det > bound:
		return false
	case !isFinite(a, b, c, d):
		return det > 0
	}
	return exactInCircle(a, b, c, d) > 0
}

func exactInCircle(a, b, c, d Point) int {
	dx, dy := exact(d.X), exact(d.Y)
	rel := func(p Point) (*big.Float, *big.Float, *big.Float) {
		x := newBigFloat().Sub(exact(p.X), dx)
		y := newBigFloat().Sub(exact(p.Y), dy)
		lift := newBigFloat().Add(newBigFloat().Mul(x, x), newBigFloat().Mul(y, y))
		return x, y, lift
	}
	cross := func(x1, y1, x2, y2 *big.Float) *big.Float {
		return newBigFloat().Sub(newBigFloat().Mul(x1, y2), newBigFloat().Mul(x2, y1))
	}

	adx, ady, alift := rel(a)
	bdx, bdy, blift := rel(b)
	cdx, cdy, clift := rel(c)

	det := newBigFloat().Mul(alift, cross(bdx, bdy, cdx, cdy))
	det.Add(det, newBigFloat().Mul(blift, cross(cdx, cdy, adx, ady)))
	det.Add(det, newBigFloat().Mul(clift, cross(adx, ady, bdx, bdy)))
	return det.Sign()
}

func floatSign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
