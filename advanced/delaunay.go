package advanced

import (
	"fmt"
	"strings"

	"github.com/osuushi/voronoi/dbg"
	"github.com/pkg/errors"
)

// An incrementally built Delaunay triangulation. Sites are kept in insertion
// order; the mesh is derived from them and is rebuilt from scratch whenever a
// site is removed or moved.
type Triangulation struct {
	sites     []Point
	triangles []MeshTriangle
	// Number of sites currently in the mesh. Lags behind len(sites) during a
	// rebuild.
	meshed int

	firstTriangle     TriangleID
	firstHullTriangle TriangleID

	// While every site is on one line the mesh is a ring of halfplane pairs
	// running from firstPoint to lastPoint and back.
	allCollinear     bool
	firstPoint       SiteID
	lastPoint        SiteID
	firstColTriangle TriangleID
	lastColTriangle  TriangleID

	names dbg.Namer
}

func NewTriangulation() *Triangulation {
	tr := &Triangulation{}
	tr.reset()
	return tr
}

func (tr *Triangulation) reset() {
	tr.triangles = nil
	tr.meshed = 0
	tr.firstTriangle = NoTriangle
	tr.firstHullTriangle = NoTriangle
	tr.allCollinear = true
	tr.firstPoint = NoSite
	tr.lastPoint = NoSite
	tr.firstColTriangle = NoTriangle
	tr.lastColTriangle = NoTriangle
	tr.names.Reset()
}

func (tr *Triangulation) Size() int {
	return len(tr.sites)
}

// Sites in insertion order.
func (tr *Triangulation) Sites() []Point {
	return append([]Point(nil), tr.sites...)
}

func (tr *Triangulation) Site(id SiteID) Point {
	return tr.sites[id]
}

// Handle of the site equal to p.
func (tr *Triangulation) SiteID(p Point) (SiteID, bool) {
	for i, site := range tr.sites {
		if site.Equal(p) {
			return SiteID(i), true
		}
	}
	return NoSite, false
}

// True while there are fewer than three sites or all of them are on one line.
func (tr *Triangulation) IsCollinear() bool {
	return tr.allCollinear
}

func (tr *Triangulation) Triangle(id TriangleID) MeshTriangle {
	return *tr.t(id)
}

func (tr *Triangulation) FirstTriangle() TriangleID {
	return tr.firstTriangle
}

// A halfplane on the hull ring, or NoTriangle below two sites.
func (tr *Triangulation) FirstHullTriangle() TriangleID {
	return tr.firstHullTriangle
}

// Add a site. If the mesh breaks while placing it, the site is dropped again
// and the mesh rebuilt from the remaining sites before the panic continues.
func (tr *Triangulation) Insert(p Point) (SiteID, error) {
	if _, ok := tr.SiteID(p); ok {
		return NoSite, errors.Wrapf(ErrDuplicateSite, "inserting %v", p)
	}
	tr.sites = append(tr.sites, p)
	id := SiteID(len(tr.sites) - 1)
	defer func() {
		if r := recover(); r != nil {
			tr.sites = tr.sites[:id]
			tr.Rebuild()
			panic(r)
		}
	}()
	tr.insertSite(id)
	return id, nil
}

// Remove the site equal to p. Reports whether there was one.
func (tr *Triangulation) Delete(p Point) bool {
	id, ok := tr.SiteID(p)
	if !ok {
		return false
	}
	tr.sites = append(tr.sites[:id], tr.sites[id+1:]...)
	tr.Rebuild()
	return true
}

// Move the site equal to p to (x, y).
func (tr *Triangulation) Move(p Point, x, y float64) error {
	id, ok := tr.SiteID(p)
	if !ok {
		return errors.Wrapf(ErrSiteNotFound, "moving %v", p)
	}
	target := Point{x, y}
	for i, site := range tr.sites {
		if SiteID(i) != id && site.Equal(target) {
			return errors.Wrapf(ErrDuplicateSite, "moving %v to %v", p, target)
		}
	}
	tr.sites[id] = target
	tr.Rebuild()
	return nil
}

func (tr *Triangulation) Clear() {
	tr.sites = nil
	tr.reset()
}

// Throw away the mesh and insert every site again, in order.
func (tr *Triangulation) Rebuild() {
	tr.reset()
	for i := range tr.sites {
		tr.insertSite(SiteID(i))
	}
}

func (tr *Triangulation) insertSite(p SiteID) {
	tr.meshed++
	switch tr.meshed {
	case 1:
		tr.firstPoint = p
		return
	case 2:
		tr.startLine(p)
		return
	}

	if tr.allCollinear {
		tr.extendLine(p)
	} else {
		located := tr.find(tr.firstTriangle, tr.point(p), p)
		if tr.isHalfplane(located) {
			tr.firstTriangle = tr.extendHull(located, p)
		} else {
			tr.firstTriangle = tr.splitTriangle(located, p)
		}
	}

	if !tr.allCollinear {
		tr.flipAround(p)
	}
}

// Two sites: a pair of halfplanes facing each other, sorted so that
// firstPoint < lastPoint.
func (tr *Triangulation) startLine(p SiteID) {
	first, last := tr.firstPoint, p
	if tr.point(last).Compare(tr.point(first)) < 0 {
		first, last = last, first
	}
	tr.firstPoint, tr.lastPoint = first, last

	forward := tr.newHalfplane(first, last)
	backward := tr.newHalfplane(last, first)
	f, b := tr.t(forward), tr.t(backward)
	f.NeighborAB, f.NeighborBC, f.NeighborCA = backward, backward, backward
	b.NeighborAB, b.NeighborBC, b.NeighborCA = forward, forward, forward

	tr.firstColTriangle = forward
	tr.lastColTriangle = forward
	tr.firstTriangle = forward
	tr.firstHullTriangle = forward
	tr.allCollinear = true
}

// Insert into a collinear mesh. A site off the line turns it into a real
// triangulation; a site on the line is spliced into the chain.
func (tr *Triangulation) extendLine(p SiteID) {
	first, last := tr.point(tr.firstPoint), tr.point(tr.lastPoint)
	switch side := PointTest(first, last, tr.point(p)); side {
	case Right:
		tr.firstTriangle = tr.extendHull(tr.t(tr.firstColTriangle).NeighborAB, p)
		tr.allCollinear = false
	case Left:
		tr.firstTriangle = tr.extendHull(tr.firstColTriangle, p)
		tr.allCollinear = false
	case OnEdge:
		tr.spliceLine(p)
	case Before:
		tr.prependLine(p)
	case Behind:
		tr.appendLine(p)
	default:
		fatalf("cannot place %v against %v -> %v: %s", tr.point(p), first, last, side)
	}
}

// p lies strictly between two consecutive sites of the chain.
func (tr *Triangulation) spliceLine(p SiteID) {
	pt := tr.point(p)
	u := tr.firstColTriangle
	for pt.Compare(tr.point(tr.t(u).A)) > 0 {
		u = tr.t(u).NeighborBC
	}
	u = tr.t(u).NeighborCA

	ub := tr.t(u).B
	forward := tr.newHalfplane(p, ub)
	backward := tr.newHalfplane(ub, p)
	f, b, uu := tr.t(forward), tr.t(backward), tr.t(u)

	uu.B = p
	tr.refresh(u)
	twin := uu.NeighborAB
	tr.t(twin).A = p
	tr.t(twin).C = p
	tr.refresh(twin)

	f.NeighborAB = backward
	b.NeighborAB = forward
	if u == tr.lastColTriangle {
		f.NeighborBC = backward
		b.NeighborCA = forward
		tr.lastColTriangle = forward
	} else {
		f.NeighborBC = uu.NeighborBC
		tr.t(uu.NeighborBC).NeighborCA = forward
		b.NeighborCA = tr.t(twin).NeighborCA
		tr.t(tr.t(twin).NeighborCA).NeighborBC = backward
	}
	f.NeighborCA = u
	uu.NeighborBC = forward
	b.NeighborBC = twin
	tr.t(twin).NeighborCA = backward
}

// p lies on the line before firstPoint.
func (tr *Triangulation) prependLine(p SiteID) {
	forward := tr.newHalfplane(p, tr.firstPoint)
	backward := tr.newHalfplane(tr.firstPoint, p)
	f, b, head := tr.t(forward), tr.t(backward), tr.t(tr.firstColTriangle)

	f.NeighborAB = backward
	b.NeighborAB = forward
	f.NeighborCA = backward
	b.NeighborBC = forward
	f.NeighborBC = tr.firstColTriangle
	head.NeighborCA = forward
	b.NeighborCA = head.NeighborAB
	tr.t(head.NeighborAB).NeighborBC = backward

	tr.firstColTriangle = forward
	tr.firstPoint = p
	tr.firstHullTriangle = forward
}

// p lies on the line past lastPoint.
func (tr *Triangulation) appendLine(p SiteID) {
	forward := tr.newHalfplane(tr.lastPoint, p)
	backward := tr.newHalfplane(p, tr.lastPoint)
	f, b, tail := tr.t(forward), tr.t(backward), tr.t(tr.lastColTriangle)

	f.NeighborAB = backward
	b.NeighborAB = forward
	f.NeighborBC = backward
	tail.NeighborBC = forward
	f.NeighborCA = tr.lastColTriangle
	b.NeighborCA = forward
	b.NeighborBC = tail.NeighborAB
	tr.t(tail.NeighborAB).NeighborCA = backward

	tr.lastColTriangle = forward
	tr.lastPoint = p
}

// Walk from start towards p. Stops at a triangle with the given site as a
// vertex, or at one that contains p. Halfplanes whose edge line passes
// through p hand the walk on along the hull.
func (tr *Triangulation) find(start TriangleID, p Point, site SiteID) TriangleID {
	id := start
	limit := 2*len(tr.triangles) + 8
	for steps := 0; steps < limit; steps++ {
		t := tr.t(id)
		if site != NoSite && t.HasVertex(site) {
			return id
		}
		if site != NoSite && tr.allCollinear {
			// Every site is on the ring of halfplanes.
			id = t.NeighborBC
			continue
		}

		a, b, c := tr.point(t.A), tr.point(t.B), tr.point(t.C)
		if !t.Halfplane {
			if tr.PointInTriangle(id, p) != Outside {
				return id
			}
			switch {
			case PointTest(a, b, p) == Right:
				id = t.NeighborAB
			case PointTest(b, c, p) == Right:
				id = t.NeighborBC
			case PointTest(c, a, p) == Right:
				id = t.NeighborCA
			default:
				fatalf("lost locating %v in %s", p, tr.triangleString(id))
			}
			continue
		}

		switch side := PointTest(a, b, p); side {
		case Left, OnEdge:
			return id
		case Right:
			id = t.NeighborAB
		case Before:
			if tr.allCollinear {
				return id
			}
			id = t.NeighborCA
		case Behind:
			if tr.allCollinear {
				return id
			}
			id = t.NeighborBC
		default:
			fatalf("lost locating %v in %s: %s", p, tr.triangleString(id), side)
		}
	}
	fatalf("locating %v did not terminate", p)
	return NoTriangle
}

// Find the triangle containing p, starting at the first triangle.
func (tr *Triangulation) Find(p Point) TriangleID {
	if tr.firstTriangle == NoTriangle {
		return NoTriangle
	}
	site, _ := tr.SiteID(p)
	return tr.find(tr.firstTriangle, p, site)
}

// p is outside the hull, to the left of halfplane id. Returns a triangle
// having p as its C vertex.
func (tr *Triangulation) extendHull(id TriangleID, p SiteID) TriangleID {
	if PointTest(tr.point(tr.t(id).A), tr.point(tr.t(id).B), tr.point(p)) == OnEdge {
		return tr.splitHullEdge(id, p)
	}

	clockwise := tr.extendClockwise(id, p)
	counterclockwise := tr.extendCounterclockwise(id, p)
	tr.t(clockwise).NeighborCA = counterclockwise
	tr.t(counterclockwise).NeighborBC = clockwise
	tr.firstHullTriangle = clockwise
	return id
}

// p is on the hull edge of halfplane id. The halfplane is split in two and a
// flat triangle A, B, p is put between them and the interior. The flip pass
// removes the flat triangle again.
func (tr *Triangulation) splitHullEdge(id TriangleID, p SiteID) TriangleID {
	a, b := tr.t(id).A, tr.t(id).B
	flat := tr.newTriangle(a, b, p)
	half := tr.newHalfplane(p, b)
	t, fl, h := tr.t(id), tr.t(flat), tr.t(half)

	t.B = p
	tr.refresh(id)
	fl.NeighborAB = t.NeighborAB
	tr.replaceNeighbor(fl.NeighborAB, id, flat)
	fl.NeighborBC = half
	h.NeighborAB = flat
	fl.NeighborCA = id
	t.NeighborAB = flat
	h.NeighborBC = t.NeighborBC
	tr.t(h.NeighborBC).NeighborCA = half
	h.NeighborCA = id
	t.NeighborBC = half
	return flat
}

// Turn every halfplane that can see p, starting at id and moving along BC,
// into a real triangle, then close the ring with a new halfplane.
func (tr *Triangulation) extendClockwise(id TriangleID, p SiteID) TriangleID {
	previous := id
	for tr.PointInTriangle(id, tr.point(p)) == Inside {
		tr.closeHalfplane(id, p)
		previous = id
		id = tr.t(id).NeighborBC
	}

	half := tr.newHalfplane(p, tr.t(previous).B)
	h := tr.t(half)
	h.NeighborAB = previous
	h.NeighborBC = id
	tr.t(id).NeighborCA = half
	tr.t(previous).NeighborBC = half
	return half
}

// Same as extendClockwise, moving along CA from the neighbor of id.
func (tr *Triangulation) extendCounterclockwise(id TriangleID, p SiteID) TriangleID {
	previous := id
	id = tr.t(id).NeighborCA
	for tr.PointInTriangle(id, tr.point(p)) == Inside {
		tr.closeHalfplane(id, p)
		previous = id
		id = tr.t(id).NeighborCA
	}

	half := tr.newHalfplane(tr.t(previous).A, p)
	h := tr.t(half)
	h.NeighborAB = previous
	h.NeighborCA = id
	tr.t(id).NeighborBC = half
	tr.t(previous).NeighborCA = half
	return half
}

func (tr *Triangulation) closeHalfplane(id TriangleID, p SiteID) {
	t := tr.t(id)
	t.C = p
	t.Halfplane = false
	tr.refresh(id)
}

// p is inside real triangle id, or on one of its edges. Split it into three
// triangles around p. On a hull edge the hull is extended instead.
func (tr *Triangulation) splitTriangle(id TriangleID, p SiteID) TriangleID {
	t := tr.t(id)
	a, b, c, pt := tr.point(t.A), tr.point(t.B), tr.point(t.C), tr.point(p)
	switch {
	case tr.isHalfplane(t.NeighborAB) && PointTest(b, a, pt) == OnEdge:
		return tr.extendHull(t.NeighborAB, p)
	case tr.isHalfplane(t.NeighborBC) && PointTest(c, b, pt) == OnEdge:
		return tr.extendHull(t.NeighborBC, p)
	case tr.isHalfplane(t.NeighborCA) && PointTest(a, c, pt) == OnEdge:
		return tr.extendHull(t.NeighborCA, p)
	}

	ta, tb, tc := t.A, t.B, t.C
	h1 := tr.newTriangle(tc, ta, p)
	h2 := tr.newTriangle(tb, tc, p)
	t, t1, t2 := tr.t(id), tr.t(h1), tr.t(h2)

	t.C = p
	tr.refresh(id)
	t1.NeighborAB = t.NeighborCA
	t1.NeighborBC = id
	t1.NeighborCA = h2
	t2.NeighborAB = t.NeighborBC
	t2.NeighborBC = h1
	t2.NeighborCA = id
	tr.replaceNeighbor(t1.NeighborAB, id, h1)
	tr.replaceNeighbor(t2.NeighborAB, id, h2)
	t.NeighborBC = h2
	t.NeighborCA = h1
	return id
}

// Restore the empty circle property around the freshly inserted site p. The
// walk goes around p along BC; if it hits the hull it also goes back from the
// first triangle along CA.
func (tr *Triangulation) flipAround(p SiteID) {
	start := tr.firstTriangle
	id := start
	for {
		tr.flip(id)
		id = tr.t(id).Neighbor(p)
		if id == NoTriangle {
			fatalf("%v is not a vertex of the ring around it", tr.point(p))
		}
		if id == start || tr.isHalfplane(id) {
			break
		}
	}
	if id == start {
		return
	}
	for id = tr.t(start).NeighborCA; !tr.isHalfplane(id) && id != start; id = tr.t(id).NeighborCA {
		tr.flip(id)
	}
}

// Flip the edge AB of triangle id if the vertex C of id is inside the
// circumcircle of the triangle across AB. The replacement triangle reuses the
// slot of the one across AB.
func (tr *Triangulation) flip(id TriangleID) {
	t := tr.t(id)
	if t.Halfplane {
		return
	}
	other := t.NeighborAB
	u := tr.t(other)
	if u.Halfplane || !tr.PointInCircumcircle(other, tr.point(t.C)) {
		return
	}

	var apex SiteID
	var apexNeighbor, outerNeighbor TriangleID
	switch t.A {
	case u.A:
		apex, apexNeighbor, outerNeighbor = u.B, u.NeighborBC, u.NeighborAB
	case u.B:
		apex, apexNeighbor, outerNeighbor = u.C, u.NeighborCA, u.NeighborBC
	case u.C:
		apex, apexNeighbor, outerNeighbor = u.A, u.NeighborAB, u.NeighborCA
	default:
		fatalf("%s and %s do not share an edge", tr.triangleString(id), tr.triangleString(other))
	}

	replacement := other
	tNeighborBC := t.NeighborBC
	*u = MeshTriangle{
		A: apex, B: t.B, C: t.C,
		NeighborAB: apexNeighbor,
		NeighborBC: tNeighborBC,
		NeighborCA: id,
	}
	tr.refresh(replacement)
	tr.replaceNeighbor(tNeighborBC, id, replacement)

	t.NeighborAB = outerNeighbor
	t.NeighborBC = replacement
	t.B = apex
	tr.refresh(id)
	tr.replaceNeighbor(outerNeighbor, other, id)

	tr.flip(id)
	tr.flip(replacement)
}

// The site nearest to (x, y), if it is closer than radius.
func (tr *Triangulation) FindNear(x, y, radius float64) (Point, bool) {
	p := Point{x, y}
	site := tr.nearestSite(p)
	if site == NoSite || tr.point(site).Distance(p) >= radius {
		return Point{}, false
	}
	return tr.point(site), true
}

func (tr *Triangulation) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Triangulation of %d sites", len(tr.sites))
	if tr.allCollinear {
		sb.WriteString(" (collinear)")
	}
	sb.WriteString("\n")
	iter := tr.IterateTriangles()
	for id := iter.Next(); id != NoTriangle; id = iter.Next() {
		sb.WriteString("  ")
		sb.WriteString(tr.triangleString(id))
		sb.WriteString("\n")
	}
	return sb.String()
}
