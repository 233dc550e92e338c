package advanced

import "github.com/pkg/errors"

// The Voronoi diagram of a triangulation, derived on demand from the dual of
// the mesh. It holds no state of its own, so it is always current.
type VoronoiDiagram struct {
	tr *Triangulation
}

func NewVoronoiDiagram(tr *Triangulation) *VoronoiDiagram {
	return &VoronoiDiagram{tr}
}

// The cell of the site equal to p. The cell of the only site is the whole
// plane, which has no boundary points.
func (v *VoronoiDiagram) Region(p Point) (Region, error) {
	tr := v.tr
	if len(tr.sites) == 0 {
		return Region{}, errors.Wrapf(ErrEmptyDiagram, "region of %v", p)
	}
	site, ok := tr.SiteID(p)
	if !ok {
		return Region{}, errors.Wrapf(ErrSiteNotFound, "region of %v", p)
	}
	switch {
	case len(tr.sites) == 1:
		return Region{Kernel: tr.point(site)}, nil
	case tr.allCollinear:
		return v.collinearRegion(site), nil
	}
	return v.regionAround(site), nil
}

// The cell p would get if it were a site. The diagram is left as it was.
func (v *VoronoiDiagram) ProbeRegion(p Point) (Region, error) {
	if _, ok := v.tr.SiteID(p); ok {
		return v.Region(p)
	}
	if _, err := v.tr.Insert(p); err != nil {
		return Region{}, err
	}
	defer v.tr.Delete(p)
	return v.Region(p)
}

// Walk the triangles around site counterclockwise and collect their
// circumcenters. Each stretch of hull becomes an open part of the cell.
func (v *VoronoiDiagram) regionAround(site SiteID) Region {
	tr := v.tr
	id := tr.find(tr.firstTriangle, tr.point(site), site)
	if !tr.t(id).HasVertex(site) {
		fatalf("no triangle has %v as a vertex", tr.point(site))
	}
	if tr.isHalfplane(id) {
		id = tr.t(id).NeighborAB
	}

	region := Region{Kernel: tr.point(site)}
	var last Point
	start := id
	tr.aroundSite(start, site, func(id TriangleID, t *MeshTriangle) bool {
		if !t.Halfplane {
			center := t.Circumcircle.Center
			if len(region.Points) == 0 || !center.Equal(last) {
				region.Points = append(region.Points, center)
			}
			last = center
			return true
		}
		// Leaving through the hull: out along the bisector of this hull edge,
		// back in along the bisector of the next one.
		if t.A != site {
			return true
		}
		open := tr.halfplaneRegion(id, site)
		following := tr.t(t.Neighbor(site))
		next := tr.t(following.Neighbor(site)).Circumcircle.Center
		region.Points = append(region.Points,
			last.Add(open[1].Sub(open[0])),
			Infinity,
			next.Add(open[3].Sub(open[4])),
			next,
		)
		last = next
		return true
	})

	n := len(region.Points)
	if n > 1 && region.Points[n-1].Equal(region.Points[0]) {
		region.Points = region.Points[:n-1]
	}
	return region
}

// In a collinear diagram every cell is bounded by one or two bisector lines,
// each written as two rays from the midpoint.
func (v *VoronoiDiagram) collinearRegion(site SiteID) Region {
	tr := v.tr
	id := tr.firstHullTriangle
	for steps := 0; tr.t(id).A != site; steps++ {
		if steps > len(tr.triangles) {
			fatalf("%v is not on the hull", tr.point(site))
		}
		id = tr.t(id).NeighborBC
	}

	open := tr.halfplaneRegion(id, site)
	region := Region{Points: open[:], Kernel: tr.point(site)}
	t := tr.t(id)
	if len(tr.sites) > 2 && t.Neighbor(site) != t.NeighborAB {
		other := tr.t(t.Neighbor(site)).NeighborAB
		more := tr.halfplaneRegion(other, site)
		region.Points = append(region.Points, more[1:4]...)
	}
	return region
}

// Open part of a cell next to the hull halfplane id, which starts at site.
// Returns the midpoint of its edge, a point out along the bisector, Infinity,
// a point out along the bisector of the previous hull edge, and that edge's
// midpoint.
func (tr *Triangulation) halfplaneRegion(id TriangleID, site SiteID) [5]Point {
	t := tr.t(id)
	a, b := tr.point(t.A), tr.point(t.B)
	previous := tr.t(t.Neighbor(site))
	pa, pb := tr.point(previous.A), tr.point(previous.B)

	mid := a.Mid(b)
	previousMid := pa.Mid(pb)
	return [5]Point{
		mid,
		mid.Add(b.Sub(a).Perp().Scale(2)),
		Infinity,
		previousMid.Add(pb.Sub(pa).Perp().Scale(2)),
		previousMid,
	}
}

// Visit the triangles around site counterclockwise, starting at a triangle
// that has it as a vertex, until fn returns false or the ring closes.
func (tr *Triangulation) aroundSite(start TriangleID, site SiteID, fn func(id TriangleID, t *MeshTriangle) bool) {
	id := start
	for steps := 0; steps <= len(tr.triangles); steps++ {
		if !fn(id, tr.t(id)) {
			return
		}
		id = tr.t(id).Neighbor(site)
		if id == NoTriangle {
			fatalf("%v lost its ring at step %d", tr.point(site), steps)
		}
		if id == start {
			return
		}
	}
	fatalf("ring around %v does not close", tr.point(site))
}

// The site nearest to p. Starts at the closest vertex of the triangle
// containing p and moves to closer Delaunay neighbors until there is none.
func (tr *Triangulation) nearestSite(p Point) SiteID {
	switch len(tr.sites) {
	case 0:
		return NoSite
	case 1:
		return 0
	}

	holder := tr.find(tr.firstTriangle, p, NoSite)
	best := NoSite
	bestDistance := inf
	consider := func(site SiteID) bool {
		if d := tr.point(site).Distance(p); d < bestDistance {
			best, bestDistance = site, d
			return true
		}
		return false
	}
	t := tr.t(holder)
	consider(t.A)
	consider(t.B)
	consider(t.C)

	for improved := true; improved; {
		improved = false
		center := best
		tr.aroundSite(holder, center, func(id TriangleID, t *MeshTriangle) bool {
			for _, other := range [3]SiteID{t.A, t.B, t.C} {
				if other != center && consider(other) {
					holder = id
					improved = true
				}
			}
			return true
		})
	}
	return best
}

// The site whose cell contains p.
func (v *VoronoiDiagram) PointLocation(p Point) (Point, bool) {
	site := v.tr.nearestSite(p)
	if site == NoSite {
		return Point{}, false
	}
	return v.tr.point(site), true
}

// The Delaunay neighbor closest to the site equal to p.
func (v *VoronoiDiagram) NearestNeighbor(p Point) (Point, bool) {
	tr := v.tr
	site, ok := tr.SiteID(p)
	if !ok || len(tr.sites) < 2 {
		return Point{}, false
	}
	kernel := tr.point(site)
	start := tr.find(tr.firstTriangle, kernel, site)
	best := NoSite
	bestDistance := inf
	tr.aroundSite(start, site, func(_ TriangleID, t *MeshTriangle) bool {
		for _, other := range [3]SiteID{t.A, t.B, t.C} {
			if other == site {
				continue
			}
			if d := tr.point(other).Distance(kernel); d < bestDistance {
				best, bestDistance = other, d
			}
		}
		return true
	})
	if best == NoSite {
		return Point{}, false
	}
	return tr.point(best), true
}

// The largest circumcircle of the mesh. Its center is a Voronoi vertex as far
// from every site as any vertex gets.
func (v *VoronoiDiagram) LargestEmptyCircle() (Circle, bool) {
	var largest Circle
	found := false
	v.tr.VisitTriangles(func(_ TriangleID, t MeshTriangle) {
		if t.Halfplane || t.Circumcircle.IsDegenerate() {
			return
		}
		if !found || t.Circumcircle.Radius > largest.Radius {
			largest = t.Circumcircle
			found = true
		}
	})
	return largest, found
}

// The circle around p touching its nearest site.
func (v *VoronoiDiagram) NearestSiteCircle(p Point) (Circle, bool) {
	site, ok := v.PointLocation(p)
	if !ok {
		return Circle{}, false
	}
	return Circle{p, site.Distance(p)}, true
}
