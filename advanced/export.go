package advanced

// Sites as points, in insertion order.
func (tr *Triangulation) ExportSites(dst []Shape) []Shape {
	for _, site := range tr.sites {
		dst = append(dst, site)
	}
	return dst
}

// Real triangles of the mesh. A collinear mesh has none, so its chain is
// exported as segments between consecutive sites.
func (tr *Triangulation) ExportElements(dst []Shape) []Shape {
	iter := tr.IterateTriangles()
	for id := iter.Next(); id != NoTriangle; id = iter.Next() {
		t := tr.t(id)
		if !t.Halfplane {
			dst = append(dst, tr.Geometry(id))
			continue
		}
		if tr.allCollinear {
			a, b := tr.point(t.A), tr.point(t.B)
			if a.Compare(b) < 0 {
				dst = append(dst, Segment{a, b})
			}
		}
	}
	return dst
}

func (h *ConvexHull) ExportElements(dst []Shape) []Shape {
	poly := h.Polygon()
	if len(poly.Points) < 2 {
		return dst
	}
	return append(dst, poly)
}

// Voronoi edges: a segment between the circumcenters of every pair of
// adjacent real triangles and a ray out of every triangle on the hull. In a
// collinear diagram each bisector is two rays from the midpoint.
func (v *VoronoiDiagram) ExportElements(dst []Shape) []Shape {
	tr := v.tr
	if len(tr.sites) < 2 {
		return dst
	}

	iter := tr.IterateTriangles()
	if tr.allCollinear {
		for id := iter.Next(); id != NoTriangle; id = iter.Next() {
			t := tr.t(id)
			a, b := tr.point(t.A), tr.point(t.B)
			dst = append(dst, Ray{a.Mid(b), b.Sub(a).Perp()})
		}
		return dst
	}

	for id := iter.Next(); id != NoTriangle; id = iter.Next() {
		t := tr.t(id)
		if t.Halfplane {
			continue
		}
		center := t.Circumcircle.Center
		sides := [3][2]SiteID{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}}
		for i, neighbor := range t.Neighbors() {
			n := tr.t(neighbor)
			switch {
			case n.Halfplane:
				right, left := tr.point(sides[i][0]), tr.point(sides[i][1])
				dst = append(dst, Ray{center, right.Sub(left).Perp()})
			case !iter.Visited(neighbor):
				if other := n.Circumcircle.Center; !other.Equal(center) {
					dst = append(dst, Segment{center, other})
				}
			}
		}
	}
	return dst
}

// Every site's cell. The cell of a lone site is the whole plane.
func (v *VoronoiDiagram) ExportRegions(dst []Shape) []Shape {
	for _, site := range v.tr.sites {
		region, err := v.Region(site)
		if err != nil {
			fatalf("region of existing site %v: %v", site, err)
		}
		dst = append(dst, region)
	}
	return dst
}
