// Delaunay triangulations and Voronoi diagrams of a changing set of points.
//
// A Diagram holds an ordered set of sites in the plane. Sites can be added,
// removed and moved at any time; the triangulation, the convex hull and the
// Voronoi diagram always reflect the current set. Results are plain geometry
// (points, segments, rays, polygons and Voronoi regions) that can be clipped
// to a box and exported as SVG or PNG.
//
// Diagram is safe for concurrent use. The advanced package exposes the
// underlying mesh for callers that need handles to triangles and sites.
package voronoi

import (
	"io"
	"sync"

	"github.com/osuushi/voronoi/advanced"
)

type Point = advanced.Point
type Segment = advanced.Segment
type Ray = advanced.Ray
type Line = advanced.Line
type Circle = advanced.Circle
type Triangle = advanced.Triangle
type Polygon = advanced.Polygon
type Region = advanced.Region
type Shape = advanced.Shape
type Box = advanced.Box
type DualEdge = advanced.DualEdge

var (
	ErrDuplicateSite = advanced.ErrDuplicateSite
	ErrSiteNotFound  = advanced.ErrSiteNotFound
	ErrEmptyDiagram  = advanced.ErrEmptyDiagram
)

func NewBox(xmin, ymin, xmax, ymax float64) Box {
	return advanced.NewBox(xmin, ymin, xmax, ymax)
}

type Diagram struct {
	mu      sync.Mutex
	tr      *advanced.Triangulation
	hull    *advanced.ConvexHull
	voronoi *advanced.VoronoiDiagram
}

func New() *Diagram {
	tr := advanced.NewTriangulation()
	return &Diagram{
		tr:      tr,
		hull:    advanced.NewConvexHull(tr),
		voronoi: advanced.NewVoronoiDiagram(tr),
	}
}

// Build a diagram from points, skipping any that duplicate an earlier one.
func FromPoints(points []Point) (d *Diagram, err error) {
	d = New()
	defer recoverInto(&err)
	d.tr.InsertAll(points)
	return d, nil
}

func recoverInto(err *error) {
	if recoveredErr := advanced.HandlePanicRecover(recover()); recoveredErr != nil {
		*err = recoveredErr
	}
}

// Add a site. Fails with ErrDuplicateSite if one is already within
// advanced.Close of it.
func (d *Diagram) Insert(x, y float64) (err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	defer recoverInto(&err)
	_, err = d.tr.Insert(Point{X: x, Y: y})
	return err
}

// Remove the site equal to p. Reports whether it existed.
func (d *Diagram) Delete(p Point) (deleted bool, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	defer recoverInto(&err)
	return d.tr.Delete(p), nil
}

func (d *Diagram) Move(p Point, x, y float64) (err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	defer recoverInto(&err)
	return d.tr.Move(p, x, y)
}

func (d *Diagram) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.tr.Clear()
}

func (d *Diagram) Size() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.tr.Size()
}

// Sites in insertion order.
func (d *Diagram) Points() []Point {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.tr.Sites()
}

func (d *Diagram) IsCollinear() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.tr.IsCollinear()
}

// The site nearest to (x, y) if it is closer than radius.
func (d *Diagram) FindNear(x, y, radius float64) (p Point, ok bool, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	defer recoverInto(&err)
	p, ok = d.tr.FindNear(x, y, radius)
	return p, ok, nil
}

// Hull vertices in counterclockwise order.
func (d *Diagram) HullPolygon() (poly Polygon, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	defer recoverInto(&err)
	return d.hull.Polygon(), nil
}

func (d *Diagram) InHull(p Point) (inside bool, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	defer recoverInto(&err)
	return d.hull.ContainsPoint(p), nil
}

// The Voronoi cell of the site equal to p.
func (d *Diagram) Region(p Point) (region Region, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	defer recoverInto(&err)
	return d.voronoi.Region(p)
}

// The cell p would have if it were added.
func (d *Diagram) ProbeRegion(p Point) (region Region, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	defer recoverInto(&err)
	return d.voronoi.ProbeRegion(p)
}

// The site whose cell contains p.
func (d *Diagram) Locate(p Point) (site Point, ok bool, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	defer recoverInto(&err)
	site, ok = d.voronoi.PointLocation(p)
	return site, ok, nil
}

func (d *Diagram) NearestNeighbor(p Point) (neighbor Point, ok bool, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	defer recoverInto(&err)
	neighbor, ok = d.voronoi.NearestNeighbor(p)
	return neighbor, ok, nil
}

func (d *Diagram) LargestEmptyCircle() (circle Circle, ok bool, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	defer recoverInto(&err)
	circle, ok = d.voronoi.LargestEmptyCircle()
	return circle, ok, nil
}

// The linked Voronoi edge graph, or nil while the sites are collinear.
func (d *Diagram) Structure() (edges []*DualEdge, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	defer recoverInto(&err)
	return d.voronoi.Structure(), nil
}

// Which parts of the diagram to export.
type Layers struct {
	Sites         bool
	Triangulation bool
	Hull          bool
	Voronoi       bool
	Regions       bool
	LargestCircle bool
}

// Append the selected layers to dst.
func (d *Diagram) ExportElements(dst []Shape, layers Layers) (shapes []Shape, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	defer recoverInto(&err)
	if layers.Regions {
		dst = d.voronoi.ExportRegions(dst)
	}
	if layers.Triangulation {
		dst = d.tr.ExportElements(dst)
	}
	if layers.Voronoi {
		dst = d.voronoi.ExportElements(dst)
	}
	if layers.Hull {
		dst = d.hull.ExportElements(dst)
	}
	if layers.LargestCircle {
		if circle, ok := d.voronoi.LargestEmptyCircle(); ok {
			dst = append(dst, circle)
		}
	}
	if layers.Sites {
		dst = d.tr.ExportSites(dst)
	}
	return dst, nil
}

// A box around all sites with margin to spare on each side.
func (d *Diagram) Bounds(margin float64) Box {
	d.mu.Lock()
	defer d.mu.Unlock()
	return advanced.BoundingBox(d.tr.Sites(), margin)
}

func ExportSVG(w io.Writer, shapes []Shape, box Box) error {
	return advanced.ExportSVG(w, shapes, box)
}

func DrawPNG(w io.Writer, shapes []Shape, box Box, scale float64) error {
	return advanced.DrawPNG(w, shapes, box, scale)
}

func SaveSites(w io.Writer, sites []Point) error {
	return advanced.SaveSites(w, sites)
}

func LoadSites(r io.Reader) ([]Point, error) {
	return advanced.LoadSites(r)
}
