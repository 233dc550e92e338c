package advanced

import (
	"math"

	"github.com/golang/geo/r2"
)

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Infinity marks the unbounded part of an open Voronoi region.
var Infinity = Point{math.Inf(1), math.Inf(1)}

type Segment struct {
	Start, End Point
}

type Ray struct {
	Start     Point
	Direction Point
}

type Line struct {
	Start     Point
	Direction Point
}

type Circle struct {
	Center Point
	Radius float64
}

type Triangle struct {
	A, B, C Point
}

type Polygon struct {
	Points []Point
}

// A Voronoi cell. Points is the boundary in counterclockwise order. An open
// cell contains the sequence start, direction point, Infinity, direction
// point, start: the first pair describes the ray leaving the cell, the second
// the ray coming back. Kernel is the site owning the cell.
type Region struct {
	Points []Point
	Kernel Point
}

// Axis aligned clipping rectangle.
type Box = r2.Rect

func NewBox(xmin, ymin, xmax, ymax float64) Box {
	return r2.RectFromPoints(r2.Point{X: xmin, Y: ymin}, r2.Point{X: xmax, Y: ymax})
}

// Shape is the closed set of drawable things the engine can emit. Consumers
// type switch on it.
type Shape interface {
	shapeTypeHint()
}

func (Point) shapeTypeHint()    {}
func (Segment) shapeTypeHint()  {}
func (Ray) shapeTypeHint()      {}
func (Line) shapeTypeHint()     {}
func (Circle) shapeTypeHint()   {}
func (Triangle) shapeTypeHint() {}
func (Polygon) shapeTypeHint()  {}
func (Region) shapeTypeHint()   {}

type SiteID int32

type TriangleID int32

const (
	NoSite     SiteID     = -1
	NoTriangle TriangleID = -1
)
