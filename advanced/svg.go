package advanced

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo/float"
	"github.com/pkg/errors"
)

// Digits after the decimal point in exported coordinates.
const svgDecimals = 4

// Stroke and fill attributes per kind of shape.
func styleOf(shape Shape) []string {
	switch shape.(type) {
	case Point:
		return []string{`fill="#d62728"`, `stroke="none"`}
	case Circle:
		return []string{`fill="none"`, `stroke="#ff7f0e"`}
	case Triangle:
		return []string{`fill="none"`, `stroke="#999999"`}
	case Polygon:
		return []string{`fill="none"`, `stroke="#1f77b4"`}
	case Region:
		return []string{`fill="#2ca02c33"`, `stroke="#2ca02c"`}
	}
	return []string{`fill="none"`, `stroke="#000000"`}
}

// The canvas drops write errors, so the first one is kept here and every
// later write is skipped.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (sw *stickyWriter) Write(p []byte) (int, error) {
	if sw.err != nil {
		return 0, sw.err
	}
	n, err := sw.w.Write(p)
	sw.err = err
	return n, err
}

// Write the shapes as an SVG document showing the box. Everything is clipped
// to the box first; shapes outside it are left out. The y axis points up.
func ExportSVG(w io.Writer, shapes []Shape, box Box) error {
	out := &stickyWriter{w: w}
	canvas := svg.New(out)
	canvas.Decimals = svgDecimals

	width, height := box.X.Length(), box.Y.Length()
	canvas.Startview(width, height, box.X.Lo, box.Y.Lo, width, height)
	canvas.Title("Voronoi diagram")
	canvas.Gtransform(fmt.Sprintf("matrix(1 0 0 -1 0 %g)", box.Y.Lo+box.Y.Hi))

	for _, shape := range shapes {
		clipped, ok := ClipShape(shape, box)
		if !ok {
			continue
		}
		style := styleOf(shape)
		switch s := clipped.(type) {
		case Point:
			canvas.Circle(s.X, s.Y, 3, style...)
		case Circle:
			canvas.Circle(s.Center.X, s.Center.Y, s.Radius, style...)
		case Segment:
			canvas.Line(s.Start.X, s.Start.Y, s.End.X, s.End.Y, style...)
		case Polygon:
			if len(s.Points) == 0 {
				continue
			}
			xs, ys := coordinates(s.Points)
			canvas.Polygon(xs, ys, style...)
		}
	}

	canvas.Gend()
	canvas.End()
	return errors.Wrap(out.err, "writing svg")
}

func coordinates(points []Point) (xs, ys []float64) {
	xs = make([]float64, len(points))
	ys = make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}
	return xs, ys
}
