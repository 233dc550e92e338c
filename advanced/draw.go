package advanced

import (
	"io"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

const drawPadding = 10

// Render the shapes in the box to a PNG, scale pixels per unit.
func DrawPNG(w io.Writer, shapes []Shape, box Box, scale float64) error {
	c := renderShapes(shapes, box, scale)
	return errors.Wrap(c.EncodePNG(w), "encoding png")
}

func renderShapes(shapes []Shape, box Box, scale float64) *gg.Context {
	// Set up the context
	width := int(scale*box.X.Length()) + drawPadding*2
	height := int(scale*box.Y.Length()) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-box.X.Lo, -box.Y.Lo)

	c.SetLineWidth(1)
	for _, shape := range shapes {
		clipped, ok := ClipShape(shape, box)
		if !ok {
			continue
		}
		switch shape.(type) {
		case Point:
			c.SetRGB(0.84, 0.15, 0.16)
		case Triangle:
			c.SetRGB(0.6, 0.6, 0.6)
		case Polygon:
			c.SetRGB(0.12, 0.47, 0.71)
		case Region:
			c.SetRGBA(0.17, 0.63, 0.17, 0.3)
		case Circle:
			c.SetRGB(1, 0.5, 0.05)
		default:
			c.SetRGB(0, 0, 0)
		}

		switch s := clipped.(type) {
		case Point:
			c.DrawCircle(s.X, s.Y, 3/scale)
			c.Fill()
		case Circle:
			c.DrawCircle(s.Center.X, s.Center.Y, s.Radius)
			c.Stroke()
		case Segment:
			c.DrawLine(s.Start.X, s.Start.Y, s.End.X, s.End.Y)
			c.Stroke()
		case Polygon:
			c.MoveTo(s.Points[0].X, s.Points[0].Y)
			for _, p := range s.Points[1:] {
				c.LineTo(p.X, p.Y)
			}
			c.ClosePath()
			if _, isRegion := shape.(Region); isRegion {
				c.FillPreserve()
			}
			c.Stroke()
		}
	}
	return c
}

// This is for debugging purposes only
func (tr *Triangulation) dbgDraw(scale float64) {
	shapes := tr.ExportElements(nil)
	shapes = NewVoronoiDiagram(tr).ExportElements(shapes)
	shapes = tr.ExportSites(shapes)
	box := BoundingBox(tr.sites, 10)

	c := renderShapes(shapes, box, scale)
	c.SavePNG("/tmp/triangulation.png")
	imgcat.CatFile("/tmp/triangulation.png", os.Stdout)
}
