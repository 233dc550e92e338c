package main

import (
	"bufio"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/osuushi/voronoi"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Render the Voronoi diagram of a point set. Input on stdin should be newline
// separated points in the form "x y"; blank lines and lines starting with #
// are ignored. A YAML site list can be read instead with --sites.
var (
	app = kingpin.New("voronoi", "Render the Delaunay triangulation and Voronoi diagram of a set of points.")

	sitesFile = app.Flag("sites", "Read sites from a YAML file instead of stdin.").ExistingFile()
	output    = app.Flag("output", "Write to this file instead of stdout.").Short('o').String()
	format    = app.Flag("format", "Output format.").Default("svg").Enum("svg", "png", "yaml")
	margin    = app.Flag("margin", "Space around the sites, in input units.").Default("20").Float64()
	scale     = app.Flag("scale", "Pixels per input unit for png output.").Default("1").Float64()

	showDelaunay = app.Flag("delaunay", "Draw the Delaunay triangulation.").Bool()
	showVoronoi  = app.Flag("voronoi", "Draw the Voronoi edges.").Default("true").Bool()
	showRegions  = app.Flag("regions", "Fill the Voronoi regions.").Bool()
	showHull     = app.Flag("hull", "Draw the convex hull.").Bool()
	showCircle   = app.Flag("circle", "Draw the largest empty circle.").Bool()
	showSites    = app.Flag("points", "Draw the sites.").Default("true").Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	points, err := readInput()
	app.FatalIfError(err, "reading sites")

	diagram := voronoi.New()
	for _, p := range points {
		if err := diagram.Insert(p.X, p.Y); err != nil {
			if errors.Is(err, voronoi.ErrDuplicateSite) {
				log.Printf("skipping %v: %v", p, err)
				continue
			}
			app.FatalIfError(err, "inserting sites")
		}
	}
	log.Printf("Read %d sites", diagram.Size())

	if *output == "" {
		app.FatalIfError(write(os.Stdout, diagram), "writing %s", *format)
		return
	}
	app.FatalIfError(writeFile(*output, diagram), "writing %s", *format)
}

func writeFile(path string, diagram *voronoi.Diagram) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	if err := write(file, diagram); err != nil {
		file.Close()
		return err
	}
	return errors.Wrapf(file.Close(), "closing %s", path)
}

func readInput() ([]voronoi.Point, error) {
	if *sitesFile != "" {
		file, err := os.Open(*sitesFile)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		return voronoi.LoadSites(file)
	}
	return readPoints(os.Stdin)
}

func write(w io.Writer, diagram *voronoi.Diagram) error {
	if *format == "yaml" {
		return voronoi.SaveSites(w, diagram.Points())
	}

	shapes, err := diagram.ExportElements(nil, voronoi.Layers{
		Sites:         *showSites,
		Triangulation: *showDelaunay,
		Hull:          *showHull,
		Voronoi:       *showVoronoi,
		Regions:       *showRegions,
		LargestCircle: *showCircle,
	})
	if err != nil {
		return err
	}
	box := diagram.Bounds(*margin)
	if *format == "png" {
		return voronoi.DrawPNG(w, shapes, box, *scale)
	}
	return voronoi.ExportSVG(w, shapes, box)
}

func readPoints(in io.Reader) ([]voronoi.Point, error) {
	var points []voronoi.Point
	scanner := bufio.NewScanner(in)
	for lineNumber := 1; scanner.Scan(); lineNumber++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	return points, errors.Wrap(scanner.Err(), "scanning input")
}

func parsePoint(line string) (voronoi.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return voronoi.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return voronoi.Point{}, errors.Wrap(err, "parsing x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return voronoi.Point{}, errors.Wrap(err, "parsing y")
	}
	return voronoi.Point{X: x, Y: y}, nil
}
