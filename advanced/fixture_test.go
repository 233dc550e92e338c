package advanced

import (
	"embed"
	"log"
	"math/rand"
	"strconv"

	"github.com/JoshVarga/svgparser"
)

// Site fixtures are SVG drawings where every <circle> is a site at its center.
// The radius and styling are ignored. Fixtures are available by name in the
// fixtures/ directory, sans extension. If anything goes wrong, the test binary
// dies.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, false)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	circles := rootEl.FindAll("circle")
	if len(circles) == 0 {
		log.Fatalf("No circles found in fixture %q", name)
	}
	points := make([]Point, 0, len(circles))
	for _, circleEl := range circles {
		x, err := strconv.ParseFloat(circleEl.Attributes["cx"], 64)
		if err != nil {
			log.Fatalf("Invalid cx value %q: %v", circleEl.Attributes["cx"], err)
		}
		y, err := strconv.ParseFloat(circleEl.Attributes["cy"], 64)
		if err != nil {
			log.Fatalf("Invalid cy value %q: %v", circleEl.Attributes["cy"], err)
		}
		points = append(points, Point{x, y})
	}
	return points
}

// Uniformly scattered points in [0, size) squared. The same seed always gives
// the same points.
func RandomSites(seed int64, n int, size float64) []Point {
	rng := rand.New(rand.NewSource(seed))
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{rng.Float64() * size, rng.Float64() * size}
	}
	return points
}

// Points on the line y = slope*x + intercept with x scattered in [0, width).
// The y values are rounded, so the points are only nearly collinear.
func LineSites(seed int64, n int, slope, intercept, width float64) []Point {
	rng := rand.New(rand.NewSource(seed))
	points := make([]Point, n)
	for i := range points {
		x := rng.Float64() * width
		points[i] = Point{x, slope*x + intercept}
	}
	return points
}

// An n by n integer grid, row by row.
func GridSites(n int) []Point {
	points := make([]Point, 0, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			points = append(points, Point{float64(x), float64(y)})
		}
	}
	return points
}

func shuffled(seed int64, points []Point) []Point {
	result := append([]Point(nil), points...)
	rand.New(rand.NewSource(seed)).Shuffle(len(result), func(i, j int) {
		result[i], result[j] = result[j], result[i]
	})
	return result
}
