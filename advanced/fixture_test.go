package advanced

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/stretchr/testify/assert"
)

// This file parses the svg fixtures and outputs polygons. This is not a full
// (or even correct) svg parser. It finds whatever the first polygon is, then
// converts that into a closed *Polygon of straight segments. If anything goes
// wrong, it panics.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) *Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected exactly one polygon in fixture %q, found %d", name, len(polygons))
	}

	var vertices []Vertex
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		vertices = append(vertices, Vertex{Point: Point{x, y}})
	}
	return &Polygon{Vertices: vertices, Closed: true}
}

// Some ad hoc fixtures

func newPolygon(points ...Point) Polygon {
	polygon := Polygon{Closed: true}
	for _, p := range points {
		polygon.Vertices = append(polygon.Vertices, Vertex{Point: p})
	}
	return polygon
}

func UnitSquare() Polygon {
	return newPolygon(Point{0, 0}, Point{10, 0}, Point{10, 10}, Point{0, 10})
}

// The unit square with its right side replaced by a semicircle bulging
// outwards, centered on (10, 5) with radius 5.
func SquareWithArcSide() Polygon {
	square := UnitSquare()
	square.Vertices[1].Bulge = 1
	return square
}

// A square with a V shaped notch cut into its top edge, reaching down to
// (5, 8).
func NotchedSquare() Polygon {
	return newPolygon(Point{0, 0}, Point{10, 0}, Point{10, 10}, Point{5, 8}, Point{0, 10})
}

// A 30 by 10 rectangle whose top side has a major arc cut into it between
// (20, 10) and (10, 10). The arc lies on the circle centered at (15, 6.25) with
// radius 6.25, and its lowest point touches the bottom side at (15, 0).
func ConcaveArcRectangle() Polygon {
	return Polygon{
		Closed: true,
		Vertices: []Vertex{
			{Point: Point{0, 0}},
			{Point: Point{30, 0}},
			{Point: Point{30, 10}},
			{Point: Point{20, 10}, Bulge: -2},
			{Point: Point{10, 10}},
		},
	}
}

func RegularPolygon(sides int, radius float64, center Point) Polygon {
	var polygon Polygon
	polygon.Closed = true
	for i := 0; i < sides; i++ {
		angle := 2 * math.Pi * float64(i) / float64(sides)
		polygon.Vertices = append(polygon.Vertices, Vertex{Point: Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}})
	}
	return polygon
}

// A full disc made of two semicircular arcs between (-r, 0) and (r, 0).
func Disc(radius float64) Polygon {
	return Polygon{
		Closed: true,
		Vertices: []Vertex{
			{Point: Point{radius, 0}, Bulge: 1},
			{Point: Point{-radius, 0}, Bulge: 1},
		},
	}
}

// Approximate every arc with short chords. The result is straight sided, so
// the even-odd reference applies to it. With a few hundred chords per arc it
// stays well inside the band validateBySampling skips around the outline.
func flatten(polygon Polygon, chordsPerArc int) Polygon {
	flat := Polygon{Closed: true}
	for _, segment := range polygon.Boundary() {
		flat.Vertices = append(flat.Vertices, Vertex{Point: segment.Start()})
		arc, ok := segment.(Arc)
		if !ok {
			continue
		}
		for i := 1; i < chordsPerArc; i++ {
			f := float64(i) / float64(chordsPerArc)
			angle := arc.StartAngle + f*arc.Sweep()
			if arc.Clockwise {
				angle = arc.EndAngle - f*arc.Sweep()
			}
			flat.Vertices = append(flat.Vertices, Vertex{Point: arc.pointAt(angle)})
		}
	}
	return flat
}

// Sample a grid over the polygon's padded bounds and check every point
// against the even-odd reference on the flattened outline. Points near the
// boundary are skipped, since the reference has no notion of the boundary.
func validateBySampling(t *testing.T, polygon Polygon, opts Options) {
	reference := flatten(polygon, 256)
	bounds := polygon.Bounds()
	padding := math.Max(bounds.Width(), bounds.Height()) * 0.1
	bounds = bounds.Expand(padding)
	step := math.Max(bounds.Width(), bounds.Height()) / 50

	for y := bounds.Min.Y; y <= bounds.Max.Y; y += step {
		for x := bounds.Min.X; x <= bounds.Max.X; x += step {
			p := Point{X: x, Y: y}
			if p.DistanceTo(polygon.ClosestPoint(p)) < 1e-2 {
				continue
			}
			actual := polygon.Classify(p, opts)
			if reference.ContainsPointByEvenOdd(p) {
				assert.Equal(t, Inside, actual, "point %v should be inside", p)
			} else {
				assert.Equal(t, Outside, actual, "point %v should be outside", p)
			}
		}
	}
}
