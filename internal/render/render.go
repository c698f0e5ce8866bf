// Package render draws classified samples over the polygon they were
// classified against, for eyeballing the classifier's output.
package render

import (
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	. "github.com/osuushi/ptinpoly/advanced"
	"github.com/osuushi/ptinpoly/sample"
	"github.com/pkg/errors"
)

// Padding around the drawing so points on the edge of the sampled area are
// fully visible
const padding = 10

const pointRadius = 1.5

var Colors = map[Classification]color.Color{
	Outside:    color.RGBA{0xff, 0x00, 0x00, 0xff},
	OnBoundary: color.RGBA{0x00, 0x00, 0xff, 0xff},
	Inside:     color.RGBA{0xff, 0x00, 0xff, 0xff},
}

var outlineColor = color.RGBA{0xff, 0xff, 0xff, 0xff}

// Draw renders the samples colored by classification, with the polygon's
// outline on top, into an image whose larger side is size pixels.
func Draw(polygon Polygon, samples []sample.Sample, size int) *gg.Context {
	bounds := polygon.Bounds()
	minX, minY := bounds.Min.X, bounds.Min.Y
	maxX, maxY := bounds.Max.X, bounds.Max.Y
	for _, s := range samples {
		minX = math.Min(minX, s.Point.X)
		minY = math.Min(minY, s.Point.Y)
		maxX = math.Max(maxX, s.Point.X)
		maxY = math.Max(maxY, s.Point.Y)
	}

	extent := math.Max(maxX-minX, maxY-minY)
	scale := 1.0
	if extent > 0 {
		scale = float64(size-padding*2) / extent
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + padding*2
	height := int(scale*(maxY-minY)) + padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(padding, padding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	// One fill per classification
	for _, class := range []Classification{Outside, Inside, OnBoundary} {
		found := false
		for _, s := range samples {
			if s.Classification == class {
				c.DrawPoint(s.Point.X, s.Point.Y, pointRadius)
				found = true
			}
		}
		if found {
			c.SetColor(Colors[class])
			c.Fill()
		}
	}

	drawOutline(c, polygon)
	c.SetColor(outlineColor)
	c.SetLineWidth(1)
	c.Stroke()
	return c
}

func drawOutline(c *gg.Context, polygon Polygon) {
	if len(polygon.Vertices) == 0 {
		return
	}
	start := polygon.Vertices[0].Point
	c.MoveTo(start.X, start.Y)
	for _, segment := range polygon.Segments() {
		switch s := segment.(type) {
		case Arc:
			// DrawArc always runs from the first angle to the second
			if s.Clockwise {
				c.DrawArc(s.Center.X, s.Center.Y, s.Radius, s.EndAngle, s.StartAngle)
			} else {
				c.DrawArc(s.Center.X, s.Center.Y, s.Radius, s.StartAngle, s.EndAngle)
			}
		default:
			end := segment.End()
			c.LineTo(end.X, end.Y)
		}
	}
	if polygon.Closed {
		c.ClosePath()
	}
}

func SavePNG(c *gg.Context, path string) error {
	return errors.Wrapf(c.SavePNG(path), "saving %s", path)
}

// Cat prints a saved image to the terminal (iTerm only).
func Cat(path string, w io.Writer) {
	imgcat.CatFile(path, w)
}
