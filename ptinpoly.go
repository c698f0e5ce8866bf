// Point in polygon classification for CAD style polylines.
//
// A polygon here is an outline of straight and circular arc segments, given as
// vertices tagged with bulges the way CAD polylines store them. Classify tells
// whether a point is outside the outline, on it, or inside it, with every
// comparison made under a tolerance.
//
// The outline must be simple (not self intersecting). This is not validated.
package ptinpoly

import (
	"github.com/osuushi/ptinpoly/advanced"
	"github.com/pkg/errors"
)

type Point = advanced.Point
type Vertex = advanced.Vertex
type Polygon = advanced.Polygon
type Classification = advanced.Classification
type Options = advanced.Options
type Result = advanced.Result
type ExhaustedError = advanced.ExhaustedError

const (
	DefaultTolerance  = advanced.DefaultTolerance
	DefaultMaxRetries = advanced.DefaultMaxRetries
	DefaultRetryAngle = advanced.DefaultRetryAngle
)

const (
	Outside    = advanced.Outside
	OnBoundary = advanced.OnBoundary
	Inside     = advanced.Inside
)

var (
	ErrInvalidInput   = advanced.ErrInvalidInput
	ErrRetryExhausted = advanced.ErrRetryExhausted
)

// Build a closed polygon of straight segments.
func NewPolygon(points ...Point) Polygon {
	polygon := Polygon{Closed: true, Vertices: make([]Vertex, len(points))}
	for i, p := range points {
		polygon.Vertices[i] = Vertex{Point: p}
	}
	return polygon
}

// Classify a point with the default options.
func Classify(polygon Polygon, p Point) (Classification, error) {
	return ClassifyWithOptions(polygon, p, Options{})
}

// Classify a point against the polygon.
//
// Malformed input returns an error matching ErrInvalidInput. In strict mode,
// a point for which no vertex free ray could be found returns OnBoundary along
// with an error matching ErrRetryExhausted.
func ClassifyWithOptions(polygon Polygon, p Point, opts Options) (Classification, error) {
	result, err := Explain(polygon, p, opts)
	return result.Classification, err
}

// Like ClassifyWithOptions, but returns the engine's working. When strict mode
// runs out of retries the result from the last attempt is returned alongside
// the error.
func Explain(polygon Polygon, p Point, opts Options) (result Result, err error) {
	defer func() {
		recoveredErr := advanced.HandleClassifyPanicRecover(recover())
		if recoveredErr != nil {
			result = Result{}
			var exhausted *ExhaustedError
			if errors.As(recoveredErr, &exhausted) {
				result = exhausted.Result
			}
			err = recoveredErr
		}
	}()
	return polygon.Explain(p, opts), nil
}
