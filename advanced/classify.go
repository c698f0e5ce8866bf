package advanced

import (
	"math"

	"github.com/osuushi/ptinpoly/internal/log"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Ray casting classification.
//
// The ray starts at the query point and heads directly away from the closest
// point on the boundary. Casting away from the boundary rather than towards it
// means a point that sits just off an edge doesn't immediately re-hit that
// edge, and points outside a convex region usually escape with no hits at all.
//
// Parity is unreliable when the ray passes through a vertex: depending on the
// local shape, grazing a vertex should count as zero, one or two crossings. The
// same goes for a ray running tangent to an arc. The oracle can't tell which,
// so the ray is rotated by RetryAngle and cast again until it misses every
// vertex and touches no arc. The number of attempts is bounded, and when it
// runs out the point is reported as OnBoundary.

const (
	DefaultMaxRetries = 32
	DefaultRetryAngle = 0.035
)

type Options struct {
	// Slack for point coincidence, distance to the boundary and vertex
	// incidence. Zero means DefaultTolerance.
	Tolerance float64
	// Rotations to try after the first ray grazes a vertex. Zero means
	// DefaultMaxRetries; use a negative value to disable retries entirely.
	MaxRetries int
	// Counterclockwise rotation applied per retry, in radians. Zero means
	// DefaultRetryAngle.
	RetryAngle float64
	// Return ErrRetryExhausted instead of quietly degrading to OnBoundary.
	Strict bool
	// Receives retry and degradation messages. Nil means the package logger.
	Logger logrus.FieldLogger
}

func (o Options) WithDefaults() Options {
	if o.Tolerance == 0 {
		o.Tolerance = DefaultTolerance
	}
	switch {
	case o.MaxRetries == 0:
		o.MaxRetries = DefaultMaxRetries
	case o.MaxRetries < 0:
		o.MaxRetries = 0
	}
	if o.RetryAngle == 0 {
		o.RetryAngle = DefaultRetryAngle
	}
	if o.Logger == nil {
		o.Logger = log.Instance()
	}
	return o
}

func (o Options) Validate() error {
	if !isFinite(o.Tolerance) || o.Tolerance <= 0 {
		return errors.Wrapf(ErrInvalidInput, "tolerance must be positive and finite, got %v", o.Tolerance)
	}
	if !isFinite(o.RetryAngle) {
		return errors.Wrapf(ErrInvalidInput, "retry angle is not finite: %v", o.RetryAngle)
	}
	// The same side filter assumes every retried ray still points away from
	// the closest point, i.e. stays within a quarter turn of the first ray.
	if float64(o.MaxRetries)*math.Abs(o.RetryAngle) >= math.Pi/2 {
		return errors.Wrapf(ErrInvalidInput, "%d retries of %v radians rotate the ray a quarter turn or more", o.MaxRetries, o.RetryAngle)
	}
	return nil
}

// Everything the engine worked out on the way to a classification.
type Result struct {
	Classification Classification
	// Closest point on the boundary to the query point
	Closest Point
	// Crossings counted by the ray that decided the result. Zero when the
	// result came from the boundary check.
	Crossings int
	// Rays cast. Zero when the boundary check decided.
	Attempts int
	// Final ray direction (unit length)
	Direction Point
	// Every ray grazed a vertex or touched an arc, and the result degraded to
	// OnBoundary
	Exhausted bool
}

// Classify the point against the closed outline. Invalid input panics with a
// ClassifyError; use the root package for an error-returning API.
func (poly Polygon) Classify(p Point, opts Options) Classification {
	return poly.Explain(p, opts).Classification
}

// Same as Classify, but reports how the answer was reached.
func (poly Polygon) Explain(p Point, opts Options) Result {
	opts = opts.WithDefaults()
	if err := opts.Validate(); err != nil {
		throw(err)
	}
	if err := poly.Validate(); err != nil {
		throw(err)
	}
	if !p.IsFinite() {
		fatalf("query point is not finite: %v", p)
	}
	tol := opts.Tolerance

	closest := poly.ClosestPoint(p)
	result := Result{Closest: closest}
	if PointsEqual(closest, p, tol) {
		result.Classification = OnBoundary
		return result
	}

	away := p.Sub(closest)
	base := away.Scale(1 / away.Length())
	for attempt := 0; attempt <= opts.MaxRetries; attempt++ {
		ray := Ray{Origin: p, Direction: base.Rotate(float64(attempt) * opts.RetryAngle)}
		result.Attempts = attempt + 1
		result.Direction = ray.Direction

		hits := poly.IntersectRay(ray, tol)
		if len(hits) == 0 {
			result.Crossings = 0
			result.Classification = Outside
			return result
		}
		hits = filterHits(hits, p, closest, tol)
		result.Crossings = len(hits)

		if !poly.anyVertex(hits, tol) && !poly.TouchesRay(ray, tol) {
			if result.Crossings%2 == 1 {
				result.Classification = Inside
			} else {
				result.Classification = Outside
			}
			return result
		}

		// Nothing sensible can be said about a point sitting on a vertex
		if poly.IsVertex(p, tol) {
			result.Classification = OnBoundary
			return result
		}
		opts.Logger.WithFields(logrus.Fields{
			"point":   p,
			"attempt": result.Attempts,
		}).Debug("ray grazed a vertex or an arc, rotating")
	}

	result.Classification = OnBoundary
	result.Exhausted = true
	opts.Logger.WithFields(logrus.Fields{
		"point":     p,
		"attempts":  result.Attempts,
		"tolerance": tol,
	}).Warn("every ray grazed a vertex or an arc, reporting point as on the boundary")
	if opts.Strict {
		throw(&ExhaustedError{
			Result: result,
			cause:  errors.Wrapf(ErrRetryExhausted, "no clean ray from %v after %d attempts", p, result.Attempts),
		})
	}
	return result
}

// Drop hits that can't be genuine crossings: the closest point itself, and
// anything on the same side of the query point as the closest point on both
// axes. With segment clipped intersections neither occurs while the ray points
// away from the closest point.
func filterHits(hits []Point, p, closest Point, tol float64) []Point {
	kept := hits[:0]
	for _, h := range hits {
		if PointsEqual(h, closest, tol) {
			continue
		}
		if (h.X-p.X)*(closest.X-p.X) >= 0 && (h.Y-p.Y)*(closest.Y-p.Y) >= 0 {
			continue
		}
		kept = append(kept, h)
	}
	return kept
}

func (poly Polygon) anyVertex(points []Point, tol float64) bool {
	for _, p := range points {
		if poly.IsVertex(p, tol) {
			return true
		}
	}
	return false
}
