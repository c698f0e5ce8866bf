package advanced

import (
	"math"

	"github.com/pkg/errors"
)

// Check that the polygon can be classified against. Self intersection is not
// detected; the classifier assumes a simple outline.
func (poly Polygon) Validate() error {
	if len(poly.Vertices) < 2 {
		return errors.Wrapf(ErrInvalidInput, "polygon needs at least 2 vertices, got %d", len(poly.Vertices))
	}
	for i, v := range poly.Vertices {
		if !v.Point.IsFinite() || !isFinite(v.Bulge) {
			return errors.Wrapf(ErrInvalidInput, "vertex %d is not finite: %v", i, v)
		}
	}
	if !isFinite(poly.Elevation) {
		return errors.Wrapf(ErrInvalidInput, "elevation is not finite: %v", poly.Elevation)
	}
	return nil
}

// The drawn segments of the outline. An open polyline has one fewer segment
// than it has vertices.
func (poly Polygon) Segments() []Segment {
	n := len(poly.Vertices)
	if !poly.Closed {
		n--
	}
	return poly.segments(n)
}

// The outline as a closed curve, regardless of the Closed flag. Containment
// is only meaningful for a closed curve, so every query works on this.
func (poly Polygon) Boundary() []Segment {
	return poly.segments(len(poly.Vertices))
}

func (poly Polygon) segments(n int) []Segment {
	if n <= 0 {
		return nil
	}
	segments := make([]Segment, 0, n)
	for i := 0; i < n; i++ {
		next := poly.Vertices[CircularIndex(i+1, len(poly.Vertices))]
		segments = append(segments, NewSegment(poly.Vertices[i], next.Point))
	}
	return segments
}

// Nearest point on the boundary. When several segments are equally close,
// the first one in vertex order wins.
func (poly Polygon) ClosestPoint(p Point) Point {
	var closest Point
	best := math.Inf(1)
	for _, segment := range poly.Boundary() {
		candidate := segment.ClosestPoint(p)
		if distance := p.DistanceTo(candidate); distance < best {
			best = distance
			closest = candidate
		}
	}
	return closest
}

// Closest point for a host 3D point. The query is projected onto the
// polygon's plane and the answer is lifted back to its elevation.
func (poly Polygon) ClosestPoint3(p Point3) Point3 {
	return poly.Lift(poly.ClosestPoint(Project(p)))
}

// Place a planar point at the polygon's elevation.
func (poly Polygon) Lift(p Point) Point3 {
	return Point3{X: p.X, Y: p.Y, Z: poly.Elevation}
}

// Is the point within tol of any vertex (by PointsEqual)?
func (poly Polygon) IsVertex(p Point, tol float64) bool {
	for _, v := range poly.Vertices {
		if PointsEqual(v.Point, p, tol) {
			return true
		}
	}
	return false
}

// Every point where the ray meets the boundary. A candidate that coincides
// (by PointsEqual) with a point already found is dropped, which collapses the
// duplicates two segments report when the ray passes through their shared
// vertex. Points are returned in discovery order.
func (poly Polygon) IntersectRay(ray Ray, tol float64) []Point {
	var result []Point
	for _, segment := range poly.Boundary() {
		for _, candidate := range segment.IntersectRay(ray, tol) {
			result = appendDistinct(result, candidate, tol)
		}
	}
	return result
}

// TouchesRay reports whether the ray runs tangent, give or take tol, to any
// arc of the closed outline.
func (poly Polygon) TouchesRay(ray Ray, tol float64) bool {
	for _, segment := range poly.Boundary() {
		if arc, ok := segment.(Arc); ok && arc.TouchesRay(ray, tol) {
			return true
		}
	}
	return false
}

func appendDistinct(points []Point, p Point, tol float64) []Point {
	for _, existing := range points {
		if PointsEqual(existing, p, tol) {
			return points
		}
	}
	return append(points, p)
}

// Geometric extents of the closed outline, arcs included.
func (poly Polygon) Bounds() Bounds {
	bounds := emptyBounds()
	for _, segment := range poly.Boundary() {
		b := segment.Bounds()
		bounds = bounds.union(b.Min).union(b.Max)
	}
	return bounds
}

// The same outline traversed the other way. Each bulge moves to the vertex
// that now starts its segment and flips sign.
func (poly Polygon) Reverse() Polygon {
	n := len(poly.Vertices)
	reversed := Polygon{Closed: poly.Closed, Elevation: poly.Elevation}
	reversed.Vertices = make([]Vertex, n)
	for i := 0; i < n; i++ {
		v := poly.Vertices[n-1-i]
		// The segment now leaving v is the one that used to arrive at it
		reversed.Vertices[i] = Vertex{Point: v.Point, Bulge: -poly.Vertices[CircularIndex(n-2-i, n)].Bulge}
	}
	return reversed
}

// Mean of the vertices. For a convex polygon of straight segments this is
// always strictly inside.
func (poly Polygon) VertexCentroid() Point {
	var sum Point
	for _, v := range poly.Vertices {
		sum = sum.Add(v.Point)
	}
	return sum.Scale(1 / float64(len(poly.Vertices)))
}

// Even-odd crossing count against a horizontal ray heading right, ignoring
// bulges. It has no tolerance handling or boundary case, which makes it a
// useful independent reference for straight-sided polygons away from their
// edges.
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	for i, vertex := range poly.Vertices {
		nextVertex := poly.Vertices[CircularIndex(i+1, len(poly.Vertices))]
		a, b := vertex.Point, nextVertex.Point
		if (a.Y > p.Y) != (b.Y > p.Y) && p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			crossingCount++
		}
	}
	return crossingCount
}

func (poly Polygon) ContainsPointByEvenOdd(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}
