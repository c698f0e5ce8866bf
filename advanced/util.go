package advanced

import "math"

const DefaultTolerance = 1e-4

// Tolerance for comparisons that are about floating point noise rather than
// about the caller's geometry, such as whether two directions are parallel.
const Epsilon = 1e-12

// To compensate for imprecision in floats, equality is tolerance based.
func Equal(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

// Two points are equal if they agree within tol on each axis independently.
// This is a box test, not a distance test: points up to tol*sqrt(2) apart can
// compare equal. The classifier's notion of "on the boundary" is exactly this
// box.
func PointsEqual(a, b Point, tol float64) bool {
	return Equal(a.X, b.X, tol) && Equal(a.Y, b.Y, tol)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Drop the Z coordinate.
func Project(p Point3) Point {
	return Point{X: p.X, Y: p.Y}
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Z component of the 3D cross product.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

func (p Point) DistanceTo(q Point) float64 {
	return p.Sub(q).Length()
}

// Rotate counterclockwise about the origin (about the Z axis, in 3D terms).
func (p Point) Rotate(angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{p.X*cos - p.Y*sin, p.X*sin + p.Y*cos}
}

func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Normalize an angle into [0, 2π).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

func (b Bounds) Width() float64 {
	return b.Max.X - b.Min.X
}

func (b Bounds) Height() float64 {
	return b.Max.Y - b.Min.Y
}

func (b Bounds) Diagonal() float64 {
	return b.Max.Sub(b.Min).Length()
}

func (b Bounds) Center() Point {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Grow the bounds by margin on every side.
func (b Bounds) Expand(margin float64) Bounds {
	return Bounds{
		Min: Point{b.Min.X - margin, b.Min.Y - margin},
		Max: Point{b.Max.X + margin, b.Max.Y + margin},
	}
}

func (b Bounds) union(p Point) Bounds {
	return Bounds{
		Min: Point{math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y)},
		Max: Point{math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y)},
	}
}

func emptyBounds() Bounds {
	return Bounds{
		Min: Point{math.Inf(1), math.Inf(1)},
		Max: Point{math.Inf(-1), math.Inf(-1)},
	}
}
