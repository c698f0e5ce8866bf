package advanced

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircularIndex(t *testing.T) {
	n := 3
	expectedIndexes := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		actualIndex := CircularIndex(i, n)
		expectedIndex := expectedIndexes[0]
		expectedIndexes = expectedIndexes[1:]
		assert.Equal(t, expectedIndex, actualIndex)
	}
}

func TestPointsEqual(t *testing.T) {
	tol := DefaultTolerance
	origin := Point{0, 0}

	assert.True(t, PointsEqual(origin, origin, tol))
	assert.True(t, PointsEqual(origin, Point{tol / 2, -tol / 2}, tol))
	assert.False(t, PointsEqual(origin, Point{tol, 0}, tol), "the bound is strict")
	assert.False(t, PointsEqual(origin, Point{0, -2 * tol}, tol))

	// A box, not a circle: the corner is further than tol away but still equal
	corner := Point{0.9 * tol, 0.9 * tol}
	assert.Greater(t, corner.Length(), tol)
	assert.True(t, PointsEqual(origin, corner, tol))
}

func TestRotate(t *testing.T) {
	p := Point{1, 0}
	quarter := p.Rotate(math.Pi / 2)
	assert.InDelta(t, 0, quarter.X, Epsilon)
	assert.InDelta(t, 1, quarter.Y, Epsilon)

	// Rotating repeatedly by a weird angle preserves length and comes back round
	angle := math.Pi / 7
	q := Point{3, 4}
	for i := 0; i < 14; i++ {
		q = q.Rotate(angle)
		assert.InDelta(t, 5, q.Length(), 1e-9)
	}
	assert.InDelta(t, 3, q.X, 1e-9)
	assert.InDelta(t, 4, q.Y, 1e-9)
}

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, 0, normalizeAngle(2*math.Pi), Epsilon)
	assert.InDelta(t, 3*math.Pi/2, normalizeAngle(-math.Pi/2), Epsilon)
	assert.InDelta(t, math.Pi/4, normalizeAngle(math.Pi/4+6*math.Pi), 1e-9)
}

func TestBounds(t *testing.T) {
	b := Bounds{Min: Point{0, 0}, Max: Point{3, 4}}
	assert.Equal(t, 3.0, b.Width())
	assert.Equal(t, 4.0, b.Height())
	assert.Equal(t, 5.0, b.Diagonal())
	assert.Equal(t, Point{1.5, 2}, b.Center())
	assert.Equal(t, Bounds{Min: Point{-10, -10}, Max: Point{13, 14}}, b.Expand(10))
}

func TestProjectAndLift(t *testing.T) {
	polygon := UnitSquare()
	polygon.Elevation = 7

	assert.Equal(t, Point{1, 2}, Project(Point3{1, 2, 3}))
	assert.Equal(t, Point3{1, 2, 7}, polygon.Lift(Point{1, 2}))
	// The query's own Z is irrelevant
	assert.Equal(t, Point3{5, 0, 7}, polygon.ClosestPoint3(Point3{5, -3, -100}))
}
