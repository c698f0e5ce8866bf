package ptinpoly

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke test. The internals are already tested.
func TestClassify(t *testing.T) {
	square := NewPolygon(Point{X: 0, Y: 0}, Point{X: 10, Y: 0}, Point{X: 10, Y: 10}, Point{X: 0, Y: 10})

	for _, tc := range []struct {
		point    Point
		expected Classification
	}{
		{Point{X: 5, Y: 5}, Inside},
		{Point{X: 15, Y: 5}, Outside},
		{Point{X: 0, Y: 5}, OnBoundary},
		{Point{X: 0, Y: 0}, OnBoundary},
	} {
		actual, err := Classify(square, tc.point)
		assert.NoError(t, err)
		assert.Equal(t, tc.expected, actual, "point %v", tc.point)
	}
}

func TestClassifyInvalidInput(t *testing.T) {
	t.Run("too few vertices", func(t *testing.T) {
		_, err := Classify(NewPolygon(Point{X: 1, Y: 1}), Point{X: 0, Y: 0})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidInput))
	})

	t.Run("non-finite vertex", func(t *testing.T) {
		_, err := Classify(NewPolygon(Point{X: 0, Y: 0}, Point{X: math.NaN(), Y: 1}, Point{X: 0, Y: 1}), Point{X: 0, Y: 0})
		assert.True(t, errors.Is(err, ErrInvalidInput))
	})

	t.Run("non-finite point", func(t *testing.T) {
		_, err := Classify(NewPolygon(Point{X: 0, Y: 0}, Point{X: 1, Y: 0}, Point{X: 0, Y: 1}), Point{X: math.Inf(1), Y: 0})
		assert.True(t, errors.Is(err, ErrInvalidInput))
	})

	t.Run("negative tolerance", func(t *testing.T) {
		_, err := ClassifyWithOptions(NewPolygon(Point{X: 0, Y: 0}, Point{X: 1, Y: 0}, Point{X: 0, Y: 1}), Point{X: 5, Y: 5}, Options{Tolerance: -1})
		assert.True(t, errors.Is(err, ErrInvalidInput))
	})
}

func TestClassifyStrictExhaustion(t *testing.T) {
	// The ray straight up from (5, 2) passes through the notch vertex at (5, 8),
	// and with retries disabled there is no second chance.
	notched := NewPolygon(Point{X: 0, Y: 0}, Point{X: 10, Y: 0}, Point{X: 10, Y: 10}, Point{X: 5, Y: 8}, Point{X: 0, Y: 10})

	result, err := Explain(notched, Point{X: 5, Y: 2}, Options{MaxRetries: -1, Strict: true})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRetryExhausted))
	assert.Equal(t, OnBoundary, result.Classification)
	assert.True(t, result.Exhausted)
	// The engine's working survives the error
	assert.Equal(t, 1, result.Attempts)
	assert.Equal(t, Point{X: 5, Y: 0}, result.Closest)
	assert.Equal(t, Point{X: 0, Y: 1}, result.Direction)
	var exhausted *ExhaustedError
	require.True(t, errors.As(err, &exhausted))
	assert.Equal(t, result, exhausted.Result)

	classification, err := ClassifyWithOptions(notched, Point{X: 5, Y: 2}, Options{MaxRetries: -1})
	assert.NoError(t, err)
	assert.Equal(t, OnBoundary, classification)

	classification, err = Classify(notched, Point{X: 5, Y: 2})
	assert.NoError(t, err)
	assert.Equal(t, Inside, classification)
}
