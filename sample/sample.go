// Package sample classifies many random points against one polygon in
// parallel, for visual and statistical checks of the classifier.
package sample

import (
	"context"
	"math"
	"math/rand"
	"runtime"
	"time"

	"github.com/osuushi/ptinpoly"
	"github.com/osuushi/ptinpoly/advanced"
	"github.com/osuushi/ptinpoly/dbg"
	"github.com/osuushi/ptinpoly/internal/log"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultCount  = 100000
	DefaultMargin = 10.0
)

type Config struct {
	// Number of points to classify
	Count int
	// Distance the sampling area extends past the polygon's bounds on each side
	Margin float64
	Seed   int64
	// Number of goroutines classifying. Zero or less means GOMAXPROCS.
	Workers int
	Options ptinpoly.Options
}

// DefaultConfig samples DefaultCount points with DefaultMargin around the
// polygon. Fields of a Config are otherwise taken as given, so a zero count or
// margin means exactly that.
func DefaultConfig() Config {
	return Config{Count: DefaultCount, Margin: DefaultMargin}
}

func (c Config) WithDefaults() Config {
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	return c
}

func (c Config) Validate() error {
	if c.Count < 0 {
		return errors.Wrapf(ptinpoly.ErrInvalidInput, "sample count %d", c.Count)
	}
	if c.Margin < 0 || math.IsNaN(c.Margin) || math.IsInf(c.Margin, 0) {
		return errors.Wrapf(ptinpoly.ErrInvalidInput, "sample margin %v", c.Margin)
	}
	return nil
}

type Sample struct {
	Point          ptinpoly.Point
	Classification ptinpoly.Classification
	// The classifier ran out of retries, and fell back to OnBoundary
	Degraded bool
}

type Result struct {
	Samples  []Sample
	Counts   map[ptinpoly.Classification]int
	Degraded int
	// The area the points were drawn from
	Bounds advanced.Bounds
}

// Points draws count points uniformly from bounds.
func Points(rng *rand.Rand, bounds advanced.Bounds, count int) []ptinpoly.Point {
	points := make([]ptinpoly.Point, count)
	for i := range points {
		points[i] = ptinpoly.Point{
			X: bounds.Min.X + rng.Float64()*bounds.Width(),
			Y: bounds.Min.Y + rng.Float64()*bounds.Height(),
		}
	}
	return points
}

// Run classifies cfg.Count random points drawn around the polygon. The points,
// and so the result, depend only on the polygon and the config. The context is
// checked between points; on cancellation Run returns the context's error.
func Run(ctx context.Context, polygon ptinpoly.Polygon, cfg Config) (*Result, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := polygon.Validate(); err != nil {
		return nil, err
	}
	opts := cfg.Options.WithDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	logger := opts.Logger.WithFields(logrus.Fields{
		"run":     dbg.Name(cfg.Seed),
		"count":   cfg.Count,
		"seed":    cfg.Seed,
		"workers": cfg.Workers,
	})
	opts.Logger = logger

	bounds := polygon.Bounds().Expand(cfg.Margin)
	points := Points(rand.New(rand.NewSource(cfg.Seed)), bounds, cfg.Count)
	samples := make([]Sample, len(points))

	logger.Info("sampling")
	start := time.Now()

	group, ctx := errgroup.WithContext(ctx)
	chunk := (len(points) + cfg.Workers - 1) / cfg.Workers
	for lo := 0; lo < len(points); lo += chunk {
		lo, hi := lo, lo+chunk
		if hi > len(points) {
			hi = len(points)
		}
		group.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				result, err := ptinpoly.Explain(polygon, points[i], opts)
				if err != nil {
					return errors.Wrapf(err, "sample %d at %v", i, points[i])
				}
				samples[i] = Sample{
					Point:          points[i],
					Classification: result.Classification,
					Degraded:       result.Exhausted,
				}
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	result := &Result{
		Samples: samples,
		Counts:  make(map[ptinpoly.Classification]int),
		Bounds:  bounds,
	}
	for _, s := range samples {
		result.Counts[s.Classification]++
		if s.Degraded {
			result.Degraded++
		}
	}

	entry := logger.WithFields(logrus.Fields{
		"inside":   result.Counts[ptinpoly.Inside],
		"outside":  result.Counts[ptinpoly.Outside],
		"boundary": result.Counts[ptinpoly.OnBoundary],
		"degraded": result.Degraded,
		"elapsed":  time.Since(start),
	})
	if log.IsDebug() {
		entry = entry.WithField("rate", float64(len(samples))/time.Since(start).Seconds())
	}
	entry.Info("sampling done")
	return result, nil
}
