package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/ptinpoly"
	"github.com/osuushi/ptinpoly/internal/log"
	"github.com/osuushi/ptinpoly/internal/polyio"
	"github.com/osuushi/ptinpoly/internal/render"
	"github.com/osuushi/ptinpoly/sample"
	"github.com/pkg/errors"
)

func runClassify(in io.Reader, out io.Writer) error {
	polygon, err := loadPolygon()
	if err != nil {
		return err
	}

	var points []ptinpoly.Point
	if len(*classifyPoints) > 0 {
		for _, arg := range *classifyPoints {
			p, err := polyio.ParsePoint(arg)
			if err != nil {
				return err
			}
			points = append(points, p)
		}
	} else {
		points, err = polyio.ParsePoints(in)
		if err != nil {
			return err
		}
	}

	return classifyAll(out, polygon, points, options(), aurora.NewAurora(*classifyColor))
}

func classifyAll(out io.Writer, polygon ptinpoly.Polygon, points []ptinpoly.Point, opts ptinpoly.Options, au aurora.Aurora) error {
	for _, p := range points {
		c, err := ptinpoly.ClassifyWithOptions(polygon, p, opts)
		if err != nil {
			return errors.Wrapf(err, "classifying %s", formatPoint(p))
		}
		fmt.Fprintf(out, "%s %s\n", formatPoint(p), colorize(au, c))
	}
	return nil
}

func formatPoint(p ptinpoly.Point) string {
	return strconv.FormatFloat(p.X, 'g', -1, 64) + " " + strconv.FormatFloat(p.Y, 'g', -1, 64)
}

func colorize(au aurora.Aurora, c ptinpoly.Classification) string {
	switch c {
	case ptinpoly.Inside:
		return au.Green(c).String()
	case ptinpoly.Outside:
		return au.Red(c).String()
	default:
		return au.Yellow(c).String()
	}
}

func runSample(ctx context.Context, out io.Writer) error {
	polygon, err := loadPolygon()
	if err != nil {
		return err
	}

	result, err := sample.Run(ctx, polygon, sample.Config{
		Count:   *sampleCount,
		Margin:  *sampleMargin,
		Seed:    *sampleSeed,
		Workers: *sampleWorkers,
		Options: options(),
	})
	if err != nil {
		return err
	}
	writeCounts(out, result)

	if *samplePNG == "" {
		if *sampleImgcat {
			log.Instance().Warn("--imgcat needs --png")
		}
		return nil
	}
	c := render.Draw(polygon, result.Samples, *sampleSize)
	if err := render.SavePNG(c, *samplePNG); err != nil {
		return err
	}
	if *sampleImgcat {
		render.Cat(*samplePNG, out)
	}
	return nil
}

func writeCounts(out io.Writer, result *sample.Result) {
	for _, c := range []ptinpoly.Classification{ptinpoly.Inside, ptinpoly.OnBoundary, ptinpoly.Outside} {
		fmt.Fprintf(out, "%-12s %d\n", c, result.Counts[c])
	}
	fmt.Fprintf(out, "%-12s %d\n", "degraded", result.Degraded)
}
