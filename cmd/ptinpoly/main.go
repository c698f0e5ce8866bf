// Command ptinpoly classifies points against polylines read from a file.
//
// Polygon files are text ("x y [bulge]" per line, blank line between
// polygons), YAML or SVG. Every flag can also be given through the
// environment, and a .env file in the working directory is loaded first.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/osuushi/ptinpoly"
	"github.com/osuushi/ptinpoly/internal/log"
	"github.com/osuushi/ptinpoly/internal/polyio"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("ptinpoly", "Classify points as inside, outside or on the boundary of CAD polylines.")

	logLevel  = app.Flag("log-level", "Log level (trace, debug, info, warn, error).").Default("warn").Envar("PTINPOLY_LOG_LEVEL").String()
	logFormat = app.Flag("log-format", "Log format.").Default("text").Envar("PTINPOLY_LOG_FORMAT").Enum("text", "json")
	logOutput = app.Flag("log-output", "Log destination: none, stdout, stderr or a file path.").Default("stderr").Envar("PTINPOLY_LOG_OUTPUT").String()

	polygonFile = app.Flag("polygon", "File to read the polygon from.").Short('p').Required().Envar("PTINPOLY_POLYGON").ExistingFile()
	format      = app.Flag("format", "Polygon file format. auto picks by extension.").Default("auto").Envar("PTINPOLY_FORMAT").Enum(polyio.Formats...)
	index       = app.Flag("index", "Which polygon in the file to use, when it holds several.").Default("0").Envar("PTINPOLY_INDEX").Int()
	tolerance   = app.Flag("tolerance", "Distance under which points count as coincident.").Default(fmt.Sprint(ptinpoly.DefaultTolerance)).Envar("PTINPOLY_TOLERANCE").Float64()
	maxRetries  = app.Flag("max-retries", "Ray retries before giving up on a point. Negative disables retries.").Default(fmt.Sprint(ptinpoly.DefaultMaxRetries)).Envar("PTINPOLY_MAX_RETRIES").Int()
	retryAngle  = app.Flag("retry-angle", "Radians to rotate the ray by on each retry.").Default(fmt.Sprint(ptinpoly.DefaultRetryAngle)).Envar("PTINPOLY_RETRY_ANGLE").Float64()
	strict      = app.Flag("strict", "Fail instead of falling back to on-boundary when retries run out.").Envar("PTINPOLY_STRICT").Bool()

	classifyCommand = app.Command("classify", "Classify points given as arguments, or read from stdin one per line.")
	classifyPoints  = classifyCommand.Arg("point", "Points as x,y.").Strings()
	classifyColor   = classifyCommand.Flag("color", "Color the classifications.").Envar("PTINPOLY_COLOR").Bool()

	sampleCommand = app.Command("sample", "Classify random points around the polygon and report the counts.")
	sampleCount   = sampleCommand.Flag("count", "Number of points.").Default("100000").Envar("PTINPOLY_SAMPLE_COUNT").Int()
	sampleMargin  = sampleCommand.Flag("margin", "How far past the polygon's bounds to sample.").Default("10").Envar("PTINPOLY_SAMPLE_MARGIN").Float64()
	sampleSeed    = sampleCommand.Flag("seed", "Random seed.").Default("1").Envar("PTINPOLY_SAMPLE_SEED").Int64()
	sampleWorkers = sampleCommand.Flag("workers", "Goroutines to classify with. 0 means one per CPU.").Default("0").Envar("PTINPOLY_SAMPLE_WORKERS").Int()
	samplePNG     = sampleCommand.Flag("png", "Render the samples to this PNG file.").Envar("PTINPOLY_SAMPLE_PNG").String()
	sampleSize    = sampleCommand.Flag("size", "Larger side of the PNG, in pixels.").Default("800").Envar("PTINPOLY_SAMPLE_SIZE").Int()
	sampleImgcat  = sampleCommand.Flag("imgcat", "Show the PNG in the terminal (iTerm only).").Envar("PTINPOLY_SAMPLE_IMGCAT").Bool()
)

func main() {
	_ = godotenv.Load(".env")
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	closer, err := setupLogging()
	app.FatalIfError(err, "")
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch command {
	case classifyCommand.FullCommand():
		err = runClassify(os.Stdin, os.Stdout)
	case sampleCommand.FullCommand():
		err = runSample(ctx, os.Stdout)
	}
	if err != nil {
		log.Instance().WithError(err).Error(command + " failed")
		closer.Close()
		os.Exit(1)
	}
}

func setupLogging() (io.Closer, error) {
	if err := log.SetLevel(*logLevel); err != nil {
		return nil, err
	}
	if err := log.SetFormat(*logFormat); err != nil {
		return nil, err
	}
	return log.SetOutput(*logOutput)
}

func options() ptinpoly.Options {
	return ptinpoly.Options{
		Tolerance:  *tolerance,
		MaxRetries: *maxRetries,
		RetryAngle: *retryAngle,
		Strict:     *strict,
		Logger:     log.Instance(),
	}
}

func loadPolygon() (ptinpoly.Polygon, error) {
	polygons, err := polyio.ReadFile(*polygonFile, polyio.Format(*format))
	if err != nil {
		return ptinpoly.Polygon{}, err
	}
	if *index < 0 || *index >= len(polygons) {
		return ptinpoly.Polygon{}, errors.Errorf("polygon index %d out of range, %s holds %d", *index, *polygonFile, len(polygons))
	}
	if len(polygons) > 1 {
		log.Instance().WithField("count", len(polygons)).Infof("using polygon %d", *index)
	}
	return polygons[*index], nil
}
