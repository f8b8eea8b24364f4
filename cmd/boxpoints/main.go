package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/minbox/dbg"
	"github.com/osuushi/minbox/internal"
	"github.com/osuushi/minbox/internal/pointfile"
)

// Computes the minimum-area oriented bounding box of the points in an input
// file and writes "{angle} {area}" to the output file.
//
// The input is a point count followed by that many lines of two integers, or
// with --format=svg, an SVG document whose first polygon supplies the points.

var (
	app = kingpin.New("boxpoints", "Minimum-area oriented bounding box of a point set.")

	inputPath  = app.Arg("input", "point file to read").Required().ExistingFile()
	outPath    = app.Flag("out", "file to write the result to").Default("box.out").Envar("BOXPOINTS_OUT").String()
	format     = app.Flag("format", "input format").Default("text").Envar("BOXPOINTS_FORMAT").Enum("text", "svg")
	drawPath   = app.Flag("draw", "also render the points, hull and box to this PNG").Envar("BOXPOINTS_DRAW").String()
	candidates = app.Flag("candidates", "outline every candidate rectangle in the rendering").Bool()
	showImage  = app.Flag("imgcat", "print the rendering to the terminal (iTerm only)").Bool()
	scale      = app.Flag("scale", "rendering pixels per unit").Default("10").Envar("BOXPOINTS_SCALE").Float64()
	workers    = app.Flag("workers", "goroutines evaluating candidate angles").Default("1").Envar("BOXPOINTS_WORKERS").Int()
	logLevel   = app.Flag("log-level", "zerolog level").Default("info").Envar("BOXPOINTS_LOG_LEVEL").String()
)

func main() {
	// A missing .env file is fine
	_ = godotenv.Load()

	app.Version("boxpoints 1.0")
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		logger.Fatal().Err(err).Str("level", *logLevel).Msg("invalid log level")
	}
	logger = logger.Level(level)

	if err := run(logger); err != nil {
		logger.Fatal().Err(err).Msg("boxpoints failed")
	}
	fmt.Println(aurora.Green("Output successfully written to"), aurora.Bold(*outPath))
}

func run(logger zerolog.Logger) error {
	points, err := readPoints(*inputPath, *format)
	if err != nil {
		return err
	}
	logger.Debug().Int("points", len(points)).Str("input", *inputPath).Msg("read points")

	hull, err := buildHull(points)
	if err != nil {
		return err
	}
	logger.Debug().Int("vertices", len(hull)).Stringer("hull", hull).Msg("built hull")

	var box internal.OrientedBox
	if *workers > 1 {
		box = internal.MinimumBoundingBoxConcurrent(hull, *workers)
	} else {
		box = internal.MinimumBoundingBox(hull)
	}
	logger.Info().
		Float64("angle", box.Angle).
		Float64("area", box.Area).
		Float64("width", box.Width).
		Float64("height", box.Height).
		Msg("found minimum bounding box")

	out, err := os.Create(*outPath)
	if err != nil {
		return errors.Wrap(err, "creating output file")
	}
	defer out.Close()
	if err := pointfile.Write(out, box); err != nil {
		return err
	}

	if *drawPath != "" {
		if err := render(logger, points, hull, box); err != nil {
			return err
		}
	}
	return out.Close()
}

func readPoints(path, format string) ([]internal.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "input file %q not found", path)
	}
	defer f.Close()

	var read func(io.Reader) ([]internal.Point, error) = pointfile.Read
	if format == "svg" {
		read = pointfile.ReadSVG
	}
	points, err := read(f)
	return points, errors.Wrapf(err, "reading %q", path)
}

func buildHull(points []internal.Point) (hull internal.Hull, err error) {
	defer func() {
		if recoveredErr := internal.HandlePanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	return internal.BuildHull(points), nil
}

func render(logger zerolog.Logger, points []internal.Point, hull internal.Hull, box internal.OrientedBox) error {
	scene := internal.Scene{Points: points, Hull: hull, Box: box}
	if *candidates {
		for _, theta := range internal.CandidateAngles(hull) {
			scene.Candidates = append(scene.Candidates, internal.EvaluateCandidate(hull, theta))
		}
	}
	c := internal.Draw(scene, *scale)
	if err := c.SavePNG(*drawPath); err != nil {
		return errors.Wrapf(err, "saving %q", *drawPath)
	}
	logger.Debug().Str("path", *drawPath).Int("candidates", len(scene.Candidates)).Msg("rendered")
	for i := range scene.Candidates {
		candidate := &scene.Candidates[i]
		logger.Debug().
			Str("name", dbg.Name(candidate)).
			Float64("theta", candidate.Theta).
			Float64("area", candidate.Area()).
			Msg("candidate")
	}

	if *showImage {
		imgcat.CatFile(*drawPath, os.Stdout)
	}
	return nil
}
