// Package pointfile reads the point lists the box solver consumes and writes
// its one-line result.
//
// The text format is a count N on the first line followed by exactly N lines
// of two integers each:
//
//	4
//	0 0
//	10 0
//	10 10
//	0 10
package pointfile

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"

	"github.com/osuushi/minbox/internal"
)

var (
	ErrTooFewLines       = errors.New("input should contain at least 2 lines (number of coordinates and the coordinates themselves)")
	ErrNegativeCount     = errors.New("the number of coordinates should be non-negative")
	ErrCountMismatch     = errors.New("coordinate count does not match")
	ErrMalformedLine     = errors.New("each line should contain two coordinates")
	ErrInvalidCoordinate = errors.New("invalid coordinates, both coordinates should be integers")
	ErrNoPolygon         = errors.New("no polygon found")
)

func Read(in io.Reader) ([]internal.Point, error) {
	var lines []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}

	if len(lines) < 2 {
		return nil, ErrTooFewLines
	}

	n, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid coordinate count %q", lines[0])
	}
	if n < 0 {
		return nil, ErrNegativeCount
	}
	if len(lines)-1 != n {
		return nil, errors.Wrapf(ErrCountMismatch, "expected %d coordinates, but found %d", n, len(lines)-1)
	}

	points := make([]internal.Point, 0, n)
	for i, line := range lines[1:] {
		parts := strings.Fields(line)
		if len(parts) != 2 {
			return nil, errors.Wrapf(ErrMalformedLine, "line %d", i+2)
		}
		x, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidCoordinate, "line %d", i+2)
		}
		y, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidCoordinate, "line %d", i+2)
		}
		points = append(points, internal.Point{X: float64(x), Y: float64(y)})
	}
	return points, nil
}

// Read the vertices of the first <polygon> in an SVG document. Only the points
// attribute is looked at; transforms and other shapes are ignored.
func ReadSVG(in io.Reader) ([]internal.Point, error) {
	root, err := svgparser.Parse(in, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	polygons := root.FindAll("polygon")
	if len(polygons) == 0 {
		return nil, ErrNoPolygon
	}

	var points []internal.Point
	for _, pair := range strings.Fields(polygons[0].Attributes["points"]) {
		coords := strings.Split(pair, ",")
		if len(coords) != 2 {
			return nil, errors.Wrapf(ErrMalformedLine, "svg point %q", pair)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidCoordinate, "svg x value %q", coords[0])
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidCoordinate, "svg y value %q", coords[1])
		}
		points = append(points, internal.Point{X: x, Y: y})
	}
	return points, nil
}

// Write the rounded box as "{angle} {area}", without a trailing newline.
func Write(out io.Writer, box internal.OrientedBox) error {
	_, err := io.WriteString(out, box.Rounded().Format())
	return errors.Wrap(err, "writing result")
}
