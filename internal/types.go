package internal

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
)

type Point struct {
	X float64
	Y float64
}

// A hull is an open boundary: the edge from the last vertex back to the first
// is implied, never stored. Vertices wind counterclockwise (y up), starting at
// the leftmost, then lowest, input point.
type Hull []Point

// The minimum-area rectangle around a hull. Angle is in degrees in (-90, 90],
// measured the way the box reports it (90 minus the winning candidate angle).
// Theta is the winning candidate itself, in radians in [0, pi/2).
type OrientedBox struct {
	Angle  float64
	Area   float64
	Theta  float64
	Width  float64
	Height float64
	// Corners in input coordinates, counterclockwise from the corner at the
	// rotated frame's minimum.
	Corners [4]Point
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y}
}

// The start vertex is highlighted so the winding is readable in test output.
func (h Hull) String() string {
	parts := make([]string, len(h))
	for i, p := range h {
		if i == 0 {
			parts[i] = aurora.Green(p.String()).String()
		} else {
			parts[i] = p.String()
		}
	}
	return fmt.Sprintf("Hull[%s]", strings.Join(parts, " → "))
}

// Convex containment test, tolerant of points on the boundary. The closing
// edge is included here even though it is not used for candidate angles.
func (h Hull) ContainsPoint(p Point) bool {
	switch len(h) {
	case 0:
		return false
	case 1:
		return Equal(h[0].X, p.X) && Equal(h[0].Y, p.Y)
	}
	for i, vertex := range h {
		next := h[CircularIndex(i+1, len(h))]
		if Cross(next.Sub(vertex), p.Sub(vertex)) < -Tolerance {
			return false
		}
	}
	if len(h) == 2 {
		// A segment has no interior, so also bound the point along it.
		return segmentContains(h[0], h[1], p)
	}
	return true
}

func segmentContains(a, b, p Point) bool {
	ab := b.Sub(a)
	ap := p.Sub(a)
	if !Equal(Cross(ab, ap), 0) {
		return false
	}
	dot := ab.X*ap.X + ab.Y*ap.Y
	return dot >= -Tolerance && dot <= ab.X*ab.X+ab.Y*ab.Y+Tolerance
}
