package internal

import "math"

const Tolerance = 1e-6

// Only used for checks on finished results. The hull and caliper code compare
// exactly, so that the same input always produces the same bits.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Z component of the cross product of two vectors. Positive when b is
// counterclockwise of a.
func Cross(a, b Point) float64 {
	return a.X*b.Y - a.Y*b.X
}

type Orientation int

const (
	Collinear Orientation = iota
	// r turns counterclockwise from p→q
	Left
	// r turns clockwise from p→q
	Right
)

func (o Orientation) String() string {
	switch o {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "collinear"
}

// Classify the turn p → q → r. The sign convention is the one the hull walk
// is written against: negative is Left, positive is Right.
func Orient(p, q, r *Point) Orientation {
	val := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	switch {
	case val < 0:
		return Left
	case val > 0:
		return Right
	}
	return Collinear
}
