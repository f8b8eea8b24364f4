package internal

import (
	"math"
	"slices"
	"sort"

	"golang.org/x/sync/errgroup"
)

// Rotating calipers restricted to hull edge directions: a minimum-area
// enclosing rectangle always has a side collinear with a hull edge, so only
// those directions (folded into a quarter turn) need to be tried.

const (
	halfPi   = math.Pi / 2
	radToDeg = 180 / math.Pi
)

// The extents of the hull in the frame rotated by Theta.
type Candidate struct {
	Theta                  float64
	MinX, MaxX, MinY, MaxY float64
}

func (c *Candidate) Area() float64 {
	return (c.MaxX - c.MinX) * (c.MaxY - c.MinY)
}

// Angle in the reporting convention, before normalization.
func (c *Candidate) Orientation() float64 {
	return 90 - c.Theta*radToDeg
}

// Express p in the frame rotated by theta, which lines an edge at angle theta
// up with the x axis.
func Rotate(p Point, theta float64) Point {
	sin, cos := math.Sincos(theta)
	return Point{
		X: cos*p.X + sin*p.Y,
		Y: -sin*p.X + cos*p.Y,
	}
}

// Distinct edge angles folded into [0, pi/2), ascending. Only the edges
// between consecutive vertices count; the closing edge from the last vertex
// back to the first is deliberately left out.
func CandidateAngles(hull Hull) []float64 {
	if len(hull) < 2 {
		return nil
	}
	angles := make([]float64, 0, len(hull)-1)
	for i := 0; i < len(hull)-1; i++ {
		edge := hull[i+1].Sub(hull[i])
		angles = append(angles, math.Abs(foldQuarterTurn(math.Atan2(edge.Y, edge.X))))
	}
	sort.Float64s(angles)
	return slices.Compact(angles)
}

// Floor modulo pi/2. A tiny negative angle can round up to exactly pi/2, which
// is the same direction as 0.
func foldQuarterTurn(angle float64) float64 {
	m := math.Mod(angle, halfPi)
	if m < 0 {
		m += halfPi
	}
	if m >= halfPi {
		m = 0
	}
	return m
}

func EvaluateCandidate(hull Hull, theta float64) Candidate {
	c := Candidate{
		Theta: theta,
		MinX:  math.Inf(1),
		MaxX:  math.Inf(-1),
		MinY:  math.Inf(1),
		MaxY:  math.Inf(-1),
	}
	for _, p := range hull {
		r := Rotate(p, theta)
		c.MinX = math.Min(c.MinX, r.X)
		c.MaxX = math.Max(c.MaxX, r.X)
		c.MinY = math.Min(c.MinY, r.Y)
		c.MaxY = math.Max(c.MaxY, r.Y)
	}
	return c
}

// Sweep every candidate angle and return the smallest box. On an exact area
// tie the candidate whose reported angle is closer to zero wins.
func MinimumBoundingBox(hull Hull) OrientedBox {
	if len(hull) < 2 {
		return degenerateBox(hull)
	}
	angles := CandidateAngles(hull)
	candidates := make([]Candidate, len(angles))
	for i, theta := range angles {
		candidates[i] = EvaluateCandidate(hull, theta)
	}
	return selectBox(candidates)
}

// Same result as MinimumBoundingBox, with candidates evaluated on up to
// workers goroutines (unbounded if workers <= 0). The reduction still walks
// candidates in ascending angle order, so ties break exactly as in the
// sequential sweep.
func MinimumBoundingBoxConcurrent(hull Hull, workers int) OrientedBox {
	if len(hull) < 2 {
		return degenerateBox(hull)
	}
	angles := CandidateAngles(hull)
	candidates := make([]Candidate, len(angles))

	var g errgroup.Group
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, theta := range angles {
		i, theta := i, theta
		g.Go(func() error {
			candidates[i] = EvaluateCandidate(hull, theta)
			return nil
		})
	}
	// Evaluation cannot fail; the group only bounds concurrency.
	_ = g.Wait()

	return selectBox(candidates)
}

type bestCandidate struct {
	candidate   *Candidate
	area        float64
	orientation float64
}

func selectBox(candidates []Candidate) OrientedBox {
	best := bestCandidate{area: math.Inf(1), orientation: 0}
	for i := range candidates {
		c := &candidates[i]
		area := c.Area()
		orientation := c.Orientation()
		if area < best.area || (area == best.area && math.Abs(orientation) < math.Abs(best.orientation)) {
			best = bestCandidate{candidate: c, area: area, orientation: orientation}
		}
	}
	if best.candidate == nil {
		// Every area overflowed or was NaN.
		return OrientedBox{Area: best.area}
	}
	return best.candidate.box()
}

func (c *Candidate) box() OrientedBox {
	box := OrientedBox{
		Angle:  normalizeOrientation(c.Orientation()),
		Area:   c.Area(),
		Theta:  c.Theta,
		Width:  c.MaxX - c.MinX,
		Height: c.MaxY - c.MinY,
	}
	rotated := [4]Point{
		{c.MinX, c.MinY},
		{c.MaxX, c.MinY},
		{c.MaxX, c.MaxY},
		{c.MinX, c.MaxY},
	}
	for i, p := range rotated {
		box.Corners[i] = Rotate(p, -c.Theta)
	}
	return box
}

// Fold into (-90, 90]. A box at exactly 90 is the axis-aligned box, which is
// reported as 0.
func normalizeOrientation(degrees float64) float64 {
	if degrees > 90 {
		degrees -= 180
	} else if degrees < -90 {
		degrees += 180
	}
	if degrees == 90 {
		return 0
	}
	return degrees
}

func degenerateBox(hull Hull) OrientedBox {
	box := OrientedBox{}
	if len(hull) == 1 {
		for i := range box.Corners {
			box.Corners[i] = hull[0]
		}
	}
	return box
}
