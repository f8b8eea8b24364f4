package internal

import "math"

// Gift wrapping (Jarvis march). The walk starts at the leftmost point, taking
// the lowest one on ties, and from each vertex moves to the point that no
// other point is clockwise of. That gives a counterclockwise hull in O(n·h).
//
// Ties are resolved by distance: when the point under test is collinear with
// the current vertex and the candidate, the farther of the two wins. So points
// lying on a hull edge never become vertices, and neither does a duplicate of
// the current vertex. The walk ends when it reaches a point equal to the start.
//
// Fewer than three points are returned as they are.
func BuildHull(points []Point) Hull {
	for i, p := range points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			fatalf("point %d has a non-finite coordinate: %v", i, p)
		}
	}

	n := len(points)
	if n < 3 {
		return append(Hull{}, points...)
	}

	start := points[leftmostIndex(points)]
	hull := Hull{start}
	current := start
	for {
		next := nextHullVertex(points, current)
		if next == start {
			break
		}
		// Only reachable through floating point inconsistency in the
		// orientation test. The boundary is complete by then, so stop rather
		// than cycle.
		if hull.has(next) {
			break
		}
		hull = append(hull, next)
		current = next
	}
	return hull
}

func leftmostIndex(points []Point) int {
	l := 0
	for i := 1; i < len(points); i++ {
		p := points[i]
		if p.X < points[l].X || (p.X == points[l].X && p.Y < points[l].Y) {
			l = i
		}
	}
	return l
}

// The scan starts from the point after the first occurrence of current.
func nextHullVertex(points []Point, current Point) Point {
	currentIndex := 0
	for i, p := range points {
		if p == current {
			currentIndex = i
			break
		}
	}

	candidate := points[CircularIndex(currentIndex+1, len(points))]
	for i := range points {
		switch Orient(&current, &candidate, &points[i]) {
		case Right:
			candidate = points[i]
		case Collinear:
			if distanceSquared(current, points[i]) > distanceSquared(current, candidate) {
				candidate = points[i]
			}
		}
	}
	return candidate
}

func distanceSquared(a, b Point) float64 {
	d := b.Sub(a)
	return d.X*d.X + d.Y*d.Y
}

func (h Hull) has(p Point) bool {
	for _, vertex := range h {
		if vertex == p {
			return true
		}
	}
	return false
}
