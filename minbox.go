// Minimum-area oriented bounding boxes for planar point sets.
//
// A point set is reduced to its convex hull by gift wrapping, then every hull
// edge direction is tried as a side of the enclosing rectangle and the
// smallest rectangle wins. Results are deterministic: the same input always
// produces the same bits.
package minbox

import "github.com/osuushi/minbox/internal"

type Point = internal.Point
type Hull = internal.Hull
type OrientedBox = internal.OrientedBox

// Reduce points to their convex hull, counterclockwise from the leftmost
// (then lowest) point. Fewer than three points are returned unchanged.
func BuildHull(points []Point) (hull Hull, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			hull = nil
			err = recoveredErr
		}
	}()
	return internal.BuildHull(points), nil
}

// Find the minimum-area rectangle enclosing a hull. A hull with fewer than two
// points gives angle 0 and area 0.
func MinimumBoundingBox(hull Hull) OrientedBox {
	return internal.MinimumBoundingBox(hull)
}

// Build the hull of points and return its minimum-area rectangle. If workers
// is more than one, candidate angles are evaluated concurrently; the result is
// identical either way.
func Solve(points []Point, workers int) (box OrientedBox, err error) {
	hull, err := BuildHull(points)
	if err != nil {
		return OrientedBox{}, err
	}
	if workers > 1 {
		return internal.MinimumBoundingBoxConcurrent(hull, workers), nil
	}
	return internal.MinimumBoundingBox(hull), nil
}
