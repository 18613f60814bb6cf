// Package planar holds the point-id based primitives the rest of the
// optimizer builds on: point and length types, the sentinel invalid point,
// and the integer-rounded Euclidean distance calculator.
//
// Adapted from orb's Point/Bound primitives: instead of a Pointer
// interface over arbitrary geometry, this package works over dense point
// ids indexing parallel coordinate slices, which is what the quadtree and
// tour packages need to stay allocation-free during the search.
package planar

// PointID is a dense index into a Points set, in [0, N).
type PointID = int

// InvalidPoint is a sentinel distinct from any valid point id.
const InvalidPoint PointID = -1

// Length is an integer-rounded Euclidean length. All comparisons and sums
// used for move selection use this type exclusively; it must be wide
// enough that a sum of three segment lengths can never overflow.
type Length = int64

// Points holds the coordinate arrays for a point set. Coordinates are
// immutable for the lifetime of an optimization run.
type Points struct {
	X, Y []float64
}

// Len returns the number of points.
func (p Points) Len() int {
	return len(p.X)
}

// Bound returns the axis-aligned bounding box of all points. Panics if the
// point set is empty; callers are expected to have already validated that
// there are at least 3 points (see vopt.Optimize).
func (p Points) Bound() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = p.X[0], p.X[0]
	ymin, ymax = p.Y[0], p.Y[0]
	for i := 1; i < len(p.X); i++ {
		if p.X[i] < xmin {
			xmin = p.X[i]
		}
		if p.X[i] > xmax {
			xmax = p.X[i]
		}
		if p.Y[i] < ymin {
			ymin = p.Y[i]
		}
		if p.Y[i] > ymax {
			ymax = p.Y[i]
		}
	}
	return
}
