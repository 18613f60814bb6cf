package planar

import "github.com/rlee32/vopt/vmath"

// DistanceCalculator computes integer-rounded Euclidean lengths between
// point ids. It is the single source of truth for segment length: every
// comparison and sum the search or tour packages perform goes through
// Length, so its rounding rule is load bearing (see vmath.RoundHalfAwayFromZero).
type DistanceCalculator struct {
	points Points
}

// NewDistanceCalculator builds a calculator over the given point set.
func NewDistanceCalculator(points Points) DistanceCalculator {
	return DistanceCalculator{points: points}
}

// Length returns the integer-rounded Euclidean distance between points a
// and b.
func (dc DistanceCalculator) Length(a, b PointID) Length {
	dx := dc.points.X[a] - dc.points.X[b]
	dy := dc.points.Y[a] - dc.points.Y[b]
	return Length(vmath.RoundHalfAwayFromZero(vmath.Sqrt(dx*dx + dy*dy)))
}
