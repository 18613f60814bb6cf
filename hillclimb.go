package vopt

import (
	"github.com/rlee32/vopt/planar"
	"github.com/rlee32/vopt/tour"
)

// HillClimb runs spec.md §4.6's loop to completion: repeatedly find the
// best V-move over every pivot (searched from its cached search node),
// apply it, re-register the three changed segments in the tree, and
// re-expand every search node, until no pivot yields an improving move.
// A non-nil permanent pins that segment: any candidate that would remove
// it is rejected throughout the climb.
func (o *Optimizer) HillClimb(permanent *tour.Segment) (iterations int) {
	n := len(o.tour.Next)
	for {
		ctx := o.searchContext()
		var best tour.VMove
		for p := 0; p < n; p++ {
			var move tour.VMove
			if permanent != nil {
				move = o.searchNode[p].SearchPermanent(ctx, p, *permanent)
			} else {
				move = o.searchNode[p].Search(ctx, p)
			}
			best.Apply(move)
		}
		if best.Improvement == 0 {
			break
		}

		o.applyAndReregister(best)
		iterations++

		if o.cfg.Verify {
			o.verify()
		}
		if o.cfg.PrintIterations {
			o.cfg.logf("iteration %d: tour length %d", iterations, o.currentLength())
		}
	}
	return iterations
}

// applyAndReregister performs spec.md §4.6's per-move bookkeeping: compute
// the three old and three new segments from the tour state *before*
// mutating it, swap them in the tree, update the five affected points'
// incident-length caches, re-expand every search node, apply the move to
// the tour itself, and finally refresh every point's successor-edge length.
func (o *Optimizer) applyAndReregister(move tour.VMove) {
	i, j := move.I, move.J
	nextJ := o.tour.Next[j]
	adj0, adj1 := o.tour.Adjacents[i][0], o.tour.Adjacents[i][1]

	oldSegs := [3]tour.Segment{
		tour.NewSegment(i, adj0, o.dc),
		tour.NewSegment(i, adj1, o.dc),
		tour.NewSegment(j, nextJ, o.dc),
	}
	newSegs := [3]tour.Segment{
		tour.NewSegment(i, j, o.dc),
		tour.NewSegment(i, nextJ, o.dc),
		tour.NewSegment(adj0, adj1, o.dc),
	}

	for _, s := range oldSegs {
		o.tree.RemoveSegment(s.Min, s.Max, s.Length)
	}
	for _, s := range newSegs {
		o.tree.AddSegment(s.Min, s.Max, s.Length)
	}

	lenIJ := o.dc.Length(i, j)
	lenINextJ := o.dc.Length(i, nextJ)
	lenAdj := o.dc.Length(adj0, adj1)
	lenJNextJ := o.dc.Length(j, nextJ)
	lenIAdj0 := o.dc.Length(i, adj0)
	lenIAdj1 := o.dc.Length(i, adj1)

	o.updateIncidentLength(i, lenIAdj0, lenIJ)
	o.updateIncidentLength(i, lenIAdj1, lenINextJ)
	o.updateIncidentLength(j, lenJNextJ, lenIJ)
	o.updateIncidentLength(nextJ, lenJNextJ, lenINextJ)
	o.updateIncidentLength(adj0, lenIAdj0, lenAdj)
	o.updateIncidentLength(adj1, lenIAdj1, lenAdj)

	o.expandSearchNodes()

	o.tour.ApplyMove(move)
	for p, next := range o.tour.Next {
		o.nextLengths[p] = o.dc.Length(p, next)
	}
}

// orderedPoints returns the current tour as a cyclic ordering.
func (o *Optimizer) orderedPoints() []planar.PointID {
	return tour.ComputeOrderedPoints(o.tour.Next)
}

// length returns the current tour's total length by direct summation.
func (o *Optimizer) length() planar.Length {
	return o.tour.Length(o.dc)
}
