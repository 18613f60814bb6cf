package vopt

import (
	"github.com/rlee32/vopt/planar"
	"github.com/rlee32/vopt/tour"
)

// perturbedRestart implements spec.md §4.7's bounded restart mechanism
// against an already hill-climbed base Optimizer o. policy selects which
// of the two perturbation-candidate rules (spec.md §4.4) generates the
// seed moves: the public OptimizeWithPerturbation interface threads its
// policy argument through to here rather than hardcoding the lax variant,
// since spec.md §8's testable property explicitly parameterizes
// optimize_with_perturbation by policy.
//
// For every generated candidate, each of its three would-be new segments
// whose length undercuts min(next_lengths[j], seg_len[i][0], seg_len[i][1])
// seeds a fresh hill-climb with that segment pinned permanent; the best
// resulting tour (by length) across every seed is returned, or the base
// ordering unchanged if nothing improved on it.
func perturbedRestart(points planar.Points, o *Optimizer, policy PerturbationPolicy, cfg Config) (ordered []planar.PointID, length planar.Length, iterations int) {
	baseOrdered := o.orderedPoints()
	bestOrdered := baseOrdered
	bestLength := o.length()

	ctx := o.searchContext()
	var candidates []tour.VMove
	for p := range o.tour.Next {
		var found []tour.VMove
		if policy == Strict {
			found = o.searchNode[p].SearchPerturbationStrict(ctx, p)
		} else {
			found = o.searchNode[p].SearchPerturbationLax(ctx, p)
		}
		candidates = append(candidates, found...)
	}

	for _, move := range candidates {
		i, j := move.I, move.J
		nextJ := o.tour.Next[j]
		adj0, adj1 := o.tour.Adjacents[i][0], o.tour.Adjacents[i][1]
		threshold := minLength(o.nextLengths[j], o.segLen[i][0], o.segLen[i][1])

		newSegs := [3]tour.Segment{
			tour.NewSegment(i, j, o.dc),
			tour.NewSegment(i, nextJ, o.dc),
			tour.NewSegment(adj0, adj1, o.dc),
		}

		for _, s := range newSegs {
			if s.Length >= threshold {
				continue
			}

			seedTour := tour.New(baseOrdered)
			seedTour.ApplyMove(move)
			perturbedOrdered := tour.ComputeOrderedPoints(seedTour.Next)

			candidateOpt := newOptimizer(points, perturbedOrdered, cfg)
			iterations += candidateOpt.HillClimb(&s)

			if candidateLength := candidateOpt.length(); candidateLength < bestLength {
				bestLength = candidateLength
				bestOrdered = candidateOpt.orderedPoints()
			}
		}
	}

	return bestOrdered, bestLength, iterations
}

func minLength(a, b, c planar.Length) planar.Length {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
