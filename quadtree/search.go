package quadtree

import (
	"github.com/rlee32/vopt/planar"
	"github.com/rlee32/vopt/tour"
)

// SearchContext bundles the per-iteration state a pruned search needs to
// evaluate candidates against a fixed pivot: the distance calculator, the
// tour's adjacency and successor arrays, the precomputed
// next_lengths[p] = len(p, next[p]) for every point, and the precomputed
// old_segments_length[p] = len(p, adj[p][0]) + len(p, adj[p][1]) for every
// point that could serve as a pivot.
type SearchContext struct {
	DC                planar.DistanceCalculator
	Adjacents         [][2]planar.PointID
	Next              []planar.PointID
	NextLengths       []planar.Length
	OldSegmentsLength []planar.Length
}

// Search runs the pruned V-move search of spec.md §4.3 rooted at n against
// pivot i, returning the best move found (zero-value VMove if none
// improves).
func (n *Node) Search(ctx SearchContext, i planar.PointID) tour.VMove {
	var best tour.VMove
	n.search(ctx, i, ctx.OldSegmentsLength[i], &best)
	return best
}

func (n *Node) search(ctx SearchContext, i planar.PointID, oldSegmentsLength planar.Length, best *tour.VMove) {
	for _, p := range n.points {
		if p == i || ctx.Next[p] == i {
			continue
		}
		reduction := oldSegmentsLength + ctx.NextLengths[p]

		newLen := ctx.DC.Length(i, p)
		if newLen > reduction {
			continue
		}
		newLen += ctx.DC.Length(i, ctx.Next[p])
		if newLen > reduction {
			continue
		}
		newLen += ctx.DC.Length(ctx.Adjacents[i][0], ctx.Adjacents[i][1])
		if newLen < reduction {
			best.Apply(tour.VMove{I: i, J: p, Improvement: reduction - newLen})
		}
	}
	for _, child := range n.children {
		if child != nil {
			child.search(ctx, i, oldSegmentsLength, best)
		}
	}
}

// SearchPermanent is the permanent-segment variant used during
// perturbation climbs: candidates that would remove permanent are
// discarded, regardless of improvement.
func (n *Node) SearchPermanent(ctx SearchContext, i planar.PointID, permanent tour.Segment) tour.VMove {
	var best tour.VMove
	n.searchPermanent(ctx, i, ctx.OldSegmentsLength[i], permanent, &best)
	return best
}

func (n *Node) searchPermanent(ctx SearchContext, i planar.PointID, oldSegmentsLength planar.Length, permanent tour.Segment, best *tour.VMove) {
	for _, p := range n.points {
		if p == i || ctx.Next[p] == i {
			continue
		}
		removed := [3]tour.Segment{
			{Min: min2(i, ctx.Adjacents[i][0]), Max: max2(i, ctx.Adjacents[i][0])},
			{Min: min2(i, ctx.Adjacents[i][1]), Max: max2(i, ctx.Adjacents[i][1])},
			{Min: min2(p, ctx.Next[p]), Max: max2(p, ctx.Next[p])},
		}
		discard := false
		for _, s := range removed {
			if s.Equal(permanent) {
				discard = true
				break
			}
		}
		if discard {
			continue
		}

		reduction := oldSegmentsLength + ctx.NextLengths[p]

		newLen := ctx.DC.Length(i, p)
		if newLen > reduction {
			continue
		}
		newLen += ctx.DC.Length(i, ctx.Next[p])
		if newLen > reduction {
			continue
		}
		newLen += ctx.DC.Length(ctx.Adjacents[i][0], ctx.Adjacents[i][1])
		if newLen < reduction {
			best.Apply(tour.VMove{I: i, J: p, Improvement: reduction - newLen})
		}
	}
	for _, child := range n.children {
		if child != nil {
			child.searchPermanent(ctx, i, oldSegmentsLength, permanent, best)
		}
	}
}

// PerturbationPolicy selects which of the two perturbation-candidate
// acceptance rules of spec.md §4.4 a perturbation search uses.
type PerturbationPolicy int

const (
	// Strict accepts a candidate when the shortest newly-added edge is
	// shorter than the shortest removed edge.
	Strict PerturbationPolicy = iota
	// Lax accepts a candidate when the longest newly-added edge is shorter
	// than the longest removed edge. Neither rule implies the other.
	Lax
)

// SearchPerturbationStrict collects every candidate V-move rooted at n
// against pivot i that satisfies the strict acceptance rule: the minimum
// of the three new edge lengths must be less than the minimum of the
// three removed edge lengths.
func (n *Node) SearchPerturbationStrict(ctx SearchContext, i planar.PointID) []tour.VMove {
	var candidates []tour.VMove
	n.searchPerturbation(ctx, i, Strict, &candidates)
	return candidates
}

// SearchPerturbationLax collects every candidate V-move rooted at n
// against pivot i that satisfies the lax acceptance rule: the maximum of
// the three new edge lengths must be less than the maximum of the three
// removed edge lengths.
func (n *Node) SearchPerturbationLax(ctx SearchContext, i planar.PointID) []tour.VMove {
	var candidates []tour.VMove
	n.searchPerturbation(ctx, i, Lax, &candidates)
	return candidates
}

func (n *Node) searchPerturbation(ctx SearchContext, i planar.PointID, policy PerturbationPolicy, candidates *[]tour.VMove) {
	for _, p := range n.points {
		if p == i || ctx.Next[p] == i {
			continue
		}
		removedA := ctx.DC.Length(i, ctx.Adjacents[i][0])
		removedB := ctx.DC.Length(i, ctx.Adjacents[i][1])
		removedC := ctx.NextLengths[p]

		addedA := ctx.DC.Length(i, p)
		addedB := ctx.DC.Length(i, ctx.Next[p])
		addedC := ctx.DC.Length(ctx.Adjacents[i][0], ctx.Adjacents[i][1])

		var oldExtreme, newExtreme planar.Length
		if policy == Strict {
			oldExtreme = min3(removedA, removedB, removedC)
			newExtreme = min3(addedA, addedB, addedC)
		} else {
			oldExtreme = max3(removedA, removedB, removedC)
			newExtreme = max3(addedA, addedB, addedC)
		}

		if newExtreme < oldExtreme {
			*candidates = append(*candidates, tour.VMove{I: i, J: p, Improvement: oldExtreme - newExtreme})
		}
	}
	for _, child := range n.children {
		if child != nil {
			child.searchPerturbation(ctx, i, policy, candidates)
		}
	}
}

func min2(a, b planar.PointID) planar.PointID {
	if a < b {
		return a
	}
	return b
}

func max2(a, b planar.PointID) planar.PointID {
	if a > b {
		return a
	}
	return b
}

func min3(a, b, c planar.Length) planar.Length {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c planar.Length) planar.Length {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
