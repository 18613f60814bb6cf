// Package tour implements the cycle representation and in-place move
// application described in spec.md §4.5: adjacency pairs plus a successor
// array, kept in lockstep, with the V-move defined in VMove applied by
// constant-time adjacency edits followed by one walk to rebuild the
// successor array.
package tour

import (
	"github.com/rlee32/vopt/planar"
	"github.com/rlee32/vopt/vopterr"
)

// VMove is the move found by a V-move search: detach pivot I from both of
// its neighbors and splice it in after partner J, closing the gap I left
// behind. Improvement is the (non-negative) reduction in total tour
// length; zero means "no move".
type VMove struct {
	I, J        planar.PointID
	Improvement planar.Length
}

// Apply merges other into move, keeping whichever has the strictly
// greater improvement. Ties keep the receiver.
func (move *VMove) Apply(other VMove) {
	if other.Improvement > move.Improvement {
		*move = other
	}
}

// Segment is an unordered tour edge, identified by its endpoints stored as
// (Min, Max) plus its integer length. Two segments are the same iff both
// endpoint pairs match as sets.
type Segment struct {
	Min, Max planar.PointID
	Length   planar.Length
}

// NewSegment builds a Segment from two endpoints and a distance
// calculator, normalizing endpoint order.
func NewSegment(a, b planar.PointID, dc planar.DistanceCalculator) Segment {
	min, max := a, b
	if min > max {
		min, max = max, min
	}
	return Segment{Min: min, Max: max, Length: dc.Length(a, b)}
}

// Equal reports whether two segments connect the same pair of points,
// regardless of length (lengths of equal-endpoint segments always agree).
func (s Segment) Equal(other Segment) bool {
	return s.Min == other.Min && s.Max == other.Max
}

// Tour holds the two coupled representations of a Hamiltonian cycle over
// [0, N): Adjacents[p] gives the unordered neighbor pair of p, and Next[p]
// gives the unique directed successor used to walk the cycle.
type Tour struct {
	Adjacents [][2]planar.PointID
	Next      []planar.PointID
}

// ComputeAdjacents builds the adjacency-pair array from a cyclic ordering
// of all N points.
func ComputeAdjacents(ordered []planar.PointID) [][2]planar.PointID {
	n := len(ordered)
	adjacents := make([][2]planar.PointID, n)
	for i := range adjacents {
		adjacents[i] = [2]planar.PointID{planar.InvalidPoint, planar.InvalidPoint}
	}
	for k, p := range ordered {
		createAdjacency(adjacents, p, ordered[(k+1)%n])
	}
	return adjacents
}

// ComputeNext derives the successor array from an adjacency-pair array by
// walking the cycle starting at point 0.
func ComputeNext(adjacents [][2]planar.PointID) []planar.PointID {
	next := make([]planar.PointID, len(adjacents))
	updateNext(next, adjacents)
	return next
}

// ComputeOrderedPoints walks next starting at 0 and returns the resulting
// cyclic ordering.
func ComputeOrderedPoints(next []planar.PointID) []planar.PointID {
	ordered := make([]planar.PointID, 1, len(next))
	ordered[0] = 0
	for len(ordered) < len(next) {
		ordered = append(ordered, next[ordered[len(ordered)-1]])
	}
	return ordered
}

// New builds a Tour from a cyclic ordering of all N points.
func New(ordered []planar.PointID) Tour {
	adjacents := ComputeAdjacents(ordered)
	return Tour{Adjacents: adjacents, Next: ComputeNext(adjacents)}
}

// ApplyMove applies move to the tour: the three edges described in
// spec.md §4.3 are removed and the three replacements are added (constant
// time), then Next is recomputed by a single O(N) cycle walk.
//
// next[move.J] is read into a local before any adjacency is broken, so the
// broken (J, next[J]) edge and the created (I, next[J]) edge both use the
// successor J had before the move.
func (t *Tour) ApplyMove(move VMove) {
	i, j := move.I, move.J
	nextJ := t.Next[j] // must be captured before breaking adjacencies.
	old := t.Adjacents[i]

	breakAdjacency(t.Adjacents, i, t.Adjacents[i][0])
	breakAdjacency(t.Adjacents, i, t.Adjacents[i][1])
	breakAdjacency(t.Adjacents, j, nextJ)

	createAdjacency(t.Adjacents, i, j)
	createAdjacency(t.Adjacents, i, nextJ)
	createAdjacency(t.Adjacents, old[0], old[1])

	updateNext(t.Next, t.Adjacents)
}

// Length returns the total tour length by summing every point's edge to
// its successor.
func (t Tour) Length(dc planar.DistanceCalculator) planar.Length {
	var total planar.Length
	current := planar.PointID(0)
	remaining := len(t.Next)
	for {
		if remaining == 0 {
			vopterr.Fatalf("tour.Length", "summed more lengths than there are points")
		}
		next := t.Next[current]
		total += dc.Length(current, next)
		current = next
		remaining--
		if current == 0 {
			break
		}
	}
	return total
}

func fillAdjacent(adjacents [][2]planar.PointID, point, newAdjacent planar.PointID) {
	if adjacents[point][0] == planar.InvalidPoint {
		adjacents[point][0] = newAdjacent
		return
	}
	if adjacents[point][1] == planar.InvalidPoint {
		adjacents[point][1] = newAdjacent
		return
	}
	vopterr.Fatalf("tour.fillAdjacent", "no empty adjacency slot for point %d", point)
}

func createAdjacency(adjacents [][2]planar.PointID, p1, p2 planar.PointID) {
	fillAdjacent(adjacents, p1, p2)
	fillAdjacent(adjacents, p2, p1)
}

func vacateAdjacentSlot(adjacents [][2]planar.PointID, point, adjacent planar.PointID) {
	if adjacents[point][0] == adjacent {
		adjacents[point][0] = planar.InvalidPoint
		return
	}
	if adjacents[point][1] == adjacent {
		adjacents[point][1] = planar.InvalidPoint
		return
	}
	vopterr.Fatalf("tour.vacateAdjacentSlot", "no adjacency slot holds point %d for point %d", adjacent, point)
}

func breakAdjacency(adjacents [][2]planar.PointID, p1, p2 planar.PointID) {
	vacateAdjacentSlot(adjacents, p1, p2)
	vacateAdjacentSlot(adjacents, p2, p1)
}

func updateNext(next []planar.PointID, adjacents [][2]planar.PointID) {
	current := planar.PointID(0)
	next[current] = adjacents[current][0]
	for {
		prev := current
		current = next[current]
		a := adjacents[current]
		if a[0] == prev {
			next[current] = a[1]
		} else {
			next[current] = a[0]
		}
		if current == 0 {
			break
		}
	}
}
