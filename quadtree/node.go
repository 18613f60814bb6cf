// Package quadtree implements the point quadtree of spec.md §4.2: a tree
// indexing point ids plus the tour segments currently incident to each
// subregion, tracking per-subtree maximum segment length so the V-move
// search can prune regions that cannot contain an improving partner.
//
// Adapted from orb's quadtree package: the recursive rectangular-partition
// node shape (children indexed by quadrant, cell bounds carried per node)
// is the same, but nodes here are placed along a fixed morton-key path
// rather than by repeated bisection at insert time, and each node also
// owns live segment state (segment lengths, MaxSegmentLength) that orb's
// read-only spatial index has no equivalent of.
package quadtree

import (
	"github.com/rlee32/vopt/morton"
	"github.com/rlee32/vopt/planar"
	"github.com/rlee32/vopt/vopterr"
)

// Node is one cell of the quadtree: up to four children indexed by
// morton quadrant, the point ids whose insertion path terminates exactly
// here, the segment lengths currently registered here, and the maximum
// segment length over this node and all of its descendants.
type Node struct {
	parent   *Node
	children [4]*Node

	points           []planar.PointID
	segmentLengths   []planar.Length
	maxSegmentLength planar.Length

	xmin, xmax, ymin, ymax float64
}

func newNode(parent *Node, domain morton.Domain, gx, gy int, depth int) *Node {
	xdim := domain.Xdim(depth)
	ydim := domain.Ydim(depth)
	return &Node{
		parent: parent,
		xmin:   domain.XMin + float64(gx)*xdim,
		xmax:   domain.XMin + float64(gx+1)*xdim,
		ymin:   domain.YMin + float64(gy)*ydim,
		ymax:   domain.YMin + float64(gy+1)*ydim,
	}
}

// Parent returns this node's parent, or nil at the root.
func (n *Node) Parent() *Node { return n.parent }

// Child returns the child at the given quadrant, or nil if absent.
func (n *Node) Child(q morton.Quadrant) *Node { return n.children[q] }

// Points returns the point ids whose insertion path terminates at this
// node (not at a descendant).
func (n *Node) Points() []planar.PointID { return n.points }

// MaxSegmentLength returns the maximum segment length registered at this
// node or any of its descendants.
func (n *Node) MaxSegmentLength() planar.Length { return n.maxSegmentLength }

// Bounds returns this node's cell bounding box.
func (n *Node) Bounds() (xmin, xmax, ymin, ymax float64) {
	return n.xmin, n.xmax, n.ymin, n.ymax
}

// Insert appends a point id to this node's point list. Called only at the
// node where a point's insertion path terminates.
func (n *Node) Insert(id planar.PointID) {
	n.points = append(n.points, id)
}

// CreateChild allocates the child cell at the given quadrant if absent.
// Idempotent: calling it again for an already-created quadrant is a
// no-op.
func (n *Node) CreateChild(q morton.Quadrant, domain morton.Domain, gx, gy int, depth int) {
	if n.children[q] != nil {
		return
	}
	n.children[q] = newNode(n, domain, gx, gy, depth)
}

// AddSegment walks the quadrant path from this node, appending length to
// the terminal node's segment list and updating MaxSegmentLength at every
// node visited along the way. Fatal if a required child does not exist.
func (n *Node) AddSegment(path []morton.Quadrant, length planar.Length) {
	if len(path) == 0 {
		n.segmentLengths = append(n.segmentLengths, length)
	} else {
		child := n.children[path[0]]
		if child == nil {
			vopterr.Fatalf("quadtree.AddSegment", "child does not exist for segment pathway")
		}
		child.AddSegment(path[1:], length)
	}
	if length > n.maxSegmentLength {
		n.maxSegmentLength = length
	}
}

// RemoveSegment walks the quadrant path from this node, removing exactly
// one occurrence of length from the terminal node's segment list (fatal
// if absent), then recomputes MaxSegmentLength on the way back up, but
// only at nodes where the removed length equalled the current maximum.
func (n *Node) RemoveSegment(path []morton.Quadrant, length planar.Length) {
	if len(path) == 0 {
		idx := -1
		for i, l := range n.segmentLengths {
			if l == length {
				idx = i
				break
			}
		}
		if idx == -1 {
			vopterr.Fatalf("quadtree.RemoveSegment", "tried to erase a length that does not exist")
		}
		last := len(n.segmentLengths) - 1
		n.segmentLengths[idx] = n.segmentLengths[last]
		n.segmentLengths = n.segmentLengths[:last]
	} else {
		child := n.children[path[0]]
		if child == nil {
			vopterr.Fatalf("quadtree.RemoveSegment", "child does not exist for segment pathway")
		}
		child.RemoveSegment(path[1:], length)
	}

	if length > n.maxSegmentLength {
		vopterr.Fatalf("quadtree.RemoveSegment", "attempted to remove a segment length longer than the maximum")
	}
	if length == n.maxSegmentLength {
		n.recomputeMaxSegmentLength()
	}
}

func (n *Node) recomputeMaxSegmentLength() {
	var max planar.Length
	for _, l := range n.segmentLengths {
		if l > max {
			max = l
		}
	}
	for _, c := range n.children {
		if c != nil && c.maxSegmentLength > max {
			max = c.maxSegmentLength
		}
	}
	n.maxSegmentLength = max
}

// Expand walks from this node toward the root until the circle of the
// given radius centered at (x, y) is entirely contained in the current
// cell's bounding box, or the root is reached. At every node visited,
// including this one, the effective radius tested is
// min_radius = radius + that node's MaxSegmentLength, and that inflated
// radius is what carries up to the parent on the next step.
func (n *Node) Expand(x, y float64, radius planar.Length) *Node {
	effective := radius + n.maxSegmentLength
	if n.containsMargin(x, y, effective) {
		return n
	}
	if n.parent == nil {
		return n
	}
	return n.parent.Expand(x, y, effective)
}

// containsMargin reports whether the disk of the given radius centered at
// (x, y) is entirely contained in this node's cell.
func (n *Node) containsMargin(x, y float64, radius planar.Length) bool {
	marginX := minFloat(x-n.xmin, n.xmax-x)
	marginY := minFloat(y-n.ymin, n.ymax-y)
	marginSq := marginX*marginX + marginY*marginY
	r := float64(radius)
	return marginSq >= r*r
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
