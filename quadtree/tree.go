package quadtree

import (
	"github.com/rlee32/vopt/morton"
	"github.com/rlee32/vopt/planar"
)

// Tree is the point quadtree over a fixed point set: a root Node plus the
// domain and per-point morton keys used to place points and segments.
type Tree struct {
	Root   *Node
	Domain morton.Domain
	Keys   []morton.Key
}

// New builds a tree over points, inserting every point id along its morton
// insertion path. maxDepth of zero uses morton.DefaultMaxDepth.
func New(points planar.Points, maxDepth int) *Tree {
	domain := morton.NewDomain(points, maxDepth)
	keys := morton.ComputeKeys(domain, points)
	root := newNode(nil, domain, 0, 0, 0)
	t := &Tree{Root: root, Domain: domain, Keys: keys}
	for id := range keys {
		t.InsertPoint(id)
	}
	return t
}

// InsertPoint walks id's morton insertion path from the root, creating any
// missing child cells along the way, and registers id at the terminal
// node.
func (t *Tree) InsertPoint(id planar.PointID) {
	path := morton.PointInsertionPath(t.Keys[id], t.Domain.MaxDepth)
	node := t.Root
	gx, gy := 0, 0
	for depth, q := range path {
		gx = gx*2 + morton.QuadrantX(q)
		gy = gy*2 + morton.QuadrantY(q)
		node.CreateChild(q, t.Domain, gx, gy, depth+1)
		node = node.Child(q)
	}
	node.Insert(id)
}

// LeafNode returns the node at which point id terminates its insertion
// path (the same node InsertPoint placed it at).
func (t *Tree) LeafNode(id planar.PointID) *Node {
	path := morton.PointInsertionPath(t.Keys[id], t.Domain.MaxDepth)
	node := t.Root
	for _, q := range path {
		node = node.Child(q)
	}
	return node
}

// SegmentNode returns the node at which a segment between a and b is
// registered: the deepest node whose cell contains both endpoints, found
// via the longest common prefix of their insertion paths.
func (t *Tree) SegmentNode(a, b planar.PointID) *Node {
	path := morton.SegmentInsertionPath(t.Keys[a], t.Keys[b], t.Domain.MaxDepth)
	node := t.Root
	for _, q := range path {
		node = node.Child(q)
	}
	return node
}

// AddSegment registers the segment between a and b (with the given
// length) at its segment node, updating MaxSegmentLength on every node
// from the root down to that node.
func (t *Tree) AddSegment(a, b planar.PointID, length planar.Length) {
	path := morton.SegmentInsertionPath(t.Keys[a], t.Keys[b], t.Domain.MaxDepth)
	t.Root.AddSegment(path, length)
}

// RemoveSegment unregisters the segment between a and b (with the given
// length) from its segment node, recomputing MaxSegmentLength where
// needed on the path back to the root.
func (t *Tree) RemoveSegment(a, b planar.PointID, length planar.Length) {
	path := morton.SegmentInsertionPath(t.Keys[a], t.Keys[b], t.Domain.MaxDepth)
	t.Root.RemoveSegment(path, length)
}
