package vopt

import (
	"github.com/rlee32/vopt/planar"
	"github.com/rlee32/vopt/quadtree"
	"github.com/rlee32/vopt/tour"
	"github.com/rlee32/vopt/vopterr"
)

// Optimizer holds all of the arrays the hill-climb and perturbation
// drivers share across iterations (spec.md §5): the distance calculator,
// the quadtree, the tour's two coupled representations, per-point
// incident-edge lengths, and the per-point leaf/search node caches.
// Everything is sized N and allocated once at construction.
type Optimizer struct {
	points planar.Points
	dc     planar.DistanceCalculator
	tree   *quadtree.Tree
	tour   tour.Tour
	cfg    Config

	segLen            [][2]planar.Length
	oldSegmentsLength []planar.Length
	nextLengths       []planar.Length

	leafNode   []*quadtree.Node
	searchNode []*quadtree.Node
}

func newOptimizer(points planar.Points, ordered []planar.PointID, cfg Config) *Optimizer {
	n := points.Len()
	o := &Optimizer{
		points:            points,
		dc:                planar.NewDistanceCalculator(points),
		tree:              quadtree.New(points, cfg.MaxTreeDepth),
		tour:              tour.New(ordered),
		cfg:               cfg,
		segLen:            make([][2]planar.Length, n),
		oldSegmentsLength: make([]planar.Length, n),
		nextLengths:       make([]planar.Length, n),
		leafNode:          make([]*quadtree.Node, n),
		searchNode:        make([]*quadtree.Node, n),
	}
	for p := 0; p < n; p++ {
		o.leafNode[p] = o.tree.LeafNode(p)
	}
	o.registerSegments()
	o.expandSearchNodes()
	return o
}

// registerSegments implements spec.md §4.6 step 2: the tree starts empty
// (a freshly built Optimizer's tree has points but no segments), so
// "reset" is satisfied by construction; this registers exactly one
// directed edge (p, next[p]) per point, which covers every undirected
// tour edge exactly once.
func (o *Optimizer) registerSegments() {
	for p := range o.tour.Next {
		next := o.tour.Next[p]
		o.segLen[p][0] = o.dc.Length(p, o.tour.Adjacents[p][0])
		o.segLen[p][1] = o.dc.Length(p, o.tour.Adjacents[p][1])
		o.oldSegmentsLength[p] = o.segLen[p][0] + o.segLen[p][1]
		o.nextLengths[p] = o.dc.Length(p, next)
		o.tree.AddSegment(p, next, o.nextLengths[p])
	}
}

// expandSearchNodes implements spec.md §4.6 step 3 ("safe and simple:
// re-expand all points"): every point's search node is recomputed from
// its cached leaf node using its current total incident length as the
// expand radius.
func (o *Optimizer) expandSearchNodes() {
	for p := range o.searchNode {
		radius := o.segLen[p][0] + o.segLen[p][1]
		o.searchNode[p] = o.leafNode[p].Expand(o.points.X[p], o.points.Y[p], radius)
	}
}

func (o *Optimizer) searchContext() quadtree.SearchContext {
	return quadtree.SearchContext{
		DC:                o.dc,
		Adjacents:         o.tour.Adjacents,
		Next:              o.tour.Next,
		NextLengths:       o.nextLengths,
		OldSegmentsLength: o.oldSegmentsLength,
	}
}

// updateIncidentLength replaces oldLength with newLength in p's
// two-slot incident-length set, per spec.md §4.6's idiom: vacate whichever
// slot holds oldLength, then fill whichever slot is now zero. Mirrors
// tour's breakAdjacency/createAdjacency pair.
func (o *Optimizer) updateIncidentLength(p planar.PointID, oldLength, newLength planar.Length) {
	vacateLengthSlot(&o.segLen[p], p, oldLength)
	fillLengthSlot(&o.segLen[p], p, newLength)
	o.oldSegmentsLength[p] = o.segLen[p][0] + o.segLen[p][1]
}

func vacateLengthSlot(slots *[2]planar.Length, p planar.PointID, oldLength planar.Length) {
	if slots[0] == oldLength {
		slots[0] = 0
		return
	}
	if slots[1] == oldLength {
		slots[1] = 0
		return
	}
	vopterr.Fatalf("vopt.updateIncidentLength", "no segLen slot for point %d holds length %d", p, oldLength)
}

func fillLengthSlot(slots *[2]planar.Length, p planar.PointID, newLength planar.Length) {
	if slots[0] == 0 {
		slots[0] = newLength
		return
	}
	if slots[1] == 0 {
		slots[1] = newLength
		return
	}
	vopterr.Fatalf("vopt.updateIncidentLength", "no empty segLen slot for point %d", p)
}

// verify is the cycle integrity check: it walks the cycle from point 0
// (panicking via vopterr if the walk does not return to 0 within N steps)
// and panics via vopterr if the walked length differs from the sum of
// every point's successor edge. The quadtree's segment bookkeeping is not
// checked. Only run when Config.Verify is set; it is O(N) per call.
func (o *Optimizer) verify() {
	walked := o.tour.Length(o.dc)
	if walked != o.currentLength() {
		vopterr.Fatalf("vopt.verify", "walked tour length %d does not match summed successor-edge length", walked)
	}
}

func (o *Optimizer) currentLength() planar.Length {
	var total planar.Length
	for p, next := range o.tour.Next {
		total += o.dc.Length(p, next)
	}
	return total
}
