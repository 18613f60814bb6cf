package morton

import (
	"fmt"

	"github.com/rlee32/vopt/planar"
)

// Key is an interleaved bit key over a point's normalized (x, y)
// coordinate, built from MaxDepth-1 quadrant bit-pairs, most significant
// pair first (the root-adjacent quadrant).
type Key uint64

// Quadrant is a child index in [0, 4), assigned by the fixed "N" curve:
// quadrant 0 is (x=0,y=0), 1 is (x=0,y=1), 2 is (x=1,y=0), 3 is (x=1,y=1).
// This mapping is used everywhere a quadrant is turned into a grid
// coordinate; changing it would change which subtree a point lands in.
type Quadrant uint8

// QuadrantX returns the x half (0 or 1) of a quadrant under the "N" curve.
func QuadrantX(q Quadrant) int { return int(q >> 1) }

// QuadrantY returns the y half (0 or 1) of a quadrant under the "N" curve.
func QuadrantY(q Quadrant) int { return int(q & 1) }

// ComputeKey normalizes (x, y) against the domain and interleaves the
// scaled integer coordinates into a morton key. It is fatal (panics) for a
// coordinate outside the domain's bounding box, per spec: an out-of-domain
// point is an input error that must be caught before it reaches the tree.
func ComputeKey(d Domain, x, y float64) Key {
	xn := (x - d.XMin) / d.Xdim(0)
	yn := (y - d.YMin) / d.Ydim(0)
	if xn < 0.0 || xn > 1.0 {
		panic(fmt.Sprintf("morton.ComputeKey: out-of-bounds normalized x coordinate: %v", xn))
	}
	if yn < 0.0 || yn > 1.0 {
		panic(fmt.Sprintf("morton.ComputeKey: out-of-bounds normalized y coordinate: %v", yn))
	}
	return interleave(xn, yn, d.MaxDepth)
}

// ComputeKeys computes the morton key for every point in the set.
func ComputeKeys(d Domain, points planar.Points) []Key {
	keys := make([]Key, points.Len())
	for i := range keys {
		keys[i] = ComputeKey(d, points.X[i], points.Y[i])
	}
	return keys
}

func interleave(xNorm, yNorm float64, maxDepth int) Key {
	bits := maxDepth - 1
	scale := uint64(1) << uint(bits)
	cx := uint64(xNorm * float64(scale))
	cy := uint64(yNorm * float64(scale))
	if cx >= scale {
		cx = scale - 1
	}
	if cy >= scale {
		cy = scale - 1
	}

	var key Key
	for i := bits - 1; i >= 0; i-- {
		xb := (cx >> uint(i)) & 1
		yb := (cy >> uint(i)) & 1
		key = key<<2 | Key(xb)<<1 | Key(yb)
	}
	return key
}

// PointInsertionPath returns the sequence of MaxDepth-1 quadrants a point
// with the given key follows from the root down to its insertion leaf,
// most-significant quadrant first.
func PointInsertionPath(key Key, maxDepth int) []Quadrant {
	bits := maxDepth - 1
	path := make([]Quadrant, bits)
	for d := 0; d < bits; d++ {
		shift := uint((bits - 1 - d) * 2)
		path[d] = Quadrant((key >> shift) & 3)
	}
	return path
}

// SegmentInsertionPath returns the longest common prefix of the two
// endpoints' insertion paths: the deepest node that still encloses both.
// An empty path means "register at the root".
func SegmentInsertionPath(key1, key2 Key, maxDepth int) []Quadrant {
	p1 := PointInsertionPath(key1, maxDepth)
	p2 := PointInsertionPath(key2, maxDepth)
	prefix := make([]Quadrant, 0, len(p1))
	for i := range p1 {
		if p1[i] != p2[i] {
			break
		}
		prefix = append(prefix, p1[i])
	}
	return prefix
}
