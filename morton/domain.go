// Package morton implements the domain bounding box and the morton-key
// machinery used to place points and segments in the quadtree: coordinate
// normalization, bit interleaving with the fixed "N" curve quadrant
// mapping, and the point/segment insertion paths derived from it.
//
// Adapted from orb's Bound type: Domain keeps the same bounding-box shape
// (Min/Max corners, Contains) but adds the per-depth cell dimension
// helpers (Xdim, Ydim) and a MaxDepth that the quadtree needs and that
// orb's generic polygon/ring geometry never did.
package morton

import "github.com/rlee32/vopt/planar"

// DefaultMaxDepth is used when callers do not override it. It gives a
// minimum cell edge length of 1/2^17th of the domain, comfortably finer
// than floating point coordinate noise for typical TSP instances.
const DefaultMaxDepth = 18

// Domain is the axis-aligned bounding box covering all points, plus the
// configured maximum tree depth used to size cells at each level.
type Domain struct {
	XMin, XMax, YMin, YMax float64
	MaxDepth               int
}

// NewDomain builds a Domain from a point set and a maximum tree depth. If
// maxDepth is zero, DefaultMaxDepth is used.
func NewDomain(points planar.Points, maxDepth int) Domain {
	if maxDepth == 0 {
		maxDepth = DefaultMaxDepth
	}
	xmin, xmax, ymin, ymax := points.Bound()
	return Domain{XMin: xmin, XMax: xmax, YMin: ymin, YMax: ymax, MaxDepth: maxDepth}
}

// Xdim returns the width of a cell at the given tree depth.
func (d Domain) Xdim(depth int) float64 {
	return (d.XMax - d.XMin) / float64(uint64(1)<<uint(depth))
}

// Ydim returns the height of a cell at the given tree depth.
func (d Domain) Ydim(depth int) float64 {
	return (d.YMax - d.YMin) / float64(uint64(1)<<uint(depth))
}

// Contains reports whether (x, y) falls within the domain's bounding box.
func (d Domain) Contains(x, y float64) bool {
	return x >= d.XMin && x <= d.XMax && y >= d.YMin && y <= d.YMax
}
