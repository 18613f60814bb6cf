package morton

import (
	"testing"

	"github.com/rlee32/vopt/planar"
)

func TestQuadrantMapping(t *testing.T) {
	cases := []struct {
		q          Quadrant
		wantX, wantY int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{2, 1, 0},
		{3, 1, 1},
	}
	for _, c := range cases {
		if got := QuadrantX(c.q); got != c.wantX {
			t.Errorf("QuadrantX(%d) = %d, want %d", c.q, got, c.wantX)
		}
		if got := QuadrantY(c.q); got != c.wantY {
			t.Errorf("QuadrantY(%d) = %d, want %d", c.q, got, c.wantY)
		}
	}
}

func TestPointInsertionPathLength(t *testing.T) {
	d := Domain{XMin: 0, XMax: 10, YMin: 0, YMax: 10, MaxDepth: 8}
	key := ComputeKey(d, 3, 7)
	path := PointInsertionPath(key, d.MaxDepth)
	if len(path) != d.MaxDepth-1 {
		t.Fatalf("len(path) = %d, want %d", len(path), d.MaxDepth-1)
	}
}

func TestSegmentInsertionPathIsCommonPrefix(t *testing.T) {
	d := Domain{XMin: 0, XMax: 100, YMin: 0, YMax: 100, MaxDepth: 10}
	k1 := ComputeKey(d, 1, 1)   // near (0, 0) corner
	k2 := ComputeKey(d, 2, 2)   // also near (0, 0) corner, shares a long prefix
	k3 := ComputeKey(d, 99, 99) // near the opposite corner

	p1 := PointInsertionPath(k1, d.MaxDepth)
	p2 := PointInsertionPath(k2, d.MaxDepth)

	seg := SegmentInsertionPath(k1, k2, d.MaxDepth)
	if len(seg) == 0 {
		t.Fatalf("expected a nonempty shared prefix for two nearby points")
	}
	for i, q := range seg {
		if p1[i] != q || p2[i] != q {
			t.Fatalf("segment path element %d does not match both endpoint paths", i)
		}
	}

	segFar := SegmentInsertionPath(k1, k3, d.MaxDepth)
	if len(segFar) >= len(seg) {
		t.Fatalf("expected opposite-corner points to share a shorter (or empty) prefix")
	}
}

func TestComputeKeyRejectsOutOfBounds(t *testing.T) {
	d := Domain{XMin: 0, XMax: 10, YMin: 0, YMax: 10, MaxDepth: 8}
	defer func() {
		if recover() == nil {
			t.Fatal("expected ComputeKey to panic for an out-of-domain coordinate")
		}
	}()
	ComputeKey(d, -1, 5)
}

func TestComputeKeysMatchesPerPointComputation(t *testing.T) {
	pts := planar.Points{X: []float64{1, 5, 9}, Y: []float64{1, 5, 9}}
	d := NewDomain(pts, 8)
	keys := ComputeKeys(d, pts)
	for i := range keys {
		want := ComputeKey(d, pts.X[i], pts.Y[i])
		if keys[i] != want {
			t.Errorf("ComputeKeys[%d] = %v, want %v", i, keys[i], want)
		}
	}
}
