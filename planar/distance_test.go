package planar

import "testing"

func TestLengthRounding(t *testing.T) {
	pts := Points{X: []float64{0, 3}, Y: []float64{0, 4}}
	dc := NewDistanceCalculator(pts)
	if got := dc.Length(0, 1); got != 5 {
		t.Errorf("Length(0, 1) = %d, want 5", got)
	}
	if got := dc.Length(1, 0); got != 5 {
		t.Errorf("Length is not symmetric: got %d, want 5", got)
	}
}

func TestLengthRoundsHalfAwayFromZero(t *testing.T) {
	// sqrt(0.5^2 + 0^2) = 0.5 exactly, should round up to 1.
	pts := Points{X: []float64{0, 0.5}, Y: []float64{0, 0}}
	dc := NewDistanceCalculator(pts)
	if got := dc.Length(0, 1); got != 1 {
		t.Errorf("Length(0, 1) = %d, want 1", got)
	}
}

func TestBound(t *testing.T) {
	pts := Points{X: []float64{1, -2, 5}, Y: []float64{3, 7, -1}}
	xmin, xmax, ymin, ymax := pts.Bound()
	if xmin != -2 || xmax != 5 || ymin != -1 || ymax != 7 {
		t.Errorf("Bound() = (%v, %v, %v, %v), want (-2, 5, -1, 7)", xmin, xmax, ymin, ymax)
	}
}
