package vopt

import (
	"math"
	"testing"

	"github.com/rlee32/vopt/planar"
	"github.com/rlee32/vopt/tour"
)

func crossedSquare() (planar.Points, []planar.PointID) {
	pts := planar.Points{X: []float64{0, 10, 10, 0}, Y: []float64{0, 0, 10, 10}}
	// 0-2-1-3-0 crosses the square's diagonals instead of following its
	// perimeter.
	return pts, []planar.PointID{0, 2, 1, 3}
}

func sumLength(pts planar.Points, ordered []planar.PointID) planar.Length {
	dc := planar.NewDistanceCalculator(pts)
	var total planar.Length
	for i, p := range ordered {
		next := ordered[(i+1)%len(ordered)]
		total += dc.Length(p, next)
	}
	return total
}

func TestOptimizeRejectsTooFewPoints(t *testing.T) {
	pts := planar.Points{X: []float64{0, 1}, Y: []float64{0, 1}}
	_, err := Optimize(pts, []planar.PointID{0, 1}, Config{})
	if err == nil {
		t.Fatal("expected an error for fewer than 3 points")
	}
}

func TestOptimizeRejectsMalformedCycle(t *testing.T) {
	pts, _ := crossedSquare()
	_, err := Optimize(pts, []planar.PointID{0, 1, 1, 3}, Config{})
	if err == nil {
		t.Fatal("expected an error for a cycle that repeats a point")
	}
}

func TestOptimizeRejectsNonFiniteCoordinate(t *testing.T) {
	pts := planar.Points{X: []float64{0, 10, 10, 0}, Y: []float64{0, 0, 10, math.NaN()}}
	_, err := Optimize(pts, []planar.PointID{0, 1, 2, 3}, Config{})
	if err == nil {
		t.Fatal("expected an error for a NaN coordinate")
	}
}

func TestOptimizeNeverWorsensTheInput(t *testing.T) {
	pts, initial := crossedSquare()
	inputLength := sumLength(pts, initial)

	result, err := Optimize(pts, initial, Config{})
	if err != nil {
		t.Fatalf("Optimize returned an error: %v", err)
	}
	if result.Length > inputLength {
		t.Fatalf("Optimize returned length %d, worse than input length %d", result.Length, inputLength)
	}
	if got := sumLength(pts, result.Cycle); got != result.Length {
		t.Fatalf("reported length %d does not match independently summed length %d", result.Length, got)
	}
}

func TestOptimizeResultIsAPermutationOfTheInput(t *testing.T) {
	pts, initial := crossedSquare()
	result, err := Optimize(pts, initial, Config{})
	if err != nil {
		t.Fatalf("Optimize returned an error: %v", err)
	}
	seen := make([]bool, len(initial))
	for _, p := range result.Cycle {
		if seen[p] {
			t.Fatalf("point %d appears more than once in the result cycle", p)
		}
		seen[p] = true
	}
	for p, ok := range seen {
		if !ok {
			t.Fatalf("point %d missing from the result cycle", p)
		}
	}
}

func TestHillClimbRespectsPermanentSegment(t *testing.T) {
	pts, initial := crossedSquare()
	o := newOptimizer(pts, initial, Config{})

	// Pin one of the tour's current edges permanent and hill-climb.
	a, b := 0, o.tour.Adjacents[0][0]
	permanent := tour.NewSegment(a, b, o.dc)

	o.HillClimb(&permanent)

	if o.tour.Adjacents[a][0] != b && o.tour.Adjacents[a][1] != b {
		t.Fatalf("permanent segment (%d,%d) was removed by a hill-climb move", a, b)
	}
}

func TestOptimizeWithPerturbationIsNeverWorseThanPlain(t *testing.T) {
	pts, initial := crossedSquare()

	plain, err := Optimize(pts, initial, Config{})
	if err != nil {
		t.Fatalf("Optimize returned an error: %v", err)
	}
	perturbed, err := OptimizeWithPerturbation(pts, initial, Lax, Config{})
	if err != nil {
		t.Fatalf("OptimizeWithPerturbation returned an error: %v", err)
	}
	if perturbed.Length > plain.Length {
		t.Fatalf("perturbed length %d worse than plain length %d", perturbed.Length, plain.Length)
	}
}
