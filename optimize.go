// Package vopt is a local-search optimizer for the planar Traveling
// Salesman Problem: given a set of points and an initial Hamiltonian
// cycle, it iteratively applies the V-move described in the quadtree and
// tour subpackages until no improving move remains, with an optional
// perturbation stage to escape local minima.
package vopt

import (
	"math"

	"github.com/pkg/errors"

	"github.com/rlee32/vopt/planar"
	"github.com/rlee32/vopt/vopterr"
)

// Optimize hill-climbs initialCycle to a local optimum under the V-move
// neighborhood and returns the resulting cycle and its length.
func Optimize(points planar.Points, initialCycle []planar.PointID, cfg Config) (result Result, err error) {
	if err := validateInput(points, initialCycle); err != nil {
		return Result{}, err
	}
	defer vopterr.Recover(&err)

	o := newOptimizer(points, initialCycle, cfg)
	iterations := o.HillClimb(nil)
	return Result{Cycle: o.orderedPoints(), Length: o.length(), Iterations: iterations}, nil
}

// OptimizeWithPerturbation hill-climbs initialCycle to a local optimum,
// then runs one round of spec.md §4.7's permanent-segment perturbation
// restarts under the given policy, returning whichever of the two is
// shorter.
func OptimizeWithPerturbation(points planar.Points, initialCycle []planar.PointID, policy PerturbationPolicy, cfg Config) (result Result, err error) {
	if err := validateInput(points, initialCycle); err != nil {
		return Result{}, err
	}
	defer vopterr.Recover(&err)

	o := newOptimizer(points, initialCycle, cfg)
	iterations := o.HillClimb(nil)

	perturbedOrdered, perturbedLength, perturbedIterations := perturbedRestart(points, o, policy, cfg)
	iterations += perturbedIterations

	if perturbedLength < o.length() {
		return Result{Cycle: perturbedOrdered, Length: perturbedLength, Iterations: iterations}, nil
	}
	return Result{Cycle: o.orderedPoints(), Length: o.length(), Iterations: iterations}, nil
}

// validateInput rejects what spec.md §7 calls input errors: fewer than
// three points, non-finite coordinates, or an initial cycle that is not a
// permutation of every point exactly once.
func validateInput(points planar.Points, initialCycle []planar.PointID) error {
	n := points.Len()
	if n < 3 {
		return errors.Errorf("vopt: need at least 3 points, got %d", n)
	}
	if len(points.Y) != n {
		return errors.Errorf("vopt: mismatched coordinate slice lengths: %d x, %d y", n, len(points.Y))
	}
	for i := 0; i < n; i++ {
		if math.IsNaN(points.X[i]) || math.IsInf(points.X[i], 0) {
			return errors.Errorf("vopt: non-finite x coordinate at point %d", i)
		}
		if math.IsNaN(points.Y[i]) || math.IsInf(points.Y[i], 0) {
			return errors.Errorf("vopt: non-finite y coordinate at point %d", i)
		}
	}
	if len(initialCycle) != n {
		return errors.Errorf("vopt: initial cycle has %d entries, want %d", len(initialCycle), n)
	}
	seen := make([]bool, n)
	for _, p := range initialCycle {
		if p < 0 || p >= n {
			return errors.Errorf("vopt: initial cycle contains out-of-range point id %d", p)
		}
		if seen[p] {
			return errors.Errorf("vopt: initial cycle visits point %d more than once", p)
		}
		seen[p] = true
	}
	return nil
}
