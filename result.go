package vopt

import "github.com/rlee32/vopt/planar"

// Result is the outcome of Optimize or OptimizeWithPerturbation: the
// final cyclic ordering, its total length, and the number of accepted
// hill-climb moves (for OptimizeWithPerturbation, summed over the initial
// climb and every perturbation restart climb).
type Result struct {
	Cycle      []planar.PointID
	Length     planar.Length
	Iterations int
}
