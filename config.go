package vopt

import (
	"go.uber.org/zap"

	"github.com/rlee32/vopt/quadtree"
)

// PerturbationPolicy selects which perturbation-candidate acceptance rule
// OptimizeWithPerturbation uses (spec.md §4.4).
type PerturbationPolicy = quadtree.PerturbationPolicy

const (
	// Strict accepts a perturbation candidate only when its shortest new
	// edge is shorter than its shortest removed edge.
	Strict = quadtree.Strict
	// Lax accepts a perturbation candidate when its longest new edge is
	// shorter than its longest removed edge. Neither rule implies the
	// other.
	Lax = quadtree.Lax
)

// Config holds the runtime options spec.md §6 calls out as having been
// compile-time constants in the source. All three are plain fields so a
// single process can run multiple optimizations with different settings.
type Config struct {
	// MaxTreeDepth bounds how deep the quadtree may subdivide. Zero uses
	// morton.DefaultMaxDepth.
	MaxTreeDepth int

	// Verify runs a cycle integrity check after every accepted move; the
	// quadtree's segment bookkeeping is not re-checked. Expensive; intended
	// for tests and debugging, not production runs over large instances.
	Verify bool

	// PrintIterations logs the tour length after every accepted
	// hill-climb move, through Logger if set.
	PrintIterations bool

	// Logger receives PrintIterations output. A nil Logger disables it;
	// Verify failures are returned as errors, never logged.
	Logger *zap.SugaredLogger
}

func (cfg Config) logf(template string, args ...any) {
	if cfg.Logger != nil {
		cfg.Logger.Infof(template, args...)
	}
}
