// Command vopt is the CLI collaborator described in spec.md §6: it reads
// a point file and an optional tour file, runs the optimizer, and writes
// the resulting tour back out.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rlee32/vopt"
	"github.com/rlee32/vopt/fileio"
	"github.com/rlee32/vopt/planar"
)

var (
	maxTreeDepth    int
	verify          bool
	printIterations bool
	perturb         bool
	perturbPolicy   string
	logFile         string
)

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		// spec.md §6 preserves the source's documented (if unusual) exit
		// behavior: bad input is logged and the process still exits 0.
		fmt.Fprintln(os.Stderr, err)
		os.Exit(0)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vopt <point_file> [<tour_file>]",
		Short: "Local-search optimizer for the planar TSP V-move neighborhood",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(logFile)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck
			return run(logger.Sugar(), args)
		},
		SilenceUsage: true,
	}
	cmd.Flags().IntVar(&maxTreeDepth, "max-tree-depth", 0, "maximum quadtree depth (0 uses the library default)")
	cmd.Flags().BoolVar(&verify, "verify", false, "re-check the tour's cycle integrity after every accepted move")
	cmd.Flags().BoolVar(&printIterations, "print-iterations", false, "log the tour length after every accepted move")
	cmd.Flags().BoolVar(&perturb, "perturb", false, "run the perturbation stage after the initial hill-climb")
	cmd.Flags().StringVar(&perturbPolicy, "perturb-policy", "lax", "perturbation acceptance policy: strict or lax")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file (rotated on restart) instead of stderr")
	return cmd
}

func run(logger *zap.SugaredLogger, args []string) error {
	pointPath := args[0]

	points, err := fileio.ReadPointFile(pointPath)
	if err != nil {
		return err
	}

	var initial []planar.PointID
	if len(args) == 2 {
		initial, err = fileio.ReadTourFile(args[1], points.Len())
		if err != nil {
			return err
		}
	} else {
		initial = identityPermutation(points.Len())
	}

	cfg := vopt.Config{
		MaxTreeDepth:    maxTreeDepth,
		Verify:          verify,
		PrintIterations: printIterations,
		Logger:          logger,
	}

	var result vopt.Result
	if perturb {
		policy, err := parsePerturbPolicy(perturbPolicy)
		if err != nil {
			return err
		}
		result, err = vopt.OptimizeWithPerturbation(points, initial, policy, cfg)
		if err != nil {
			return err
		}
	} else {
		result, err = vopt.Optimize(points, initial, cfg)
		if err != nil {
			return err
		}
	}

	logger.Infow("optimization complete", "length", result.Length, "iterations", result.Iterations)

	if len(args) == 2 {
		if err := fileio.WriteTourFile(args[1], result.Cycle); err != nil {
			return err
		}
	} else {
		fmt.Println(result.Length)
	}
	return nil
}

func identityPermutation(n int) []planar.PointID {
	ordered := make([]planar.PointID, n)
	for i := range ordered {
		ordered[i] = i
	}
	return ordered
}

func parsePerturbPolicy(s string) (vopt.PerturbationPolicy, error) {
	switch s {
	case "strict":
		return vopt.Strict, nil
	case "lax":
		return vopt.Lax, nil
	default:
		return 0, fmt.Errorf("vopt: unknown perturb-policy %q (want strict or lax)", s)
	}
}
