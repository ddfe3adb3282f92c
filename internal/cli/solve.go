package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tourbound/tourbound/tsp"
)

// errNoFeasibleTour is returned when the instance admits no closed tour.
var errNoFeasibleTour = errors.New("no feasible tour exists")

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	start     int           // start city override; -1 keeps the instance value
	timeLimit time.Duration // soft search budget; 0 disables
	popOnly   bool          // defer all pruning to pop time
}

// newSolveCmd creates the solve command. The single argument is a TOML
// instance file (see Instance for the format).
func newSolveCmd() *cobra.Command {
	opts := solveOpts{start: -1}

	cmd := &cobra.Command{
		Use:   "solve <instance.toml>",
		Short: "Compute the optimal closed tour of an instance file",
		Long: `Solve computes the exact minimum-cost closed tour of a TOML instance.

Negative cost entries in the file mean "no direct edge".

Examples:
  tourbound solve demo.toml
  tourbound solve demo.toml --start 2
  tourbound solve big.toml --time-limit 30s`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runSolve(c.Context(), c.OutOrStdout(), &opts, args[0])
		},
	}

	cmd.Flags().IntVar(&opts.start, "start", opts.start, "start city (overrides the instance value)")
	cmd.Flags().DurationVar(&opts.timeLimit, "time-limit", 0, "soft search budget (0 disables)")
	cmd.Flags().BoolVar(&opts.popOnly, "pop-only", false, "prune only when nodes are popped")

	return cmd
}

// runSolve loads the instance, runs the solver, and writes the tour to w.
func runSolve(ctx context.Context, w io.Writer, opts *solveOpts, path string) error {
	logger := loggerFromContext(ctx)

	inst, err := LoadInstance(path)
	if err != nil {
		return err
	}
	dist, err := inst.Matrix()
	if err != nil {
		return fmt.Errorf("cli: %s: %w", path, err)
	}
	logger.Debugf("loaded %q: %d cities", inst.Name, dist.Rows())

	solveOpt := tsp.DefaultOptions()
	solveOpt.StartVertex = inst.Start
	if opts.start >= 0 {
		solveOpt.StartVertex = opts.start
	}
	solveOpt.TimeLimit = opts.timeLimit
	if opts.popOnly {
		solveOpt.Prune = tsp.PruneOnPopOnly
	}

	p := newProgress(logger)
	res, err := tsp.Solve(dist, solveOpt)
	if err != nil {
		return fmt.Errorf("cli: solve %s: %w", path, err)
	}
	p.done(fmt.Sprintf("explored %d nodes", res.NodesExplored))

	if !res.Feasible {
		return fmt.Errorf("cli: %s: %w", path, errNoFeasibleTour)
	}

	fmt.Fprintf(w, "instance: %s (%d cities)\n", inst.Name, dist.Rows())
	fmt.Fprintf(w, "tour: %s\n", formatTour(res.Tour))
	fmt.Fprintf(w, "cost: %g\n", res.Cost)

	return nil
}

// formatTour renders a tour as "0 -> 4 -> 3 -> 0".
func formatTour(tour []int) string {
	var b strings.Builder
	for i, v := range tour {
		if i > 0 {
			b.WriteString(" -> ")
		}
		fmt.Fprintf(&b, "%d", v)
	}

	return b.String()
}
