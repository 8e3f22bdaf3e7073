package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/latinsquare/grid"
	"github.com/katalvlaran/latinsquare/gridfile"
	"github.com/katalvlaran/latinsquare/solver"
)

var (
	solveTrace    bool          // --trace: print every pushed and popped frame
	solveQuiet    bool          // --quiet: suppress the board, keep the verdict in the exit code
	solveMaxSteps int           // --max-steps: abort after this many search steps
	solveTimeout  time.Duration // --timeout: abort after this wall-clock duration
)

var solveCmd = &cobra.Command{
	Use:   "solve <file>",
	Short: "Complete a puzzle file by backtracking search",
	Long: `Reads the puzzle from <file>, searches for a completion where no
value repeats in any row or column, and prints the solved board.

The search is deterministic: values are tried in ascending order,
cells in row-major order, so the same file always yields the same
board and the same step counts.`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&solveTrace, "trace", false,
		"print every pushed and popped frame")
	solveCmd.Flags().BoolVarP(&solveQuiet, "quiet", "q", false,
		"suppress board output; the exit status carries the verdict")
	solveCmd.Flags().IntVar(&solveMaxSteps, "max-steps", 0,
		"abort after this many search steps (0 = unlimited)")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 0,
		"abort after this duration (0 = unlimited)")
	rootCmd.AddCommand(solveCmd)
}

// runSolve maps the file argument to the solver and the verdict to the
// process exit status.
func runSolve(cmd *cobra.Command, args []string) error {
	path := args[0]

	puzzle, err := gridfile.Load(path)
	if err != nil {
		return &exitError{code: exitInputError, msg: err.Error()}
	}
	slog.Debug("puzzle loaded", "path", path, "size", puzzle.Size())

	opts := []solver.Option{solver.WithMaxSteps(solveMaxSteps)}
	if solveTimeout > 0 {
		ctx, cancel := context.WithTimeout(cmd.Context(), solveTimeout)
		defer cancel()
		opts = append(opts, solver.WithContext(ctx))
	}
	if solveTrace {
		opts = append(opts,
			solver.WithOnPush(func(frame *grid.Snapshot, step int) {
				fmt.Printf("PUSH: STEP %d\n%s", step, frame)
			}),
			solver.WithOnPop(func(frame *grid.Snapshot, step int) {
				fmt.Printf("POP: STEP %d\n%s", step, frame)
			}),
		)
	}

	res, err := solver.Solve(puzzle, opts...)
	if res != nil {
		slog.Debug("search finished",
			"status", res.Status, "steps", res.Steps,
			"pushes", res.Pushes, "pops", res.Pops)
	}
	if err != nil {
		if res != nil && res.Status == solver.StatusAborted {
			return &exitError{code: exitAborted, msg: err.Error()}
		}

		return &exitError{code: exitInputError, msg: err.Error()}
	}

	switch res.Status {
	case solver.StatusSolved:
		if !solveQuiet {
			fmt.Printf("The Latin Square was solved in %d steps (%d pushed, %d popped):\n%s",
				res.Steps, res.Pushes, res.Pops, res.Solution)
		}

		return nil
	default:
		if !solveQuiet {
			fmt.Printf("The Latin Square is unsolvable: gave up after %d steps (%d pushed, %d popped).\n",
				res.Steps, res.Pushes, res.Pops)
		}

		return &exitError{code: exitUnsolvable}
	}
}
