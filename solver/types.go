package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/latinsquare/grid"
)

// Sentinel errors for solver execution.
var (
	// ErrNilSnapshot is returned if a nil initial snapshot is passed.
	ErrNilSnapshot = errors.New("solver: initial snapshot is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")

	// ErrSearchAborted is returned when the step budget or the context
	// stops the search before it reaches a verdict.
	ErrSearchAborted = errors.New("solver: search aborted")
)

// Status is the verdict of a solve run.
type Status uint8

const (
	// StatusSearching is the in-flight state between steps. Solve never
	// returns it.
	StatusSearching Status = iota

	// StatusSolved means the top frame held a completed board.
	StatusSolved

	// StatusUnsolvable means the final backtrack emptied the stack: no
	// completion of the pre-filled cells exists.
	StatusUnsolvable

	// StatusAborted means WithMaxSteps or the context cut the search short
	// of a verdict.
	StatusAborted
)

// String implements fmt.Stringer for log and trace output.
func (s Status) String() string {
	switch s {
	case StatusSearching:
		return "SEARCHING"
	case StatusSolved:
		return "SOLVED"
	case StatusUnsolvable:
		return "UNSOLVABLE"
	case StatusAborted:
		return "ABORTED"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// Option configures Solve behavior via functional arguments.
// If an Option is invalid (e.g. negative step budget), it is recorded
// internally and surfaced as ErrOptionViolation when Solve is invoked.
type Option func(*SolveOptions)

// SolveOptions holds parameters and callbacks to customize a solve run.
type SolveOptions struct {
	// Ctx allows cancellation and deadlines, checked once per step.
	Ctx context.Context

	// MaxSteps, if > 0, aborts the search once that many steps have run
	// without a verdict. A value of 0 explicitly disables the budget.
	MaxSteps int

	// OnPush is called after a frame is committed. It receives the frame
	// with ownership transferred (the stack keeps its own copy) and the
	// 1-based step number.
	OnPush func(frame *grid.Snapshot, step int)

	// OnPop is called after a frame is abandoned, with ownership of the
	// frame and the 1-based step number. The terminal pop that empties
	// the stack is not reported.
	OnPop func(frame *grid.Snapshot, step int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a SolveOptions with sane defaults:
//   - Context.Background()
//   - no step budget (MaxSteps == 0)
//   - no-op hooks (OnPush, OnPop)
//   - error channel clear.
func DefaultOptions() SolveOptions {
	return SolveOptions{
		Ctx:      context.Background(),
		MaxSteps: 0,
		OnPush:   func(*grid.Snapshot, int) {},
		OnPop:    func(*grid.Snapshot, int) {},
		err:      nil,
	}
}

// WithContext sets a custom context for cancellation and deadlines.
func WithContext(ctx context.Context) Option {
	return func(o *SolveOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps bounds the number of search steps.
//
//	n > 0: abort once n steps have run without a verdict
//	n == 0: explicit no budget
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *SolveOptions) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			// explicit "no budget"
			o.MaxSteps = 0
		default:
			o.MaxSteps = n
		}
	}
}

// WithOnPush registers a callback to run on every committed frame.
func WithOnPush(fn func(frame *grid.Snapshot, step int)) Option {
	return func(o *SolveOptions) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// WithOnPop registers a callback to run on every abandoned frame.
func WithOnPop(fn func(frame *grid.Snapshot, step int)) Option {
	return func(o *SolveOptions) {
		if fn != nil {
			o.OnPop = fn
		}
	}
}

// Result holds the outcome of a solve run:
//   - Status: the verdict (never StatusSearching).
//   - Solution: the completed board, fixed clues still negative; non-nil
//     only when Status is StatusSolved.
//   - Steps: completed search steps, each exactly one push or one counted
//     pop.
//   - Pushes, Pops: stack traffic of the search loop. The seed frame and
//     the terminal pop that empties the stack are not counted, so on a
//     solved board Pushes-Pops equals the number of cells the search
//     filled.
type Result struct {
	Status   Status
	Solution *grid.Snapshot
	Steps    int
	Pushes   int
	Pops     int
}
