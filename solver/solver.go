package solver

import (
	"fmt"

	"github.com/katalvlaran/latinsquare/grid"
	"github.com/katalvlaran/latinsquare/stack"
)

// search encapsulates mutable solve state.
type search struct {
	st   *stack.Stack
	opts SolveOptions
	size int
	res  *Result
}

// Solve runs the backtracking search from initial, applying any number of
// functional Options, and returns the verdict with its step counters.
//
// The caller's snapshot is read once and never mutated: the search seeds
// its stack with a private frame rebuilt from the cell values alone, so
// stale cursor or candidate state on the input cannot skew the scan.
//
// Returns ErrNilSnapshot for nil input, ErrOptionViolation for bad options,
// and ErrSearchAborted alongside a Result with StatusAborted when the step
// budget or context stops the search. An unsolvable puzzle is a verdict
// (StatusUnsolvable), not an error.
func Solve(initial *grid.Snapshot, opts ...Option) (*Result, error) {
	if initial == nil {
		return nil, ErrNilSnapshot
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	frame, err := grid.NewFromCells(initial.Cells())
	if err != nil {
		return nil, err
	}

	res := &Result{Status: StatusSearching}

	// Pre-filled cells never change during the search, so a conflict among
	// them rules out every completion before the first step.
	if conflicted(frame) {
		res.Status = StatusUnsolvable
		return res, nil
	}

	s := &search{
		st:   stack.New(),
		opts: o,
		size: frame.Size(),
		res:  res,
	}
	// Seed frame; not counted in Pushes.
	s.st.Push(frame)

	return res, s.loop()
}

// loop advances the search one step at a time until a verdict or an abort.
func (s *search) loop() error {
	for {
		top, err := s.st.Peek()
		if err != nil {
			return fmt.Errorf("solver: search stack corrupted: %w", err)
		}
		work := top.Clone()

		row, col, ok := work.NextEmpty()
		if !ok {
			// No empty cell left: the working copy is the completed board.
			s.res.Status = StatusSolved
			s.res.Solution = work

			return nil
		}

		// Still searching; spend budget before the next step.
		if err = s.aborted(); err != nil {
			return err
		}

		if s.place(work, row, col) {
			continue
		}
		if done, err := s.backtrack(); done || err != nil {
			return err
		}
	}
}

// place tries values in ascending order at (row, col), skipping struck
// candidates and row/column conflicts. The first fit is committed: the
// frame is pushed, counted and reported. Reports false when no value fits.
func (s *search) place(work *grid.Snapshot, row, col int) bool {
	for v := 1; v <= s.size; v++ {
		if !work.Untried(v) {
			continue
		}
		if work.DuplicateInRow(row, v) || work.DuplicateInCol(col, v) {
			continue
		}
		work.Place(row, col, v)
		s.st.Push(work)
		s.res.Steps++
		s.res.Pushes++
		s.opts.OnPush(work, s.res.Steps)

		return true
	}

	return false
}

// backtrack pops the exhausted frame and strikes its last placement on the
// uncovered top, so the sibling scan resumes past it. Popping the seed
// frame empties the stack: the puzzle is unsolvable and done is true.
func (s *search) backtrack() (done bool, err error) {
	popped, err := s.st.Pop()
	if err != nil {
		return true, fmt.Errorf("solver: search stack corrupted: %w", err)
	}
	if s.st.Empty() {
		s.res.Status = StatusUnsolvable

		return true, nil
	}

	top, err := s.st.Peek()
	if err != nil {
		return true, fmt.Errorf("solver: search stack corrupted: %w", err)
	}
	r, c := popped.Cursor()
	top.Strike(popped.Value(r, c))

	s.res.Steps++
	s.res.Pops++
	s.opts.OnPop(popped, s.res.Steps)

	return false, nil
}

// aborted enforces the context and the step budget; a non-nil return flips
// the result to StatusAborted.
func (s *search) aborted() error {
	select {
	case <-s.opts.Ctx.Done():
		s.res.Status = StatusAborted

		return fmt.Errorf("%w: %v", ErrSearchAborted, s.opts.Ctx.Err())
	default:
	}
	if s.opts.MaxSteps > 0 && s.res.Steps >= s.opts.MaxSteps {
		s.res.Status = StatusAborted

		return fmt.Errorf("%w: step budget %d exhausted", ErrSearchAborted, s.opts.MaxSteps)
	}

	return nil
}

// conflicted reports whether two pre-filled cells collide in any row or
// column, comparing by absolute magnitude.
func conflicted(s *grid.Snapshot) bool {
	n := s.Size()
	for i := 0; i < n; i++ {
		rowSeen := make([]bool, n+1)
		colSeen := make([]bool, n+1)
		for j := 0; j < n; j++ {
			if v := abs(s.Value(i, j)); v != grid.Empty {
				if rowSeen[v] {
					return true
				}
				rowSeen[v] = true
			}
			if v := abs(s.Value(j, i)); v != grid.Empty {
				if colSeen[v] {
					return true
				}
				colSeen[v] = true
			}
		}
	}

	return false
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
