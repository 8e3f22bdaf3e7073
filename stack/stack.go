package stack

import "github.com/katalvlaran/latinsquare/grid"

// Stack is a LIFO store of search frames. The zero value is ready to use,
// but New is the conventional constructor. Not safe for concurrent use; a
// Stack belongs to exactly one search.
type Stack struct {
	frames []*grid.Snapshot
}

// New returns an empty Stack.
func New() *Stack { return &Stack{} }

// Push stores a deep copy of s as the new top frame. s must be non-nil;
// the caller's snapshot is never aliased and stays free to mutate.
func (st *Stack) Push(s *grid.Snapshot) {
	st.frames = append(st.frames, s.Clone())
}

// Pop removes the top frame and transfers sole ownership of it to the
// caller: the stack drops its reference, so the returned snapshot aliases
// nothing the stack retains.
//
// Returns ErrEmptyStack when no frame is stored.
func (st *Stack) Pop() (*grid.Snapshot, error) {
	if len(st.frames) == 0 {
		return nil, ErrEmptyStack
	}
	last := len(st.frames) - 1
	top := st.frames[last]
	st.frames[last] = nil
	st.frames = st.frames[:last]

	return top, nil
}

// Peek returns the stack-owned top frame without removing it. The view is
// valid only until the next Push or Pop, and only the search driver may
// write through it (its candidate bookkeeping on backtrack).
//
// Returns ErrEmptyStack when no frame is stored.
func (st *Stack) Peek() (*grid.Snapshot, error) {
	if len(st.frames) == 0 {
		return nil, ErrEmptyStack
	}

	return st.frames[len(st.frames)-1], nil
}

// Len returns the number of stored frames.
func (st *Stack) Len() int { return len(st.frames) }

// Empty reports whether no frame is stored.
func (st *Stack) Empty() bool { return len(st.frames) == 0 }
