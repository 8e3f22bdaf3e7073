// Package stack provides the LIFO frame store of the backtracking search:
// a stack of grid.Snapshot values with strict ownership rules.
//
// What:
//
//   - Push stores a deep copy of the caller's snapshot; the caller keeps
//     using its own copy freely afterwards.
//   - Pop removes the top frame and transfers sole ownership to the caller;
//     the stack retains no reference to a popped frame.
//   - Peek exposes the stack-owned top frame in place. The view is valid
//     only until the next Push or Pop, and by convention has a single
//     writer: the search driver, which records exhausted branches on the
//     top frame through it.
//
// Why:
//
//   - Copy-in plus move-out keeps every frame independent, so restoring a
//     prior search state is a pointer handoff rather than an undo log.
//   - An explicit stack bounds memory by search depth (at most one frame
//     per empty cell) where recursion would grow the call stack instead.
//
// Complexity: Push is O(N²) for the snapshot copy; Pop, Peek, Len and
// Empty are O(1).
//
// Errors: Pop and Peek return ErrEmptyStack on an empty stack. During a
// well-formed search the driver checks depth before popping, so hitting
// the sentinel indicates a driver defect rather than an unsolvable puzzle.
package stack
