// Package solver completes Latin-square puzzles by explicit-stack
// backtracking over grid.Snapshot frames.
//
// What:
//
//   - Solve drives a three-outcome state machine: a run ends StatusSolved,
//     StatusUnsolvable or StatusAborted (StatusSearching is the in-flight
//     state between steps and never escapes).
//   - One step = one stack event. Either the lowest untried, non-conflicting
//     value lands in the first empty cell and the frame is pushed, or no
//     value fits and the top frame is popped with its last placement struck
//     on the frame below.
//   - Values are tried in ascending order, cells in row-major order, so
//     every run over the same puzzle takes the same path and yields the
//     same solution.
//
// Why:
//
//   - The explicit stack makes search depth a data-structure property (one
//     frame per filled cell) and backtracking a pointer handoff instead of
//     an unwind.
//   - Striking the undone value on the uncovered frame is the only learning
//     the search does: strikes accumulate on a stored frame while its
//     subtree is explored, which is exactly what prevents retrying a failed
//     branch. There is no other pruning; duplicate row/column checks are
//     the entire constraint model.
//
// Verdicts and counters:
//
//   - StatusSolved: Result.Solution holds the completed board (fixed clues
//     still carry their negative encoding).
//   - StatusUnsolvable: the seed frame itself ran out of candidates and the
//     final pop emptied the stack. Unsolvable is a verdict, not an error.
//   - StatusAborted: WithMaxSteps or the context cut the search short;
//     Solve also returns ErrSearchAborted so callers cannot mistake a
//     truncated run for a verdict.
//   - Steps counts completed stack events; Pushes and Pops split them. The
//     seed frame and the terminal pop that empties the stack are not
//     counted, so on a solved board Pushes-Pops equals the number of cells
//     the search filled.
//
// A puzzle whose pre-filled cells already conflict is reported
// StatusUnsolvable before the first step: the search never rewrites
// pre-filled cells, so no completion can exist.
//
// Complexity: worst case O(N^N) steps with O(N²) work per step for the
// frame copy; memory O(k·N²) for k empty cells.
//
// Errors:
//
//   - ErrNilSnapshot      if the initial snapshot is nil.
//   - ErrOptionViolation  if an invalid Option was supplied.
//   - ErrSearchAborted    if the budget or context stopped the search.
package solver
