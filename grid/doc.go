// Package grid defines the Snapshot value type: one complete state of an
// N×N Latin-square puzzle together with the solver bookkeeping that lets a
// backtracking search resume and retreat without re-deriving prior state.
//
// What:
//
//   - Snapshot wraps an N×N matrix of signed cell values plus a scan cursor
//     and a per-value candidate mask.
//   - Cell encoding: 0 = empty, positive = assigned (mutable), negative =
//     pre-fixed clue whose absolute value is the assigned number.
//   - Duplicate checks (row/column, by absolute magnitude) are the only
//     constraint primitives; there is no elimination or forward-checking.
//   - Two mutation paths with different contracts: Place (unvalidated search
//     placement, moves the cursor, resets the candidate mask) and Set
//     (validated interactive assignment, leaves solver bookkeeping alone).
//
// Why:
//
//   - Snapshots are the frames of the solver's search stack: cheap to deep
//     copy at puzzle scale (N ≤ 9 in the reference domain), trivially
//     independent, and safe to discard on backtrack.
//   - Keeping the candidate mask inside the value type (rather than ambient
//     state) makes repeated or concurrent solve attempts non-interfering.
//
// Cursor contract:
//
//	NextEmpty resumes its row-major scan from the cursor (the most recently
//	Placed cell) instead of restarting at the origin. This is a cache, valid
//	only because the search driver fills cells in monotonic row-major order
//	and never assigns a cell located before the cursor. After a backtrack the
//	driver must resume from the prior frame, whose cursor already holds the
//	correct earlier position — it must never reuse a popped frame's cursor.
//	Any driver that changes the placement order must stop relying on the
//	cursor and rescan from the origin.
//
// Complexity:
//
//   - DuplicateInRow / DuplicateInCol: O(N).
//   - NextEmpty: O(N²) worst case, amortised far less under the cursor.
//   - Clone / NewFromCells / Cells: O(N²).
//   - Place / Set / accessors: O(1) beyond the O(N) duplicate scans in Set.
//
// Errors:
//
//   - ErrBadSize: requested size below MinSize.
//   - ErrNonSquare: constructor input rows of differing length.
//   - ErrCellRange: constructor input cell outside [-N, N].
//   - ErrOutOfBounds, ErrFixedCell, ErrValueRange, ErrRowDuplicate,
//     ErrColDuplicate: rejected interactive Set.
package grid
