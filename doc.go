// Package latinsquare completes N×N Latin-square puzzles — grids where
// every row and every column must hold each value 1..N exactly once —
// and lets you play them by hand.
//
// 🚀 What is latinsquare?
//
//	A small, deterministic puzzle toolkit built from four layers:
//		• grid     — the Snapshot value type: cells, clue encoding,
//		             duplicate checks, cursor and candidate bookkeeping
//		• stack    — the search stack of independently owned Snapshots
//		• solver   — explicit-stack backtracking with step counters,
//		             budgets and per-event hooks
//		• gridfile — the plain-text puzzle format (size header + N×N
//		             signed cells; negative = immutable clue)
//
// On top of those, game/ renders an interactive terminal board and
// cmd/latinsquare ships the `solve` and `play` commands.
//
// ✨ Why this shape?
//
//   - Deterministic by construction – ascending value order and
//     row-major cell order make every run reproducible
//   - Ownership you can reason about – every stack frame is a deep
//     copy; no snapshot is ever shared between frames
//   - Observable – OnPush/OnPop hooks stream the whole search without
//     a logger in the hot loop
//   - Bounded – an optional step budget or context deadline turns a
//     pathological search into a distinct ABORTED verdict
//
// Quick ASCII example, one clue and its forced completion:
//
//	+-----+-----+        +-----+-----+
//	| (1) |  0  |        | (1) |  2  |
//	+-----+-----+   ⇒    +-----+-----+
//	|  0  |  0  |        |  2  |  1  |
//	+-----+-----+        +-----+-----+
//
// Start with solver.Solve for the search, gridfile.Load for files, and
// cmd/latinsquare for the command line.
package latinsquare
