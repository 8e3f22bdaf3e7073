// Package gridfile loads and saves Latin-square puzzles in their plain
// text wire format: a size header N followed by N² whitespace-separated
// cell values in row-major order, each in [-N, N] (0 empty, positive
// assigned, negative fixed clue).
//
// The format is whitespace-agnostic on input; Save emits the canonical
// layout of one header line plus one line per row. OutputPath derives the
// conventional companion file for saved results: "out-" prepended to the
// base name, kept beside the input.
//
// Errors:
//
//   - ErrBadHeader   missing, non-integer or non-positive size.
//   - ErrSizeLimit   size above MaxSize.
//   - ErrCellRange   cell value outside [-N, N].
//   - ErrTruncated   cell value missing or not an integer.
//   - ErrExtraValues trailing tokens after the N² cells.
package gridfile
