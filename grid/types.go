package grid

import "errors"

const (
	// Empty marks an unassigned cell.
	Empty = 0

	// MinSize is the smallest admissible puzzle side length.
	MinSize = 1
)

var (
	// ErrBadSize is returned by New and NewFromCells when the side length
	// is below MinSize.
	ErrBadSize = errors.New("grid: size must be at least 1")

	// ErrNonSquare is returned by NewFromCells when the cell matrix is not
	// N rows of N values.
	ErrNonSquare = errors.New("grid: cell matrix must be square")

	// ErrCellRange is returned by NewFromCells when a cell value falls
	// outside [-N, N].
	ErrCellRange = errors.New("grid: cell value out of range")

	// ErrOutOfBounds is returned by Set when the target coordinates lie
	// outside the grid.
	ErrOutOfBounds = errors.New("grid: cell coordinates out of bounds")

	// ErrFixedCell is returned by Set when the target cell is a pre-fixed
	// clue.
	ErrFixedCell = errors.New("grid: cell is a fixed clue")

	// ErrValueRange is returned by Set when the value is negative or
	// exceeds the side length.
	ErrValueRange = errors.New("grid: value out of range")

	// ErrRowDuplicate is returned by Set when the value already occurs in
	// the target row.
	ErrRowDuplicate = errors.New("grid: value already present in row")

	// ErrColDuplicate is returned by Set when the value already occurs in
	// the target column.
	ErrColDuplicate = errors.New("grid: value already present in column")
)
