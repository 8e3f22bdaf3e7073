package gridfile

import "errors"

// MaxSize is the largest side length the file layer accepts.
const MaxSize = 9

var (
	// ErrBadHeader is returned when the size header is missing, not an
	// integer, or not positive.
	ErrBadHeader = errors.New("gridfile: missing or malformed size header")

	// ErrSizeLimit is returned when the declared size exceeds MaxSize.
	ErrSizeLimit = errors.New("gridfile: size exceeds the supported maximum")

	// ErrCellRange is returned when a cell value falls outside [-N, N].
	ErrCellRange = errors.New("gridfile: cell value out of range")

	// ErrTruncated is returned when a cell value is missing or not an
	// integer.
	ErrTruncated = errors.New("gridfile: incomplete cell data")

	// ErrExtraValues is returned when tokens remain after the N² cells.
	ErrExtraValues = errors.New("gridfile: extra values after the grid")
)
