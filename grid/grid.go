package grid

import "fmt"

// Snapshot is one complete state of an N×N Latin-square puzzle: the cell
// matrix plus the cursor and candidate mask the backtracking search keeps
// per frame.
//
// The zero value is not usable; construct with New or NewFromCells. A
// Snapshot is owned by exactly one caller at a time and none of its methods
// are safe for concurrent use; share between goroutines only by Clone or by
// transferring ownership.
type Snapshot struct {
	size    int     // side length N
	cells   [][]int // row-major; 0 empty, >0 assigned, <0 fixed clue
	curRow  int     // cursor: row of the most recent Place
	curCol  int     // cursor: column of the most recent Place
	untried []bool  // untried[v-1] reports whether value v is still a candidate
}

// New returns an empty size×size Snapshot: every cell Empty, the cursor at
// the origin, every value still a candidate.
//
// Returns ErrBadSize when size < MinSize.
func New(size int) (*Snapshot, error) {
	if size < MinSize {
		return nil, fmt.Errorf("%w: got %d", ErrBadSize, size)
	}
	s := &Snapshot{
		size:    size,
		cells:   make([][]int, size),
		untried: make([]bool, size),
	}
	for r := range s.cells {
		s.cells[r] = make([]int, size)
	}
	for v := range s.untried {
		s.untried[v] = true
	}

	return s, nil
}

// NewFromCells returns a Snapshot holding a deep copy of cells, with the
// cursor at the origin and every value still a candidate. Cell encoding
// follows the package convention: 0 empty, positive assigned, negative
// fixed clue.
//
// Returns ErrBadSize when cells is empty, ErrNonSquare when any row length
// differs from the row count, and ErrCellRange when a value falls outside
// [-N, N].
func NewFromCells(cells [][]int) (*Snapshot, error) {
	n := len(cells)
	if n < MinSize {
		return nil, fmt.Errorf("%w: got %d rows", ErrBadSize, n)
	}

	s := &Snapshot{
		size:    n,
		cells:   make([][]int, n),
		untried: make([]bool, n),
	}
	for r, row := range cells {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonSquare, r, len(row), n)
		}
		s.cells[r] = make([]int, n)
		for c, v := range row {
			if v < -n || v > n {
				return nil, fmt.Errorf("%w: cell (%d,%d) holds %d, want [%d..%d]", ErrCellRange, r, c, v, -n, n)
			}
			s.cells[r][c] = v
		}
	}
	for v := range s.untried {
		s.untried[v] = true
	}

	return s, nil
}

// Clone returns a deep copy: cells, cursor and candidate mask all
// independent of the receiver.
//
// Time/Memory: O(N²).
func (s *Snapshot) Clone() *Snapshot {
	out := &Snapshot{
		size:    s.size,
		cells:   make([][]int, s.size),
		curRow:  s.curRow,
		curCol:  s.curCol,
		untried: make([]bool, s.size),
	}
	for r := range s.cells {
		out.cells[r] = make([]int, s.size)
		copy(out.cells[r], s.cells[r])
	}
	copy(out.untried, s.untried)

	return out
}

// Size returns the side length N.
func (s *Snapshot) Size() int { return s.size }

// Value returns the raw signed value at (row, col): 0 empty, positive
// assigned, negative fixed clue. Coordinates must be in bounds.
func (s *Snapshot) Value(row, col int) int { return s.cells[row][col] }

// Fixed reports whether (row, col) holds a pre-fixed clue.
func (s *Snapshot) Fixed(row, col int) bool { return s.cells[row][col] < 0 }

// Cursor returns the coordinates of the most recent Place, or the origin on
// a Snapshot that has seen none.
func (s *Snapshot) Cursor() (row, col int) { return s.curRow, s.curCol }

// Cells returns a deep copy of the cell matrix; mutating the result cannot
// affect the Snapshot.
func (s *Snapshot) Cells() [][]int {
	out := make([][]int, s.size)
	for r := range s.cells {
		out[r] = make([]int, s.size)
		copy(out[r], s.cells[r])
	}

	return out
}

// DuplicateInRow reports whether value (1..N) already occurs in row,
// comparing by absolute magnitude so fixed clues count. The cell the search
// is about to fill is always Empty and so never matches; interactive
// callers get the stricter whole-row reading.
//
// Time: O(N).
func (s *Snapshot) DuplicateInRow(row, value int) bool {
	for c := 0; c < s.size; c++ {
		if abs(s.cells[row][c]) == value {
			return true
		}
	}

	return false
}

// DuplicateInCol reports whether value (1..N) already occurs in col,
// comparing by absolute magnitude so fixed clues count.
//
// Time: O(N).
func (s *Snapshot) DuplicateInCol(col, value int) bool {
	for r := 0; r < s.size; r++ {
		if abs(s.cells[r][col]) == value {
			return true
		}
	}

	return false
}

// NextEmpty returns the coordinates of the first Empty cell at or after the
// cursor in row-major order; ok is false when none remains in that range.
// See the package comment for the cursor contract.
//
// Time: O(N²) worst case, amortised O(1) along a monotonic fill.
func (s *Snapshot) NextEmpty() (row, col int, ok bool) {
	col = s.curCol
	for row = s.curRow; row < s.size; row++ {
		for ; col < s.size; col++ {
			if s.cells[row][col] == Empty {
				return row, col, true
			}
		}
		col = 0
	}

	return 0, 0, false
}

// Place writes value into (row, col) without validation, moves the cursor
// there and resets the candidate mask to all-untried. It is the search
// driver's placement primitive; interactive callers must use Set.
func (s *Snapshot) Place(row, col, value int) {
	s.cells[row][col] = value
	s.curRow, s.curCol = row, col
	for v := range s.untried {
		s.untried[v] = true
	}
}

// Untried reports whether value (1..N) has not been struck since the last
// Place (or construction).
func (s *Snapshot) Untried(value int) bool { return s.untried[value-1] }

// Strike marks value (1..N) as tried on this Snapshot. Strikes accumulate
// until the next Place resets the mask; they are how a frame remembers
// which branches below it are already exhausted.
func (s *Snapshot) Strike(value int) { s.untried[value-1] = false }

// Complete reports whether no cell is Empty. It scans the whole matrix and
// ignores the cursor, so it holds on any Snapshot.
//
// Time: O(N²).
func (s *Snapshot) Complete() bool {
	for _, row := range s.cells {
		for _, v := range row {
			if v == Empty {
				return false
			}
		}
	}

	return true
}

// Set validates and applies one interactive assignment: value into
// (row, col), or a clear when value is Empty. Unlike Place it refuses
// illegal moves and leaves the cursor and candidate mask untouched; a
// Snapshot edited through Set must be rebuilt from Cells before a search
// may rely on the cursor contract.
//
// Checks run in order: ErrOutOfBounds, ErrFixedCell, ErrValueRange (value
// negative or above N), then for non-Empty values ErrRowDuplicate and
// ErrColDuplicate.
func (s *Snapshot) Set(row, col, value int) error {
	if row < 0 || row >= s.size || col < 0 || col >= s.size {
		return fmt.Errorf("%w: (%d,%d) on a %d×%d grid", ErrOutOfBounds, row, col, s.size, s.size)
	}
	if s.cells[row][col] < 0 {
		return fmt.Errorf("%w: (%d,%d)", ErrFixedCell, row, col)
	}
	if value < 0 || value > s.size {
		return fmt.Errorf("%w: %d, want [0..%d]", ErrValueRange, value, s.size)
	}
	if value != Empty {
		if s.DuplicateInRow(row, value) {
			return fmt.Errorf("%w: %d in row %d", ErrRowDuplicate, value, row)
		}
		if s.DuplicateInCol(col, value) {
			return fmt.Errorf("%w: %d in column %d", ErrColDuplicate, value, col)
		}
	}
	s.cells[row][col] = value

	return nil
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
