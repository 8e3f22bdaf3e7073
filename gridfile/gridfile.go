package gridfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/latinsquare/grid"
)

// Read parses one puzzle from r and returns it as a grid.Snapshot.
//
// Returns ErrBadHeader, ErrSizeLimit, ErrCellRange, ErrTruncated or
// ErrExtraValues for malformed input, or the underlying read error.
func Read(r io.Reader) (*grid.Snapshot, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	tok, ok := next(sc)
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("gridfile: read header: %w", err)
		}

		return nil, fmt.Errorf("%w: missing size", ErrBadHeader)
	}
	size, err := strconv.Atoi(tok)
	if err != nil {
		return nil, fmt.Errorf("%w: size %q is not an integer", ErrBadHeader, tok)
	}
	if size < grid.MinSize {
		return nil, fmt.Errorf("%w: size %d", ErrBadHeader, size)
	}
	if size > MaxSize {
		return nil, fmt.Errorf("%w: size %d, maximum %d", ErrSizeLimit, size, MaxSize)
	}

	cells := make([][]int, size)
	for row := range cells {
		cells[row] = make([]int, size)
		for col := range cells[row] {
			tok, ok = next(sc)
			if !ok {
				if err = sc.Err(); err != nil {
					return nil, fmt.Errorf("gridfile: read cells: %w", err)
				}

				return nil, fmt.Errorf("%w: want %d values, got %d", ErrTruncated, size*size, row*size+col)
			}
			v, convErr := strconv.Atoi(tok)
			if convErr != nil {
				return nil, fmt.Errorf("%w: cell (%d,%d) token %q", ErrTruncated, row, col, tok)
			}
			if v < -size || v > size {
				return nil, fmt.Errorf("%w: cell (%d,%d) holds %d, want [%d..%d]", ErrCellRange, row, col, v, -size, size)
			}
			cells[row][col] = v
		}
	}

	if tok, ok = next(sc); ok {
		return nil, fmt.Errorf("%w: unexpected %q after %d values", ErrExtraValues, tok, size*size)
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("gridfile: read: %w", err)
	}

	return grid.NewFromCells(cells)
}

// Load opens path and reads the puzzle it holds.
func Load(path string) (*grid.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridfile: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Write emits s to w in the canonical layout: the size header on its own
// line, then one space-separated row per line, signed cell values as
// stored. s must be non-nil.
func Write(w io.Writer, s *grid.Snapshot) error {
	n := s.Size()

	var b strings.Builder
	fmt.Fprintf(&b, "%d\n", n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(s.Value(r, c)))
		}
		b.WriteByte('\n')
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("gridfile: write: %w", err)
	}

	return nil
}

// Save writes s to path, replacing any existing file.
func Save(path string, s *grid.Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("gridfile: %w", err)
	}
	if err = Write(f, s); err != nil {
		f.Close()

		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("gridfile: %w", err)
	}

	return nil
}

// OutputPath returns the conventional save location for results of the
// puzzle at inputPath: the base name prefixed with "out-", in the same
// directory.
func OutputPath(inputPath string) string {
	dir, base := filepath.Split(inputPath)

	return filepath.Join(dir, "out-"+base)
}

// next scans one whitespace-delimited token.
func next(sc *bufio.Scanner) (string, bool) {
	if sc.Scan() {
		return sc.Text(), true
	}

	return "", false
}
