// Package matrix implements a sparse binary matrix stored in
// compressed sparse row (CSR) form: exactly what the exact cover
// solver needs to walk a row's 1s in column order without ever
// materializing a dense [][]bool.
//
// The matrix only records the *shape* of the problem (which cells are
// 1). It has no notion of primary/secondary columns; that split is
// layered on top by the problem package.
package matrix

import "fmt"

// SparseBinaryMatrix is an immutable 0/1 matrix with m rows and n
// columns, storing only the column indices of the 1s of each row.
type SparseBinaryMatrix struct {
	numCols   int
	cols      []int // concatenated column indices of every row's 1s
	rowStarts []int // rowStarts[i] .. rowStarts[i+1] indexes into cols for row i
}

// New builds a SparseBinaryMatrix from an ordered list of rows, each
// itself an ordered list of the column indices of that row's 1s.
// rows may be empty, and so may numCols (a 0x0 or m x 0 matrix is
// valid). Returns ErrColumnOutOfRange if any column index is >=
// numCols, or ErrColumnsUnordered if a row's indices are not strictly
// increasing.
func New(rows [][]int, numCols int) (*SparseBinaryMatrix, error) {
	cols := make([]int, 0, len(rows))
	rowStarts := make([]int, 0, len(rows)+1)
	rowStarts = append(rowStarts, 0)

	for i, row := range rows {
		prev := -1
		for _, j := range row {
			if j >= numCols {
				return nil, fmt.Errorf("%w: row %d has column %d, num_cols=%d", ErrColumnOutOfRange, i, j, numCols)
			}
			if j <= prev {
				return nil, fmt.Errorf("%w: row %d", ErrColumnsUnordered, i)
			}
			prev = j
			cols = append(cols, j)
		}
		rowStarts = append(rowStarts, len(cols))
	}

	return &SparseBinaryMatrix{numCols: numCols, cols: cols, rowStarts: rowStarts}, nil
}

// FromDense builds a SparseBinaryMatrix from a dense 0/1 boolean
// matrix. Every row must be the same length.
func FromDense(dense [][]bool) (*SparseBinaryMatrix, error) {
	numCols := 0
	if len(dense) > 0 {
		numCols = len(dense[0])
	}

	rows := make([][]int, len(dense))
	for i, row := range dense {
		if len(row) != numCols {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrColumnOutOfRange, i, len(row), numCols)
		}
		var ones []int
		for j, b := range row {
			if b {
				ones = append(ones, j)
			}
		}
		rows[i] = ones
	}

	return New(rows, numCols)
}

// NumRows reports the number of rows in the matrix. May be 0.
func (m *SparseBinaryMatrix) NumRows() int {
	return len(m.rowStarts) - 1
}

// NumCols reports the number of columns in the matrix. May be 0.
func (m *SparseBinaryMatrix) NumCols() int {
	return m.numCols
}

// Row returns the strictly increasing column indices of row i's 1s,
// or false if i is out of range. The returned slice must not be
// mutated by the caller.
func (m *SparseBinaryMatrix) Row(i int) ([]int, bool) {
	if i < 0 || i >= m.NumRows() {
		return nil, false
	}
	return m.cols[m.rowStarts[i]:m.rowStarts[i+1]], true
}

// Rows returns every row's column indices in row order.
func (m *SparseBinaryMatrix) Rows() [][]int {
	out := make([][]int, m.NumRows())
	for i := range out {
		out[i], _ = m.Row(i)
	}
	return out
}
