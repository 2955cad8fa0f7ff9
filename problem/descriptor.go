// Package problem holds the immutable view of an exact cover problem
// that the dlx solver is built from: a matrix plus the split between
// primary columns (must be covered exactly once) and secondary columns
// (covered at most once).
package problem

import (
	"fmt"

	"github.com/kpitt/exactcover/matrix"
)

// Descriptor is an immutable exact cover problem specification. The
// first PrimaryCount columns of the matrix are primary; the rest are
// secondary.
type Descriptor struct {
	m            *matrix.SparseBinaryMatrix
	numSecondary int
}

// NewDescriptor builds a Descriptor from a matrix and the number of
// secondary columns, which are taken to be the last numSecondary
// columns of m. Returns ErrTooManySecondary if numSecondary exceeds
// the matrix's column count.
func NewDescriptor(m *matrix.SparseBinaryMatrix, numSecondary int) (*Descriptor, error) {
	if numSecondary > m.NumCols() {
		return nil, fmt.Errorf("%w: num_secondary=%d num_cols=%d", ErrTooManySecondary, numSecondary, m.NumCols())
	}
	return &Descriptor{m: m, numSecondary: numSecondary}, nil
}

// ColumnCount is the total number of columns, n.
func (d *Descriptor) ColumnCount() int { return d.m.NumCols() }

// RowCount is the total number of rows, m.
func (d *Descriptor) RowCount() int { return d.m.NumRows() }

// SecondaryCount is the number of secondary columns, s.
func (d *Descriptor) SecondaryCount() int { return d.numSecondary }

// PrimaryCount is the number of primary columns, p = n - s.
func (d *Descriptor) PrimaryCount() int { return d.m.NumCols() - d.numSecondary }

// Matrix returns the underlying sparse binary matrix.
func (d *Descriptor) Matrix() *matrix.SparseBinaryMatrix { return d.m }

// Row returns the ordered column indices of row i's 1s.
func (d *Descriptor) Row(i int) ([]int, bool) { return d.m.Row(i) }

// Rows returns every row's ordered column indices, in row order.
func (d *Descriptor) Rows() [][]int { return d.m.Rows() }
