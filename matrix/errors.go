// Package matrix: sentinel error set.
//
// This file defines the package-level sentinel errors used across the
// matrix package. Validation failures MUST return these sentinels,
// wrapped with context via fmt.Errorf("%w: ..."), and callers check
// them with errors.Is.
package matrix

import "errors"

var (
	// ErrColumnOutOfRange is returned when a row names a column index
	// >= the matrix's declared column count.
	ErrColumnOutOfRange = errors.New("matrix: column index out of range")

	// ErrColumnsUnordered is returned when a row's column indices are
	// not strictly increasing.
	ErrColumnsUnordered = errors.New("matrix: row column indices not strictly increasing")
)
