package problem

import "errors"

// ErrTooManySecondary is returned by NewDescriptor when the requested
// number of secondary columns exceeds the matrix's total column
// count.
var ErrTooManySecondary = errors.New("problem: num_secondary > num_cols")
