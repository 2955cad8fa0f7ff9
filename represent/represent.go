// Package represent defines the boundary between the dlx solver and
// the domain problems it solves: anything that can describe itself as
// an exact cover problem and decode a cover back into its own domain
// terms can be solved without dlx knowing anything about it. Grounded
// on the Representable/FromCover contract in the original solver's
// representable.rs and input.rs.
package represent

import "github.com/kpitt/exactcover/problem"

// Representable is implemented by a domain problem that can be
// expressed as, and reconstructed from, an exact cover problem.
type Representable interface {
	// ExactCoverProblem builds the matrix/primary-secondary split that
	// encodes this problem instance.
	ExactCoverProblem() (*problem.Descriptor, error)

	// FromCover decodes a complete row-label cover (as produced by a
	// dlx.SolverStep with Kind == dlx.ReportSolution) back into this
	// problem's own solution type.
	FromCover(rows []int) any

	// FromPartialCover decodes an in-progress, possibly incomplete row
	// selection (as returned by (*dlx.Solver).CurrentPartialCover) into
	// a partial view of this problem's solution type. Unlike FromCover,
	// it must tolerate rows that don't yet cover every column.
	FromPartialCover(rows []int) any
}
