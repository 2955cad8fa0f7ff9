package dlx

// IterSteps is a range-over-func iterator (Go 1.23's iter.Seq[SolverStep]
// shape) over the solver's remaining steps, modeled on the yield-based
// generator kwshi-dancinglinks' DancingLinks.GenerateSolutions uses for
// the same kind of resumable search:
//
//	for step := range solver.IterSteps {
//		...
//	}
func (s *Solver) IterSteps(yield func(SolverStep) bool) {
	for {
		step, ok := s.NextStep()
		if !ok {
			return
		}
		if !yield(step) {
			return
		}
	}
}

// IterSolutions is the same kind of iterator over solutions only,
// skipping every intermediate step.
func (s *Solver) IterSolutions(yield func([]int) bool) {
	for {
		cover, ok := s.NextSolution()
		if !ok {
			return
		}
		if !yield(cover) {
			return
		}
	}
}
