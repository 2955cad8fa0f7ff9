// Package dlx implements Knuth's Algorithm X over a toroidal dancing
// links arena, exposed as a resumable state machine rather than a
// recursive function: NextStep walks exactly one SolverStep per call,
// so a caller can trace, pause, or cancel a search mid-descent instead
// of only ever seeing a finished answer. The recursive shape this
// unrolls is the one shared by every dancing-links implementation in
// the retrieval pack (kpitt-sudoku's internal/solver/dancing_links.go,
// ifross89-gox's gox.go, qur2-go-cover's cover.go); the explicit
// control stack that unrolls it follows the generator pattern in
// kwshi-dancinglinks' DancingLinks.GenerateSolutions.
package dlx

import "github.com/kpitt/exactcover/problem"

// Solver walks the exact cover problem it was built from one step at a
// time. The zero value is not usable; build one with NewSolver.
type Solver struct {
	x            []node
	primaryCount int

	o []int // o[0:k] are the data-node indices of the current partial cover, in selection order
	k int

	stack []frame

	emptyRows []int
	pending   [][]int // queued ReportSolution covers awaiting emission

	stepCount     uint64
	solutionCount uint64
}

// NewSolver builds the node arena for d and returns a Solver ready to
// step through its search from the top.
func NewSolver(d *problem.Descriptor) *Solver {
	x, primaryCount, emptyRows := build(d)
	return &Solver{
		x:            x,
		primaryCount: primaryCount,
		o:            make([]int, primaryCount),
		stack:        []frame{{kind: frameStart}},
		emptyRows:    emptyRows,
	}
}

// StepCount is the number of steps emitted so far.
func (s *Solver) StepCount() uint64 { return s.stepCount }

// SolutionCount is the number of ReportSolution steps emitted so far.
func (s *Solver) SolutionCount() uint64 { return s.solutionCount }

// CurrentPartialCover returns the row labels currently selected, in
// selection order. It reflects every step emitted so far: a PushRow or
// AdvanceRow step always leaves its row included, and a PopRow step
// always leaves it excluded, even when queried between two calls to
// NextStep.
func (s *Solver) CurrentPartialCover() []int {
	out := make([]int, s.k)
	for i := 0; i < s.k; i++ {
		out[i] = s.x[s.o[i]].rowLabel
	}
	return out
}

// NextStep advances the search by exactly one observable step and
// returns it, or returns ok == false once the search is exhausted.
// Frames that don't themselves produce a step (AfterAddOrReplaceRow,
// and Start's completion branch once it has queued its reports) are
// processed silently within the same call; the next_step boundary only
// ever lands on a step-producing frame or the pending-report queue.
func (s *Solver) NextStep() (SolverStep, bool) {
	for {
		if len(s.pending) > 0 {
			cover := s.pending[0]
			s.pending = s.pending[1:]
			s.stepCount++
			s.solutionCount++
			return SolverStep{Kind: ReportSolution, Cover: cover}, true
		}
		if len(s.stack) == 0 {
			return SolverStep{}, false
		}

		f := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]

		var step SolverStep
		var emitted bool
		switch f.kind {
		case frameStart:
			step, emitted = s.doStart()
		case frameAfterColumnChoice:
			step, emitted = s.doAfterColumnChoice(f.a)
		case frameAfterAddOrReplaceRow:
			step, emitted = s.doAfterAddOrReplaceRow(f.a)
		case frameResume:
			step, emitted = s.doResume()
		case frameAfterRemoveRow:
			step, emitted = s.doAfterRemoveRow(f.a)
		}
		if emitted {
			s.stepCount++
			return step, true
		}
	}
}

// NextSolution runs NextStep until it produces a ReportSolution (or the
// search ends), discarding the intermediate steps.
func (s *Solver) NextSolution() ([]int, bool) {
	for {
		step, ok := s.NextStep()
		if !ok {
			return nil, false
		}
		if step.Kind == ReportSolution {
			return step.Cover, true
		}
	}
}

// doStart is the Start frame: if the header ring is empty the current
// partial cover is complete and every empty-row subset extension of it
// is queued as a solution (spec.md §9's canonical empty-row policy);
// otherwise a column is chosen and covered and the search descends.
func (s *Solver) doStart() (SolverStep, bool) {
	if s.x[head].right == head {
		core := make([]int, s.k)
		for i := 0; i < s.k; i++ {
			core[i] = s.x[s.o[i]].rowLabel
		}
		s.queueReports(core)
		return SolverStep{}, false
	}

	c, size := s.chooseColumn()
	s.cover(c)
	s.stack = append(s.stack, frame{kind: frameAfterColumnChoice, a: c})
	return SolverStep{Kind: SelectColumn, Col: c - 1, Size: size}, true
}

// chooseColumn picks the leftmost header with minimum size (the
// standard MRV heuristic every dancing-links implementation in the
// pack uses).
func (s *Solver) chooseColumn() (c, size int) {
	c = s.x[head].right
	size = s.x[c].size
	for j := s.x[c].right; j != head; j = s.x[j].right {
		if s.x[j].size < size {
			c = j
			size = s.x[j].size
		}
	}
	return c, size
}

// doAfterColumnChoice is the AfterColumnChoice{c} frame: if c has no
// rows left the branch dead-ends and c is uncovered; otherwise its
// first row is tentatively selected and pushed onto the partial cover.
//
// k is incremented here, at the exact moment PushRow is emitted, not
// later when the row's other columns are covered — current_partial_cover
// must already include the row the instant this step is visible to a
// caller, even though the row's columns aren't covered until the next
// call processes AfterAddOrReplaceRow.
func (s *Solver) doAfterColumnChoice(c int) (SolverStep, bool) {
	r := s.x[c].down
	if r == c {
		s.uncover(c)
		return SolverStep{Kind: DeselectColumn, Col: c - 1}, true
	}

	s.o[s.k] = r
	s.k++
	s.stack = append(s.stack, frame{kind: frameAfterAddOrReplaceRow, a: r})
	return SolverStep{Kind: PushRow, Row: s.x[r].rowLabel}, true
}

// doAfterAddOrReplaceRow is the AfterAddOrReplaceRow{r} frame: cover
// every other column r touches, then recurse (push Resume below a
// fresh Start). It emits no step of its own.
func (s *Solver) doAfterAddOrReplaceRow(r int) (SolverStep, bool) {
	for j := s.x[r].right; j != r; j = s.x[j].right {
		s.cover(s.x[j].column)
	}
	s.stack = append(s.stack, frame{kind: frameResume})
	s.stack = append(s.stack, frame{kind: frameStart})
	return SolverStep{}, false
}

// doResume is the Resume frame: the recursive call below this point
// returned, so the row at the top of the partial cover is removed
// before either being replaced by the next candidate row in its
// column (AdvanceRow) or, if there is none, popped for good (PopRow).
func (s *Solver) doResume() (SolverStep, bool) {
	s.k--
	r := s.o[s.k]
	for j := s.x[r].left; j != r; j = s.x[j].left {
		s.uncover(s.x[j].column)
	}

	c := s.x[r].column
	rPrime := s.x[r].down
	if rPrime != c {
		s.o[s.k] = rPrime
		s.k++
		s.stack = append(s.stack, frame{kind: frameAfterAddOrReplaceRow, a: rPrime})
		return SolverStep{Kind: AdvanceRow, PrevRow: s.x[r].rowLabel, NextRow: s.x[rPrime].rowLabel}, true
	}

	s.stack = append(s.stack, frame{kind: frameAfterRemoveRow, a: c})
	return SolverStep{Kind: PopRow, Row: s.x[r].rowLabel}, true
}

// doAfterRemoveRow is the AfterRemoveRow{c} frame: c's column itself is
// uncovered, completing the ascent out of c.
func (s *Solver) doAfterRemoveRow(c int) (SolverStep, bool) {
	s.uncover(c)
	return SolverStep{Kind: DeselectColumn, Col: c - 1}, true
}

// queueReports expands core by every subset of the problem's empty
// rows and queues each as a pending ReportSolution, per the canonical
// empty-row policy: a matrix's empty rows never participate in any
// cover/uncover bookkeeping, so any subset of them can be appended to
// a core solution without affecting its validity.
func (s *Solver) queueReports(core []int) {
	e := len(s.emptyRows)
	total := 1 << e
	for mask := 0; mask < total; mask++ {
		cover := make([]int, 0, len(core)+e)
		cover = append(cover, core...)
		for i := 0; i < e; i++ {
			if mask&(1<<i) != 0 {
				cover = append(cover, s.emptyRows[i])
			}
		}
		s.pending = append(s.pending, cover)
	}
}
