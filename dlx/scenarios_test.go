package dlx_test

import (
	"sort"
	"testing"

	"github.com/kpitt/exactcover/dlx"
	"github.com/kpitt/exactcover/examples/nqueens"
	"github.com/kpitt/exactcover/matrix"
	"github.com/kpitt/exactcover/problem"
)

func descriptor(t *testing.T, rows [][]int, numCols, numSecondary int) *problem.Descriptor {
	t.Helper()
	m, err := matrix.New(rows, numCols)
	if err != nil {
		t.Fatalf("matrix.New: %v", err)
	}
	d, err := problem.NewDescriptor(m, numSecondary)
	if err != nil {
		t.Fatalf("problem.NewDescriptor: %v", err)
	}
	return d
}

func allSolutions(s *dlx.Solver) [][]int {
	var out [][]int
	for cover := range s.IterSolutions {
		c := append([]int(nil), cover...)
		sort.Ints(c)
		out = append(out, c)
	}
	return out
}

// S1: Knuth's canonical 7-column exact cover example has exactly one
// solution, {0, 3, 4}.
func TestKnuthCanonicalExample(t *testing.T) {
	rows := [][]int{
		{2, 4, 5},
		{0, 3, 6},
		{1, 2, 5},
		{0, 3},
		{1, 6},
		{3, 4, 6},
	}
	d := descriptor(t, rows, 7, 0)
	solutions := allSolutions(dlx.NewSolver(d))

	if len(solutions) != 1 {
		t.Fatalf("got %d solutions, want 1: %v", len(solutions), solutions)
	}
	want := []int{0, 3, 4}
	if !intsEqual(solutions[0], want) {
		t.Errorf("solution = %v, want %v", solutions[0], want)
	}
}

// S2: a 0x0 matrix has exactly one solution, the empty cover.
func TestEmptyMatrix(t *testing.T) {
	d := descriptor(t, nil, 0, 0)
	solutions := allSolutions(dlx.NewSolver(d))
	if len(solutions) != 1 || len(solutions[0]) != 0 {
		t.Errorf("got %v, want [[]]", solutions)
	}
}

// S3: 0 rows x 3 primary columns cannot be covered, so there are no
// solutions.
func TestZeroRowsAllPrimary(t *testing.T) {
	d := descriptor(t, nil, 3, 0)
	solutions := allSolutions(dlx.NewSolver(d))
	if len(solutions) != 0 {
		t.Errorf("got %v, want no solutions", solutions)
	}
}

// S4: 0 rows x 3 secondary columns behaves like the 0x0 case — the
// empty cover trivially satisfies constraints with no primary columns
// to fill.
func TestZeroRowsAllSecondary(t *testing.T) {
	d := descriptor(t, nil, 3, 3)
	solutions := allSolutions(dlx.NewSolver(d))
	if len(solutions) != 1 || len(solutions[0]) != 0 {
		t.Errorf("got %v, want [[]]", solutions)
	}
}

// S5: 3 rows x 0 columns: every subset of the 3 rows is a valid
// cover under the canonical empty-row policy, giving the full power
// set (8 covers).
func TestThreeRowsZeroColumns(t *testing.T) {
	d := descriptor(t, [][]int{{}, {}, {}}, 0, 0)
	solutions := allSolutions(dlx.NewSolver(d))
	if len(solutions) != 8 {
		t.Fatalf("got %d solutions, want 8: %v", len(solutions), solutions)
	}

	seen := map[string]bool{}
	for _, sol := range solutions {
		seen[key(sol)] = true
	}
	if len(seen) != 8 {
		t.Errorf("solutions are not distinct: %v", solutions)
	}
}

// S6: 8-queens has exactly 92 distinct solutions.
func TestEightQueens(t *testing.T) {
	q := nqueens.New(8)
	d, err := q.ExactCoverProblem()
	if err != nil {
		t.Fatalf("ExactCoverProblem: %v", err)
	}
	solutions := allSolutions(dlx.NewSolver(d))
	if len(solutions) != 92 {
		t.Errorf("got %d solutions, want 92", len(solutions))
	}
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func key(sol []int) string {
	s := make([]byte, 0, len(sol)*2)
	for _, v := range sol {
		s = append(s, byte('a'+v))
	}
	return string(s)
}
