// Command dlxdemo solves a handful of sample puzzles with the dlx
// solver and prints timing and step-tracing output. Grounded on
// kpitt-sudoku's cmd/dancing_links_demo/main.go: same colorized
// before/after/timing structure, retargeted at the dlx package's
// resumable step API instead of a one-shot SolveDancingLinks call.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/kpitt/exactcover/dlx"
	"github.com/kpitt/exactcover/examples/nqueens"
	"github.com/kpitt/exactcover/examples/sudoku"
)

func main() {
	fmt.Println(color.HiBlueString("Exact Cover Solver Demonstration"))
	fmt.Println(color.HiBlueString("================================"))

	runSudoku()
	runNQueens()
	traceSteps()
}

var easyPuzzle = strings.Join([]string{
	"53..7....",
	"6..195...",
	".98....6.",
	"8...6...3",
	"4..8.3..1",
	"7...2...6",
	".6....28.",
	"...419..5",
	"....8..79",
}, "\n")

func runSudoku() {
	fmt.Printf("\n%s\n", color.HiYellowString("Sudoku"))

	board, err := sudoku.ReadBoard(strings.NewReader(easyPuzzle))
	if err != nil {
		fmt.Println(color.HiRedString("✗ could not read puzzle: %v", err))
		return
	}
	board.Print()

	enc, err := sudoku.NewEncoder(board)
	if err != nil {
		fmt.Println(color.HiRedString("✗ could not encode puzzle: %v", err))
		return
	}
	desc, err := enc.ExactCoverProblem()
	if err != nil {
		fmt.Println(color.HiRedString("✗ could not encode puzzle: %v", err))
		return
	}

	start := time.Now()
	solver := dlx.NewSolver(desc)
	cover, ok := solver.NextSolution()
	elapsed := time.Since(start)

	if !ok {
		fmt.Println(color.HiRedString("✗ no solution found"))
		return
	}

	solved := enc.FromCover(cover).(*sudoku.Board)
	fmt.Printf("%s (%.3fms, %d steps)\n",
		color.HiGreenString("✓ solved"), float64(elapsed.Nanoseconds())/1e6, solver.StepCount())
	solved.Print()
}

func runNQueens() {
	fmt.Printf("\n%s\n", color.HiYellowString("8-Queens"))

	q := nqueens.New(8)
	desc, err := q.ExactCoverProblem()
	if err != nil {
		fmt.Println(color.HiRedString("✗ could not encode puzzle: %v", err))
		return
	}

	start := time.Now()
	solver := dlx.NewSolver(desc)
	count := 0
	for range solver.IterSolutions {
		count++
	}
	elapsed := time.Since(start)

	fmt.Printf("%s (%.3fms, %d steps)\n",
		color.HiGreenString("✓ found %d solutions", count), float64(elapsed.Nanoseconds())/1e6, solver.StepCount())
}

// traceSteps shows the first handful of observable steps of a small
// search, the kind of detail a one-shot SolveDancingLinks call never
// exposes.
func traceSteps() {
	fmt.Printf("\n%s\n", color.HiCyanString("Step trace (4-queens, first 12 steps)"))

	q := nqueens.New(4)
	desc, err := q.ExactCoverProblem()
	if err != nil {
		fmt.Println(color.HiRedString("✗ could not encode puzzle: %v", err))
		return
	}

	solver := dlx.NewSolver(desc)
	n := 0
	for step := range solver.IterSteps {
		fmt.Println(describeStep(step))
		n++
		if n >= 12 {
			break
		}
	}
}

func describeStep(step dlx.SolverStep) string {
	switch step.Kind {
	case dlx.SelectColumn:
		return fmt.Sprintf("  %s col=%d size=%d", color.HiBlackString("select"), step.Col, step.Size)
	case dlx.DeselectColumn:
		return fmt.Sprintf("  %s col=%d", color.HiBlackString("deselect"), step.Col)
	case dlx.PushRow:
		return fmt.Sprintf("  %s row=%d", color.HiGreenString("push"), step.Row)
	case dlx.AdvanceRow:
		return fmt.Sprintf("  %s %d -> %d", color.HiYellowString("advance"), step.PrevRow, step.NextRow)
	case dlx.PopRow:
		return fmt.Sprintf("  %s row=%d", color.HiRedString("pop"), step.Row)
	case dlx.ReportSolution:
		return fmt.Sprintf("  %s cover=%v", color.HiBlueString("solution"), step.Cover)
	default:
		return "  ?"
	}
}
