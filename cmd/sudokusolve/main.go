// Command sudokusolve reads a board from stdin and solves it with the
// dlx solver. Grounded on kpitt-sudoku's cmd/sudoku/main.go, same
// isatty-gated prompt, retargeted at the examples/sudoku encoder.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/kpitt/exactcover/dlx"
	"github.com/kpitt/exactcover/examples/sudoku"
)

func main() {
	if isStdinTTY() {
		fmt.Println("Enter initial board as 9 lines of 9 characters.")
		fmt.Println("Use any character other than the digits 1-9 for empty cells.")
		fmt.Println("(Ctrl+D to finish on Unix/Linux, Ctrl+Z then Enter on Windows):")
	}

	board, err := sudoku.ReadBoard(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}

	enc, err := sudoku.NewEncoder(board)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
	desc, err := enc.ExactCoverProblem()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}

	solver := dlx.NewSolver(desc)
	cover, ok := solver.NextSolution()

	if ok {
		color.HiWhite("\nSolution:")
		solved := enc.FromCover(cover).(*sudoku.Board)
		solved.Print()
		return
	}

	color.HiWhite("\nNo solution found.")
	board.Print()
}

func isStdinTTY() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
