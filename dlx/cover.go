package dlx

// cover removes column header c from the horizontal header chain and
// removes, from their column's vertical chains, every data node in
// every row that has a node in c. Grounded on the cover() found
// (nearly verbatim, modulo pointers-vs-indices) in every dancing-links
// implementation in the retrieval pack: kpitt-sudoku's
// internal/solver/dancing_links.go, ifross89-gox's gox.go, and
// qur2-go-cover's cover.go all share this exact two-phase shape.
func (s *Solver) cover(c int) {
	x := s.x
	x[x[c].right].left = x[c].left
	x[x[c].left].right = x[c].right

	for i := x[c].down; i != c; i = x[i].down {
		for j := x[i].right; j != i; j = x[j].right {
			x[x[j].down].up = x[j].up
			x[x[j].up].down = x[j].down
			x[x[j].column].size--
		}
	}
}

// uncover is the exact inverse of cover, walked in the reverse order
// (up then left) so that covers nested like a stack restore bit for
// bit, which is the whole point of dancing links: undoing a removal
// only needs the removed node's remembered neighbors, never the node
// itself.
func (s *Solver) uncover(c int) {
	x := s.x
	for i := x[c].up; i != c; i = x[i].up {
		for j := x[i].left; j != i; j = x[j].left {
			x[x[j].column].size++
			x[x[j].down].up = j
			x[x[j].up].down = j
		}
	}

	x[x[c].right].left = c
	x[x[c].left].right = c
}
