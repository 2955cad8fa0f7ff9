package dlx

import "github.com/kpitt/exactcover/problem"

// node is the single record type backing every slot of the arena: the
// head sentinel (index 0), a column header (indices 1..n), or a data
// node (index > n). Which fields are meaningful depends on the kind,
// exactly as spec.md §3 describes:
//
//   - head:    left/right only (threads the primary column headers).
//   - header:  left/right (horizontal chain), up/down (column's data
//     nodes), size (population), column == own index.
//   - data:    left/right (row's data nodes), up/down (column's data
//     nodes), column (owning header index), rowLabel (source row).
//
// All "pointers" are indices into Solver.x rather than real pointers,
// following the flat-arena technique spec.md §9 calls out: a cyclic
// structure needs no special-casing when its links are plain ints
// into one growable-once slice.
type node struct {
	left, right, up, down int
	column                int
	rowLabel              int
	size                  int
}

const head = 0

// build lays out the arena for d in the order spec.md §4.2 prescribes:
// the head, then one header per column, then the data nodes of every
// row in order. It returns the arena, the number of primary columns,
// and the row indices of any rows with no 1s (spec.md's empty_rows).
func build(d *problem.Descriptor) (x []node, primaryCount int, emptyRows []int) {
	n := d.ColumnCount()
	p := d.PrimaryCount()

	x = make([]node, 1, 1+n+d.RowCount()*4)

	// 1. Head sentinel.
	x[0] = node{
		left:  p,
		right: 0,
	}
	if p == 0 {
		x[0].left = 0
	}
	if n > 0 {
		x[0].right = 1
	}

	// 2. Column headers, 1..n.
	for c := 1; c <= n; c++ {
		h := node{up: c, down: c, column: c, size: 0}
		if c <= p {
			h.left = c - 1
			h.right = c + 1
		} else {
			h.left = c
			h.right = c
		}
		x = append(x, h)
	}
	// Close the primary chain: the last primary header's right wraps
	// back to the head. When p == 0 this targets the head itself,
	// which must point back to itself (no primary columns to reach),
	// overriding the provisional "point at column 1" set above.
	x[p].right = head

	// 3. Data nodes, one per 1-bit, row by row.
	for i, row := range d.Rows() {
		firstOfRow := -1
		for _, j := range row {
			col := j + 1
			newIdx := len(x)

			var left, right int
			if firstOfRow == -1 {
				firstOfRow = newIdx
				left, right = newIdx, newIdx
			} else {
				left = x[firstOfRow].left
				right = firstOfRow
			}

			up := x[col].up
			down := col

			x = append(x, node{
				left: left, right: right,
				up: up, down: down,
				column: col, rowLabel: i,
			})

			if left != newIdx {
				x[left].right = newIdx
			}
			x[firstOfRow].left = newIdx
			x[up].down = newIdx
			x[col].up = newIdx
			x[col].size++
		}

		if firstOfRow == -1 {
			emptyRows = append(emptyRows, i)
		}
	}

	return x, p, emptyRows
}
