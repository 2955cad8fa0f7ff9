package matrix

import (
	"errors"
	"testing"
)

func TestNewBasic(t *testing.T) {
	m, err := New([][]int{{0, 2}, {1}, {}}, 3)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if got, want := m.NumRows(), 3; got != want {
		t.Errorf("NumRows() = %d, want %d", got, want)
	}
	if got, want := m.NumCols(), 3; got != want {
		t.Errorf("NumCols() = %d, want %d", got, want)
	}

	row, ok := m.Row(0)
	if !ok || len(row) != 2 || row[0] != 0 || row[1] != 2 {
		t.Errorf("Row(0) = %v, %v, want [0 2], true", row, ok)
	}
	row, ok = m.Row(2)
	if !ok || len(row) != 0 {
		t.Errorf("Row(2) = %v, %v, want [], true", row, ok)
	}
	if _, ok := m.Row(3); ok {
		t.Errorf("Row(3) returned ok=true for out-of-range index")
	}
}

func TestNewEmptyShapes(t *testing.T) {
	if m, err := New(nil, 0); err != nil || m.NumRows() != 0 || m.NumCols() != 0 {
		t.Errorf("0x0 matrix: got (%v, %v)", m, err)
	}
	if m, err := New(nil, 5); err != nil || m.NumRows() != 0 || m.NumCols() != 5 {
		t.Errorf("0x5 matrix: got (%v, %v)", m, err)
	}
	if m, err := New([][]int{{}, {}}, 0); err != nil || m.NumRows() != 2 || m.NumCols() != 0 {
		t.Errorf("2x0 matrix: got (%v, %v)", m, err)
	}
}

func TestNewColumnOutOfRange(t *testing.T) {
	_, err := New([][]int{{0, 3}}, 3)
	if !errors.Is(err, ErrColumnOutOfRange) {
		t.Errorf("New() error = %v, want ErrColumnOutOfRange", err)
	}
}

func TestNewColumnsUnordered(t *testing.T) {
	cases := [][]int{{2, 0}, {1, 1}}
	for _, row := range cases {
		if _, err := New([][]int{row}, 3); !errors.Is(err, ErrColumnsUnordered) {
			t.Errorf("New(%v) error = %v, want ErrColumnsUnordered", row, err)
		}
	}
}

func TestFromDense(t *testing.T) {
	m, err := FromDense([][]bool{
		{true, false, true},
		{false, true, false},
	})
	if err != nil {
		t.Fatalf("FromDense returned error: %v", err)
	}
	row0, _ := m.Row(0)
	if len(row0) != 2 || row0[0] != 0 || row0[1] != 2 {
		t.Errorf("Row(0) = %v, want [0 2]", row0)
	}
	row1, _ := m.Row(1)
	if len(row1) != 1 || row1[0] != 1 {
		t.Errorf("Row(1) = %v, want [1]", row1)
	}
}

func TestRows(t *testing.T) {
	m, err := New([][]int{{0}, {1, 2}}, 3)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	rows := m.Rows()
	if len(rows) != 2 || len(rows[0]) != 1 || len(rows[1]) != 2 {
		t.Errorf("Rows() = %v, want [[0] [1 2]]", rows)
	}
}
