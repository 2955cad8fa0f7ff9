package problem

import (
	"errors"
	"testing"

	"github.com/kpitt/exactcover/matrix"
)

func TestNewDescriptor(t *testing.T) {
	m, err := matrix.New([][]int{{0, 2}, {1}}, 3)
	if err != nil {
		t.Fatalf("matrix.New returned error: %v", err)
	}
	d, err := NewDescriptor(m, 1)
	if err != nil {
		t.Fatalf("NewDescriptor returned error: %v", err)
	}
	if got, want := d.ColumnCount(), 3; got != want {
		t.Errorf("ColumnCount() = %d, want %d", got, want)
	}
	if got, want := d.RowCount(), 2; got != want {
		t.Errorf("RowCount() = %d, want %d", got, want)
	}
	if got, want := d.SecondaryCount(), 1; got != want {
		t.Errorf("SecondaryCount() = %d, want %d", got, want)
	}
	if got, want := d.PrimaryCount(), 2; got != want {
		t.Errorf("PrimaryCount() = %d, want %d", got, want)
	}
}

func TestNewDescriptorTooManySecondary(t *testing.T) {
	m, err := matrix.New([][]int{{0}}, 2)
	if err != nil {
		t.Fatalf("matrix.New returned error: %v", err)
	}
	if _, err := NewDescriptor(m, 3); !errors.Is(err, ErrTooManySecondary) {
		t.Errorf("NewDescriptor error = %v, want ErrTooManySecondary", err)
	}
}

func TestDescriptorAllSecondary(t *testing.T) {
	m, err := matrix.New([][]int{{0}}, 1)
	if err != nil {
		t.Fatalf("matrix.New returned error: %v", err)
	}
	d, err := NewDescriptor(m, 1)
	if err != nil {
		t.Fatalf("NewDescriptor returned error: %v", err)
	}
	if got, want := d.PrimaryCount(), 0; got != want {
		t.Errorf("PrimaryCount() = %d, want %d", got, want)
	}
}
