package dlx

// StepKind identifies which variant of SolverStep is populated. Go has
// no tagged-union enums, so SolverStep carries every field and Kind
// says which ones are meaningful — the same shape spec.md §4.6 uses
// to enumerate the six step variants.
type StepKind int

const (
	// SelectColumn: the search descends into column Col (0-based,
	// primary only); Size is that column's population at the time of
	// selection.
	SelectColumn StepKind = iota
	// DeselectColumn: the search ascends out of Col.
	DeselectColumn
	// PushRow: Row is added to the partial cover.
	PushRow
	// AdvanceRow: the top-of-stack row PrevRow is replaced by NextRow.
	AdvanceRow
	// PopRow: Row is removed from the partial cover.
	PopRow
	// ReportSolution: the partial cover is complete; Cover holds the
	// row labels.
	ReportSolution
)

// SolverStep is one observable atom of solver progress (spec.md
// §4.6). Only the fields relevant to Kind are populated; the rest are
// left at their zero value.
type SolverStep struct {
	Kind StepKind

	Col  int // SelectColumn, DeselectColumn
	Size int // SelectColumn

	Row     int // PushRow, PopRow
	PrevRow int // AdvanceRow
	NextRow int // AdvanceRow

	Cover []int // ReportSolution
}

// frameKind names the five resume points of spec.md §4.4's explicit
// control stack.
type frameKind int

const (
	frameStart frameKind = iota
	frameAfterColumnChoice
	frameAfterAddOrReplaceRow
	frameResume
	frameAfterRemoveRow
)

// frame is one entry of the control stack. a holds the column or row
// index the frame kind needs (c for AfterColumnChoice/AfterRemoveRow,
// r for AfterAddOrReplaceRow); Start and Resume need no extra data.
type frame struct {
	kind frameKind
	a    int
}
