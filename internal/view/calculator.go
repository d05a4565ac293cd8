package view

import "sort"

// ManipulationIndexCalculator intersects the safe-index sets of every
// view property and answers next_index queries against the result. It
// is built once per raw sequence and reused across many next_index
// calls — that sequence never changes underneath a calculator.
type ManipulationIndexCalculator struct {
	n      int
	sorted []int
}

// NewManipulationIndexCalculator intersects the given safe-index sets.
// Panics if given no sets or sets of mismatched width.
func NewManipulationIndexCalculator(sets ...*IndexSet) *ManipulationIndexCalculator {
	if len(sets) == 0 {
		panic("view: NewManipulationIndexCalculator requires at least one IndexSet")
	}
	result := sets[0]
	for _, s := range sets[1:] {
		result = result.Intersect(s)
	}
	return &ManipulationIndexCalculator{n: result.n, sorted: result.Sorted()}
}

// Indices returns every manipulation index, in ascending order.
func (c *ManipulationIndexCalculator) Indices() []int {
	return append([]int(nil), c.sorted...)
}

// NextIndex returns the smallest manipulation index >= threshold, and
// whether one exists. strict is accepted for symmetry with the
// tool-call-matching strict/lenient mode switch described alongside it;
// the calculator itself has nothing to relax, since safe_indices are
// already the intersection of every property, so strict is currently
// unused by the search itself but kept so callers can thread a single
// mode value through without a branch at the call site.
func (c *ManipulationIndexCalculator) NextIndex(threshold int, strict bool) (int, bool) {
	_ = strict
	i := sort.SearchInts(c.sorted, threshold)
	if i >= len(c.sorted) {
		return 0, false
	}
	return c.sorted[i], true
}
