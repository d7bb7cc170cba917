package tableview

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// MergeOp selects how FilterResults of a group of rows are merged.
type MergeOp int

const (
	// MergeOr unites denials and merges count states.
	MergeOr MergeOp = iota
	// MergeAnd intersects denials and takes the count states of the last result.
	MergeAnd
)

func (op MergeOp) String() string {
	switch op {
	case MergeOr:
		return "OR"
	case MergeAnd:
		return "AND"
	}
	return fmt.Sprintf("MergeOp(%d)", int(op))
}

// FilterResult is the outcome of evaluating the active filters
// of a revalidation pass against one row or a group of rows.
//
// Bit i of the denies and inapplicable vectors refers to the
// active filter i of the pass. The vectors are sized by the number
// of active filters at the start of the pass and results of passes
// with different sizes must not be merged.
//
// A FilterResult is an immutable value, Or and And return new results.
type FilterResult struct {
	size         int
	denies       *roaring.Bitmap
	inapplicable *roaring.Bitmap
	counts       map[*ColumnFilterHolder]CountState
}

func newFilterResult(size int) FilterResult {
	return FilterResult{
		size:         size,
		denies:       roaring.New(),
		inapplicable: roaring.New(),
		counts:       make(map[*ColumnFilterHolder]CountState),
	}
}

// Size returns the number of active filters the result was evaluated against.
func (r FilterResult) Size() int { return r.size }

// Denies returns if the active filter i rejects the row.
func (r FilterResult) Denies(i int) bool {
	r.checkIndex(i)
	return r.denies.Contains(uint32(i))
}

// Inapplicable returns if the cell of the active filter i
// does not exist for the row.
func (r FilterResult) Inapplicable(i int) bool {
	r.checkIndex(i)
	return r.inapplicable.Contains(uint32(i))
}

// NumDenials returns the number of active filters rejecting the row.
func (r FilterResult) NumDenials() int {
	return int(r.denies.GetCardinality())
}

// Admitted returns if every active filter is applicable
// and none of them denies the row.
func (r FilterResult) Admitted() bool {
	return r.inapplicable.IsEmpty() && r.denies.IsEmpty()
}

// Countable returns if the row contributes to candidate value histograms,
// which is the case if all active filters are applicable
// and at most one of them denies the row.
// Relaxing that single filter would admit the row.
func (r FilterResult) Countable() bool {
	return r.inapplicable.IsEmpty() && r.denies.GetCardinality() <= 1
}

// CountState returns the recorded state for holder
// or NoCount if none was recorded.
func (r FilterResult) CountState(holder *ColumnFilterHolder) CountState {
	return r.counts[holder]
}

// Or merges other into r for a group of rows:
// a filter denies the group if it denies any row,
// it is inapplicable only if inapplicable to both,
// and count states are merged with CountState.Merge
// with the states of r on the receiving side.
func (r FilterResult) Or(other FilterResult) FilterResult {
	r.checkSize(other)
	merged := FilterResult{
		size:         r.size,
		denies:       roaring.Or(r.denies, other.denies),
		inapplicable: roaring.And(r.inapplicable, other.inapplicable),
		counts:       make(map[*ColumnFilterHolder]CountState, len(r.counts)),
	}
	for holder, mine := range r.counts {
		merged.counts[holder] = mine.Merge(other.counts[holder])
	}
	return merged
}

// And intersects r with other for a group of rows:
// a filter denies the group only if it denies both,
// it is inapplicable only if inapplicable to both,
// and the count states are replaced by the ones of other.
func (r FilterResult) And(other FilterResult) FilterResult {
	r.checkSize(other)
	merged := FilterResult{
		size:         r.size,
		denies:       roaring.And(r.denies, other.denies),
		inapplicable: roaring.And(r.inapplicable, other.inapplicable),
		counts:       make(map[*ColumnFilterHolder]CountState, len(other.counts)),
	}
	for holder, theirs := range other.counts {
		merged.counts[holder] = theirs
	}
	return merged
}

// Merge merges other into r using op.
func (r FilterResult) Merge(other FilterResult, op MergeOp) FilterResult {
	if op == MergeAnd {
		return r.And(other)
	}
	return r.Or(other)
}

func (r FilterResult) String() string {
	return fmt.Sprintf("FilterResult{size: %d, denies: %v, inapplicable: %v}", r.size, r.denies.ToArray(), r.inapplicable.ToArray())
}

func (r FilterResult) checkIndex(i int) {
	if i < 0 || i >= r.size {
		panic(fmt.Sprintf("filter index %d out of range for FilterResult of size %d", i, r.size))
	}
}

func (r FilterResult) checkSize(other FilterResult) {
	if r.size != other.size {
		panic(fmt.Sprintf("can't merge FilterResult of size %d with size %d", r.size, other.size))
	}
}
