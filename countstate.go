package tableview

import (
	"fmt"
	"reflect"
)

type countKind uint8

const (
	noCount countKind = iota
	countAll
	countValue
)

// CountState tells how a row contributes to the
// candidate value histogram of one filter.
//
// The zero value is NoCount.
type CountState struct {
	kind  countKind
	value any
}

var (
	// NoCount means the contribution is ambiguous
	// and the row must not be counted.
	NoCount = CountState{}

	// CountAll means the cell does not discriminate between
	// candidate values and the row counts toward every one of them.
	CountAll = CountState{kind: countAll}
)

// CountValue returns the CountState that counts
// the row only toward the candidate value v.
func CountValue(v any) CountState {
	return CountState{kind: countValue, value: v}
}

func (s CountState) IsNoCount() bool  { return s.kind == noCount }
func (s CountState) IsCountAll() bool { return s.kind == countAll }

// Value returns the value of a CountValue state.
func (s CountState) Value() (v any, ok bool) {
	return s.value, s.kind == countValue
}

// Equal returns if both states are of the same kind
// and CountValue states have deeply equal values.
func (s CountState) Equal(other CountState) bool {
	if s.kind != other.kind {
		return false
	}
	return s.kind != countValue || reflect.DeepEqual(s.value, other.value)
}

// Merge merges theirs into s and returns the result.
//
// Merge is not commutative:
//
//	Value(x).Merge(CountAll) == Value(x)
//	CountAll.Merge(Value(x)) == NoCount
//
// Equal states are kept, NoCount never changes, a Value merged with
// anything but CountAll or itself and CountAll merged with anything
// but itself become NoCount.
func (s CountState) Merge(theirs CountState) CountState {
	if s.Equal(theirs) {
		return s
	}
	switch {
	case s.kind == countValue && theirs.kind != countAll:
		return NoCount
	case s.kind == countAll && theirs.kind != countAll:
		return NoCount
	}
	return s
}

func (s CountState) String() string {
	switch s.kind {
	case noCount:
		return "NoCount"
	case countAll:
		return "CountAll"
	}
	return fmt.Sprintf("Value(%v)", s.value)
}
