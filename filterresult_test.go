package tableview

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testFilterResult(size int, denies, inapplicable []int, counts map[*ColumnFilterHolder]CountState) FilterResult {
	r := newFilterResult(size)
	for _, i := range denies {
		r.denies.Add(uint32(i))
	}
	for _, i := range inapplicable {
		r.inapplicable.Add(uint32(i))
	}
	for h, s := range counts {
		r.counts[h] = s
	}
	return r
}

func TestFilterResult_Admission(t *testing.T) {
	tests := []struct {
		name          string
		result        FilterResult
		wantAdmitted  bool
		wantCountable bool
	}{
		{name: "no filters", result: testFilterResult(0, nil, nil, nil), wantAdmitted: true, wantCountable: true},
		{name: "all pass", result: testFilterResult(3, nil, nil, nil), wantAdmitted: true, wantCountable: true},
		{name: "one denial", result: testFilterResult(3, []int{1}, nil, nil), wantAdmitted: false, wantCountable: true},
		{name: "two denials", result: testFilterResult(3, []int{0, 2}, nil, nil), wantAdmitted: false, wantCountable: false},
		{name: "inapplicable", result: testFilterResult(3, nil, []int{2}, nil), wantAdmitted: false, wantCountable: false},
		{name: "inapplicable and denial", result: testFilterResult(3, []int{0}, []int{2}, nil), wantAdmitted: false, wantCountable: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.wantAdmitted, tt.result.Admitted())
			require.Equal(t, tt.wantCountable, tt.result.Countable())
		})
	}
}

func TestFilterResult_Or(t *testing.T) {
	h1, h2 := new(ColumnFilterHolder), new(ColumnFilterHolder)
	a := testFilterResult(3, []int{0}, []int{1, 2}, map[*ColumnFilterHolder]CountState{
		h1: CountValue("x"),
		h2: CountAll,
	})
	b := testFilterResult(3, []int{1}, []int{2}, map[*ColumnFilterHolder]CountState{
		h1: CountAll,
		h2: CountValue("y"),
	})

	merged := a.Or(b)
	require.True(t, merged.Denies(0))
	require.True(t, merged.Denies(1))
	require.False(t, merged.Denies(2))
	require.False(t, merged.Inapplicable(0))
	require.False(t, merged.Inapplicable(1))
	require.True(t, merged.Inapplicable(2))
	require.True(t, merged.CountState(h1).Equal(CountValue("x")))
	require.True(t, merged.CountState(h2).IsNoCount())

	// Inputs are unchanged
	require.False(t, a.Denies(1))
	require.True(t, a.Inapplicable(1))
}

func TestFilterResult_And(t *testing.T) {
	h1, h2 := new(ColumnFilterHolder), new(ColumnFilterHolder)
	a := testFilterResult(2, []int{0, 1}, []int{0}, map[*ColumnFilterHolder]CountState{
		h1: CountValue("x"),
		h2: CountAll,
	})
	b := testFilterResult(2, []int{1}, []int{0, 1}, map[*ColumnFilterHolder]CountState{
		h1: CountValue("y"),
	})

	merged := a.And(b)
	require.False(t, merged.Denies(0))
	require.True(t, merged.Denies(1))
	require.True(t, merged.Inapplicable(0))
	require.False(t, merged.Inapplicable(1))
	require.True(t, merged.CountState(h1).Equal(CountValue("y")))
	require.True(t, merged.CountState(h2).IsNoCount(), "count states are replaced, not merged")
}

func TestFilterResult_SizeMismatchPanics(t *testing.T) {
	a := testFilterResult(2, nil, nil, nil)
	b := testFilterResult(3, nil, nil, nil)
	require.Panics(t, func() { a.Or(b) })
	require.Panics(t, func() { a.And(b) })
	require.Panics(t, func() { a.Denies(2) })
}
