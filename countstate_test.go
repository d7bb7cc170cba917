package tableview

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCountState_Merge(t *testing.T) {
	tests := []struct {
		name   string
		mine   CountState
		theirs CountState
		want   CountState
	}{
		{name: "Value(x) with Value(x)", mine: CountValue("x"), theirs: CountValue("x"), want: CountValue("x")},
		{name: "Value(x) with Value(y)", mine: CountValue("x"), theirs: CountValue("y"), want: NoCount},
		{name: "Value(x) with NoCount", mine: CountValue("x"), theirs: NoCount, want: NoCount},
		{name: "Value(x) with CountAll", mine: CountValue("x"), theirs: CountAll, want: CountValue("x")},
		{name: "CountAll with Value(x)", mine: CountAll, theirs: CountValue("x"), want: NoCount},
		{name: "CountAll with NoCount", mine: CountAll, theirs: NoCount, want: NoCount},
		{name: "CountAll with CountAll", mine: CountAll, theirs: CountAll, want: CountAll},
		{name: "NoCount with NoCount", mine: NoCount, theirs: NoCount, want: NoCount},
		{name: "NoCount with CountAll", mine: NoCount, theirs: CountAll, want: NoCount},
		{name: "NoCount with Value(x)", mine: NoCount, theirs: CountValue("x"), want: NoCount},
		{name: "Value(1) with Value(int 1)", mine: CountValue(1), theirs: CountValue(1), want: CountValue(1)},
		{name: "Value(nil) with Value(nil)", mine: CountValue(nil), theirs: CountValue(nil), want: CountValue(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.mine.Merge(tt.theirs)
			require.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}

func TestCountState_MergeIsAsymmetric(t *testing.T) {
	x := CountValue("x")
	require.True(t, x.Merge(CountAll).Equal(x))
	require.True(t, CountAll.Merge(x).IsNoCount())
}

func TestCountState_Accessors(t *testing.T) {
	var zero CountState
	require.True(t, zero.IsNoCount())
	require.True(t, CountAll.IsCountAll())

	v, ok := CountValue(42).Value()
	require.True(t, ok)
	require.Equal(t, 42, v)

	_, ok = CountAll.Value()
	require.False(t, ok)

	require.Equal(t, "NoCount", NoCount.String())
	require.Equal(t, "CountAll", CountAll.String())
	require.Equal(t, "Value(a)", CountValue("a").String())
}
