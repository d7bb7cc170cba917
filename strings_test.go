package tableview

import (
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCellString(t *testing.T) {
	var (
		nilAddr *netip.Addr
		str     = "pointed"
	)
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "nil", value: nil, want: ""},
		{name: "string", value: "Hello", want: "Hello"},
		{name: "int", value: 42, want: "42"},
		{name: "float", value: 0.5, want: "0.5"},
		{name: "bool", value: true, want: "true"},
		{name: "Stringer", value: netip.MustParseAddr("127.0.0.1"), want: "127.0.0.1"},
		{name: "nil Stringer pointer", value: nilAddr, want: ""},
		{name: "string pointer", value: &str, want: "pointed"},
		{name: "duration", value: time.Second, want: "1s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, CellString(tt.value))
		})
	}
}

func TestViewStrings(t *testing.T) {
	tests := []struct {
		name         string
		view         View
		addHeaderRow bool
		want         [][]string
	}{
		{
			name: "empty no header",
			view: &StringsView{},
			want: nil,
		},
		{
			name:         "header only",
			view:         &StringsView{Cols: []string{"Hello", "World", "!"}},
			addHeaderRow: true,
			want:         [][]string{{"Hello", "World", "!"}},
		},
		{
			name: "multiline with header",
			view: &StringsView{
				Cols: []string{"Hello", "World", "!"},
				Rows: [][]string{{"A", "B", "C"}, {"First col only"}},
			},
			addHeaderRow: true,
			want: [][]string{
				{"Hello", "World", "!"},
				{"A", "B", "C"},
				{"First col only", "", ""},
			},
		},
		{
			name: "any values",
			view: &AnyValuesView{
				Cols: []string{"Int", "Nil"},
				Rows: [][]any{{1, nil}},
			},
			want: [][]string{{"1", ""}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ViewStrings(tt.view, tt.addHeaderRow))
		})
	}
}

func TestStringColumnWidths(t *testing.T) {
	rows := [][]string{
		{"Name", "Stadt"},
		{"Jürgen", "Wien", "extra"},
		{"Al"},
	}
	require.Equal(t, []int{6, 5, 5}, StringColumnWidths(rows, -1))
	require.Equal(t, []int{6}, StringColumnWidths(rows, 1))
	require.Nil(t, StringColumnWidths(nil, -1))
}
