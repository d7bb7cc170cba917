package tableview

import (
	"strings"
)

// StringsView is a View implementation that uses strings as cell values.
// It is the row source produced when loading text based tables like CSV.
//
// The Cols field defines the column names and determines the number of columns.
// Each element in Rows represents a row of data.
//
// StringsView is sparse: a row within Rows can have fewer elements
// than Cols. The cells beyond the end of such a row do not exist,
// Cell returns nil for them and CellExists returns false.
// This is how filters learn that they are inapplicable to a row
// instead of matching an empty string.
//
// Example:
//
//	view := &tableview.StringsView{
//	    Cols: []string{"A", "B", "C"},
//	    Rows: [][]string{
//	        {"1", "2", "3"},
//	        {"4", ""}, // B exists but is empty, C does not exist
//	    },
//	}
//	view.Cell(1, 1)       // ""
//	view.Cell(1, 2)       // nil
//	view.CellExists(1, 2) // false
type StringsView struct {
	// Tit is the title of this view, returned by the Title() method.
	Tit string

	// Cols contains the column names defining both the column headers
	// and the number of columns in this view.
	Cols []string

	// Rows contains the data rows, where each row is a slice of strings.
	Rows [][]string
}

var (
	_ View        = new(StringsView)
	_ CellExister = new(StringsView)
)

// NewStringsView creates a new StringsView.
//
// If no cols are passed and rows is not empty, the first row
// is used as column names and removed from the data rows.
// Column names have leading and trailing whitespace trimmed.
func NewStringsView(title string, rows [][]string, cols ...string) *StringsView {
	if len(cols) == 0 && len(rows) > 0 {
		cols = rows[0]
		rows = rows[1:]
	}
	for i, col := range cols {
		cols[i] = strings.TrimSpace(col)
	}
	return &StringsView{Tit: title, Cols: cols, Rows: rows}
}

func (view *StringsView) Title() string     { return view.Tit }
func (view *StringsView) Columns() []string { return view.Cols }
func (view *StringsView) NumRows() int      { return len(view.Rows) }

// Cell returns the string at row and col as any
// or nil if the cell does not exist.
func (view *StringsView) Cell(row, col int) any {
	if !view.CellExists(row, col) {
		return nil
	}
	return view.Rows[row][col]
}

// CellExists implements CellExister.
func (view *StringsView) CellExists(row, col int) bool {
	return row >= 0 && col >= 0 && row < len(view.Rows) && col < len(view.Cols) && col < len(view.Rows[row])
}
