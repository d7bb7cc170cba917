package tableview

import "reflect"

// View is the row source of a table.
// Rows and columns are addressed by zero based index,
// Cell returns nil for out of range indices.
type View interface {
	Title() string
	Columns() []string
	NumRows() int
	Cell(row, col int) any
}

// CellExister can be implemented by a View to tell
// a missing cell apart from a cell holding a nil or empty value.
type CellExister interface {
	CellExists(row, col int) bool
}

// CellExists returns if the cell at row and col exists in view.
// If view implements CellExister then its result is returned,
// else a cell exists if it has a non nil value.
func CellExists(view View, row, col int) bool {
	if e, ok := view.(CellExister); ok {
		return e.CellExists(row, col)
	}
	if row < 0 || col < 0 || row >= view.NumRows() || col >= len(view.Columns()) {
		return false
	}
	return !ValueIsNil(reflect.ValueOf(view.Cell(row, col)))
}

// ColumnIndex returns the index of the column
// with the passed title or -1 if view has no such column.
func ColumnIndex(view View, column string) int {
	for i, title := range view.Columns() {
		if title == column {
			return i
		}
	}
	return -1
}

// RowValues returns all cells of a row as slice.
func RowValues(view View, row int) []any {
	numCols := len(view.Columns())
	values := make([]any, numCols)
	for col := range values {
		values[col] = view.Cell(row, col)
	}
	return values
}
