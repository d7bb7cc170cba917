package tableview

import (
	"fmt"
	"reflect"
	"unicode/utf8"
)

// CellString formats a cell value as string.
// nil values and nil pointers are formatted as empty string,
// non nil pointers are dereferenced.
func CellString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		if ValueIsNil(reflect.ValueOf(v)) {
			return ""
		}
		return v.String()
	}
	v := reflect.ValueOf(value)
	if ValueIsNil(v) {
		return ""
	}
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	return fmt.Sprint(v.Interface())
}

// ViewStrings returns the cells of view formatted with CellString,
// optionally prefixed by a row with the column titles.
func ViewStrings(view View, addHeaderRow bool) (rows [][]string) {
	numCols := len(view.Columns())
	if addHeaderRow {
		rows = append(rows, append([]string(nil), view.Columns()...))
	}
	for row := 0; row < view.NumRows(); row++ {
		rowStrs := make([]string, numCols)
		for col := range rowStrs {
			rowStrs[col] = CellString(view.Cell(row, col))
		}
		rows = append(rows, rowStrs)
	}
	return rows
}

// StringColumnWidths returns the column widths of the passed
// table as count of UTF-8 runes.
// If numCols is negative, then the maximum row length is used.
func StringColumnWidths(rows [][]string, numCols int) []int {
	if numCols < 0 {
		for _, row := range rows {
			if rowCols := len(row); rowCols > numCols {
				numCols = rowCols
			}
		}
		if numCols <= 0 {
			return nil
		}
	}
	colWidths := make([]int, numCols)
	for row := range rows {
		for col := 0; col < numCols && col < len(rows[row]); col++ {
			numRunes := utf8.RuneCountInString(rows[row][col])
			if numRunes > colWidths[col] {
				colWidths[col] = numRunes
			}
		}
	}
	return colWidths
}
