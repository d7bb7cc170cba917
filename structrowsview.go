package tableview

import (
	"fmt"
	"reflect"
)

var (
	_ View        = new(StructRowsView)
	_ CellExister = new(StructRowsView)
)

// StructRowsView is a View over a slice or array of structs
// (or pointers to structs) using reflection.
//
// Every exported struct field, including the fields of anonymously
// embedded structs, becomes a column titled by a StructFieldNaming.
// Fields titled with the naming's Ignore value are skipped.
// A cell does not exist if the row is a nil pointer
// or the field value is nil (nil pointer, interface, map, slice...).
type StructRowsView struct {
	title   string
	columns []string
	fields  []int         // struct field index per column
	rows    reflect.Value // slice or array of structs
}

// NewStructRowsView returns a StructRowsView for rows which must be
// a slice or array of structs or struct pointers.
// A nil naming uses the struct field names as column titles.
func NewStructRowsView(title string, rows any, naming *StructFieldNaming) (*StructRowsView, error) {
	rowsVal := reflect.ValueOf(rows)
	if rowsVal.Kind() != reflect.Slice && rowsVal.Kind() != reflect.Array {
		return nil, fmt.Errorf("rows must be a slice or array, got %T", rows)
	}
	structType := rowsVal.Type().Elem()
	if structType.Kind() == reflect.Ptr {
		structType = structType.Elem()
	}
	if structType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("rows must contain structs, got %s", rowsVal.Type())
	}
	view := &StructRowsView{title: title, rows: rowsVal}
	view.columns, view.fields = naming.StructColumns(structType)
	return view, nil
}

func (view *StructRowsView) Title() string     { return view.title }
func (view *StructRowsView) Columns() []string { return view.columns }
func (view *StructRowsView) NumRows() int      { return view.rows.Len() }

func (view *StructRowsView) Cell(row, col int) any {
	v := view.field(row, col)
	if ValueIsNil(v) {
		return nil
	}
	return v.Interface()
}

// CellExists implements CellExister.
func (view *StructRowsView) CellExists(row, col int) bool {
	return !ValueIsNil(view.field(row, col))
}

func (view *StructRowsView) field(row, col int) reflect.Value {
	if row < 0 || col < 0 || row >= view.rows.Len() || col >= len(view.columns) {
		return reflect.Value{}
	}
	strct := view.rows.Index(row)
	if strct.Kind() == reflect.Ptr {
		if strct.IsNil() {
			return reflect.Value{}
		}
		strct = strct.Elem()
	}
	return StructFieldValues(strct)[view.fields[col]]
}
