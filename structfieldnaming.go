package tableview

import (
	"fmt"
	"reflect"
	"strings"
)

// StructFieldNaming titles the columns of a StructRowsView
// after the fields of its row struct type.
//
// A nil *StructFieldNaming titles every exported field
// by its Go name and excludes none.
type StructFieldNaming struct {
	// Tag names the struct tag whose first comma separated
	// element titles a column, like "col" for `col:"Amount,omitempty"`.
	// An empty Tag or a missing or empty tag value falls back to Untagged.
	Tag string
	// Ignore is the title that excludes a field from the columns,
	// usually "-".
	Ignore string
	// Untagged titles fields without a usable tag.
	// The Go field name is used if Untagged is nil.
	Untagged func(fieldName string) (column string)
}

func (n *StructFieldNaming) String() string {
	if n == nil {
		return `StructFieldNaming{Tag: "", Ignore: ""}`
	}
	return fmt.Sprintf("StructFieldNaming{Tag: %#v, Ignore: %#v}", n.Tag, n.Ignore)
}

// ColumnTitle returns the column title of a struct field
// and false if the field is excluded by Ignore.
func (n *StructFieldNaming) ColumnTitle(field reflect.StructField) (title string, ok bool) {
	if n == nil {
		return field.Name, true
	}
	title = n.taggedTitle(field)
	if title == "" {
		title = field.Name
		if n.Untagged != nil {
			title = n.Untagged(field.Name)
		}
	}
	if n.Ignore != "" && title == n.Ignore {
		return "", false
	}
	return title, true
}

func (n *StructFieldNaming) taggedTitle(field reflect.StructField) string {
	if n.Tag == "" {
		return ""
	}
	tag, _ := field.Tag.Lookup(n.Tag)
	title, _, _ := strings.Cut(tag, ",")
	return title
}

// StructColumns returns the column titles of a struct type
// together with the index of each column's field
// in the order of StructFieldTypes.
func (n *StructFieldNaming) StructColumns(structType reflect.Type) (columns []string, fields []int) {
	for i, field := range StructFieldTypes(structType) {
		title, ok := n.ColumnTitle(field)
		if !ok {
			continue
		}
		columns = append(columns, title)
		fields = append(fields, i)
	}
	return columns, fields
}
