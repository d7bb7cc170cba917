package tableview

import "fmt"

// Visibility of a column in the display.
type Visibility int

const (
	// Visible columns are displayed by default and can be hidden.
	Visible Visibility = iota
	// Hidden columns are not displayed by default but can be shown.
	Hidden
	// Mandatory columns are always displayed.
	Mandatory
	// Excluded columns are never displayed, filtered or sorted.
	Excluded
)

func (v Visibility) String() string {
	switch v {
	case Visible:
		return "visible"
	case Hidden:
		return "hidden"
	case Mandatory:
		return "mandatory"
	case Excluded:
		return "excluded"
	}
	return fmt.Sprintf("Visibility(%d)", int(v))
}

// Comparator compares two sort keys and returns
// a negative number if a < b, zero if a == b,
// and a positive number if a > b.
type Comparator func(a, b any) int

// Column is the stable application level identity of a table column.
//
// Columns are declared once per table configuration
// and never change, only their display position does.
type Column struct {
	// Name is unique within a table and matches
	// the column title of the row source View.
	Name string

	// Title for display, defaults to Name.
	Title string

	// Index is the application index of the column,
	// assigned by NewColumns in declaration order.
	Index int

	Visibility Visibility

	// NotSortable columns are dropped when added to a SortSpec.
	NotSortable bool

	// Ascending compares sort keys in ascending order.
	// If nil, then CompareValues is used.
	Ascending Comparator

	// Descending compares sort keys in descending order.
	// If nil, then the inversion of Ascending is used.
	Descending Comparator

	// SortKey maps a row to its sort key.
	// If nil, then the raw cell value is used.
	SortKey func(source View, row int) any
}

// DisplayTitle returns Title or Name if Title is empty.
func (c *Column) DisplayTitle() string {
	if c.Title != "" {
		return c.Title
	}
	return c.Name
}

// Sortable returns if the column can be part of a SortSpec.
func (c *Column) Sortable() bool {
	return !c.NotSortable && c.Visibility != Excluded
}

// Comparator returns the comparator for the passed direction.
func (c *Column) Comparator(ascending bool) Comparator {
	asc := c.Ascending
	if asc == nil {
		asc = CompareValues
	}
	switch {
	case ascending:
		return asc
	case c.Descending != nil:
		return c.Descending
	default:
		return func(a, b any) int { return -asc(a, b) }
	}
}

// Columns is the immutable set of declared columns of a table.
type Columns struct {
	list   []*Column
	byName map[string]*Column
}

// NewColumns returns the Columns for the passed declarations.
// The Index of every column is set to its position.
// Column names must be non empty and unique.
func NewColumns(columns ...Column) (*Columns, error) {
	c := &Columns{
		list:   make([]*Column, len(columns)),
		byName: make(map[string]*Column, len(columns)),
	}
	for i := range columns {
		col := columns[i]
		if col.Name == "" {
			return nil, fmt.Errorf("column %d has no name", i)
		}
		if _, exists := c.byName[col.Name]; exists {
			return nil, fmt.Errorf("duplicate column name %q", col.Name)
		}
		col.Index = i
		c.list[i] = &col
		c.byName[col.Name] = &col
	}
	return c, nil
}

// MustNewColumns is like NewColumns but panics on error.
func MustNewColumns(columns ...Column) *Columns {
	c, err := NewColumns(columns...)
	if err != nil {
		panic(err)
	}
	return c
}

// ColumnsOfView declares a visible sortable column
// for every column of view.
func ColumnsOfView(view View) (*Columns, error) {
	titles := view.Columns()
	columns := make([]Column, len(titles))
	for i, title := range titles {
		columns[i] = Column{Name: title}
	}
	return NewColumns(columns...)
}

// Len returns the number of declared columns.
func (c *Columns) Len() int { return len(c.list) }

// At returns the column with the passed application index.
func (c *Columns) At(index int) *Column { return c.list[index] }

// ByName returns the column with the passed name.
func (c *Columns) ByName(name string) (col *Column, ok bool) {
	col, ok = c.byName[name]
	return col, ok
}

// Names returns the names of all columns in declaration order.
func (c *Columns) Names() []string {
	names := make([]string, len(c.list))
	for i, col := range c.list {
		names[i] = col.Name
	}
	return names
}

// VisibleNames returns the names of the columns displayed by default,
// which are all columns that are neither Hidden nor Excluded.
func (c *Columns) VisibleNames() []string {
	var names []string
	for _, col := range c.list {
		if col.Visibility == Visible || col.Visibility == Mandatory {
			names = append(names, col.Name)
		}
	}
	return names
}

// MandatoryNames returns the names of all Mandatory columns.
func (c *Columns) MandatoryNames() []string {
	var names []string
	for _, col := range c.list {
		if col.Visibility == Mandatory {
			names = append(names, col.Name)
		}
	}
	return names
}
