package tableview

import (
	"fmt"
	"slices"
)

// VetoFunc can reject a change of the displayed columns
// by returning an error.
type VetoFunc func(columns []string) error

// ColumnLayout maps display column positions to the application
// indices of the declared Columns.
//
// The permutation is derived from the ordered list of displayed column
// names. Every change of that list marks the permutation stale
// and the next read rebuilds it.
type ColumnLayout struct {
	columns      *Columns
	names        []string
	permutation  []int // nil if stale
	fixedDefault int
	fixedUser    int // negative if not set
	veto         VetoFunc
	onHidden     func(hidden []string)
}

// NewColumnLayout returns a layout displaying the VisibleNames of columns.
// fixedColumns is the default number of frozen leading columns.
func NewColumnLayout(columns *Columns, fixedColumns int) *ColumnLayout {
	return &ColumnLayout{
		columns:      columns,
		names:        columns.VisibleNames(),
		fixedDefault: fixedColumns,
		fixedUser:    -1,
	}
}

// SetVeto sets the hook consulted before every change of the displayed columns.
func (l *ColumnLayout) SetVeto(veto VetoFunc) { l.veto = veto }

// OnHidden sets a callback that is called with the names of the columns
// that were displayed before a SetColumns and are not anymore.
func (l *ColumnLayout) OnHidden(onHidden func(hidden []string)) { l.onHidden = onHidden }

// Columns returns the declared columns.
func (l *ColumnLayout) Columns() *Columns { return l.columns }

// Names returns a copy of the displayed column names in display order.
func (l *ColumnLayout) Names() []string { return slices.Clone(l.names) }

// Len returns the number of displayed columns.
func (l *ColumnLayout) Len() int { return len(l.names) }

// SetColumns sets the displayed columns in display order.
//
// All names must be declared, not Excluded, and unique,
// and all Mandatory columns must be included.
// If the veto hook rejects the change a *VetoError is returned.
// On error the layout is left unchanged.
func (l *ColumnLayout) SetColumns(names []string) error {
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		col, ok := l.columns.ByName(name)
		if !ok || col.Visibility == Excluded {
			return fmt.Errorf("%w: %q", ErrUnknownColumn, name)
		}
		if seen[name] {
			return fmt.Errorf("duplicate column %q", name)
		}
		seen[name] = true
	}
	for _, name := range l.columns.MandatoryNames() {
		if !seen[name] {
			return fmt.Errorf("%w: %q", ErrMandatoryColumn, name)
		}
	}
	if l.veto != nil {
		if err := l.veto(slices.Clone(names)); err != nil {
			return &VetoError{Columns: slices.Clone(names), Err: err}
		}
	}

	var hidden []string
	for _, name := range l.names {
		if !seen[name] {
			hidden = append(hidden, name)
		}
	}
	l.names = slices.Clone(names)
	l.permutation = nil
	if len(hidden) > 0 && l.onHidden != nil {
		l.onHidden(hidden)
	}
	return nil
}

// MoveColumns moves the display columns from first to last inclusive
// in front of the display column insertBefore,
// where insertBefore == Len() moves them to the end.
// Moving a range to a destination within itself is a no-op.
func (l *ColumnLayout) MoveColumns(first, last, insertBefore int) error {
	if first < 0 || first > last || last >= len(l.names) || insertBefore < 0 || insertBefore > len(l.names) {
		return fmt.Errorf("%w: move columns %d..%d before %d of %d", ErrInvalidRange, first, last, insertBefore, len(l.names))
	}
	if insertBefore >= first && insertBefore <= last+1 {
		return nil
	}
	moved := slices.Clone(l.names[first : last+1])
	names := slices.Delete(slices.Clone(l.names), first, last+1)
	target := insertBefore
	if insertBefore > last {
		target -= len(moved)
	}
	names = slices.Insert(names, target, moved...)
	return l.SetColumns(names)
}

// Permutation returns the application column index
// for every display column position.
func (l *ColumnLayout) Permutation() []int {
	l.rebuild()
	return slices.Clone(l.permutation)
}

// ApplicationIndex returns the application column index
// of the display column position.
func (l *ColumnLayout) ApplicationIndex(display int) int {
	l.rebuild()
	return l.permutation[display]
}

// DisplayIndex returns the display position of an
// application column index or -1 if not displayed.
func (l *ColumnLayout) DisplayIndex(application int) int {
	l.rebuild()
	return slices.Index(l.permutation, application)
}

// SetFixedColumns overrides the number of frozen leading columns.
// A negative n removes the override.
func (l *ColumnLayout) SetFixedColumns(n int) { l.fixedUser = n }

// FixedColumns returns the number of frozen leading columns:
// the minimum of the user override if set and the default,
// clamped to the number of displayed columns.
func (l *ColumnLayout) FixedColumns() int {
	n := l.fixedDefault
	if l.fixedUser >= 0 {
		n = min(n, l.fixedUser)
	}
	return max(0, min(n, len(l.names)))
}

func (l *ColumnLayout) rebuild() {
	if l.permutation != nil {
		return
	}
	permutation := make([]int, len(l.names))
	used := make([]bool, l.columns.Len())
	for i, name := range l.names {
		col, ok := l.columns.ByName(name)
		if !ok {
			panic(fmt.Sprintf("displayed column %q is not declared", name))
		}
		if col.Index < 0 || col.Index >= len(used) || used[col.Index] {
			panic(fmt.Sprintf("invalid application index %d for column %q", col.Index, name))
		}
		used[col.Index] = true
		permutation[i] = col.Index
	}
	l.permutation = permutation
}
