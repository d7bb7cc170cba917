package tableview

import (
	"log/slog"
	"slices"
	"strings"
)

// SortEntry is one sort key of a SortSpec.
type SortEntry struct {
	Column    string
	Ascending bool
}

func (e SortEntry) String() string {
	if e.Ascending {
		return e.Column + " asc"
	}
	return e.Column + " desc"
}

// SortSpec is a priority ordered list of sort keys, highest priority first.
// The zero value is an empty SortSpec that keeps the source order.
type SortSpec struct {
	entries []SortEntry
}

// Add appends column with direction to the spec.
// If the column is already part of the spec, only its direction is updated.
// Columns that are not sortable are dropped and false is returned.
func (s *SortSpec) Add(column *Column, ascending bool) bool {
	if !column.Sortable() {
		return false
	}
	if i := s.index(column.Name); i >= 0 {
		s.entries[i].Ascending = ascending
		return true
	}
	s.entries = append(s.entries, SortEntry{Column: column.Name, Ascending: ascending})
	return true
}

// Remove removes the entry for a column and returns if it existed.
func (s *SortSpec) Remove(column string) bool {
	i := s.index(column)
	if i < 0 {
		return false
	}
	s.entries = slices.Delete(s.entries, i, i+1)
	return true
}

// Clear removes all entries.
func (s *SortSpec) Clear() { s.entries = nil }

// Len returns the number of entries.
func (s SortSpec) Len() int { return len(s.entries) }

// Entries returns a copy of the entries, highest priority first.
func (s SortSpec) Entries() []SortEntry { return slices.Clone(s.entries) }

// Direction returns the direction of a column within the spec.
func (s SortSpec) Direction(column string) (ascending, ok bool) {
	if i := s.index(column); i >= 0 {
		return s.entries[i].Ascending, true
	}
	return false, false
}

func (s SortSpec) String() string {
	strs := make([]string, len(s.entries))
	for i, e := range s.entries {
		strs[i] = e.String()
	}
	return strings.Join(strs, ", ")
}

func (s SortSpec) index(column string) int {
	return slices.IndexFunc(s.entries, func(e SortEntry) bool { return e.Column == column })
}

// RowOrdering compares two source row indices.
type RowOrdering func(a, b int) int

// ComposeOrdering composes the entries of spec into one RowOrdering
// over the rows of source.
//
// Every entry maps rows through its column's sort key, compares them with
// the column's comparator for the direction, and falls through to the
// entries of lower priority on ties. Rows equal on all keys compare as 0
// so a stable sort keeps their source order.
//
// Entries referring to columns that are unknown to columns, not sortable,
// or missing in source are skipped and logged as warning.
func ComposeOrdering(spec SortSpec, columns *Columns, source View, logger *slog.Logger) RowOrdering {
	if logger == nil {
		logger = slog.Default()
	}
	ordering := RowOrdering(func(a, b int) int { return 0 })
	for i := len(spec.entries) - 1; i >= 0; i-- {
		entry := spec.entries[i]
		column, ok := columns.ByName(entry.Column)
		if !ok {
			logger.Warn("skipping sort key of unknown column", slog.String("column", entry.Column))
			continue
		}
		if !column.Sortable() {
			logger.Warn("skipping sort key of unsortable column", slog.String("column", entry.Column))
			continue
		}
		key := column.SortKey
		if key == nil {
			col := ColumnIndex(source, column.Name)
			if col < 0 {
				logger.Warn("skipping sort key of column missing in rows", slog.String("column", entry.Column))
				continue
			}
			key = func(source View, row int) any { return source.Cell(row, col) }
		}
		var (
			compare = column.Comparator(entry.Ascending)
			next    = ordering
		)
		ordering = func(a, b int) int {
			if c := compare(key(source, a), key(source, b)); c != 0 {
				return c
			}
			return next(a, b)
		}
	}
	return ordering
}

// SortRows sorts rows in place with a stable sort using ordering.
func SortRows(rows []int, ordering RowOrdering) {
	slices.SortStableFunc(rows, ordering)
}
