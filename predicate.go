package tableview

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// Predicate is a candidate option of a ValueFilter.
type Predicate interface {
	Label() string
	Match(value any) bool
}

// PredicateFunc wraps a function as Predicate.
func PredicateFunc(label string, match func(value any) bool) Predicate {
	return predicateFunc{label: label, match: match}
}

type predicateFunc struct {
	label string
	match func(any) bool
}

func (p predicateFunc) Label() string        { return p.label }
func (p predicateFunc) Match(value any) bool { return p.match(value) }

// Equals matches values that are equal to v
// or that compare equal with CompareValues.
func Equals(v any) Predicate {
	return PredicateFunc(CellString(v), func(value any) bool {
		return reflect.DeepEqual(value, v) || (value != nil && CompareValues(value, v) == 0)
	})
}

// OneOf matches values equal to any of vs.
func OneOf(vs ...any) Predicate {
	labels := make([]string, len(vs))
	for i, v := range vs {
		labels[i] = CellString(v)
	}
	return PredicateFunc(strings.Join(labels, "|"), func(value any) bool {
		return slices.ContainsFunc(vs, func(v any) bool {
			return reflect.DeepEqual(value, v) || (value != nil && CompareValues(value, v) == 0)
		})
	})
}

// Contains matches values whose CellString contains text
// ignoring case. For the []any values of a global filter
// any of the cells has to contain text.
func Contains(text string) Predicate {
	lower := strings.ToLower(text)
	var match func(value any) bool
	match = func(value any) bool {
		if cells, ok := value.([]any); ok {
			return slices.ContainsFunc(cells, match)
		}
		return strings.Contains(strings.ToLower(CellString(value)), lower)
	}
	return PredicateFunc(fmt.Sprintf("*%s*", text), match)
}

// Between matches non nil values within the inclusive range
// from lo to hi compared with CompareValues.
func Between(lo, hi any) Predicate {
	return PredicateFunc(fmt.Sprintf("%v..%v", lo, hi), func(value any) bool {
		if ValueIsNil(reflect.ValueOf(value)) {
			return false
		}
		return CompareValues(value, lo) >= 0 && CompareValues(value, hi) <= 0
	})
}

// IsEmpty matches nil values and values formatted as empty string.
func IsEmpty() Predicate {
	return PredicateFunc("(empty)", func(value any) bool {
		return strings.TrimSpace(CellString(value)) == ""
	})
}

// DistinctValueOptions returns an Equals option for every
// distinct existing value of a column in view,
// in order of first occurrence.
func DistinctValueOptions(view View, column string) []Predicate {
	col := ColumnIndex(view, column)
	if col < 0 {
		return nil
	}
	var (
		options []Predicate
		seen    = make(map[string]bool)
	)
	for row := 0; row < view.NumRows(); row++ {
		if !CellExists(view, row, col) {
			continue
		}
		value := view.Cell(row, col)
		label := CellString(value)
		if seen[label] {
			continue
		}
		seen[label] = true
		options = append(options, Equals(value))
	}
	return options
}
