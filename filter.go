package tableview

import (
	"maps"
	"slices"
)

// Filter restricts the rows of a table by the values of a column,
// or by whole rows in case of the global filter.
//
// A Filter is active if it currently restricts rows and visible if it
// is displayed without restricting rows, in which case it only collects
// candidate value counts. Counting happens between StartRevalidation
// and StopRevalidation.
type Filter interface {
	IsActive() bool
	IsVisible() bool

	// Accept returns if the filter admits a cell value.
	Accept(value any) bool

	// Count counts value toward every candidate it matches.
	Count(value any)
	// CountAll counts a row toward every candidate.
	CountAll()

	StartRevalidation(matchCounting bool)
	StopRevalidation()
}

var _ Filter = new(ValueFilter)

// ValueFilter is a Filter with a list of candidate options
// of which the selected ones restrict rows while the filter is active.
//
// A value is accepted if any selected option matches it,
// or if no option is selected. Inverted accepts the values
// that no selected option matches instead.
//
// Counts hold the number of rows per option label that would be
// displayed if that option was selected in addition.
type ValueFilter struct {
	Options  []Predicate
	Selected []string
	Inverted bool
	Active   bool
	Visible  bool

	counting bool
	counts   map[string]int
}

// NewValueFilter returns an inactive, invisible ValueFilter.
func NewValueFilter(options ...Predicate) *ValueFilter {
	return &ValueFilter{Options: options}
}

func (f *ValueFilter) IsActive() bool  { return f.Active }
func (f *ValueFilter) IsVisible() bool { return f.Visible }

// Select selects the options with the passed labels
// and activates the filter.
func (f *ValueFilter) Select(labels ...string) *ValueFilter {
	for _, label := range labels {
		if !slices.Contains(f.Selected, label) {
			f.Selected = append(f.Selected, label)
		}
	}
	f.Active = true
	return f
}

// Reset clears the selection and deactivates the filter.
func (f *ValueFilter) Reset() {
	f.Selected = nil
	f.Inverted = false
	f.Active = false
}

func (f *ValueFilter) Accept(value any) bool {
	if len(f.Selected) == 0 {
		return true
	}
	matched := false
	for _, option := range f.Options {
		if slices.Contains(f.Selected, option.Label()) && option.Match(value) {
			matched = true
			break
		}
	}
	return matched != f.Inverted
}

func (f *ValueFilter) Count(value any) {
	if !f.counting {
		return
	}
	for _, option := range f.Options {
		if option.Match(value) {
			f.counts[option.Label()]++
		}
	}
}

func (f *ValueFilter) CountAll() {
	if !f.counting {
		return
	}
	for _, option := range f.Options {
		f.counts[option.Label()]++
	}
}

func (f *ValueFilter) StartRevalidation(matchCounting bool) {
	f.counting = matchCounting
	if matchCounting {
		f.counts = make(map[string]int, len(f.Options))
	}
}

func (f *ValueFilter) StopRevalidation() {
	f.counting = false
}

// Counts returns a copy of the candidate counts
// of the last revalidation pass with match counting.
func (f *ValueFilter) Counts() map[string]int {
	return maps.Clone(f.counts)
}

// OptionCount returns the count of the option with the passed label.
func (f *ValueFilter) OptionCount(label string) int {
	return f.counts[label]
}
