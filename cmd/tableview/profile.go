package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/domonda/go-tableview"
)

// profile is the persisted personalization of a table view.
type profile struct {
	Separator string
	Columns   []string
	Sort      []tableview.SortEntry
	Filters   map[string][]string
	Facets    []string
	Search    string
	Fixed     int
	Rows      *tableview.Slice
	Output    string
}

func profileFromViper(v *viper.Viper) (*profile, error) {
	p := &profile{
		Separator: v.GetString("separator"),
		Columns:   v.GetStringSlice("columns"),
		Facets:    v.GetStringSlice("facet"),
		Search:    v.GetString("search"),
		Fixed:     v.GetInt("fixed"),
		Output:    v.GetString("output"),
		Filters:   make(map[string][]string),
	}
	for _, s := range v.GetStringSlice("sort") {
		entry, err := parseSortEntry(s)
		if err != nil {
			return nil, err
		}
		p.Sort = append(p.Sort, entry)
	}
	for column, values := range v.GetStringMapString("filter") {
		p.Filters[column] = strings.Split(values, "|")
	}
	if rows := v.GetString("rows"); rows != "" {
		slice, err := parseSlice(rows)
		if err != nil {
			return nil, err
		}
		p.Rows = &slice
	}
	return p, nil
}

// filterColumns returns the columns with filters or facets, sorted by name.
func (p *profile) filterColumns() []string {
	var columns []string
	for column := range p.Filters {
		columns = append(columns, column)
	}
	for _, column := range p.Facets {
		if _, ok := p.Filters[column]; !ok {
			columns = append(columns, column)
		}
	}
	sort.Strings(columns)
	return columns
}

// parseSortEntry parses "column", "-column",
// "column:asc" or "column:desc".
func parseSortEntry(s string) (tableview.SortEntry, error) {
	s = strings.TrimSpace(s)
	if column, ok := strings.CutPrefix(s, "-"); ok {
		return tableview.SortEntry{Column: column}, nil
	}
	column, dir, hasDir := strings.Cut(s, ":")
	switch {
	case !hasDir, strings.EqualFold(dir, "asc"):
		return tableview.SortEntry{Column: column, Ascending: true}, nil
	case strings.EqualFold(dir, "desc"):
		return tableview.SortEntry{Column: column}, nil
	}
	return tableview.SortEntry{}, fmt.Errorf("invalid sort direction %q of column %q", dir, column)
}

func parseSlice(s string) (tableview.Slice, error) {
	firstStr, lastStr, ok := strings.Cut(s, ":")
	if !ok {
		return tableview.Slice{}, fmt.Errorf("invalid row range %q, expected first:last", s)
	}
	first, err := strconv.Atoi(strings.TrimSpace(firstStr))
	if err != nil {
		return tableview.Slice{}, fmt.Errorf("invalid row range %q: %w", s, err)
	}
	last, err := strconv.Atoi(strings.TrimSpace(lastStr))
	if err != nil {
		return tableview.Slice{}, fmt.Errorf("invalid row range %q: %w", s, err)
	}
	return tableview.NewSlice(first, last)
}
