package tableview

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
)

// Stale flags the aspects of an Engine
// that have to be revalidated before the next read.
type Stale struct {
	Filters bool
	Order   bool
}

// Engine is the query engine of a table view.
//
// It decides which rows of a source View are displayed under the
// column filters and the global filter, counts candidate filter values,
// orders the displayed rows by a SortSpec, and holds the ColumnLayout
// and SliceTracker consulted for rendering.
//
// Mutations only mark the engine stale, reads call Revalidate
// which re-runs the stale aspects once.
// An Engine is not safe for concurrent use and expects
// exclusive access to the rows of its source during a read.
type Engine struct {
	config  *config
	source  View
	columns *Columns
	layout  *ColumnLayout
	slices  SliceTracker

	filters     map[string]Filter
	filterOrder []string
	global      Filter
	sort        SortSpec

	stale     Stale
	filtered  []int
	displayed []int
	admitted  *roaring.Bitmap
	filterErr error
	orderErr  error
}

// NewEngine returns an Engine for the rows of source.
// If columns is nil, then a visible sortable column
// is declared for every column of source.
func NewEngine(source View, columns *Columns, options ...Option) (*Engine, error) {
	if source == nil {
		return nil, errors.New("nil source View")
	}
	if columns == nil {
		var err error
		columns, err = ColumnsOfView(source)
		if err != nil {
			return nil, err
		}
	}
	e := &Engine{
		config:  newConfig(options),
		source:  source,
		columns: columns,
		filters: make(map[string]Filter),
		stale:   Stale{Filters: true, Order: true},
	}
	e.layout = NewColumnLayout(columns, e.config.fixedColumns)
	e.layout.SetVeto(e.config.veto)
	e.layout.OnHidden(e.columnsHidden)
	return e, nil
}

// Source returns the row source.
func (e *Engine) Source() View { return e.source }

// Columns returns the declared columns.
func (e *Engine) Columns() *Columns { return e.columns }

// Layout returns the ColumnLayout of the displayed columns.
func (e *Engine) Layout() *ColumnLayout { return e.layout }

// Slices returns the SliceTracker of the materialized rows.
func (e *Engine) Slices() *SliceTracker { return &e.slices }

// Stale returns the aspects that will be revalidated by the next read.
func (e *Engine) Stale() Stale { return e.stale }

// SetRows replaces the row source.
// The tracked slices are reset as row indices change meaning.
func (e *Engine) SetRows(source View) {
	e.source = source
	e.slices.Reset()
	e.InvalidateFilters()
}

// SetFilter sets the filter of a column, a nil filter removes it.
func (e *Engine) SetFilter(column string, filter Filter) error {
	if filter == nil {
		e.RemoveFilter(column)
		return nil
	}
	col, ok := e.columns.ByName(column)
	if !ok || col.Visibility == Excluded {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, column)
	}
	if _, exists := e.filters[column]; !exists {
		e.filterOrder = append(e.filterOrder, column)
	}
	e.filters[column] = filter
	e.InvalidateFilters()
	return nil
}

// Filter returns the filter of a column or nil.
func (e *Engine) Filter(column string) Filter {
	return e.filters[column]
}

// RemoveFilter removes the filter of a column
// and returns if there was one.
func (e *Engine) RemoveFilter(column string) bool {
	if _, exists := e.filters[column]; !exists {
		return false
	}
	delete(e.filters, column)
	e.filterOrder = slices.DeleteFunc(e.filterOrder, func(name string) bool { return name == column })
	e.InvalidateFilters()
	return true
}

// SetGlobalFilter sets the filter that tests the cells of whole rows,
// nil removes it.
func (e *Engine) SetGlobalFilter(filter Filter) {
	e.global = filter
	e.InvalidateFilters()
}

// GlobalFilter returns the global filter or nil.
func (e *Engine) GlobalFilter() Filter { return e.global }

// SetSortSpec sets the order of the displayed rows.
func (e *Engine) SetSortSpec(spec SortSpec) {
	e.sort = SortSpec{entries: spec.Entries()}
	e.InvalidateOrder()
}

// SortSpec returns a copy of the current SortSpec.
func (e *Engine) SortSpec() SortSpec {
	return SortSpec{entries: e.sort.Entries()}
}

// SortBy adds a column to the current SortSpec
// with lowest priority or updates its direction.
// Unknown or unsortable columns are dropped and false is returned.
func (e *Engine) SortBy(column string, ascending bool) bool {
	col, ok := e.columns.ByName(column)
	if !ok || !e.sort.Add(col, ascending) {
		return false
	}
	e.InvalidateOrder()
	return true
}

// InvalidateFilters marks the filters stale,
// for example after changing a filter's selection.
func (e *Engine) InvalidateFilters() { e.stale.Filters = true }

// InvalidateOrder marks the row order stale.
func (e *Engine) InvalidateOrder() { e.stale.Order = true }

// Revalidate re-runs the filter pass if the filters are stale,
// which also makes the order stale, and the sort pass if the order is stale.
//
// A panic while filtering displays all rows, a panic while sorting keeps
// the filtered rows in source order and clears the SortSpec.
// Both are logged and returned by LastError until the next pass of the aspect.
func (e *Engine) Revalidate() {
	if e.stale.Filters {
		e.revalidateFilters()
		e.stale.Filters = false
		e.stale.Order = true
	}
	if e.stale.Order {
		e.revalidateOrder()
		e.stale.Order = false
	}
}

// LastError returns the errors of the last filter and sort passes.
func (e *Engine) LastError() error {
	return errors.Join(e.filterErr, e.orderErr)
}

// NumRows returns the number of rows of the source.
func (e *Engine) NumRows() int { return e.source.NumRows() }

// AllRows returns the indices of all source rows.
func (e *Engine) AllRows() []int {
	rows := make([]int, e.source.NumRows())
	for i := range rows {
		rows[i] = i
	}
	return rows
}

// DisplayedRows returns the source row indices
// of the filtered rows in display order.
func (e *Engine) DisplayedRows() []int {
	e.Revalidate()
	return slices.Clone(e.displayed)
}

// RowCount returns the number of displayed rows.
func (e *Engine) RowCount() int {
	e.Revalidate()
	return len(e.displayed)
}

// Accept returns if the source row is admitted by the filters.
func (e *Engine) Accept(row int) bool {
	e.Revalidate()
	return row >= 0 && e.admitted.Contains(uint32(row))
}

// FilterCounts returns the candidate counts of the filter of a column,
// or of the global filter for GlobalPosition.
// Returns nil if there is no such filter
// or it does not provide counts.
func (e *Engine) FilterCounts(column string) map[string]int {
	e.Revalidate()
	filter := e.filters[column]
	if column == GlobalPosition {
		filter = e.global
	}
	counter, ok := filter.(interface{ Counts() map[string]int })
	if !ok {
		return nil
	}
	return counter.Counts()
}

// DisplayView returns a View of the displayed rows and columns.
// If slice is not nil, then only its rows are included.
func (e *Engine) DisplayView(slice *Slice) *DisplayView {
	e.Revalidate()
	permutation := e.layout.Permutation()
	view := &DisplayView{
		Source:        e.source,
		RowMapping:    slices.Clone(e.displayed),
		ColumnMapping: make([]int, len(permutation)),
		Titles:        make([]string, len(permutation)),
	}
	for i, index := range permutation {
		col := e.columns.At(index)
		view.ColumnMapping[i] = ColumnIndex(e.source, col.Name)
		view.Titles[i] = col.DisplayTitle()
	}
	if slice != nil {
		view.RowOffset = slice.First
		view.RowLimit = slice.Len()
	}
	return view
}

func (e *Engine) holders() []*ColumnFilterHolder {
	holders := make([]*ColumnFilterHolder, 0, len(e.filterOrder)+1)
	for _, name := range e.filterOrder {
		col := ColumnIndex(e.source, name)
		if col < 0 {
			e.config.logger.Warn("skipping filter of column missing in rows", slog.String("column", name))
			continue
		}
		holders = append(holders, ColumnHolder(e.source, name, col, e.filters[name]))
	}
	if e.global != nil {
		holders = append(holders, GlobalHolder(e.source, e.global))
	}
	return holders
}

func (e *Engine) revalidateFilters() {
	start := time.Now()
	filtered, admitted, err := e.filterRows()
	if err != nil {
		err = &EvaluationError{Aspect: AspectFilter, Err: err}
		e.config.logger.Warn("filtering rows failed, displaying all rows", slog.Any("error", err))
		filtered = e.AllRows()
		admitted = roaring.New()
		admitted.AddRange(0, uint64(len(filtered)))
	}
	e.filtered = filtered
	e.admitted = admitted
	e.filterErr = err
	e.config.metrics.observePass(AspectFilter, start, err)
}

func (e *Engine) filterRows() (rows []int, admitted *roaring.Bitmap, err error) {
	var holders []*ColumnFilterHolder
	defer func() {
		if r := recover(); r != nil {
			err = recoverError(r)
			for _, h := range holders {
				clearCounts(h.Filter)
			}
		}
	}()

	holders = e.holders()
	rowFilter := NewRowFilter(holders)
	rowFilter.Start(e.config.matchCounting)
	defer rowFilter.Stop()

	admitted = roaring.New()
	group := make([]int, 1)
	for row := 0; row < e.source.NumRows(); row++ {
		var result FilterResult
		if e.config.groups != nil {
			group = append(group[:0], row)
			group = append(group, e.config.groups(row)...)
			result = rowFilter.EvaluateGroup(group, e.config.groupOp)
		} else {
			result = rowFilter.Evaluate(row)
		}
		rowFilter.Count(result)
		if result.Admitted() {
			rows = append(rows, row)
			admitted.Add(uint32(row))
		}
	}
	return rows, admitted, nil
}

// clearCounts drops the counts of a filter pass that failed
// part way through, ignoring further panics of the filter.
func clearCounts(filter Filter) {
	defer func() { _ = recover() }()
	filter.StartRevalidation(true)
	filter.StopRevalidation()
}

func (e *Engine) revalidateOrder() {
	start := time.Now()
	rows := slices.Clone(e.filtered)
	var err error
	if e.sort.Len() > 0 {
		err = e.sortRows(rows)
		if err != nil {
			err = &EvaluationError{Aspect: AspectOrder, Err: err}
			e.config.logger.Warn("sorting rows failed, disabling sort order",
				slog.String("sort", e.sort.String()),
				slog.Any("error", err),
			)
			rows = slices.Clone(e.filtered)
			e.sort.Clear()
		}
	}
	e.displayed = rows
	e.orderErr = err
	e.config.metrics.observePass(AspectOrder, start, err)
	e.config.metrics.setDisplayedRows(len(rows))
}

func (e *Engine) sortRows(rows []int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recoverError(r)
		}
	}()
	SortRows(rows, ComposeOrdering(e.sort, e.columns, e.source, e.config.logger))
	return nil
}

// columnsHidden resets the filters and sort keys
// of columns that are no longer displayed.
func (e *Engine) columnsHidden(hidden []string) {
	for _, name := range hidden {
		if filter, ok := e.filters[name]; ok {
			if resetter, ok := filter.(interface{ Reset() }); ok {
				resetter.Reset()
			}
			e.RemoveFilter(name)
		}
		if e.sort.Remove(name) {
			e.InvalidateOrder()
		}
	}
}
