package tableview

// GlobalPosition is the filter position of the global filter
// which is not bound to a single column.
const GlobalPosition = ""

// ColumnFilterHolder binds a Filter to its position
// and to the row mappings needed to evaluate it.
type ColumnFilterHolder struct {
	// Position is a column name or GlobalPosition.
	Position string
	Filter   Filter
	// Value maps a row to the value tested by Filter.
	Value func(row int) any
	// Exists tests if the cell of the row exists.
	// A nil Exists treats every cell as existing.
	Exists func(row int) bool
}

// ColumnHolder returns a ColumnFilterHolder for the column
// with index col of source.
func ColumnHolder(source View, column string, col int, filter Filter) *ColumnFilterHolder {
	return &ColumnFilterHolder{
		Position: column,
		Filter:   filter,
		Value:    func(row int) any { return source.Cell(row, col) },
		Exists:   func(row int) bool { return CellExists(source, row, col) },
	}
}

// GlobalHolder returns a ColumnFilterHolder that tests
// all cells of a row as []any against filter.
func GlobalHolder(source View, filter Filter) *ColumnFilterHolder {
	return &ColumnFilterHolder{
		Position: GlobalPosition,
		Filter:   filter,
		Value:    func(row int) any { return RowValues(source, row) },
	}
}

func (h *ColumnFilterHolder) exists(row int) bool {
	return h.Exists == nil || h.Exists(row)
}

// RowFilter evaluates the filters of one revalidation pass.
//
// The holders are partitioned when the RowFilter is created
// into the active ones and the visible only ones.
// Filters that are neither active nor visible are ignored.
type RowFilter struct {
	active      []*ColumnFilterHolder
	visibleOnly []*ColumnFilterHolder
	counting    bool
}

// NewRowFilter snapshots the active and visible state of the holders.
func NewRowFilter(holders []*ColumnFilterHolder) *RowFilter {
	f := new(RowFilter)
	for _, h := range holders {
		switch {
		case h.Filter.IsActive():
			f.active = append(f.active, h)
		case h.Filter.IsVisible():
			f.visibleOnly = append(f.visibleOnly, h)
		}
	}
	return f
}

// Active returns the active holders, bit i of a FilterResult refers to Active()[i].
func (f *RowFilter) Active() []*ColumnFilterHolder { return f.active }

// VisibleOnly returns the holders that are only tracked for counting.
func (f *RowFilter) VisibleOnly() []*ColumnFilterHolder { return f.visibleOnly }

// Start starts the revalidation of all filters.
// Count only has an effect between Start(true) and Stop.
func (f *RowFilter) Start(matchCounting bool) {
	f.counting = matchCounting
	for _, h := range f.active {
		h.Filter.StartRevalidation(matchCounting)
	}
	for _, h := range f.visibleOnly {
		h.Filter.StartRevalidation(matchCounting)
	}
}

// Stop stops the revalidation of all filters.
func (f *RowFilter) Stop() {
	f.counting = false
	for _, h := range f.active {
		h.Filter.StopRevalidation()
	}
	for _, h := range f.visibleOnly {
		h.Filter.StopRevalidation()
	}
}

// Evaluate evaluates all filters against row.
func (f *RowFilter) Evaluate(row int) FilterResult {
	result := newFilterResult(len(f.active))
	for i, h := range f.active {
		if !h.exists(row) {
			result.inapplicable.Add(uint32(i))
			continue
		}
		value := h.Value(row)
		if h.Filter.Accept(value) {
			// The row passes, so this filter no longer
			// discriminates between candidate values.
			result.counts[h] = CountAll
		} else {
			result.denies.Add(uint32(i))
			result.counts[h] = CountValue(value)
		}
	}
	for _, h := range f.visibleOnly {
		result.counts[h] = CountValue(h.Value(row))
	}
	return result
}

// EvaluateGroup evaluates rows and merges their results
// from first to last with op.
// An empty group is admitted by every filter.
func (f *RowFilter) EvaluateGroup(rows []int, op MergeOp) FilterResult {
	if len(rows) == 0 {
		return newFilterResult(len(f.active))
	}
	result := f.Evaluate(rows[0])
	for _, row := range rows[1:] {
		result = result.Merge(f.Evaluate(row), op)
	}
	return result
}

// Accept returns if row is admitted by all active filters.
func (f *RowFilter) Accept(row int) bool {
	return f.Evaluate(row).Admitted()
}

// Count adds the row of result to the candidate counts of the filters.
//
// An admitted row counts toward every active filter
// and every visible only filter.
// A row denied by exactly one active filter counts only
// toward that filter, since selecting the row's value there
// would admit it.
// Rows that are not countable and NoCount states are not counted.
func (f *RowFilter) Count(result FilterResult) {
	if !f.counting {
		return
	}
	if result.Size() != len(f.active) {
		panic("FilterResult was not evaluated by this RowFilter")
	}
	if !result.Countable() {
		return
	}
	admitted := result.Admitted()
	for i, h := range f.active {
		if !admitted && !result.Denies(i) {
			continue
		}
		countState(h.Filter, result.CountState(h))
	}
	if !admitted {
		return
	}
	for _, h := range f.visibleOnly {
		countState(h.Filter, result.CountState(h))
	}
}

func countState(filter Filter, state CountState) {
	switch {
	case state.IsNoCount():
		return
	case state.IsCountAll():
		filter.CountAll()
	default:
		value, _ := state.Value()
		filter.Count(value)
	}
}
