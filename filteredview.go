package tableview

var (
	_ View        = new(DisplayView)
	_ CellExister = new(DisplayView)
)

// DisplayView is a View of the rows and columns of a Source View
// as they are displayed: filtered and sorted rows,
// reordered and hidden columns, limited to a slice of rows.
type DisplayView struct {
	Source View
	// If not nil then the view has as many rows as
	// RowMapping has elements and every element
	// is a row index into the Source view.
	RowMapping []int
	// Offset index of the first mapped row, must be positive.
	RowOffset int
	// Limits the number of rows, only used if > 0.
	RowLimit int
	// If not nil then the view has as many
	// columns as ColumnMapping has elements and
	// every element is a column index into the Source view.
	// Negative elements are columns without cells.
	ColumnMapping []int
	// Titles overrides the column titles if not nil.
	Titles []string
}

func (view *DisplayView) Title() string {
	return view.Source.Title()
}

func (view *DisplayView) Columns() []string {
	if view.Titles != nil {
		return view.Titles
	}
	sourceCols := view.Source.Columns()
	if view.ColumnMapping == nil {
		return sourceCols
	}
	mappedCols := make([]string, len(view.ColumnMapping))
	for i, iSource := range view.ColumnMapping {
		if iSource >= 0 {
			mappedCols[i] = sourceCols[iSource]
		}
	}
	return mappedCols
}

func (view *DisplayView) NumCols() int {
	if view.ColumnMapping != nil {
		return len(view.ColumnMapping)
	}
	return len(view.Source.Columns())
}

func (view *DisplayView) NumRows() int {
	numSource := view.Source.NumRows()
	if view.RowMapping != nil {
		numSource = len(view.RowMapping)
	}
	n := numSource - max(view.RowOffset, 0)
	if n < 0 {
		return 0
	}
	if view.RowLimit > 0 && n > view.RowLimit {
		return view.RowLimit
	}
	return n
}

// SourceRow returns the Source row index of a row of the view.
func (view *DisplayView) SourceRow(row int) int {
	row += max(view.RowOffset, 0)
	if view.RowMapping != nil {
		return view.RowMapping[row]
	}
	return row
}

func (view *DisplayView) Cell(row, col int) any {
	sourceRow, sourceCol, ok := view.sourceCell(row, col)
	if !ok {
		return nil
	}
	return view.Source.Cell(sourceRow, sourceCol)
}

func (view *DisplayView) CellExists(row, col int) bool {
	sourceRow, sourceCol, ok := view.sourceCell(row, col)
	return ok && CellExists(view.Source, sourceRow, sourceCol)
}

func (view *DisplayView) sourceCell(row, col int) (sourceRow, sourceCol int, ok bool) {
	if row < 0 || col < 0 || row >= view.NumRows() || col >= view.NumCols() {
		return 0, 0, false
	}
	sourceCol = col
	if view.ColumnMapping != nil {
		sourceCol = view.ColumnMapping[col]
		if sourceCol < 0 {
			return 0, 0, false
		}
	}
	return view.SourceRow(row), sourceCol, true
}
