// Package exceltable loads the sheets of Excel files (.xlsx, .xlsm, .xltm, .xltx)
// as tableview row sources.
//
// The first non empty row of a sheet is used as column titles.
// Empty rows and columns at the edges of a sheet are removed
// and empty cells at the end of a row don't exist in the returned views.
//
// Example usage:
//
//	view, err := exceltable.ReadFirstSheet(fs.File("data.xlsx"), false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	engine, err := tableview.NewEngine(view, nil)
package exceltable

import (
	"bytes"
	"errors"
	"path"
	"slices"
	"strings"

	fs "github.com/ungerik/go-fs"
	"github.com/xuri/excelize/v2"

	"github.com/domonda/go-tableview"
)

// IsExcelFile returns if the file name has an Excel workbook extension.
func IsExcelFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".xlsx", ".xlsm", ".xltm", ".xltx":
		return true
	}
	return false
}

// ReadFirstSheet reads the first sheet of file.
//
// If rawCellStrings is true, cell values are returned without
// the number format of the cell applied.
func ReadFirstSheet(file fs.FileReader, rawCellStrings bool) (sheetView *tableview.StringsView, err error) {
	f, err := open(file)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrSheetNotExist{SheetName: "<FirstSheet>"}
	}
	return readSheet(f, sheet, rawCellStrings)
}

// Read reads all non empty sheets of file,
// the sheet names are used as view titles.
func Read(file fs.FileReader, rawCellStrings bool) (sheetViews []*tableview.StringsView, err error) {
	f, err := open(file)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	for _, sheet := range f.GetSheetList() {
		view, err := readSheet(f, sheet, rawCellStrings)
		if err != nil {
			if errors.Is(err, ErrEmptySheet) {
				continue
			}
			return nil, err
		}
		sheetViews = append(sheetViews, view)
	}
	return sheetViews, nil
}

func open(file fs.FileReader) (*excelize.File, error) {
	data, err := file.ReadAll()
	if err != nil {
		return nil, err
	}
	return excelize.OpenReader(bytes.NewReader(data))
}

func readSheet(f *excelize.File, sheet string, rawCellStrings bool) (*tableview.StringsView, error) {
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: rawCellStrings})
	if err != nil {
		return nil, err
	}
	rows = removeEmptyRows(rows)
	rows = removeEmptyLeadingColumns(rows)
	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}
	for i := range rows {
		rows[i] = trimTrailingEmpty(rows[i])
	}
	numCols := 0
	for _, row := range rows {
		numCols = max(numCols, len(row))
	}
	columns := rows[0]
	if len(columns) < numCols {
		columns = append(columns, make([]string, numCols-len(columns))...)
	}
	return tableview.NewStringsView(sheet, rows[1:], columns...), nil
}

func isEmptyRow(row []string) bool {
	return !slices.ContainsFunc(row, func(cell string) bool { return strings.TrimSpace(cell) != "" })
}

// removeEmptyRows removes all rows without any non empty cell.
func removeEmptyRows(rows [][]string) [][]string {
	return slices.DeleteFunc(rows, isEmptyRow)
}

// removeEmptyLeadingColumns removes the columns
// on the left that are empty in all rows.
func removeEmptyLeadingColumns(rows [][]string) [][]string {
	leading := -1
	for _, row := range rows {
		n := 0
		for n < len(row) && strings.TrimSpace(row[n]) == "" {
			n++
		}
		if leading < 0 || n < leading {
			leading = n
		}
	}
	if leading <= 0 {
		return rows
	}
	for i := range rows {
		rows[i] = rows[i][leading:]
	}
	return rows
}

func trimTrailingEmpty(row []string) []string {
	n := len(row)
	for n > 0 && strings.TrimSpace(row[n-1]) == "" {
		n--
	}
	return row[:n]
}
