package exceltable

import (
	"testing"

	"github.com/stretchr/testify/require"
	fs "github.com/ungerik/go-fs"
	"github.com/xuri/excelize/v2"

	"github.com/domonda/go-tableview"
)

func testWorkbook(t *testing.T) fs.FileReader {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	// Data starts at B2 to check the removal of empty edges
	require.NoError(t, f.SetSheetRow("Sheet1", "B2", &[]any{"Name", "City", "Age"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "B3", &[]any{"Alice", "Berlin", 30}))
	require.NoError(t, f.SetSheetRow("Sheet1", "B5", &[]any{"Bob"}))

	_, err := f.NewSheet("Empty")
	require.NoError(t, err)
	_, err = f.NewSheet("Second")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Second", "A1", &[]any{"X"}))
	require.NoError(t, f.SetSheetRow("Second", "A2", &[]any{"x1"}))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return fs.NewMemFile("people.xlsx", buf.Bytes())
}

func TestReadFirstSheet(t *testing.T) {
	view, err := ReadFirstSheet(testWorkbook(t), false)
	require.NoError(t, err)
	require.Equal(t, "Sheet1", view.Title())
	require.Equal(t, []string{"Name", "City", "Age"}, view.Columns())
	require.Equal(t, [][]string{{"Alice", "Berlin", "30"}, {"Bob"}}, view.Rows)
	require.False(t, tableview.CellExists(view, 1, 1))
}

func TestRead(t *testing.T) {
	views, err := Read(testWorkbook(t), true)
	require.NoError(t, err)
	require.Len(t, views, 2, "empty sheet is skipped")
	require.Equal(t, "Second", views[1].Title())
	require.Equal(t, [][]string{{"x1"}}, views[1].Rows)
}

func TestIsExcelFile(t *testing.T) {
	require.True(t, IsExcelFile("data.XLSX"))
	require.True(t, IsExcelFile("dir/book.xlsm"))
	require.False(t, IsExcelFile("data.csv"))
}

func TestReadFirstSheet_Invalid(t *testing.T) {
	_, err := ReadFirstSheet(fs.NewMemFile("broken.xlsx", []byte("not a zip")), false)
	require.Error(t, err)
}
