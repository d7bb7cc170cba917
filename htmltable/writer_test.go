package htmltable

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/domonda/go-tableview"
)

func ExampleWriter() {
	type Row struct {
		CompanyName   string   `col:"Company"`
		InternalNames []string `col:"-"`
		CompanyID     uint64   `col:"Company ID"`
		Note          *string
	}
	table := []Row{
		{CompanyName: "Company 1", InternalNames: []string{"Company 1a"}, CompanyID: 1},
		{CompanyName: "Smith & Sons", CompanyID: 2},
	}
	view, err := tableview.NewStructRowsView("Table Title", table, &tableview.DefaultStructFieldNaming)
	if err != nil {
		panic(err)
	}

	NewWriter().
		WithHeaderRow(true).
		WithMissingValue("&ndash;").
		WriteView(context.Background(), os.Stdout, view)

	// Output:
	// <table>
	//   <caption>Table Title</caption>
	//   <tr><th>Company</th><th>Company ID</th><th>Note</th></tr>
	//   <tr><td>Company 1</td><td>1</td><td>&ndash;</td></tr>
	//   <tr><td>Smith &amp; Sons</td><td>2</td><td>&ndash;</td></tr>
	// </table>
}

func TestWriter_FixedColumns(t *testing.T) {
	view := &tableview.StringsView{
		Tit:  "",
		Cols: []string{"A", "B"},
		Rows: [][]string{{"<1>", "2"}},
	}
	var buf strings.Builder
	err := NewWriter().
		WithTableClass("grid").
		WithFixedColumns(1).
		WithFixedClass("frozen").
		WriteView(context.Background(), &buf, view)
	require.NoError(t, err)
	require.Equal(t, "<table class='grid'>\n  <tr><td class='frozen'>&lt;1&gt;</td><td>2</td></tr>\n</table>", buf.String())
}

func TestWriter_Immutable(t *testing.T) {
	w := NewWriter()
	mod := w.WithTableClass("x").WithMissingValue("-")
	require.Empty(t, w.TableClass())
	require.Empty(t, w.MissingValue())
	require.Equal(t, "x", mod.TableClass())
}
