// Package htmltable writes table views as HTML tables.
//
// Cell values are formatted with tableview.CellString and HTML escaped.
// The leading fixed columns of a view can be marked with a CSS class
// so that they stay in place when the table scrolls horizontally.
//
// Example usage:
//
//	err := htmltable.NewWriter().
//	    WithHeaderRow(true).
//	    WithFixedColumns(engine.Layout().FixedColumns()).
//	    WriteView(ctx, os.Stdout, engine.DisplayView(nil))
package htmltable

import (
	"context"
	"html/template"
	"io"

	"github.com/domonda/go-tableview"
)

// Writer writes views as HTML table elements.
//
// Writer is immutable after creation, all With* methods
// return a new Writer with the modified configuration.
type Writer struct {
	tableClass     string
	fixedClass     string
	fixedColumns   int
	missingValue   template.HTML
	headerRow      bool
	headerTemplate *template.Template
	rowTemplate    *template.Template
	footerTemplate *template.Template
}

// NewWriter returns a Writer without header row and fixed columns
// that uses the package level templates.
func NewWriter() *Writer {
	return &Writer{
		fixedClass:     "fixed",
		headerTemplate: HeaderTemplate,
		rowTemplate:    RowTemplate,
		footerTemplate: FooterTemplate,
	}
}

// WriteView writes view as HTML table to dest
// using the view's title as caption.
func (w *Writer) WriteView(ctx context.Context, dest io.Writer, view tableview.View) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	var (
		columns   = view.Columns()
		numCols   = len(columns)
		templData = &RowTemplateContext{
			TemplateContext: TemplateContext{
				TableClass: w.tableClass,
				Caption:    view.Title(),
			},
			FixedColumns: w.fixedColumns,
			FixedClass:   w.fixedClass,
			RawCells:     make([]template.HTML, numCols),
		}
	)

	err := w.headerTemplate.Execute(dest, templData.TemplateContext)
	if err != nil {
		return err
	}

	if w.headerRow {
		templData.IsHeaderRow = true
		for i := range columns {
			templData.RawCells[i] = template.HTML(template.HTMLEscapeString(columns[i])) //#nosec G203
		}
		err = w.rowTemplate.Execute(dest, templData)
		if err != nil {
			return err
		}
		templData.IsHeaderRow = false
		templData.RowIndex++
	}

	for row, numRows := 0, view.NumRows(); row < numRows; row++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		for col := 0; col < numCols; col++ {
			if !tableview.CellExists(view, row, col) {
				templData.RawCells[col] = w.missingValue
				continue
			}
			str := tableview.CellString(view.Cell(row, col))
			templData.RawCells[col] = template.HTML(template.HTMLEscapeString(str)) //#nosec G203
		}

		err = w.rowTemplate.Execute(dest, templData)
		if err != nil {
			return err
		}

		templData.RowIndex++
	}

	return w.footerTemplate.Execute(dest, templData.TemplateContext)
}

func (w *Writer) clone() *Writer {
	c := new(Writer)
	*c = *w
	return c
}

// WithHeaderRow returns a new writer that renders
// the column titles as first row using <th> elements.
func (w *Writer) WithHeaderRow(headerRow bool) *Writer {
	mod := w.clone()
	mod.headerRow = headerRow
	return mod
}

// WithTableClass returns a new writer with the specified CSS class for the table element.
func (w *Writer) WithTableClass(tableClass string) *Writer {
	mod := w.clone()
	mod.tableClass = tableClass
	return mod
}

// WithFixedColumns returns a new writer that marks the cells
// of the first fixedColumns columns with the fixed class.
func (w *Writer) WithFixedColumns(fixedColumns int) *Writer {
	mod := w.clone()
	mod.fixedColumns = fixedColumns
	return mod
}

// WithFixedClass returns a new writer with the CSS class of fixed column cells.
func (w *Writer) WithFixedClass(fixedClass string) *Writer {
	mod := w.clone()
	mod.fixedClass = fixedClass
	return mod
}

// WithMissingValue returns a new writer that renders
// cells that don't exist as missingValue.
func (w *Writer) WithMissingValue(missingValue template.HTML) *Writer {
	mod := w.clone()
	mod.missingValue = missingValue
	return mod
}

// WithTemplate returns a new writer with custom templates.
// The row template is executed with a *RowTemplateContext,
// the header and footer templates with a TemplateContext.
func (w *Writer) WithTemplate(headerTemplate, rowTemplate, footerTemplate *template.Template) *Writer {
	mod := w.clone()
	mod.headerTemplate = headerTemplate
	mod.rowTemplate = rowTemplate
	mod.footerTemplate = footerTemplate
	return mod
}

func (w *Writer) TableClass() string { return w.tableClass }

func (w *Writer) MissingValue() template.HTML { return w.missingValue }
