package csvtable

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/domonda/go-tableview"
)

// Encoder encodes UTF-8 text to another character encoding.
// The encodings of github.com/domonda/go-types/charset implement it.
type Encoder interface {
	Encode(utf8 []byte) ([]byte, error)
}

// Writer writes the cells of a tableview.View as CSV.
type Writer struct {
	quoteAllFields   bool
	quoteEmptyFields bool
	escapeQuotes     string
	missingValue     string
	delimiter        rune
	newLine          string
	encoder          Encoder
}

// NewWriter returns a Writer for comma separated UTF-8
// with CRLF line endings.
func NewWriter() *Writer {
	return &Writer{
		delimiter:    ',',
		escapeQuotes: `""`,
		newLine:      "\r\n",
	}
}

func (w *Writer) WithQuoteAllFields(quoteAllFields bool) *Writer {
	w.quoteAllFields = quoteAllFields
	return w
}

func (w *Writer) WithQuoteEmptyFields(quoteEmptyFields bool) *Writer {
	w.quoteEmptyFields = quoteEmptyFields
	return w
}

// WithMissingValue sets the text written for cells that don't exist.
func (w *Writer) WithMissingValue(missingValue string) *Writer {
	w.missingValue = missingValue
	return w
}

func (w *Writer) WithEscapeQuotes(escapeQuotes string) *Writer {
	w.escapeQuotes = escapeQuotes
	return w
}

func (w *Writer) WithDelimiter(delimiter rune) *Writer {
	w.delimiter = delimiter
	return w
}

func (w *Writer) WithNewLine(newLine string) *Writer {
	w.newLine = newLine
	return w
}

func (w *Writer) WithEncoder(encoder Encoder) *Writer {
	w.encoder = encoder
	return w
}

func (w *Writer) Delimiter() rune { return w.delimiter }

// WriteView writes the rows of view to dest,
// optionally preceded by the column titles.
func (w *Writer) WriteView(ctx context.Context, dest io.Writer, view tableview.View, writeHeaderRow bool) error {
	var (
		rowBuf         = bytes.NewBuffer(make([]byte, 0, 1024))
		mustQuoteChars = "\n\"" + string(w.delimiter)
		columns        = view.Columns()
		fields         = make([]string, len(columns))
	)
	if writeHeaderRow {
		if err := w.writeRow(ctx, dest, rowBuf, columns, mustQuoteChars); err != nil {
			return err
		}
	}
	for row := 0; row < view.NumRows(); row++ {
		for col := range fields {
			if tableview.CellExists(view, row, col) {
				fields[col] = tableview.CellString(view.Cell(row, col))
			} else {
				fields[col] = w.missingValue
			}
		}
		if err := w.writeRow(ctx, dest, rowBuf, fields, mustQuoteChars); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeRow(ctx context.Context, dest io.Writer, rowBuf *bytes.Buffer, fields []string, mustQuoteChars string) (err error) {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	for col, str := range fields {
		if col > 0 {
			rowBuf.WriteRune(w.delimiter)
		}
		// \n alone is valid within quotes
		str = strings.ReplaceAll(str, "\r", "")
		switch {
		case w.quoteAllFields || strings.ContainsAny(str, mustQuoteChars):
			rowBuf.WriteByte('"')
			rowBuf.WriteString(strings.ReplaceAll(str, `"`, w.escapeQuotes))
			rowBuf.WriteByte('"')
		case w.quoteEmptyFields && str == "":
			rowBuf.WriteString(`""`)
		default:
			rowBuf.WriteString(str)
		}
	}
	rowBuf.WriteString(w.newLine)
	rowBytes := rowBuf.Bytes()
	rowBuf.Reset()
	if w.encoder != nil {
		rowBytes, err = w.encoder.Encode(rowBytes)
		if err != nil {
			return err
		}
	}
	_, err = dest.Write(rowBytes)
	return err
}
