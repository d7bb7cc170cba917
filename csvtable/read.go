package csvtable

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/domonda/go-types/charset"
	fs "github.com/ungerik/go-fs"

	"github.com/domonda/go-tableview"
)

// ReadFile reads file and parses it with Parse.
// If config has no Title, then the file name is used.
func ReadFile(file fs.FileReader, config *Config) (*tableview.StringsView, *Format, error) {
	data, err := file.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if config == nil {
		config = NewDefaultConfig()
	}
	if config.Title == "" {
		c := *config
		c.Title = file.Name()
		config = &c
	}
	view, format, err := Parse(data, config)
	if err != nil {
		return nil, format, fmt.Errorf("can't parse CSV file %s: %w", file.Name(), err)
	}
	return view, format, nil
}

// Parse decodes CSV data and returns it as StringsView
// using the first non empty line as column titles.
//
// Rows may have fewer fields than the header,
// the missing cells don't exist in the returned view.
// Empty lines are skipped.
// A nil config uses NewDefaultConfig.
func Parse(data []byte, config *Config) (*tableview.StringsView, *Format, error) {
	if config == nil {
		config = NewDefaultConfig()
	}
	format := &Format{Separator: config.Separator}

	var encodings []charset.Encoding
	for _, name := range config.Encodings {
		enc, err := charset.GetEncoding(name)
		if err != nil {
			return nil, nil, err
		}
		encodings = append(encodings, enc)
	}
	data, encoding, err := charset.AutoDecode(data, encodings, config.EncodingTests)
	if err != nil {
		return nil, nil, err
	}
	format.Encoding = encoding
	if format.Encoding == "" {
		format.Encoding = "UTF-8"
	}
	data = charset.TrimBOM(data, charset.BOMUTF8)

	if sep, rest, ok := cutSepHeaderLine(data); ok {
		if format.Separator != "" && format.Separator != sep {
			return nil, format, fmt.Errorf("separator %q in header line is different from configured separator %q", sep, format.Separator)
		}
		format.Separator = sep
		data = rest
	}
	if format.Separator == "" {
		format.Separator = detectSeparator(data)
	}
	if err := format.Validate(); err != nil {
		return nil, format, err
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = rune(format.Separator[0])
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, format, err
		}
		if isEmptyRecord(record) {
			continue
		}
		rows = append(rows, trimTrailingEmpty(record))
	}
	if len(rows) == 0 {
		return nil, format, errors.New("no CSV header line")
	}
	return tableview.NewStringsView(config.Title, rows), format, nil
}

// cutSepHeaderLine returns the separator declared by
// a "sep=X" first line and the data after that line.
func cutSepHeaderLine(data []byte) (sep string, rest []byte, ok bool) {
	firstLine, rest, _ := bytes.Cut(data, []byte{'\n'})
	firstLine = bytes.Trim(bytes.TrimSpace(firstLine), `"`)
	if len(firstLine) != 5 || !bytes.EqualFold(firstLine[:4], []byte("sep=")) {
		return "", data, false
	}
	return string(firstLine[4:5]), rest, true
}

// detectSeparator returns the most frequent of comma, semicolon and tab.
func detectSeparator(data []byte) string {
	var (
		commas     = bytes.Count(data, []byte{','})
		semicolons = bytes.Count(data, []byte{';'})
		tabs       = bytes.Count(data, []byte{'\t'})
	)
	switch {
	case semicolons > commas && semicolons > tabs:
		return ";"
	case tabs > commas && tabs > semicolons:
		return "\t"
	default:
		return ","
	}
}

func isEmptyRecord(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

// trimTrailingEmpty removes trailing empty fields
// so that they become missing cells.
func trimTrailingEmpty(record []string) []string {
	n := len(record)
	for n > 0 && record[n-1] == "" {
		n--
	}
	return record[:n]
}
