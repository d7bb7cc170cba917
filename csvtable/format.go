// Package csvtable loads CSV documents as tableview row sources.
package csvtable

import (
	"errors"
	"fmt"
)

// Format describes a CSV document.
type Format struct {
	// Encoding specifies the character encoding of the CSV data.
	// Common values: "UTF-8", "UTF-16LE", "ISO 8859-1", "Windows 1252", "Macintosh"
	Encoding string `json:"encoding"`

	// Separator is the field delimiter character (must be single character).
	// Common values: "," (comma), ";" (semicolon), "\t" (tab)
	Separator string `json:"separator"`
}

func (f *Format) Validate() error {
	switch {
	case f == nil:
		return errors.New("<nil> csvtable.Format")
	case f.Encoding == "":
		return errors.New("missing csvtable.Format.Encoding")
	case len(f.Separator) != 1:
		return fmt.Errorf("invalid csvtable.Format.Separator: %q", f.Separator)
	}
	return nil
}

// Config controls how CSV data is loaded.
type Config struct {
	// Title of the loaded view.
	Title string `json:"title"`

	// Separator forces a field separator,
	// if empty the separator is detected.
	Separator string `json:"separator"`

	// Encodings is the list of character encodings to test during detection,
	// in priority order.
	Encodings []string `json:"encodings"`

	// EncodingTests contains strings with special characters used to validate
	// encoding detection.
	EncodingTests []string `json:"encodingTests"`
}

// NewDefaultConfig returns a Config detecting the
// separator and the common western and cyrillic encodings.
func NewDefaultConfig() *Config {
	return &Config{
		Encodings: []string{
			"UTF-8",
			"UTF-16LE",
			"ISO 8859-1",
			"Windows 1252", // like ANSI
			"Macintosh",
		},
		EncodingTests: []string{
			"ä", "Ä", "ö", "Ö", "ü", "Ü", "ß", "§", "€",
			"д", "Д", "ъ", "Ъ", "б", "Б", "л", "Л", "и", "И", "ж",
		},
	}
}
