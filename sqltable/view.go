// Package sqltable loads SQL query results as tableview row sources.
package sqltable

import (
	"context"
	"database/sql"
	"slices"

	"github.com/domonda/go-tableview"
)

// ScanRowsAsView scans all rows and closes them.
// SQL NULL values become missing cells of the returned view.
func ScanRowsAsView(ctx context.Context, title string, rows Rows) (*tableview.AnyValuesView, error) {
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	view := &tableview.AnyValuesView{Tit: title, Cols: columns}

	for rows.Next() {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		scannedValues := make([]any, len(columns))
		valueScanners := make([]any, len(columns))
		for i := range valueScanners {
			valueScanners[i] = valueScanner{&scannedValues[i]}
		}
		err = rows.Scan(valueScanners...)
		if err != nil {
			return view, err
		}
		view.Rows = append(view.Rows, scannedValues)
	}
	return view, rows.Err()
}

// QueryView executes query and returns its result as view.
func QueryView(ctx context.Context, db *sql.DB, title, query string, args ...any) (*tableview.AnyValuesView, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return ScanRowsAsView(ctx, title, rows)
}

var _ sql.Scanner = new(valueScanner)

type valueScanner struct {
	dest *any
}

// Scan implements the database/sql.Scanner interface.
func (s valueScanner) Scan(src any) error {
	if b, ok := src.([]byte); ok {
		// Copy bytes because they won't be valid after this method call
		src = slices.Clone(b)
	}
	*s.dest = src
	return nil
}
