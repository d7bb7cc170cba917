package sqltable

import "database/sql"

var _ Rows = &sql.Rows{}

// Rows is the part of *sql.Rows used to scan a result set.
type Rows interface {
	Columns() ([]string, error)
	Scan(dest ...any) error
	Close() error
	Next() bool
	Err() error
}
