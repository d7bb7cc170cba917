package sqltable

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/domonda/go-tableview"
)

type memRows struct {
	columns []string
	rows    [][]any
	next    int
	closed  bool
	err     error
}

func (r *memRows) Columns() ([]string, error) { return r.columns, nil }

func (r *memRows) Next() bool {
	if r.closed || r.next >= len(r.rows) {
		return false
	}
	r.next++
	return true
}

func (r *memRows) Scan(dest ...any) error {
	for i, d := range dest {
		if err := d.(sql.Scanner).Scan(r.rows[r.next-1][i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *memRows) Close() error {
	r.closed = true
	return nil
}

func (r *memRows) Err() error { return r.err }

func TestScanRowsAsView(t *testing.T) {
	buf := []byte("raw")
	rows := &memRows{
		columns: []string{"id", "name", "data"},
		rows: [][]any{
			{int64(1), "Alice", buf},
			{int64(2), nil, nil},
		},
	}
	view, err := ScanRowsAsView(context.Background(), "users", rows)
	require.NoError(t, err)
	require.True(t, rows.closed)
	require.Equal(t, "users", view.Title())
	require.Equal(t, []string{"id", "name", "data"}, view.Columns())
	require.Equal(t, 2, view.NumRows())

	buf[0] = 'X'
	require.Equal(t, []byte("raw"), view.Cell(0, 2), "scanned bytes are copied")
	require.False(t, tableview.CellExists(view, 1, 1), "NULL is a missing cell")

	engine, err := tableview.NewEngine(view, nil)
	require.NoError(t, err)
	require.True(t, engine.SortBy("id", false))
	require.Equal(t, []int{1, 0}, engine.DisplayedRows())
}

func TestScanRowsAsView_Errors(t *testing.T) {
	iterErr := errors.New("connection lost")
	_, err := ScanRowsAsView(context.Background(), "", &memRows{columns: []string{"a"}, err: iterErr})
	require.ErrorIs(t, err, iterErr)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rows := &memRows{columns: []string{"a"}, rows: [][]any{{1}}}
	_, err = ScanRowsAsView(ctx, "", rows)
	require.ErrorIs(t, err, context.Canceled)
	require.True(t, rows.closed)
}
