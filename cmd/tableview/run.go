package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	fs "github.com/ungerik/go-fs"

	"github.com/domonda/go-tableview"
	"github.com/domonda/go-tableview/csvtable"
	"github.com/domonda/go-tableview/exceltable"
	"github.com/domonda/go-tableview/htmltable"
)

var (
	headerColor = color.New(color.Bold, color.FgCyan)
	fixedColor  = color.New(color.FgYellow)
	countColor  = color.New(color.FgGreen)
	errorColor  = color.New(color.FgRed)
)

func run(ctx context.Context, w io.Writer, file fs.FileReader, p *profile, logger *slog.Logger) error {
	source, separator, err := load(file, p, logger)
	if err != nil {
		return err
	}

	engine, err := tableview.NewEngine(source, nil, tableview.WithLogger(logger))
	if err != nil {
		return err
	}
	if err := configure(engine, p, logger); err != nil {
		return err
	}

	view := engine.DisplayView(nil)
	if p.Rows != nil {
		if err := engine.Slices().AddSlice(p.Rows.First, p.Rows.Last); err != nil {
			return err
		}
		open, _ := engine.Slices().CurrentOpenSlice()
		view = engine.DisplayView(&open)
	}
	switch p.Output {
	case "csv":
		return csvtable.NewWriter().
			WithDelimiter(separator).
			WithNewLine("\n").
			WriteView(ctx, w, view, true)
	case "html":
		return htmltable.NewWriter().
			WithHeaderRow(true).
			WithFixedColumns(engine.Layout().FixedColumns()).
			WriteView(ctx, w, view)
	case "", "text":
		printView(w, view, engine.Layout().FixedColumns())
	default:
		return fmt.Errorf("unknown output format %q", p.Output)
	}

	for _, column := range p.filterColumns() {
		printCounts(w, column, engine.FilterCounts(column))
	}
	if p.Search != "" {
		printCounts(w, "search", engine.FilterCounts(tableview.GlobalPosition))
	}
	fmt.Fprintf(w, "%d of %d rows\n", engine.RowCount(), engine.NumRows())
	if err := engine.LastError(); err != nil {
		errorColor.Fprintln(w, err)
	}
	return nil
}

// load reads the rows of an Excel or CSV file
// and returns the CSV separator to use for output.
func load(file fs.FileReader, p *profile, logger *slog.Logger) (*tableview.StringsView, rune, error) {
	if exceltable.IsExcelFile(file.Name()) {
		source, err := exceltable.ReadFirstSheet(file, false)
		if err != nil {
			return nil, 0, fmt.Errorf("can't read Excel file %s: %w", file.Name(), err)
		}
		logger.Debug("loaded Excel sheet",
			slog.String("file", file.Name()),
			slog.String("sheet", source.Title()),
			slog.Int("rows", source.NumRows()),
		)
		return source, ',', nil
	}

	config := csvtable.NewDefaultConfig()
	config.Separator = p.Separator
	source, format, err := csvtable.ReadFile(file, config)
	if err != nil {
		return nil, 0, err
	}
	logger.Debug("loaded CSV",
		slog.String("file", file.Name()),
		slog.String("encoding", format.Encoding),
		slog.String("separator", format.Separator),
		slog.Int("rows", source.NumRows()),
	)
	return source, rune(format.Separator[0]), nil
}

func configure(engine *tableview.Engine, p *profile, logger *slog.Logger) error {
	if len(p.Columns) > 0 {
		if err := engine.Layout().SetColumns(p.Columns); err != nil {
			return err
		}
	}
	if p.Fixed >= 0 {
		engine.Layout().SetFixedColumns(p.Fixed)
	}
	for _, column := range p.filterColumns() {
		filter := tableview.NewValueFilter(tableview.DistinctValueOptions(engine.Source(), column)...)
		filter.Visible = true
		if values, ok := p.Filters[column]; ok {
			filter.Select(values...)
		}
		if err := engine.SetFilter(column, filter); err != nil {
			return err
		}
	}
	if p.Search != "" {
		contains := tableview.Contains(p.Search)
		engine.SetGlobalFilter(tableview.NewValueFilter(contains).Select(contains.Label()))
	}
	for _, entry := range p.Sort {
		if !engine.SortBy(entry.Column, entry.Ascending) {
			logger.Warn("ignoring sort of unknown or unsortable column", slog.String("column", entry.Column))
		}
	}
	return nil
}

func printView(w io.Writer, view tableview.View, fixedColumns int) {
	rows := tableview.ViewStrings(view, true)
	widths := tableview.StringColumnWidths(rows, len(view.Columns()))
	for r, row := range rows {
		for col, str := range row {
			if col > 0 {
				if col == fixedColumns {
					fmt.Fprint(w, " | ")
				} else {
					fmt.Fprint(w, "  ")
				}
			}
			cell := str + strings.Repeat(" ", widths[col]-utf8.RuneCountInString(str))
			switch {
			case r == 0:
				headerColor.Fprint(w, cell)
			case col < fixedColumns:
				fixedColor.Fprint(w, cell)
			default:
				fmt.Fprint(w, cell)
			}
		}
		fmt.Fprintln(w)
	}
}

func printCounts(w io.Writer, column string, counts map[string]int) {
	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	slices.Sort(labels)
	headerColor.Fprintf(w, "%s:", column)
	for _, label := range labels {
		fmt.Fprintf(w, " %s=", label)
		countColor.Fprint(w, counts[label])
	}
	fmt.Fprintln(w)
}
