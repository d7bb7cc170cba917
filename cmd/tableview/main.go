// Command tableview filters, sorts and pages a CSV or Excel table
// using the table view query engine.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	fs "github.com/ungerik/go-fs"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "tableview [flags] FILE",
		Short: "Filter, sort and page a CSV or Excel table",
		Long: `Loads a CSV or Excel file and prints the rows displayed under the passed
column filters, global search and sort order, together with the
candidate value counts of every filtered or faceted column.

Flags override the values of a view profile file.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if profileFile := v.GetString("profile"); profileFile != "" {
				v.SetConfigFile(profileFile)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("can't read view profile: %w", err)
				}
			}
			profile, err := profileFromViper(v)
			if err != nil {
				return err
			}
			level := slog.LevelWarn
			if v.GetBool("verbose") {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			return run(cmd.Context(), cmd.OutOrStdout(), fs.File(args[0]), profile, logger)
		},
	}

	flags := cmd.Flags()
	flags.String("profile", "", "view profile file (YAML, JSON or TOML)")
	flags.String("separator", "", "CSV field separator, detected if empty")
	flags.StringSlice("columns", nil, "displayed columns in display order")
	flags.StringSlice("sort", nil, "sort columns by priority, prefix with - for descending")
	flags.StringToString("filter", nil, "column filters as column=value|value")
	flags.StringSlice("facet", nil, "columns to count candidate values for without filtering")
	flags.String("search", "", "text any cell of a row must contain")
	flags.Int("fixed", -1, "number of frozen leading columns")
	flags.String("rows", "", "inclusive display row range as first:last")
	flags.String("output", "text", "output format: text, csv or html")
	flags.Bool("verbose", false, "log debug messages")
	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}
	return cmd
}
