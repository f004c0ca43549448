/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/otudb/internal/iodb"
	"github.com/gnames/otudb/internal/ioinspect"
	"github.com/gnames/otudb/pkg/lifecycle"
	"github.com/spf13/cobra"
)

// getStatsCmd returns the stats command.
func getStatsCmd() *cobra.Command {
	var asJSON bool

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show row counts and columns of otudb tables",
		Long: `Show the number of rows, the columns and the number of
non-empty values per column for every otudb table.

Examples:
  otudb stats --db otus.sqlite
  otudb stats --db otus.sqlite --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireDatabase(); err != nil {
				return err
			}
			err := runStats(os.Stdout, asJSON)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	statsCmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return statsCmd
}

func runStats(w io.Writer, asJSON bool) error {
	ctx := context.Background()

	if err := iodb.CheckExists(&cfg.Database); err != nil {
		return err
	}

	op := iodb.NewOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return err
	}
	defer op.Close()

	stats, err := ioinspect.New(op).Stats(ctx)
	if err != nil {
		return err
	}

	if asJSON {
		enc := gnfmt.GNjson{Pretty: true}
		bs, err := enc.Encode(stats)
		if err != nil {
			return OutputError("STDOUT", err)
		}
		fmt.Fprintln(w, string(bs))
		return nil
	}

	for _, ts := range stats {
		printTable(w, ts)
	}
	return nil
}

func printTable(w io.Writer, ts lifecycle.TableStats) {
	fmt.Fprintf(w, "\n%s: %s rows\n", ts.Table, humanize.Comma(ts.Rows))
	fmt.Fprintf(w, "  %-18s %-18s %-8s %-3s %s\n",
		"column", "type", "not null", "pk", "values")
	for _, c := range ts.Columns {
		fmt.Fprintf(w, "  %-18s %-18s %-8t %-3t %s\n",
			c.Name, c.Type, c.NotNull, c.PrimaryKey,
			humanize.Comma(ts.NonNull[c.Name]),
		)
	}
}
