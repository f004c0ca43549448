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
	"os"
	"os/signal"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/otudb/internal/iodb"
	"github.com/gnames/otudb/internal/ioload"
	"github.com/gnames/otudb/internal/ioschema"
	"github.com/gnames/otudb/pkg/config"
	"github.com/gnames/otudb/pkg/lifecycle"
	"github.com/spf13/cobra"
)

// getMakeTablesCmd returns the make-tables command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getMakeTablesCmd() *cobra.Command {
	var (
		inp    lifecycle.Inputs
		atomic bool
		quiet  bool
	)

	makeTablesCmd := &cobra.Command{
		Use:   "make-tables",
		Short: "Create database tables from OTU map, FASTA and taxonomy",
		Long: `Load an OTU map, reads and their taxonomy into a database.

This command:
  1. Checks that all input files exist
  2. Creates tables otu_map, seq_data, tax_data, otus_w_seqs, load_runs
  3. Loads the OTU map, the taxonomy and the sequences
  4. Joins sequences with the OTU map into otus_w_seqs
  5. Drops seq_data

Records with existing keys are skipped, so running the command
twice with the same files does not change the tables.

Without --atomic every table is committed when its file is read.
With --atomic the whole run is one transaction.

Examples:
  otudb make-tables -i reads.fasta -o otu_map.uc -t taxa.txt --db otus.sqlite
  otudb make-tables -i reads.fasta -o otu_map.uc -t taxa.txt --db otus.sqlite --atomic`,
		Aliases: []string{"make_tables"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireDatabase(); err != nil {
				return err
			}
			var runOpts []config.Option
			if cmd.Flags().Changed("atomic") {
				runOpts = append(runOpts, config.OptLoadAtomic(atomic))
			}
			if quiet {
				runOpts = append(runOpts, config.OptWithProgress(false))
			}
			cfg.Update(runOpts)

			err := runMakeTables(inp)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	makeTablesCmd.Flags().StringVarP(
		&inp.FastaPath, "input", "i", "", "FASTA file with reads",
	)
	makeTablesCmd.Flags().StringVarP(
		&inp.OTUMapPath, "otu-map", "o", "", "OTU map (.uc) file",
	)
	makeTablesCmd.Flags().StringVarP(
		&inp.TaxonomyPath, "taxonomy", "t", "", "taxonomy assignment file",
	)
	makeTablesCmd.Flags().BoolVar(
		&atomic, "atomic", false, "load everything in one transaction",
	)
	makeTablesCmd.Flags().BoolVarP(
		&quiet, "quiet", "q", false, "do not show progress bars",
	)
	_ = makeTablesCmd.MarkFlagRequired("input")
	_ = makeTablesCmd.MarkFlagRequired("otu-map")
	_ = makeTablesCmd.MarkFlagRequired("taxonomy")

	return makeTablesCmd
}

func runMakeTables(inp lifecycle.Inputs) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Configuration errors must stop the run before the
	// database is touched.
	inp, err := ioload.CheckInputs(inp)
	if err != nil {
		return err
	}

	op := iodb.NewOperator()
	if err = op.Connect(ctx, &cfg.Database); err != nil {
		return err
	}
	defer op.Close()

	sm := ioschema.NewManager(op)
	ldr := ioload.New(cfg, op, sm)

	res, err := ldr.Load(ctx, inp)
	if err != nil {
		return err
	}

	gn.Info(`Tables are created
OTU map rows: <em>%s</em>
Taxonomy rows: <em>%s</em>
Sequence rows: <em>%s</em>
Sequences with OTU: <em>%s</em>
Elapsed time: <em>%s</em>`,
		humanize.Comma(res.OTURows),
		humanize.Comma(res.TaxRows),
		humanize.Comma(res.SeqRows),
		humanize.Comma(res.JoinedRows),
		gnfmt.TimeString(res.Duration.Seconds()),
	)
	return nil
}
