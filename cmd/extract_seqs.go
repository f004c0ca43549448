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
	"bufio"
	"context"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/otudb/internal/iodb"
	"github.com/gnames/otudb/internal/ioextract"
	"github.com/gnames/otudb/pkg/config"
	"github.com/gnames/otudb/pkg/otu"
	"github.com/spf13/cobra"
)

// getExtractSeqsCmd returns the extract-seqs command.
func getExtractSeqsCmd() *cobra.Command {
	var (
		rankName string
		name     string
		output   string
		report   string
		width    int
	)

	extractCmd := &cobra.Command{
		Use:   "extract-seqs",
		Short: "Write sequences of a taxon to a FASTA file",
		Long: `Find OTUs where a taxonomic rank has exactly the given name and
write their sequences to a FASTA file.

Ranks: Kingdom, Phylum, Class, Order, Family, Genus, Species
(case-insensitive, one-letter codes K, P, C, O, F, G, S also work).
Names are matched exactly, without Greengenes prefixes
(Proteobacteria, not p__Proteobacteria).

FASTA records use the sequence header as ID and the OTU label
as description.

Examples:
  otudb extract-seqs --db otus.sqlite -r Phylum -n Proteobacteria -f proteo.fasta
  otudb extract-seqs --db otus.sqlite -r g -n Escherichia -f ecoli.fasta --report tsv`,
		Aliases: []string{"extract_seqs"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireDatabase(); err != nil {
				return err
			}
			var runOpts []config.Option
			if cmd.Flags().Changed("width") {
				runOpts = append(runOpts, config.OptExtractFastaWidth(width))
			}
			if report != "" {
				runOpts = append(runOpts, config.OptExtractReportFormat(report))
			}
			cfg.Update(runOpts)

			err := runExtractSeqs(rankName, name, output, report != "")
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	extractCmd.Flags().StringVarP(
		&rankName, "rank", "r", "", "taxonomic rank, for example Phylum",
	)
	extractCmd.Flags().StringVarP(
		&name, "name", "n", "", "exact name of the taxon at the rank",
	)
	extractCmd.Flags().StringVarP(
		&output, "fasta", "f", "", "output FASTA file",
	)
	extractCmd.Flags().StringVar(
		&report, "report", "",
		"print matching taxa to STDOUT: csv, tsv, compact, pretty",
	)
	extractCmd.Flags().IntVarP(
		&width, "width", "w", 0, "line width of FASTA sequences",
	)
	_ = extractCmd.MarkFlagRequired("rank")
	_ = extractCmd.MarkFlagRequired("name")
	_ = extractCmd.MarkFlagRequired("fasta")

	return extractCmd
}

func runExtractSeqs(
	rankName, name, output string,
	withReport bool,
) error {
	ctx := context.Background()

	rank, err := otu.ParseRank(rankName)
	if err != nil {
		return ioextract.UnknownRankError(rankName)
	}

	if err = iodb.CheckExists(&cfg.Database); err != nil {
		return err
	}

	op := iodb.NewOperator()
	if err = op.Connect(ctx, &cfg.Database); err != nil {
		return err
	}
	defer op.Close()

	ext := ioextract.New(cfg, op)

	if withReport {
		taxa, err := ext.TaxaMatches(ctx, rank, name)
		if err != nil {
			return err
		}
		err = ioextract.WriteTaxa(os.Stdout, taxa, cfg.Extract.ReportFormat)
		if err != nil {
			return err
		}
	}

	f, err := os.Create(output)
	if err != nil {
		return OutputError(output, err)
	}
	w := bufio.NewWriter(f)

	res, err := ext.Extract(ctx, rank, name, w)
	if err == nil {
		err = w.Flush()
		if err != nil {
			err = OutputError(output, err)
		}
	}
	if cerr := f.Close(); err == nil && cerr != nil {
		err = OutputError(output, cerr)
	}
	if err != nil {
		os.Remove(output)
		return err
	}

	if res.Taxa == 0 {
		gn.Warn("No taxa found for %s <em>%s</em>", rank.String(), name)
	}
	gn.Info("Extracted <em>%s</em> sequences of <em>%d</em> OTUs to <em>%s</em>",
		humanize.Comma(int64(res.Sequences)), res.Taxa, output)
	return nil
}
