// Package ioextract implements Extractor interface. It finds OTUs by
// the value of a taxonomic rank and writes their sequences as FASTA.
// This is an impure I/O package that queries the database and writes
// files.
package ioextract

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/dustin/go-humanize"
	"github.com/gnames/otudb/pkg/config"
	"github.com/gnames/otudb/pkg/db"
	"github.com/gnames/otudb/pkg/lifecycle"
	"github.com/gnames/otudb/pkg/otu"
	"github.com/gnames/otudb/pkg/schema"
)

// extractor implements the lifecycle.Extractor interface.
type extractor struct {
	cfg      *config.Config
	operator db.Operator
}

// New creates a new Extractor.
func New(cfg *config.Config, op db.Operator) lifecycle.Extractor {
	return &extractor{cfg: cfg, operator: op}
}

// taxaColumns are tax_data columns in the order of
// otu.TaxonEntry fields.
func taxaColumns() string {
	return strings.Join(schema.Columns(schema.TaxData{}), ", ")
}

// TaxaMatches returns taxonomy rows where the rank column equals
// name exactly. The column comes from the rank, the name is a bound
// parameter.
func (e *extractor) TaxaMatches(
	ctx context.Context,
	rank otu.Rank,
	name string,
) ([]otu.TaxonEntry, error) {
	col, err := e.prepare(ctx, rank, schema.TaxDataTable)
	if err != nil {
		return nil, err
	}

	q := fmt.Sprintf(
		"SELECT %s FROM tax_data WHERE %s = %s ORDER BY otu",
		taxaColumns(), col, e.operator.Dialect().Placeholder(1),
	)
	rows, err := e.operator.DB().QueryContext(ctx, q, name)
	if err != nil {
		return nil, QueryError(rank, name, err)
	}
	defer rows.Close()

	var res []otu.TaxonEntry
	for rows.Next() {
		var te otu.TaxonEntry
		err = rows.Scan(
			&te.OTU, &te.Kingdom, &te.Phylum, &te.Class,
			&te.Order, &te.Family, &te.Genus, &te.Species,
		)
		if err != nil {
			return nil, QueryError(rank, name, err)
		}
		res = append(res, te)
	}
	if err = rows.Err(); err != nil {
		return nil, QueryError(rank, name, err)
	}

	slog.Info("Found matching taxa",
		"rank", rank.String(), "name", name, "count", len(res))
	return res, nil
}

// Extract writes sequences of OTUs with matching taxonomy to w.
// FASTA records get the header as ID and the OTU label as
// description.
func (e *extractor) Extract(
	ctx context.Context,
	rank otu.Rank,
	name string,
	w io.Writer,
) (*lifecycle.ExtractSummary, error) {
	taxa, err := e.TaxaMatches(ctx, rank, name)
	if err != nil {
		return nil, err
	}
	res := &lifecycle.ExtractSummary{Taxa: len(taxa)}

	col, err := e.prepare(ctx, rank, schema.JoinedTable)
	if err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`
SELECT j.cluster_number, j.header, j.target, j.sequence
  FROM otus_w_seqs j
    JOIN tax_data t ON j.target = t.otu
  WHERE t.%s = %s
  ORDER BY j.header`,
		col, e.operator.Dialect().Placeholder(1),
	)
	rows, err := e.operator.DB().QueryContext(ctx, q, name)
	if err != nil {
		return nil, QueryError(rank, name, err)
	}
	defer rows.Close()

	fw := fasta.NewWriter(w, e.cfg.Extract.FastaWidth)
	for rows.Next() {
		var je otu.JoinedEntry
		err = rows.Scan(&je.ClusterNumber, &je.Header, &je.Target, &je.Sequence)
		if err != nil {
			return nil, QueryError(rank, name, err)
		}
		if _, err = fw.Write(fastaSeq(je)); err != nil {
			return nil, WriteError(err)
		}
		res.Sequences++
	}
	if err = rows.Err(); err != nil {
		return nil, QueryError(rank, name, err)
	}
	// fasta.Writer starts records with a new line, the last
	// one stays open.
	if res.Sequences > 0 {
		if _, err = io.WriteString(w, "\n"); err != nil {
			return nil, WriteError(err)
		}
	}

	slog.Info("Sequences extracted",
		"rank", rank.String(),
		"name", name,
		"taxa", res.Taxa,
		"sequences", humanize.Comma(int64(res.Sequences)),
	)
	return res, nil
}

// fastaSeq converts a joined row to a FASTA record.
func fastaSeq(je otu.JoinedEntry) *linear.Seq {
	res := linear.NewSeq(
		je.Header,
		alphabet.BytesToLetters([]byte(je.Sequence)),
		alphabet.DNA,
	)
	res.Desc = je.Target
	return res
}

// prepare checks the connection, the rank and the table, and returns
// the tax_data column of the rank.
func (e *extractor) prepare(
	ctx context.Context,
	rank otu.Rank,
	table string,
) (string, error) {
	if e.operator.DB() == nil {
		return "", NotConnectedError()
	}

	col := rank.Column()
	if col == "" {
		return "", UnknownRankError(rank.String())
	}

	exists, err := e.operator.TableExists(ctx, table)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", EmptyDatabaseError(table)
	}
	return col, nil
}
