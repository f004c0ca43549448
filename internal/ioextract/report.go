package ioextract

import (
	"fmt"
	"io"

	"github.com/gnames/gnfmt"
	"github.com/gnames/otudb/pkg/otu"
)

// WriteTaxa writes matching taxonomy rows to w. Formats are "csv",
// "tsv", "compact" and "pretty", the last two are JSON.
func WriteTaxa(w io.Writer, taxa []otu.TaxonEntry, format string) error {
	switch format {
	case "csv":
		return writeDelimited(w, taxa, ',')
	case "tsv":
		return writeDelimited(w, taxa, '\t')
	case "compact", "pretty":
		enc := gnfmt.GNjson{Pretty: format == "pretty"}
		if taxa == nil {
			taxa = []otu.TaxonEntry{}
		}
		bs, err := enc.Encode(taxa)
		if err != nil {
			return WriteError(err)
		}
		if _, err = fmt.Fprintln(w, string(bs)); err != nil {
			return WriteError(err)
		}
		return nil
	default:
		return WriteError(fmt.Errorf("unknown report format %q", format))
	}
}

func writeDelimited(w io.Writer, taxa []otu.TaxonEntry, sep rune) error {
	header := []string{
		"OTU", "Kingdom", "Phylum", "Class",
		"Order", "Family", "Genus", "Species",
	}
	if _, err := fmt.Fprintln(w, gnfmt.ToCSV(header, sep)); err != nil {
		return WriteError(err)
	}
	for _, te := range taxa {
		row := append([]string{te.OTU}, te.Ranks()...)
		if _, err := fmt.Fprintln(w, gnfmt.ToCSV(row, sep)); err != nil {
			return WriteError(err)
		}
	}
	return nil
}
