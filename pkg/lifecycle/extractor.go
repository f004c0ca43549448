package lifecycle

import (
	"context"
	"io"

	"github.com/gnames/otudb/pkg/otu"
)

// ExtractSummary contains counts of an extraction.
type ExtractSummary struct {
	// Taxa is the number of OTUs with matching taxonomy.
	Taxa int

	// Sequences is the number of written FASTA records.
	Sequences int
}

// Extractor finds sequences of a taxon.
type Extractor interface {
	// TaxaMatches returns taxonomy rows where the value of the rank is
	// exactly the name.
	TaxaMatches(
		ctx context.Context,
		rank otu.Rank,
		name string,
	) ([]otu.TaxonEntry, error)

	// Extract writes sequences of OTUs that match rank and name to w
	// in FASTA format.
	Extract(
		ctx context.Context,
		rank otu.Rank,
		name string,
		w io.Writer,
	) (*ExtractSummary, error)
}
