package lifecycle

import (
	"context"
	"time"
)

// Inputs are the three files that make-tables converts into a database.
type Inputs struct {
	// OTUMapPath is a `.uc` file of vsearch or usearch.
	OTUMapPath string

	// FastaPath is a two-line FASTA file with reads.
	FastaPath string

	// TaxonomyPath is an output of a taxonomy assignment.
	TaxonomyPath string
}

// LoadSummary describes a finished make-tables run.
type LoadSummary struct {
	// RunID is a random UUID of the run.
	RunID string

	// InputID is the same for runs with the same input paths.
	InputID string

	// OTURows, TaxRows, SeqRows are numbers of inserted rows.
	// Duplicates are not counted.
	OTURows int64
	TaxRows int64
	SeqRows int64

	// JoinedRows is the number of sequences with known OTU.
	JoinedRows int64

	Duration time.Duration
}

// Loader builds database tables from input files.
//
// The run creates the schema, loads the OTU map, taxonomy and sequences,
// joins sequences with the OTU map and drops the sequences table.
type Loader interface {
	Load(ctx context.Context, inp Inputs) (*LoadSummary, error)
}
