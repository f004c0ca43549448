// Package schema provides database schema models for otudb.
// Column types are chosen so the same DDL works for SQLite and PostgreSQL.
package schema

import (
	"database/sql"
	"time"
)

// DDLGenerator defines how Go models generate DDL.
type DDLGenerator interface {
	// TableDDL returns the CREATE TABLE statement for this model.
	TableDDL() string

	// IndexDDL returns CREATE INDEX statements for this model.
	// Returns empty slice if no indexes needed.
	IndexDDL() []string

	// TableName returns the table name for this model.
	TableName() string
}

// Table names.
const (
	OTUMapTable   = "otu_map"
	SeqDataTable  = "seq_data"
	TaxDataTable  = "tax_data"
	JoinedTable   = "otus_w_seqs"
	LoadRunsTable = "load_runs"
)

// OTUMap is an entry of the OTU map (`.uc` file) keyed by sequence header.
type OTUMap struct {
	// RecordType is H, S, C or N.
	RecordType string `db:"record_type" ddl:"TEXT DEFAULT 'H'"`

	// ClusterNumber is the number of the OTU cluster.
	ClusterNumber int `db:"cluster_number" ddl:"INTEGER"`

	// SeqLength is the length of the sequence.
	SeqLength sql.NullInt64 `db:"seq_length" ddl:"INTEGER"`

	// PercentIdentity is the identity of the sequence to the centroid.
	PercentIdentity sql.NullFloat64 `db:"percent_identity" ddl:"DOUBLE PRECISION"`

	// Strand of the alignment.
	Strand string `db:"strand" ddl:"TEXT"`

	// Alignment is the CIGAR string of the alignment.
	Alignment string `db:"alignment" ddl:"TEXT"`

	// Header is the normalized sequence label.
	Header string `db:"header" ddl:"TEXT PRIMARY KEY"`

	// Target is the normalized OTU label.
	Target string `db:"target" ddl:"TEXT"`
}

// SeqData is a sequence keyed by normalized header. The table is removed
// after its data are joined with the OTU map.
type SeqData struct {
	Header   string `db:"header" ddl:"TEXT PRIMARY KEY"`
	Sequence string `db:"sequence" ddl:"TEXT"`
}

// TaxData is a Greengenes taxonomy of an OTU.
type TaxData struct {
	OTU     string `db:"otu" ddl:"TEXT PRIMARY KEY"`
	Kingdom string `db:"kingdom" ddl:"TEXT"`
	Phylum  string `db:"phylum" ddl:"TEXT"`
	Class   string `db:"class" ddl:"TEXT"`
	Order   string `db:"tax_order" ddl:"TEXT"`
	Family  string `db:"family" ddl:"TEXT"`
	Genus   string `db:"genus" ddl:"TEXT"`
	Species string `db:"species" ddl:"TEXT"`
}

// OTUWithSeq is a sequence with its OTU, the result of the join of
// otu_map and seq_data.
type OTUWithSeq struct {
	ClusterNumber int    `db:"cluster_number" ddl:"INTEGER"`
	Header        string `db:"header" ddl:"TEXT PRIMARY KEY"`
	Target        string `db:"target" ddl:"TEXT"`
	Sequence      string `db:"sequence" ddl:"TEXT"`
}

// LoadRun keeps metadata of a completed make-tables run.
type LoadRun struct {
	// ID is a random UUID of the run.
	ID string `db:"id" ddl:"TEXT PRIMARY KEY"`

	// InputID is UUID v5 generated from the paths of the three input
	// files. Runs with the same inputs have the same InputID.
	InputID string `db:"input_id" ddl:"TEXT NOT NULL"`

	OTUMapPath   string `db:"otu_map_path" ddl:"TEXT"`
	FastaPath    string `db:"fasta_path" ddl:"TEXT"`
	TaxonomyPath string `db:"taxonomy_path" ddl:"TEXT"`

	// Numbers of rows inserted by the run.
	OTURows    int64 `db:"otu_rows" ddl:"INTEGER"`
	TaxRows    int64 `db:"tax_rows" ddl:"INTEGER"`
	SeqRows    int64 `db:"seq_rows" ddl:"INTEGER"`
	JoinedRows int64 `db:"joined_rows" ddl:"INTEGER"`

	// Atomic is true if the run used a single transaction.
	Atomic bool `db:"atomic" ddl:"BOOLEAN"`

	StartedAt  time.Time `db:"started_at" ddl:"TIMESTAMP"`
	FinishedAt time.Time `db:"finished_at" ddl:"TIMESTAMP"`
}
