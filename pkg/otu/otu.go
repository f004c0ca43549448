// Package otu contains records of OTU clustering data and pure functions
// that parse and normalize them. Identifiers from the OTU map, the FASTA
// file and the taxonomy file use different delimiters; the functions here
// convert all of them to the same canonical keys, so tables built from
// different files can be joined.
package otu

import "database/sql"

// OTUMapEntry is one line of a vsearch/usearch `.uc` OTU map.
type OTUMapEntry struct {
	// RecordType is H (hit), S (centroid), C (cluster) or N (no hit).
	RecordType string

	// ClusterNumber is the zero-based number of the cluster.
	ClusterNumber int

	// SeqLength is the length of the query sequence, NULL for `*`.
	SeqLength sql.NullInt64

	// PercentIdentity with the target, NULL for `*`.
	PercentIdentity sql.NullFloat64

	// Strand is `+`, `-` or `*`.
	Strand string

	// Alignment is the compressed alignment (CIGAR) string.
	Alignment string

	// Header is the normalized sequence label, the key of the entry.
	Header string

	// Target is the normalized label of the OTU the sequence belongs to.
	Target string
}

// SequenceEntry is a FASTA record keyed by a normalized header.
type SequenceEntry struct {
	Header   string
	Sequence string
}

// TaxonEntry is a taxonomy assignment of an OTU with exactly seven ranks.
// Missing ranks hold placeholders like `g__` or `s__`.
type TaxonEntry struct {
	OTU     string `json:"otu"`
	Kingdom string `json:"kingdom"`
	Phylum  string `json:"phylum"`
	Class   string `json:"class"`
	Order   string `json:"order"`
	Family  string `json:"family"`
	Genus   string `json:"genus"`
	Species string `json:"species"`
}

// JoinedEntry is a sequence together with its OTU assignment.
type JoinedEntry struct {
	ClusterNumber int
	Header        string
	Target        string
	Sequence      string
}

// NewTaxonEntry creates TaxonEntry from an OTU label and seven rank values.
func NewTaxonEntry(otuLabel string, ranks []string) TaxonEntry {
	var rs [RanksNum]string
	copy(rs[:], ranks)
	return TaxonEntry{
		OTU:     otuLabel,
		Kingdom: rs[Kingdom],
		Phylum:  rs[Phylum],
		Class:   rs[Class],
		Order:   rs[Order],
		Family:  rs[Family],
		Genus:   rs[Genus],
		Species: rs[Species],
	}
}

// Ranks returns rank values from the most general to the most specific.
func (te TaxonEntry) Ranks() []string {
	return []string{
		te.Kingdom, te.Phylum, te.Class, te.Order,
		te.Family, te.Genus, te.Species,
	}
}

// Value returns the value of the given rank.
func (te TaxonEntry) Value(r Rank) string {
	ranks := te.Ranks()
	if r < 0 || int(r) >= len(ranks) {
		return ""
	}
	return ranks[r]
}
