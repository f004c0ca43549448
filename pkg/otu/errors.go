package otu

import "errors"

var (
	// ErrFieldCount means a tab-delimited line has too few fields.
	ErrFieldCount = errors.New("not enough tab-separated fields")

	// ErrNoBarcode means a sequence label has no `=` delimiter.
	ErrNoBarcode = errors.New("no '=' delimiter in sequence label")

	// ErrNoMarker means a FASTA header does not start with '>'.
	ErrNoMarker = errors.New("FASTA header does not start with '>'")

	// ErrNoSequence means a FASTA header is followed by an empty line
	// or by another header instead of its sequence.
	ErrNoSequence = errors.New("FASTA header is not followed by a sequence")

	// ErrEmptyLabel means normalization produced an empty key.
	ErrEmptyLabel = errors.New("empty label")

	// ErrNumber means a numeric field cannot be parsed.
	ErrNumber = errors.New("cannot parse number")

	// ErrTooManyRanks means a taxonomy string has more than 7 ranks.
	ErrTooManyRanks = errors.New("more than 7 taxonomic ranks")

	// ErrUnknownRank means a rank name is not one of the 7 ranks.
	ErrUnknownRank = errors.New("unknown taxonomic rank")
)
