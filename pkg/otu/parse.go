package otu

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// OTUMapFieldsNum is the minimal number of fields in an OTU map line.
const OTUMapFieldsNum = 10

// ParseOTUMapLine parses a tab-delimited line of a `.uc` file.
// Fields 0, 1, 2, 3, 4, 7, 8, 9 are record type, cluster number,
// sequence length, percent identity, strand, alignment, sequence label
// and target label.
func ParseOTUMapLine(line string) (OTUMapEntry, error) {
	var res OTUMapEntry
	line = strings.TrimRight(line, "\r\n")
	fs := strings.Split(line, "\t")
	if len(fs) < OTUMapFieldsNum {
		return res, fmt.Errorf(
			"%w: %d instead of at least %d",
			ErrFieldCount, len(fs), OTUMapFieldsNum,
		)
	}

	cluster, err := strconv.Atoi(fs[1])
	if err != nil {
		return res, fmt.Errorf("%w: cluster number '%s'", ErrNumber, fs[1])
	}

	seqLen, err := parseNullInt(fs[2])
	if err != nil {
		return res, fmt.Errorf("%w: sequence length '%s'", ErrNumber, fs[2])
	}

	identity, err := parseNullFloat(fs[3])
	if err != nil {
		return res, fmt.Errorf("%w: percent identity '%s'", ErrNumber, fs[3])
	}

	header, err := OTUMapHeader(fs[8])
	if err != nil {
		return res, err
	}

	target, err := TargetLabel(fs[9])
	if err != nil {
		return res, err
	}

	res = OTUMapEntry{
		RecordType:      fs[0],
		ClusterNumber:   cluster,
		SeqLength:       seqLen,
		PercentIdentity: identity,
		Strand:          fs[4],
		Alignment:       fs[7],
		Header:          header,
		Target:          target,
	}
	return res, nil
}

// ParseTaxonomyLine parses a tab-delimited line of a taxonomy assignment
// file. Field 0 is an OTU identifier, field 1 is a Greengenes taxonomy
// string, other fields are ignored.
func ParseTaxonomyLine(line string) (TaxonEntry, error) {
	var res TaxonEntry
	line = strings.TrimRight(line, "\r\n")
	fs := strings.Split(line, "\t")
	if len(fs) < 2 {
		return res, fmt.Errorf(
			"%w: %d instead of at least 2", ErrFieldCount, len(fs),
		)
	}

	label, err := TaxonLabel(fs[0])
	if err != nil {
		return res, err
	}

	ranks, err := ParseTaxonomy(fs[1])
	if err != nil {
		return res, err
	}
	return NewTaxonEntry(label, ranks), nil
}

// ParseFastaRecord creates SequenceEntry from a header line and the
// sequence line that follows it.
func ParseFastaRecord(headerLine, seqLine string) (SequenceEntry, error) {
	var res SequenceEntry
	header, err := FastaHeader(strings.TrimRight(headerLine, "\r\n"))
	if err != nil {
		return res, err
	}
	seq := strings.TrimRightFunc(seqLine, unicode.IsSpace)
	if seq == "" || strings.HasPrefix(seq, ">") {
		return res, ErrNoSequence
	}
	res = SequenceEntry{Header: header, Sequence: seq}
	return res, nil
}

func parseNullInt(s string) (sql.NullInt64, error) {
	if s == "*" {
		return sql.NullInt64{}, nil
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return sql.NullInt64{}, err
	}
	return sql.NullInt64{Int64: i, Valid: true}, nil
}

func parseNullFloat(s string) (sql.NullFloat64, error) {
	if s == "*" {
		return sql.NullFloat64{}, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return sql.NullFloat64{}, err
	}
	return sql.NullFloat64{Float64: f, Valid: true}, nil
}
