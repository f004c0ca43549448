package ioextract

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/otudb/pkg/errcode"
)

// NotConnectedError creates an error for when extraction is
// attempted without database connection.
func NotConnectedError() error {
	msg := "Extract operation attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  errors.New("not connected to database"),
	}
}

// UnknownRankError creates an error for a rank that is not one
// of the seven Greengenes ranks.
func UnknownRankError(rank string) error {
	msg := `Unknown rank <em>%s</em>

Use one of: Kingdom, Phylum, Class, Order, Family, Genus, Species`
	vars := []any{rank}

	return &gn.Error{
		Code: errcode.ExtractUnknownRankError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown rank %q", rank),
	}
}

// EmptyDatabaseError creates an error for a database without
// tables made by make-tables.
func EmptyDatabaseError(table string) error {
	msg := `Table <em>%s</em> is missing

<em>How to fix:</em>
  Create tables first:
  <em>otudb make-tables -i reads.fasta -o otu_map.uc -t taxa.txt --db otus.sqlite</em>`
	vars := []any{table}

	return &gn.Error{
		Code: errcode.DBEmptyDatabaseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("table %s does not exist", table),
	}
}

// QueryError creates an error for failed taxa or sequence query.
func QueryError(rank fmt.Stringer, name string, err error) error {
	msg := "Cannot query data for %s <em>%s</em>"
	vars := []any{rank.String(), name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)

	return &gn.Error{
		Code: errcode.ExtractQueryError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: query of %s %s failed: %w",
			fn, rank, name, err),
	}
}

// WriteError creates an error for failed output.
func WriteError(err error) error {
	msg := "Cannot write extracted data"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)

	return &gn.Error{
		Code: errcode.ExtractWriteError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: write failed: %w", fn, err),
	}
}
