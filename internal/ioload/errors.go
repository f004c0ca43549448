package ioload

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/otudb/pkg/errcode"
)

// NotConnectedError creates an error for when load
// operation is attempted without database connection.
func NotConnectedError() error {
	msg := "Load operation attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  errors.New("not connected to database"),
	}
}

// MissingInputError creates an error for an input path that
// was not given.
func MissingInputError(name string) error {
	msg := "Input <em>%s</em> is required"
	vars := []any{name}

	return &gn.Error{
		Code: errcode.ConfigMissingInputError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("missing input %s", name),
	}
}

// InputNotFoundError creates an error for an input file that
// does not exist or is a directory.
func InputNotFoundError(path string, err error) error {
	msg := `Cannot use input file <em>%s</em>

<em>How to fix:</em>
  1. Check that the path is correct
  2. Check that it is a file, not a directory`
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)

	return &gn.Error{
		Code: errcode.ConfigInputNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: input %s is not usable: %w",
			fn, path, err),
	}
}

// ReadFileError creates an error for failures to read input.
func ReadFileError(path string, err error) error {
	msg := "Cannot read <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)

	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read %s: %w", fn, path, err),
	}
}

// MalformedRecordError creates an error for a line that
// cannot be parsed. Line numbers start with 1.
func MalformedRecordError(path string, line int, err error) error {
	msg := `Malformed record in <em>%s</em> at line <em>%d</em>

<em>Reason:</em> %s`
	vars := []any{path, line, err.Error()}

	return &gn.Error{
		Code: errcode.LoadMalformedRecordError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%s:%d: malformed record: %w", path, line, err),
	}
}

// InsertError creates an error for failed insert of a record.
func InsertError(table, path string, line int, err error) error {
	msg := "Cannot insert data from <em>%s</em> line %d into <em>%s</em>"
	vars := []any{path, line, table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)

	return &gn.Error{
		Code: errcode.LoadInsertError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: insert into %s failed (%s:%d): %w",
			fn, table, path, line, err),
	}
}

// JoinError creates an error for failure of the join of
// the OTU map and sequences.
func JoinError(err error) error {
	msg := "Cannot join OTU map with sequences"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)

	return &gn.Error{
		Code: errcode.LoadJoinError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: join failed: %w", fn, err),
	}
}

// TransactionError creates an error for failures to start,
// commit or roll back a transaction.
func TransactionError(stage string, err error) error {
	msg := "Database transaction failed during <em>%s</em>"
	vars := []any{stage}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)

	return &gn.Error{
		Code: errcode.DBTransactionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: transaction of %s failed: %w",
			fn, stage, err),
	}
}

// RunMetadataError creates an error for failure to save
// data about the run.
func RunMetadataError(err error) error {
	msg := "Tables are created, but the run was not recorded in load_runs"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)

	return &gn.Error{
		Code: errcode.LoadRunMetadataError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: cannot save run: %w", fn, err),
	}
}

// CancelledError creates an error for when the load is
// cancelled.
func CancelledError(err error) error {
	msg := "Loading was cancelled, uncommitted data are discarded"

	return &gn.Error{
		Code: errcode.LoadCancelledError,
		Msg:  msg,
		Err:  fmt.Errorf("load cancelled: %w", err),
	}
}
