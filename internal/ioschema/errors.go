package ioschema

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/otudb/pkg/errcode"
	"github.com/gnames/otudb/pkg/schema"
)

// NotConnectedError creates an error for when schema
// operation is attempted without database connection.
func NotConnectedError() error {
	msg := "Schema operation attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  errors.New("not connected to database"),
	}
}

// CreateSchemaError creates an error for table creation
// failures.
func CreateSchemaError(table string, err error) error {
	msg := `Cannot create table <em>%s</em>

<em>Possible causes:</em>
  - Insufficient database permissions
  - A table with the same name but different columns exists

<em>How to fix:</em>
  1. Check database user has CREATE permissions
  2. Use a new database file`
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)

	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: failed to create %s: %w",
			fn, table, err),
	}
}

// UnknownTableError creates an error for a table name that
// is not a part of the schema.
func UnknownTableError(table string) error {
	msg := "Unknown table <em>%s</em>, known tables: %s"
	vars := []any{table, strings.Join(schema.TableNames(), ", ")}

	return &gn.Error{
		Code: errcode.DBUnknownTableError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown table %q", table),
	}
}

// DropTableError creates an error for failed DROP TABLE.
func DropTableError(table string, err error) error {
	msg := "Cannot drop table <em>%s</em>"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)

	return &gn.Error{
		Code: errcode.DBDropTableError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: failed to drop %s: %w",
			fn, table, err),
	}
}
