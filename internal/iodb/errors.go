package iodb

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/otudb/pkg/errcode"
)

// ConnectionError creates an error for database connection
// failures.
func ConnectionError(addr string, err error) error {
	msg := `Cannot connect to database <em>%s</em>

<em>Possible causes:</em>
  - SQLite file cannot be created or opened
  - PostgreSQL is not running
  - Database configuration is incorrect

<em>How to fix:</em>
  1. Check the <em>--db</em> path and its directory permissions
  2. For PostgreSQL run <em>pg_isready</em>
  3. Check your configuration file:
     <em>~/.config/otudb/config.yaml</em>`
	vars := []any{addr}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: failed to connect to %s: %w",
			fn, addr, err),
	}
}

// NotFoundError is returned when a SQLite file to read from
// does not exist.
func NotFoundError(path string, err error) error {
	msg := `Database file <em>%s</em> does not exist

<em>How to fix:</em>
  1. Check the <em>--db</em> path
  2. Create the database with <em>otudb make-tables</em>`
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot open %s: %w",
			fn, path, err),
	}
}

// DriverError creates an error for an unsupported driver.
func DriverError(driver string) error {
	msg := "Database driver <em>%s</em> is not supported, " +
		"use <em>sqlite</em> or <em>postgres</em>"
	vars := []any{driver}
	return &gn.Error{
		Code: errcode.ConfigDriverError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown database driver %q", driver),
	}
}

// NotConnectedError creates an error for operations attempted
// before Connect.
func NotConnectedError() error {
	msg := "Database operation attempted without connection"
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  errors.New("not connected to database"),
	}
}

// TableExistsCheckError creates an error for failed check of
// table existence.
func TableExistsCheckError(table string, err error) error {
	msg := "Cannot check if table <em>%s</em> exists"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBTableExistsCheckError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: table %s check failed: %w",
			fn, table, err),
	}
}
