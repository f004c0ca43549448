package ioinspect

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/otudb/pkg/errcode"
	"github.com/gnames/otudb/pkg/schema"
)

func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Inspect operation attempted without database connection",
		Err:  errors.New("not connected to database"),
	}
}

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

func EmptyDatabaseError() error {
	msg := `Database has no otudb tables

<em>How to fix:</em>
  Create tables with <em>otudb make-tables</em>`
	return &gn.Error{
		Code: errcode.DBEmptyDatabaseError,
		Msg:  msg,
		Err:  errors.New("no otudb tables found"),
	}
}

func QueryError(table string, err error) error {
	msg := "Cannot read statistics of <em>%s</em>"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InspectQueryError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: query of %s failed: %w", fn, table, err),
	}
}
