package ioload

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/gnames/otudb/pkg/db"
	"github.com/gnames/otudb/pkg/schema"
)

// insertSQL builds an insert statement that skips rows with
// existing keys, so the first seen record wins.
func insertSQL(d db.Dialect, model schema.DDLGenerator) string {
	cols := schema.Columns(model)
	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) ON CONFLICT DO NOTHING",
		model.TableName(),
		strings.Join(cols, ", "),
		d.Placeholders(len(cols)),
	)
}

// inserter keeps a prepared insert statement and counts
// inserted rows.
type inserter struct {
	stmt  *sql.Stmt
	table string
	path  string
	count int64
}

func (l *loader) newInserter(
	ctx context.Context,
	exec db.Executor,
	model schema.DDLGenerator,
	path string,
) (*inserter, error) {
	q := insertSQL(l.operator.Dialect(), model)
	stmt, err := exec.PrepareContext(ctx, q)
	if err != nil {
		return nil, InsertError(model.TableName(), path, 0, err)
	}
	res := inserter{stmt: stmt, table: model.TableName(), path: path}
	return &res, nil
}

func (ins *inserter) insert(
	ctx context.Context,
	lineNum int,
	args ...any,
) error {
	res, err := ins.stmt.ExecContext(ctx, args...)
	if err != nil {
		return InsertError(ins.table, ins.path, lineNum, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return InsertError(ins.table, ins.path, lineNum, err)
	}
	ins.count += n
	return nil
}

func (ins *inserter) close() {
	ins.stmt.Close()
}
