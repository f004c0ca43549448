// Package ioinspect implements Inspector interface that reports
// row counts and columns of otudb tables.
package ioinspect

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gnames/otudb/pkg/db"
	"github.com/gnames/otudb/pkg/lifecycle"
	"github.com/gnames/otudb/pkg/schema"
)

type inspector struct {
	operator db.Operator
}

// New creates a new Inspector.
func New(op db.Operator) lifecycle.Inspector {
	return &inspector{operator: op}
}

// TotalRows returns the number of rows in the table.
func (in *inspector) TotalRows(
	ctx context.Context,
	table string,
) (int64, error) {
	if err := in.check(table); err != nil {
		return 0, err
	}

	var res int64
	q := fmt.Sprintf("SELECT count(*) FROM %s", table)
	err := in.operator.DB().QueryRowContext(ctx, q).Scan(&res)
	if err != nil {
		return 0, QueryError(table, err)
	}
	return res, nil
}

const sqliteColumnsSQL = `
SELECT name, type, "notnull", pk > 0
  FROM pragma_table_info(?)
  ORDER BY cid`

const pgColumnsSQL = `
SELECT c.column_name, c.data_type, c.is_nullable = 'NO',
  EXISTS (
    SELECT 1
      FROM information_schema.table_constraints tc
        JOIN information_schema.key_column_usage k
          ON tc.constraint_name = k.constraint_name
            AND tc.table_schema = k.table_schema
      WHERE tc.constraint_type = 'PRIMARY KEY'
        AND tc.table_schema = c.table_schema
        AND tc.table_name = c.table_name
        AND k.column_name = c.column_name
  )
  FROM information_schema.columns c
  WHERE c.table_schema = current_schema() AND c.table_name = $1
  ORDER BY c.ordinal_position`

// ColumnInfo describes columns of the table as the database sees them.
func (in *inspector) ColumnInfo(
	ctx context.Context,
	table string,
) ([]lifecycle.ColumnInfo, error) {
	if err := in.check(table); err != nil {
		return nil, err
	}

	q := sqliteColumnsSQL
	if in.operator.Dialect() == db.Postgres {
		q = pgColumnsSQL
	}

	rows, err := in.operator.DB().QueryContext(ctx, q, table)
	if err != nil {
		return nil, QueryError(table, err)
	}
	defer rows.Close()

	var res []lifecycle.ColumnInfo
	for rows.Next() {
		var ci lifecycle.ColumnInfo
		err = rows.Scan(&ci.Name, &ci.Type, &ci.NotNull, &ci.PrimaryKey)
		if err != nil {
			return nil, QueryError(table, err)
		}
		res = append(res, ci)
	}
	if err = rows.Err(); err != nil {
		return nil, QueryError(table, err)
	}
	return res, nil
}

// NonNullCounts counts values of every column of the table model.
func (in *inspector) NonNullCounts(
	ctx context.Context,
	table string,
) (map[string]int64, error) {
	if err := in.check(table); err != nil {
		return nil, err
	}
	model, _ := schema.Model(table)
	cols := schema.Columns(model)

	counts := make([]string, len(cols))
	for i, v := range cols {
		counts[i] = fmt.Sprintf("count(%s)", v)
	}
	q := fmt.Sprintf("SELECT %s FROM %s", strings.Join(counts, ", "), table)

	vals := make([]int64, len(cols))
	dest := make([]any, len(cols))
	for i := range vals {
		dest[i] = &vals[i]
	}
	err := in.operator.DB().QueryRowContext(ctx, q).Scan(dest...)
	if err != nil {
		return nil, QueryError(table, err)
	}

	res := make(map[string]int64, len(cols))
	for i, v := range cols {
		res[v] = vals[i]
	}
	return res, nil
}

// Stats collects statistics of existing tables. Missing tables,
// like seq_data after a complete run, are skipped.
func (in *inspector) Stats(ctx context.Context) ([]lifecycle.TableStats, error) {
	if in.operator.DB() == nil {
		return nil, NotConnectedError()
	}

	var res []lifecycle.TableStats
	for _, table := range schema.TableNames() {
		exists, err := in.operator.TableExists(ctx, table)
		if err != nil {
			return nil, err
		}
		if !exists {
			slog.Debug("Table does not exist", "table", table)
			continue
		}

		ts := lifecycle.TableStats{Table: table}
		if ts.Rows, err = in.TotalRows(ctx, table); err != nil {
			return nil, err
		}
		if ts.Columns, err = in.ColumnInfo(ctx, table); err != nil {
			return nil, err
		}
		if ts.NonNull, err = in.NonNullCounts(ctx, table); err != nil {
			return nil, err
		}
		res = append(res, ts)
	}

	if len(res) == 0 {
		return nil, EmptyDatabaseError()
	}
	return res, nil
}

func (in *inspector) check(table string) error {
	if in.operator.DB() == nil {
		return NotConnectedError()
	}
	if !schema.IsTable(table) {
		return UnknownTableError(table)
	}
	return nil
}
