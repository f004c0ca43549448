// Package ioschema implements SchemaManager interface for
// database schema management. This is an impure I/O package
// that runs DDL generated from pkg/schema models.
package ioschema

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gnames/otudb/pkg/db"
	"github.com/gnames/otudb/pkg/lifecycle"
	"github.com/gnames/otudb/pkg/schema"
)

// manager implements the lifecycle.SchemaManager interface.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) lifecycle.SchemaManager {
	return &manager{operator: op}
}

// Create creates all tables and their indexes if they do not
// exist.
func (m *manager) Create(ctx context.Context) error {
	sqlDB := m.operator.DB()
	if sqlDB == nil {
		return NotConnectedError()
	}

	for _, model := range schema.AllModels() {
		table := model.TableName()
		if _, err := sqlDB.ExecContext(ctx, model.TableDDL()); err != nil {
			return CreateSchemaError(table, err)
		}
		for _, idx := range model.IndexDDL() {
			if _, err := sqlDB.ExecContext(ctx, idx); err != nil {
				return CreateSchemaError(table, err)
			}
		}
		slog.Debug("Table is ready", "table", table)
	}

	slog.Info("Schema created", "tables", len(schema.AllModels()))
	return nil
}

// DropTable removes a known table. The table name is checked against
// schema models, so no user text gets into the statement.
func (m *manager) DropTable(
	ctx context.Context,
	exec db.Executor,
	table string,
) error {
	if !schema.IsTable(table) {
		return UnknownTableError(table)
	}
	if exec == nil {
		return NotConnectedError()
	}

	q := fmt.Sprintf("DROP TABLE %s", table)
	if _, err := exec.ExecContext(ctx, q); err != nil {
		return DropTableError(table, err)
	}

	slog.Info("Table dropped", "table", table)
	return nil
}
