package db

import (
	"context"
	"database/sql"

	"github.com/gnames/otudb/pkg/config"
)

// Operator defines the interface for basic database management operations.
// It provides connection lifecycle management and exposes the *sql.DB for
// high-level lifecycle components (SchemaManager, Loader, Extractor) to
// execute their specialized SQL operations internally.
//
// The whole tool works with a single connection: SQLite allows only one
// writer, and loaders run one after another.
type Operator interface {
	// Connect opens the database described by the configuration.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection.
	Close() error

	// DB returns the underlying *sql.DB, nil before Connect.
	DB() *sql.DB

	// Dialect returns the SQL dialect of the connected database.
	Dialect() Dialect

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)
}

// Executor runs SQL statements. Both *sql.DB and *sql.Tx implement it,
// so the same code can run inside or outside of a transaction.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}
