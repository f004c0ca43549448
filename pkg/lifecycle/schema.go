package lifecycle

import (
	"context"

	"github.com/gnames/otudb/pkg/db"
)

// SchemaManager defines the interface for database schema management.
// Schema creation is idempotent - safe to run multiple times.
type SchemaManager interface {
	// Create creates all tables and indexes that do not exist yet.
	// Existing tables and their data stay intact.
	Create(ctx context.Context) error

	// DropTable removes one of the known tables using the given executor,
	// so the drop can be a part of a transaction. Fails if the table
	// is unknown or does not exist.
	DropTable(ctx context.Context, exec db.Executor, table string) error
}
