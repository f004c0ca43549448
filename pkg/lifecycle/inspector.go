package lifecycle

import "context"

// ColumnInfo describes a column of a database table.
type ColumnInfo struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	NotNull    bool   `json:"notNull"`
	PrimaryKey bool   `json:"primaryKey"`
}

// TableStats summarizes content of a table.
type TableStats struct {
	Table   string           `json:"table"`
	Rows    int64            `json:"rows"`
	Columns []ColumnInfo     `json:"columns"`
	NonNull map[string]int64 `json:"nonNull"`
}

// Inspector reports the state of otudb tables. Only known table names
// are accepted.
type Inspector interface {
	// TotalRows returns the number of rows in a table.
	TotalRows(ctx context.Context, table string) (int64, error)

	// ColumnInfo returns columns of a table as the database sees them.
	ColumnInfo(ctx context.Context, table string) ([]ColumnInfo, error)

	// NonNullCounts returns the number of non-NULL values per column.
	NonNullCounts(ctx context.Context, table string) (map[string]int64, error)

	// Stats returns statistics of all existing otudb tables.
	Stats(ctx context.Context) ([]TableStats, error)
}
