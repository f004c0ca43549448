package db

import (
	"fmt"
	"strings"
)

// Dialect is a flavor of SQL used by a database backend.
type Dialect string

const (
	// SQLite is served by the pure Go modernc.org/sqlite driver.
	SQLite Dialect = "sqlite"

	// Postgres is served by the pgx driver.
	Postgres Dialect = "postgres"
)

// Placeholder returns the bind parameter for the i-th (1-based) argument.
func (d Dialect) Placeholder(i int) string {
	if d == Postgres {
		return fmt.Sprintf("$%d", i)
	}
	return "?"
}

// Placeholders returns a comma-separated list of n bind parameters.
func (d Dialect) Placeholders(n int) string {
	res := make([]string, n)
	for i := range res {
		res[i] = d.Placeholder(i + 1)
	}
	return strings.Join(res, ", ")
}
