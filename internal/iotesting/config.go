// Package iotesting provides shared test utilities for integration tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"testing"

	"github.com/gnames/otudb/internal/iodb"
	"github.com/gnames/otudb/internal/ioload"
	"github.com/gnames/otudb/internal/ioschema"
	"github.com/gnames/otudb/pkg/config"
	"github.com/gnames/otudb/pkg/db"
	"github.com/gnames/otudb/pkg/lifecycle"
	"github.com/stretchr/testify/require"
)

const (
	// TestDatabaseName is the PostgreSQL database used by integration
	// tests. Tests never run against a database with another name.
	TestDatabaseName = "otudb_test"

	// PostgresHostEnv enables PostgreSQL tests when it is set.
	PostgresHostEnv = "OTUDB_TEST_POSTGRES_HOST"
)

// GetTestConfig returns a configuration with a SQLite database in a
// temporary directory and without progress bars. Options are applied
// on top of it.
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    cfg := iotesting.GetTestConfig(t)
//	    op := iotesting.Connect(t, cfg)
//	    // ... use op for database operations
//	}
func GetTestConfig(t *testing.T, opts ...config.Option) *config.Config {
	t.Helper()
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatabasePath(filepath.Join(t.TempDir(), "otus.sqlite")),
		config.OptWithProgress(false),
	})
	cfg.Update(opts)
	return cfg
}

// GetPostgresConfig returns a configuration for PostgreSQL tests.
// The test is skipped unless OTUDB_TEST_POSTGRES_HOST is set.
// OTUDB_TEST_POSTGRES_PORT, OTUDB_TEST_POSTGRES_USER and
// OTUDB_TEST_POSTGRES_PASSWORD are optional.
func GetPostgresConfig(t *testing.T) *config.Config {
	t.Helper()
	host := os.Getenv(PostgresHostEnv)
	if host == "" {
		t.Skipf("%s is not set", PostgresHostEnv)
	}

	opts := []config.Option{
		config.OptDatabaseDriver("postgres"),
		config.OptDatabaseHost(host),
		config.OptDatabaseDatabase(TestDatabaseName),
	}
	if s := os.Getenv("OTUDB_TEST_POSTGRES_PORT"); s != "" {
		port, err := strconv.Atoi(s)
		require.NoError(t, err)
		opts = append(opts, config.OptDatabasePort(port))
	}
	if s := os.Getenv("OTUDB_TEST_POSTGRES_USER"); s != "" {
		opts = append(opts, config.OptDatabaseUser(s))
	}
	if s := os.Getenv("OTUDB_TEST_POSTGRES_PASSWORD"); s != "" {
		opts = append(opts, config.OptDatabasePassword(s))
	}
	return GetTestConfig(t, opts...)
}

// Connect opens the database of the config and closes it when the
// test finishes.
func Connect(t *testing.T, cfg *config.Config) db.Operator {
	t.Helper()
	op := iodb.NewOperator()
	require.NoError(t, op.Connect(context.Background(), &cfg.Database))
	t.Cleanup(func() { op.Close() })
	return op
}

// TestdataDir returns the directory with sample OTU map, FASTA and
// taxonomy files.
func TestdataDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "ioload", "testdata")
}

// Inputs returns the sample input files. The sample has 4 OTU map
// rows, 4 sequences, 3 taxa and 3 sequences with an OTU.
func Inputs() lifecycle.Inputs {
	dir := TestdataDir()
	return lifecycle.Inputs{
		OTUMapPath:   filepath.Join(dir, "otu_map.uc"),
		FastaPath:    filepath.Join(dir, "seqs.fasta"),
		TaxonomyPath: filepath.Join(dir, "taxa.txt"),
	}
}

// Load runs make-tables on the sample inputs.
func Load(t *testing.T, cfg *config.Config, op db.Operator) {
	t.Helper()
	ldr := ioload.New(cfg, op, ioschema.NewManager(op))
	_, err := ldr.Load(context.Background(), Inputs())
	require.NoError(t, err)
}
