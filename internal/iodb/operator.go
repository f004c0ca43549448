// Package iodb implements database operations over database/sql.
// SQLite is served by modernc.org/sqlite, PostgreSQL by pgx stdlib.
// This is an impure I/O package that implements contracts
// defined in pkg/.
package iodb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/gnames/otudb/pkg/config"
	"github.com/gnames/otudb/pkg/db"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// sqlOperator implements db.Operator interface.
type sqlOperator struct {
	db      *sql.DB
	dialect db.Dialect
}

// NewOperator creates a new database operator
// (without connecting).
func NewOperator() db.Operator {
	return &sqlOperator{}
}

// Connect opens SQLite file or PostgreSQL database according
// to cfg.Driver and verifies the connection.
func (o *sqlOperator) Connect(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	var err error
	var sqlDB *sql.DB
	switch cfg.Driver {
	case string(db.SQLite):
		sqlDB, err = openSQLite(cfg)
		if err != nil {
			return ConnectionError(cfg.Path, err)
		}
		o.dialect = db.SQLite
	case string(db.Postgres):
		sqlDB, err = openPostgres(cfg)
		if err != nil {
			return ConnectionError(pgAddress(cfg), err)
		}
		o.dialect = db.Postgres
	default:
		return DriverError(cfg.Driver)
	}

	if err = sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		addr := cfg.Path
		if o.dialect == db.Postgres {
			addr = pgAddress(cfg)
		}
		return ConnectionError(addr, err)
	}

	slog.Info("Connected to database", "driver", cfg.Driver)
	o.db = sqlDB
	return nil
}

func openSQLite(cfg *config.DatabaseConfig) (*sql.DB, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("SQLite database path is empty")
	}
	dsn := "file:" + cfg.Path +
		"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	res, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// SQLite has only one writer, all work goes
	// through one connection.
	res.SetMaxOpenConns(1)
	return res, nil
}

func openPostgres(cfg *config.DatabaseConfig) (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Database,
		cfg.SSLMode,
	)
	res, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	res.SetMaxOpenConns(4)
	res.SetMaxIdleConns(2)
	return res, nil
}

// CheckExists makes sure the SQLite file of cfg exists, so commands
// that only read do not leave an empty database behind a mistyped
// path. PostgreSQL databases are not checked.
func CheckExists(cfg *config.DatabaseConfig) error {
	if cfg.Driver != string(db.SQLite) {
		return nil
	}
	fi, err := os.Stat(cfg.Path)
	if err == nil && fi.IsDir() {
		err = errors.New("path is a directory")
	}
	if err != nil {
		return NotFoundError(cfg.Path, err)
	}
	return nil
}

func pgAddress(cfg *config.DatabaseConfig) string {
	return fmt.Sprintf("%s@%s:%d/%s",
		cfg.User, cfg.Host, cfg.Port, cfg.Database)
}

// Close closes the database.
func (o *sqlOperator) Close() error {
	if o.db == nil {
		return nil
	}
	err := o.db.Close()
	o.db = nil
	return err
}

// DB returns the underlying *sql.DB.
func (o *sqlOperator) DB() *sql.DB {
	return o.db
}

// Dialect returns SQL dialect of the connected database.
func (o *sqlOperator) Dialect() db.Dialect {
	return o.dialect
}

// TableExists checks if a table exists in the current
// database.
func (o *sqlOperator) TableExists(
	ctx context.Context,
	tableName string,
) (bool, error) {
	if o.db == nil {
		return false, NotConnectedError()
	}

	query := `
		SELECT EXISTS (
			SELECT 1 FROM sqlite_master
			WHERE type = 'table' AND name = ?
		)
	`
	if o.dialect == db.Postgres {
		query = `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_schema = current_schema()
			AND table_name = $1
		)
	`
	}

	var exists bool
	err := o.db.QueryRowContext(ctx, query, tableName).Scan(&exists)
	if err != nil {
		return false, TableExistsCheckError(tableName, err)
	}

	return exists, nil
}
