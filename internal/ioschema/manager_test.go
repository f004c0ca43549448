package ioschema_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/otudb/internal/iodb"
	"github.com/gnames/otudb/internal/ioschema"
	"github.com/gnames/otudb/pkg/config"
	"github.com/gnames/otudb/pkg/db"
	"github.com/gnames/otudb/pkg/errcode"
	"github.com/gnames/otudb/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func connect(t *testing.T) db.Operator {
	t.Helper()
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatabasePath(filepath.Join(t.TempDir(), "otus.sqlite")),
	})
	op := iodb.NewOperator()
	require.NoError(t, op.Connect(context.Background(), &cfg.Database))
	t.Cleanup(func() { op.Close() })
	return op
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	op := connect(t)
	mgr := ioschema.NewManager(op)

	require.NoError(t, mgr.Create(ctx))
	for _, table := range schema.TableNames() {
		exists, err := op.TableExists(ctx, table)
		require.NoError(t, err)
		assert.True(t, exists, table)
	}

	t.Run("idempotent", func(t *testing.T) {
		_, err := op.DB().ExecContext(ctx,
			"INSERT INTO tax_data (otu) VALUES ('Otu1')")
		require.NoError(t, err)

		require.NoError(t, mgr.Create(ctx))

		var count int
		err = op.DB().QueryRowContext(ctx,
			"SELECT count(*) FROM tax_data").Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

func TestDropTable(t *testing.T) {
	ctx := context.Background()
	op := connect(t)
	mgr := ioschema.NewManager(op)
	require.NoError(t, mgr.Create(ctx))

	err := mgr.DropTable(ctx, op.DB(), schema.SeqDataTable)
	require.NoError(t, err)
	exists, err := op.TableExists(ctx, schema.SeqDataTable)
	require.NoError(t, err)
	assert.False(t, exists)

	t.Run("missing table", func(t *testing.T) {
		err := mgr.DropTable(ctx, op.DB(), schema.SeqDataTable)
		var gnErr *gn.Error
		require.ErrorAs(t, err, &gnErr)
		assert.Equal(t, errcode.DBDropTableError, gnErr.Code)
	})

	t.Run("unknown table", func(t *testing.T) {
		err := mgr.DropTable(ctx, op.DB(), "sqlite_master; --")
		var gnErr *gn.Error
		require.ErrorAs(t, err, &gnErr)
		assert.Equal(t, errcode.DBUnknownTableError, gnErr.Code)
	})

	t.Run("inside transaction", func(t *testing.T) {
		tx, err := op.DB().BeginTx(ctx, nil)
		require.NoError(t, err)
		require.NoError(t, mgr.DropTable(ctx, tx, schema.TaxDataTable))
		require.NoError(t, tx.Rollback())

		exists, err := op.TableExists(ctx, schema.TaxDataTable)
		require.NoError(t, err)
		assert.True(t, exists, "rollback restores the table")
	})
}

func TestNotConnected(t *testing.T) {
	mgr := ioschema.NewManager(iodb.NewOperator())
	err := mgr.Create(context.Background())
	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.DBNotConnectedError, gnErr.Code)
}
