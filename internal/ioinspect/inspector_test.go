package ioinspect_test

import (
	"context"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/otudb/internal/ioinspect"
	"github.com/gnames/otudb/internal/iotesting"
	"github.com/gnames/otudb/pkg/errcode"
	"github.com/gnames/otudb/pkg/lifecycle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, load bool) lifecycle.Inspector {
	t.Helper()
	cfg := iotesting.GetTestConfig(t)
	op := iotesting.Connect(t, cfg)
	if load {
		iotesting.Load(t, cfg, op)
	}
	return ioinspect.New(op)
}

func TestTotalRows(t *testing.T) {
	ctx := context.Background()
	in := setup(t, true)

	tests := []struct {
		table string
		rows  int64
	}{
		{"otu_map", 4},
		{"tax_data", 3},
		{"otus_w_seqs", 3},
		{"load_runs", 1},
	}
	for _, v := range tests {
		res, err := in.TotalRows(ctx, v.table)
		require.NoError(t, err, v.table)
		assert.Equal(t, v.rows, res, v.table)
	}

	_, err := in.TotalRows(ctx, "otu_map; DROP TABLE tax_data")
	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.DBUnknownTableError, gnErr.Code)
}

func TestColumnInfo(t *testing.T) {
	in := setup(t, true)
	res, err := in.ColumnInfo(context.Background(), "otu_map")
	require.NoError(t, err)
	require.Len(t, res, 8)
	assert.Equal(t, "record_type", res[0].Name)
	assert.Equal(t, "header", res[6].Name)
	assert.True(t, res[6].PrimaryKey)
	assert.False(t, res[7].PrimaryKey)
	assert.Equal(t, "TEXT", res[7].Type)
}

func TestNonNullCounts(t *testing.T) {
	in := setup(t, true)
	res, err := in.NonNullCounts(context.Background(), "otu_map")
	require.NoError(t, err)
	assert.Equal(t, int64(4), res["header"])
	assert.Equal(t, int64(3), res["percent_identity"])
}

func TestStats(t *testing.T) {
	ctx := context.Background()

	res, err := setup(t, true).Stats(ctx)
	require.NoError(t, err)
	var tables []string
	for _, v := range res {
		tables = append(tables, v.Table)
	}
	assert.Equal(t,
		[]string{"otu_map", "tax_data", "otus_w_seqs", "load_runs"}, tables,
		"seq_data is gone")

	_, err = setup(t, false).Stats(ctx)
	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.DBEmptyDatabaseError, gnErr.Code)
}
