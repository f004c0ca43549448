package ioextract_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/otudb/internal/ioextract"
	"github.com/gnames/otudb/internal/iotesting"
	"github.com/gnames/otudb/pkg/config"
	"github.com/gnames/otudb/pkg/errcode"
	"github.com/gnames/otudb/pkg/lifecycle"
	"github.com/gnames/otudb/pkg/otu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, load bool) lifecycle.Extractor {
	t.Helper()
	cfg := iotesting.GetTestConfig(t, config.OptExtractFastaWidth(6))
	op := iotesting.Connect(t, cfg)
	if load {
		iotesting.Load(t, cfg, op)
	}
	return ioextract.New(cfg, op)
}

func TestTaxaMatches(t *testing.T) {
	ctx := context.Background()
	ext := setup(t, true)

	tests := []struct {
		msg  string
		rank otu.Rank
		name string
		otus []string
	}{
		{"kingdom", otu.Kingdom, "Bacteria", []string{"OTU_1", "OTU_2", "OTU_3"}},
		{"phylum", otu.Phylum, "Proteobacteria", []string{"OTU_1", "OTU_2"}},
		{"order", otu.Order, "Enterobacteriales", []string{"OTU_1"}},
		{"exact match only", otu.Phylum, "proteobacteria", nil},
		{"placeholder", otu.Genus, "g__", []string{"OTU_2", "OTU_3"}},
		{"injection is a value", otu.Phylum, "x' OR '1'='1", nil},
	}

	for _, v := range tests {
		res, err := ext.TaxaMatches(ctx, v.rank, v.name)
		require.NoError(t, err, v.msg)
		var otus []string
		for _, te := range res {
			otus = append(otus, te.OTU)
		}
		assert.Equal(t, v.otus, otus, v.msg)
	}
}

func TestExtract(t *testing.T) {
	ctx := context.Background()
	ext := setup(t, true)

	var buf bytes.Buffer
	res, err := ext.Extract(ctx, otu.Phylum, "Proteobacteria", &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Taxa)
	assert.Equal(t, 3, res.Sequences)

	out := buf.String()
	assert.Equal(t, 3, strings.Count(out, ">"))
	for _, h := range []string{">sA.1.", ">sA.2.", ">sB.1."} {
		assert.Contains(t, out, h)
	}
	assert.Contains(t, out, "OTU_2")
	assert.Contains(t, out, ">sB.1. OTU_2\nTTGTAC\nGTACGT\n",
		"header is ID, OTU is description, lines are wrapped")
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.NotContains(t, out, "sD.1.", "sequence without OTU")

	t.Run("firmicutes have no sequences", func(t *testing.T) {
		var buf bytes.Buffer
		res, err := ext.Extract(ctx, otu.Phylum, "Firmicutes", &buf)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Taxa)
		assert.Equal(t, 0, res.Sequences)
		assert.Empty(t, buf.String())
	})
}

func TestExtractErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown rank", func(t *testing.T) {
		ext := setup(t, true)
		_, err := ext.TaxaMatches(ctx, otu.Rank(10), "Bacteria")
		var gnErr *gn.Error
		require.ErrorAs(t, err, &gnErr)
		assert.Equal(t, errcode.ExtractUnknownRankError, gnErr.Code)
	})

	t.Run("empty database", func(t *testing.T) {
		ext := setup(t, false)
		var buf bytes.Buffer
		_, err := ext.Extract(ctx, otu.Phylum, "Proteobacteria", &buf)
		var gnErr *gn.Error
		require.ErrorAs(t, err, &gnErr)
		assert.Equal(t, errcode.DBEmptyDatabaseError, gnErr.Code)
	})
}
