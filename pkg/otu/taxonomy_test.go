package otu_test

import (
	"testing"

	"github.com/gnames/otudb/pkg/otu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixGreengenes(t *testing.T) {
	placeholders := []string{"k__", "p__", "c__", "o__", "f__", "g__", "s__"}
	full := []string{"k", "p", "c", "o", "f", "g", "s"}

	for n := 0; n <= otu.RanksNum; n++ {
		input := append([]string{}, full[:n]...)
		res, err := otu.FixGreengenes(input)
		require.NoError(t, err)
		assert.Len(t, res, otu.RanksNum)
		assert.Equal(t, full[:n], res[:n], "prefix is unchanged")
		assert.Equal(t, placeholders[n:], res[n:], "trailing placeholders")
		assert.Len(t, input, n, "input is not modified")
	}

	t.Run("two ranks", func(t *testing.T) {
		res, err := otu.FixGreengenes([]string{"k__Bacteria", "p__Proteobacteria"})
		require.NoError(t, err)
		assert.Equal(t, []string{
			"k__Bacteria", "p__Proteobacteria",
			"c__", "o__", "f__", "g__", "s__",
		}, res)
	})

	t.Run("seven ranks", func(t *testing.T) {
		in := []string{"k__Bacteria", "p__Proteobacteria", "c__", "o__",
			"f__", "g__", "s__"}
		res, err := otu.FixGreengenes(in)
		require.NoError(t, err)
		assert.Equal(t, in, res)
	})

	t.Run("too many ranks", func(t *testing.T) {
		_, err := otu.FixGreengenes(make([]string, 8))
		assert.ErrorIs(t, err, otu.ErrTooManyRanks)
	})
}

func TestParseTaxonomy(t *testing.T) {
	tests := []struct {
		msg, tax string
		res      []string
	}{
		{
			msg: "complete with empty ranks",
			tax: "k__Bacteria;p__Proteobacteria;c__;o__;f__;g__;s__",
			res: []string{"Bacteria", "Proteobacteria", "", "", "", "", ""},
		},
		{
			msg: "two ranks",
			tax: "k__Bacteria;p__Proteobacteria",
			res: []string{"Bacteria", "Proteobacteria",
				"c__", "o__", "f__", "g__", "s__"},
		},
		{
			msg: "qiime spacing",
			tax: "k__Bacteria; p__Firmicutes; c__Bacilli; o__Lactobacillales",
			res: []string{"Bacteria", "Firmicutes", "Bacilli",
				"Lactobacillales", "f__", "g__", "s__"},
		},
		{
			msg: "unassigned",
			tax: "Unassigned",
			res: []string{"k__", "p__", "c__", "o__", "f__", "g__", "s__"},
		},
	}

	for _, v := range tests {
		res, err := otu.ParseTaxonomy(v.tax)
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.res, res, v.msg)
	}

	_, err := otu.ParseTaxonomy("k__a;p__b;c__c;o__d;f__e;g__f;s__g;x__h")
	assert.ErrorIs(t, err, otu.ErrTooManyRanks)
}

func TestParseRank(t *testing.T) {
	tests := []struct {
		input string
		rank  otu.Rank
		col   string
	}{
		{"Phylum", otu.Phylum, "phylum"},
		{"phylum", otu.Phylum, "phylum"},
		{"P", otu.Phylum, "phylum"},
		{"Order", otu.Order, "tax_order"},
		{"o", otu.Order, "tax_order"},
		{"tax_order", otu.Order, "tax_order"},
		{" Species ", otu.Species, "species"},
		{"K", otu.Kingdom, "kingdom"},
	}

	for _, v := range tests {
		r, err := otu.ParseRank(v.input)
		require.NoError(t, err, v.input)
		assert.Equal(t, v.rank, r, v.input)
		assert.Equal(t, v.col, r.Column(), v.input)
	}

	for _, bad := range []string{"", "Domain", "phylum; DROP TABLE tax_data", "x"} {
		_, err := otu.ParseRank(bad)
		assert.ErrorIs(t, err, otu.ErrUnknownRank, bad)
	}
}

func TestRankStrings(t *testing.T) {
	assert.Equal(t, "Genus", otu.Genus.String())
	assert.Equal(t, "g__", otu.Genus.Placeholder())
	assert.Equal(t, "", otu.Rank(9).Column())
	assert.Equal(t, "Rank(9)", otu.Rank(9).String())
}
