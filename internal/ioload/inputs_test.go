package ioload_test

import (
	"path/filepath"
	"testing"

	"github.com/gnames/otudb/internal/ioload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInputs(t *testing.T) {
	res, err := ioload.CheckInputs(inputs())
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(res.OTUMapPath))
	assert.True(t, filepath.IsAbs(res.FastaPath))
	assert.True(t, filepath.IsAbs(res.TaxonomyPath))

	inp := inputs()
	inp.FastaPath = "testdata"
	_, err = ioload.CheckInputs(inp)
	assert.Error(t, err, "directory is not an input")
}

func TestInputID(t *testing.T) {
	inp := inputs()
	id1 := ioload.InputID(inp)
	assert.Equal(t, id1, ioload.InputID(inp))

	inp.FastaPath = "other.fasta"
	assert.NotEqual(t, id1, ioload.InputID(inp))
}
