package ioextract

import (
	"testing"

	"github.com/gnames/otudb/pkg/otu"
	"github.com/stretchr/testify/assert"
)

func TestFastaSeq(t *testing.T) {
	je := otu.JoinedEntry{
		ClusterNumber: 1,
		Header:        "sB.1.",
		Target:        "OTU_2",
		Sequence:      "TTGTACGTACGT",
	}
	s := fastaSeq(je)
	assert.Equal(t, "sB.1.", s.Name())
	assert.Equal(t, "OTU_2", s.Description())
	assert.Equal(t, 12, s.Len())
}
