package otu

import (
	"fmt"
	"strings"

	"github.com/gnames/gnlib"
)

// FixGreengenes pads a list of rank values to exactly seven elements.
// Missing ranks are assumed to be the most specific ones, so they are
// filled from the end of `k__, p__, c__, o__, f__, g__, s__`.
// The input slice is not modified. More than seven ranks is an error.
func FixGreengenes(ranks []string) ([]string, error) {
	if len(ranks) > RanksNum {
		return nil, fmt.Errorf("%w: got %d", ErrTooManyRanks, len(ranks))
	}
	res := make([]string, RanksNum)
	copy(res, ranks)
	for i := len(ranks); i < RanksNum; i++ {
		res[i] = Rank(i).Placeholder()
	}
	return res, nil
}

// ParseTaxonomy parses a Greengenes taxonomy string like
// `k__Bacteria; p__Proteobacteria; c__` into seven rank values.
// Each value is the text between a `__` and the following `;`.
// Ranks that are present but empty stay empty, ranks that are absent
// get placeholders.
func ParseTaxonomy(s string) ([]string, error) {
	parts := strings.Split(s, "__")
	ranks := make([]string, 0, len(parts))
	for _, v := range parts[1:] {
		v, _, _ = strings.Cut(v, ";")
		v = strings.TrimSpace(v)
		ranks = append(ranks, gnlib.FixUtf8(v))
	}
	res, err := FixGreengenes(ranks)
	if err != nil {
		return nil, fmt.Errorf("taxonomy '%s': %w", s, err)
	}
	return res, nil
}
