package otu

import (
	"fmt"
	"strings"
)

// RanksNum is the number of ranks in a Greengenes taxonomy.
const RanksNum = 7

// Rank is one of seven taxonomic levels of Greengenes taxonomy.
type Rank int

const (
	Kingdom Rank = iota
	Phylum
	Class
	Order
	Family
	Genus
	Species
)

var rankNames = [RanksNum]string{
	"Kingdom", "Phylum", "Class", "Order", "Family", "Genus", "Species",
}

// rankColumns are the only column names that are used to query taxa.
var rankColumns = [RanksNum]string{
	"kingdom", "phylum", "class", "tax_order", "family", "genus", "species",
}

var rankPlaceholders = [RanksNum]string{
	"k__", "p__", "c__", "o__", "f__", "g__", "s__",
}

// Ranks returns all ranks from the most general to the most specific.
func Ranks() []Rank {
	return []Rank{Kingdom, Phylum, Class, Order, Family, Genus, Species}
}

// String returns the capitalized name of the rank.
func (r Rank) String() string {
	if !r.valid() {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r]
}

// Column returns the name of the tax_data column of the rank.
func (r Rank) Column() string {
	if !r.valid() {
		return ""
	}
	return rankColumns[r]
}

// Placeholder returns the Greengenes token used for a missing rank.
func (r Rank) Placeholder() string {
	if !r.valid() {
		return ""
	}
	return rankPlaceholders[r]
}

func (r Rank) valid() bool {
	return r >= Kingdom && r <= Species
}

// ParseRank converts a rank name to Rank. It accepts full names in any
// case ("Phylum", "phylum"), one-letter codes (K, P, C, O, F, G, S) and
// column names ("tax_order").
func ParseRank(s string) (Rank, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, r := range Ranks() {
		switch name {
		case strings.ToLower(rankNames[r]), rankColumns[r],
			rankPlaceholders[r][:1]:
			return r, nil
		}
	}
	return 0, fmt.Errorf(
		"%w: '%s' (use one of %s)",
		ErrUnknownRank, s, strings.Join(rankNames[:], ", "),
	)
}
