// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package report

import (
	"cmp"
	"slices"
)

// DefaultExclude is the default set of excluded taxonomic IDs.
// They are the NCBI categories
// for artificial and synthetic sequences.
var DefaultExclude = []string{
	"28384", // other sequences
	"81077", // artificial sequences
	"32630", // synthetic construct
}

// A Filter defines which records are used
// to build a hierarchy.
type Filter struct {
	// Unclassified is the rank code
	// of the unclassified reads.
	Unclassified string

	// Exclude is the set of excluded taxonomic IDs.
	Exclude map[string]bool
}

// NewFilter returns a filter with the default unclassified rank
// and the given excluded IDs.
func NewFilter(exclude ...string) Filter {
	f := Filter{
		Unclassified: Unclassified,
		Exclude:      make(map[string]bool, len(exclude)),
	}
	for _, id := range exclude {
		f.Exclude[id] = true
	}
	return f
}

// DefaultFilter returns a filter
// that excludes unclassified reads
// and the artificial sequence categories.
func DefaultFilter() Filter {
	return NewFilter(DefaultExclude...)
}

// Keep returns true if the record
// should be included in a hierarchy.
func (f Filter) Keep(r Record) bool {
	if r.Rank == f.Unclassified {
		return false
	}
	if f.Exclude[r.TaxID] {
		return false
	}
	return true
}

// Clean returns the records
// that have reads assigned to them.
// Rows with zero percentage,
// zero reads,
// and zero direct reads are removed,
// as well as rows with a non positive percentage.
func Clean(recs []Record) []Record {
	var c []Record
	for _, r := range recs {
		if r.Percent == 0 && r.Reads == 0 && r.Direct == 0 {
			continue
		}
		if r.Percent <= 0 {
			continue
		}
		c = append(c, r)
	}
	return c
}

// SortByAbundance returns a copy of the records
// sorted by decreasing percentage,
// and then by decreasing number of reads.
//
// As the resulting order breaks the indentation encoding,
// it should not be used to build a hierarchy.
func SortByAbundance(recs []Record) []Record {
	s := slices.Clone(recs)
	slices.SortStableFunc(s, func(a, b Record) int {
		if c := cmp.Compare(b.Percent, a.Percent); c != 0 {
			return c
		}
		return cmp.Compare(b.Reads, a.Reads)
	})
	return s
}
