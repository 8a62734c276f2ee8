// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package annotate implements the annotation
// of tree terminals
// with the abundance of the taxa in a report.
package annotate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/js-arias/taxatree/newick"
	"github.com/js-arias/taxatree/report"
)

// Match is the way in which a terminal label
// is compared with a taxon name.
type Match int

// Valid match modes.
const (
	// The normalized label must be equal
	// to the normalized name.
	Exact Match = iota

	// The normalized name must be contained
	// in the normalized label.
	Substring
)

func (m Match) match(label, name string) bool {
	if m == Substring {
		return name != "" && strings.Contains(label, name)
	}
	return label == name
}

// Annotate adds the abundance of the taxa
// to the labels of the terminals of a tree,
// and removes the labels of internal nodes.
//
// Names are compared after normalization
// (see report.Normalize),
// and the first matching name,
// in the order of the abundances,
// is used.
// Terminals without a matching name are unchanged.
// It returns the number of annotated terminals.
func Annotate(t *newick.Clade, ab *report.Abundances, m Match) int {
	n := 0
	t.Walk(func(c *newick.Clade) {
		if !c.IsTerm() {
			c.Name = ""
			return
		}

		label := report.Normalize(c.Name)
		ab.Each(func(a report.Abundance) bool {
			if !m.match(label, report.Normalize(a.Name)) {
				return true
			}
			c.Name = Label(c.Name, a)
			n++
			return false
		})
	})
	return n
}

// Label returns a label annotated with an abundance.
func Label(name string, a report.Abundance) string {
	if a.Rank == "" {
		return fmt.Sprintf("%s (%s%%)", name, formatPercent(a.Percent))
	}
	return fmt.Sprintf("%s (%s%%, %s)", name, formatPercent(a.Percent), a.Rank)
}

// formatPercent returns the shortest representation of a value
// that keeps the decimal point.
func formatPercent(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
