// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package newick

import (
	"strconv"
	"strings"
)

// A Clade is a node of a tree
// read from a newick string.
type Clade struct {
	Name      string
	Length    float64
	HasLength bool
	Children  []*Clade
}

// IsTerm returns true if the clade is a terminal.
func (c *Clade) IsTerm() bool {
	return len(c.Children) == 0
}

// Walk visits the clade and all of its descendants
// in pre-order.
func (c *Clade) Walk(fn func(c *Clade)) {
	fn(c)
	for _, d := range c.Children {
		d.Walk(fn)
	}
}

// Terms returns the terminal clades
// in pre-order.
func (c *Clade) Terms() []*Clade {
	var terms []*Clade
	c.Walk(func(d *Clade) {
		if d.IsTerm() {
			terms = append(terms, d)
		}
	})
	return terms
}

// String returns the clade in newick format,
// terminated with a semicolon.
func (c *Clade) String() string {
	var sb strings.Builder
	c.format(&sb)
	sb.WriteByte(';')
	return sb.String()
}

func (c *Clade) format(sb *strings.Builder) {
	if !c.IsTerm() {
		sb.WriteByte('(')
		for i, d := range c.Children {
			if i > 0 {
				sb.WriteByte(',')
			}
			d.format(sb)
		}
		sb.WriteByte(')')
	}
	sb.WriteString(quote(c.Name))
	if c.HasLength {
		sb.WriteByte(':')
		sb.WriteString(strconv.FormatFloat(c.Length, 'g', -1, 64))
	}
}

// Characters that require a quoted label.
const special = " \t\n()[]':;,"

func quote(name string) string {
	if !strings.ContainsAny(name, special) {
		return name
	}
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}
