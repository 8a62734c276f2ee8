// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package hierarchy implements the reconstruction
// of a taxonomic tree
// from the indentation of a classification report.
package hierarchy

import (
	"fmt"
	"io"

	"github.com/js-arias/taxatree/report"
)

// RootID is the conventional taxonomic ID
// of the root of a taxonomy.
const RootID = "1"

// EdgeLength is the suffix added to node labels,
// the length of each edge in the tree.
const EdgeLength = ":1"

// A Node is a taxon in a hierarchy.
type Node struct {
	ID    string
	Name  string
	Rank  string
	Label string // sanitized name with edge length

	// Children are the IDs of the children
	// in the order they were found in the report.
	Children []string
}

// A Hierarchy is a taxonomic tree
// indexed by taxonomic ID.
type Hierarchy struct {
	nodes map[string]*Node
	ids   []string
	roots []string
	dups  []string
}

// New returns an empty hierarchy.
func New() *Hierarchy {
	return &Hierarchy{nodes: make(map[string]*Node)}
}

// parent is an element of the path
// from the root to the last added node.
type parent struct {
	depth int
	id    string
}

// Build builds a hierarchy from a set of records,
// in report order.
// Records rejected by the filter are ignored.
//
// Each record is attached to the closest previous record
// with a smaller depth.
// A record without such ancestor is a root.
// If a taxonomic ID is repeated,
// the last record replaces the previous node.
func Build(recs []report.Record, f report.Filter) *Hierarchy {
	h := New()
	var stack []parent
	for _, r := range recs {
		if !f.Keep(r) {
			continue
		}

		for len(stack) > 0 && stack[len(stack)-1].depth >= r.Depth {
			stack = stack[:len(stack)-1]
		}
		if len(stack) > 0 {
			p := h.nodes[stack[len(stack)-1].id]
			p.Children = append(p.Children, r.TaxID)
		} else {
			h.roots = append(h.roots, r.TaxID)
		}

		h.add(r)
		stack = append(stack, parent{depth: r.Depth, id: r.TaxID})
	}
	return h
}

// Read reads a report
// and builds its hierarchy.
// Malformed lines are ignored.
func Read(r io.Reader, f report.Filter) (*Hierarchy, []int, error) {
	recs, skipped, err := report.Read(r)
	if err != nil {
		return nil, nil, fmt.Errorf("while reading report: %w", err)
	}
	return Build(recs, f), skipped, nil
}

func (h *Hierarchy) add(r report.Record) {
	if _, ok := h.nodes[r.TaxID]; ok {
		h.dups = append(h.dups, r.TaxID)
	} else {
		h.ids = append(h.ids, r.TaxID)
	}
	h.nodes[r.TaxID] = &Node{
		ID:    r.TaxID,
		Name:  r.Name,
		Rank:  r.Rank,
		Label: report.Sanitize(r.Name) + EdgeLength,
	}
}

// Node returns the node with the given ID.
// It returns nil if the node is not in the hierarchy.
func (h *Hierarchy) Node(id string) *Node {
	return h.nodes[id]
}

// Has returns true if the ID is in the hierarchy.
func (h *Hierarchy) Has(id string) bool {
	_, ok := h.nodes[id]
	return ok
}

// Label returns the label of a node.
func (h *Hierarchy) Label(id string) string {
	n, ok := h.nodes[id]
	if !ok {
		return ""
	}
	return n.Label
}

// Children returns the children IDs of a node.
func (h *Hierarchy) Children(id string) []string {
	n, ok := h.nodes[id]
	if !ok {
		return nil
	}
	return n.Children
}

// IDs returns the node IDs
// in the order they were first added.
func (h *Hierarchy) IDs() []string {
	return h.ids
}

// Len returns the number of nodes in the hierarchy.
func (h *Hierarchy) Len() int {
	return len(h.nodes)
}

// Roots returns the IDs of the nodes
// added without a parent,
// in the order they were added.
func (h *Hierarchy) Roots() []string {
	return h.roots
}

// Duplicates returns the IDs
// that were found more than once.
func (h *Hierarchy) Duplicates() []string {
	return h.dups
}

// Levels returns the number of nested levels
// below a node
// (i.e., zero for a terminal).
func (h *Hierarchy) Levels(id string) int {
	return h.levels(id, make(map[string]bool))
}

func (h *Hierarchy) levels(id string, visited map[string]bool) int {
	if visited[id] {
		return 0
	}
	visited[id] = true

	max := 0
	for _, c := range h.Children(id) {
		if l := h.levels(c, visited) + 1; l > max {
			max = l
		}
	}
	return max
}
