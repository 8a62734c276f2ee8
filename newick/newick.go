// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package newick implements writing and reading
// of trees in newick (parenthetical) format.
package newick

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMissingRoot is returned when the root of a tree
// is not found.
var ErrMissingRoot = errors.New("root not found")

// A Tree is a rooted tree
// in which each node is identified by an ID.
type Tree interface {
	// Has returns true if the node is in the tree.
	Has(id string) bool

	// Label returns the label of a node.
	Label(id string) string

	// Children returns the children of a node,
	// in the order in which they will be written.
	Children(id string) []string
}

// String returns the newick representation
// of a tree.
func String(t Tree, root string) (string, error) {
	var sb strings.Builder
	if err := Write(&sb, t, root); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Write writes a tree in newick format.
//
// Terminals are written with its label,
// internal nodes without label,
// and the root with its label after the parenthesis.
func Write(w io.Writer, t Tree, root string) error {
	if !t.Has(root) {
		return fmt.Errorf("newick: %w: %q", ErrMissingRoot, root)
	}

	bw := bufio.NewWriter(w)
	if err := writeNode(bw, t, root, root); err != nil {
		return err
	}
	bw.WriteByte(';')
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("newick: while writing tree: %v", err)
	}
	return nil
}

type nodeKind int

const (
	terminal nodeKind = iota
	internal
	rootNode
)

func kind(t Tree, id, root string) nodeKind {
	if len(t.Children(id)) == 0 {
		return terminal
	}
	if id == root {
		return rootNode
	}
	return internal
}

func writeNode(w *bufio.Writer, t Tree, id, root string) error {
	k := kind(t, id, root)
	if k == terminal {
		w.WriteString(t.Label(id))
		return nil
	}

	w.WriteByte('(')
	for i, c := range t.Children(id) {
		if !t.Has(c) {
			return fmt.Errorf("newick: node %q: child %q not found", id, c)
		}
		if i > 0 {
			w.WriteByte(',')
		}
		if err := writeNode(w, t, c, root); err != nil {
			return err
		}
	}
	w.WriteByte(')')
	if k == rootNode {
		w.WriteString(t.Label(id))
	}
	return nil
}
