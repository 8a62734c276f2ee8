// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package terms implements a command to print
// the list of the terminals of a newick tree.
package terms

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/taxatree/newick"
	"golang.org/x/exp/slices"
)

var Command = &command.Command{
	Usage: "terms [--tree-order] <newick-file>",
	Short: "print a list of tree terminals",
	Long: `
Command terms reads a tree in newick format and prints the name of the
terminals in the standard output.

The argument of the command is the name of the tree file.

By default, the terminals are sorted alphabetically and printed once. If the
flag --tree-order is given, the terminals are printed in the order they are
found in the tree.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeOrder bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&treeOrder, "tree-order", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting tree file")
	}

	ls, err := makeTermList(args[0])
	if err != nil {
		return err
	}
	for _, term := range ls {
		fmt.Fprintf(c.Stdout(), "%s\n", term)
	}
	return nil
}

func makeTermList(name string) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := newick.Read(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}

	var terms []string
	for _, c := range t.Terms() {
		terms = append(terms, c.Name)
	}
	if treeOrder {
		return terms, nil
	}

	slices.Sort(terms)
	return slices.Compact(terms), nil
}
