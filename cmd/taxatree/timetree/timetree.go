// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package timetree implements a command to convert
// a newick tree into a timetree collection.
package timetree

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/timetree"
)

var Command = &command.Command{
	Usage: `timetree [--name <tree-name>] [--age <value>]
	[-o|--output <file>] <newick-file>`,
	Short: "convert a newick tree into a timetree file",
	Long: `
Command timetree reads a tree in newick format, as produced by the command
newick, and writes it as a tab-delimited timetree file, the format used by
tools based on the timetree package.

The argument of the command is the name of the newick file.

As the branches of a taxonomic tree have length one, each branch is taken as a
unit of a million years. By default, the age of the root will be the largest
number of branches between a terminal and the root. Use the flag --age to
define a different root age, in million years.

By default, the name of the tree will be the name of the file without
extension. Use the flag --name to define a different name.

By default, the tree will be printed in the standard output. Use the flag -o,
or --output, to define an output file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

const millionYears = 1_000_000

var treeName string
var rootAge float64
var output string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeName, "name", "", "")
	c.Flags().Float64Var(&rootAge, "age", 0, "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting newick file")
	}

	name := treeName
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	}
	name = strings.ToLower(strings.Join(strings.Fields(name), " "))

	tc, err := readNewick(args[0], name)
	if err != nil {
		return err
	}

	if output == "" {
		return writeTrees(c.Stdout(), tc)
	}
	return writeFile(output, tc)
}

func readNewick(name, treeName string) (*timetree.Collection, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := timetree.Newick(f, treeName, int64(rootAge*millionYears))
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return c, nil
}

func writeTrees(w io.Writer, tc *timetree.Collection) error {
	if err := tc.TSV(w); err != nil {
		return fmt.Errorf("while writing trees: %v", err)
	}
	return nil
}

func writeFile(name string, tc *timetree.Collection) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := tc.TSV(f); err != nil {
		return fmt.Errorf("while writing to %q: %v", name, err)
	}
	return nil
}
