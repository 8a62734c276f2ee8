// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package annotate implements a command to annotate
// the terminals of a tree
// with the abundances of a classification report.
package annotate

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/taxatree/annotate"
	"github.com/js-arias/taxatree/cmd/taxatree/internal/logger"
	"github.com/js-arias/taxatree/newick"
	"github.com/js-arias/taxatree/report"
)

var Command = &command.Command{
	Usage: `annotate -r|--report <report-file>
	[--substring] [--labels] [-v|--verbose]
	[<newick-file>]`,
	Short: "annotate tree terminals with taxon abundances",
	Long: `
Command annotate reads a tree in newick format and a classification report,
and adds the percentage of reads and the rank of each terminal taxon to the
terminal labels. The labels of internal nodes are removed.

The argument of the command is the name of the tree file. If no file is
given, the tree will be read from the standard input.

The flag --report, or -r, is required and defines the report file with the
abundances.

By default, a terminal is annotated if its label is equal to the name of a
taxon in the report, after replacing spaces and other reserved characters with
underscores, and ignoring the case. If the flag --substring is given, the
terminal is annotated with the first taxon in the report whose name is
contained in the terminal label.

By default, the annotated tree will be printed in the standard output in
newick format. With the flag --labels, only the terminal labels will be
printed, one per line, in tree order.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var verbose bool
var substring bool
var labels bool
var reportFile string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&verbose, "verbose", false, "")
	c.Flags().BoolVar(&verbose, "v", false, "")
	c.Flags().BoolVar(&substring, "substring", false, "")
	c.Flags().BoolVar(&labels, "labels", false, "")
	c.Flags().StringVar(&reportFile, "report", "", "")
	c.Flags().StringVar(&reportFile, "r", "", "")
}

func run(c *command.Command, args []string) error {
	if reportFile == "" {
		return c.UsageError("flag --report undefined")
	}
	lg := logger.New(c.Stderr(), "annotate", verbose)

	ab, err := readAbundances(reportFile)
	if err != nil {
		return err
	}

	var tf string
	if len(args) > 0 {
		tf = args[0]
	}
	t, err := readTree(c.Stdin(), tf)
	if err != nil {
		return err
	}

	m := annotate.Exact
	if substring {
		m = annotate.Substring
	}
	n := annotate.Annotate(t, ab, m)
	terms := t.Terms()
	lg.Debug("terminals annotated", "annotated", n, "terminals", len(terms))
	if n < len(terms) {
		lg.Info("terminals without abundance", "count", len(terms)-n)
	}

	bw := bufio.NewWriter(c.Stdout())
	if labels {
		for _, term := range terms {
			fmt.Fprintf(bw, "%s\n", term.Name)
		}
	} else {
		fmt.Fprintf(bw, "%s\n", t.String())
	}
	return bw.Flush()
}

func readAbundances(name string) (*report.Abundances, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	recs, _, err := report.Read(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return report.FromRecords(recs), nil
}

func readTree(r io.Reader, name string) (*newick.Clade, error) {
	if name != "" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		name = "stdin"
	}

	t, err := newick.Read(r)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return t, nil
}
