// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package clean implements a command to remove
// taxa without reads from a classification report.
package clean

import (
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/taxatree/cmd/taxatree/internal/logger"
	"github.com/js-arias/taxatree/report"
)

var Command = &command.Command{
	Usage: `clean [--sort] [-o|--output <file>] [-v|--verbose]
	[<report-file>]`,
	Short: "remove taxa without reads from a report",
	Long: `
Command clean reads a classification report and removes the taxa without
reads (i.e., lines with a zero percentage), as well as any malformed line.

The argument of the command is the name of the report file. If no file is
given, the report will be read from the standard input.

By default, the order of the report is kept. If the flag --sort is given, the
taxa will be sorted by decreasing percentage, and then by decreasing number of
reads. Note that a sorted report can not be used to build a tree.

Kept lines are written as found in the input, so any additional column (for
example, minimizer data) is preserved.

By default, the cleaned report is printed in the standard output. Use the flag
-o, or --output, to define an output file. The output file can be the same as
the input file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var verbose bool
var sortFlag bool
var output string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&verbose, "verbose", false, "")
	c.Flags().BoolVar(&verbose, "v", false, "")
	c.Flags().BoolVar(&sortFlag, "sort", false, "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	lg := logger.New(c.Stderr(), "clean", verbose)

	var in string
	if len(args) > 0 {
		in = args[0]
	}
	recs, skipped, err := readReport(c.Stdin(), in)
	if err != nil {
		return err
	}
	if len(skipped) > 0 {
		lg.Debug("malformed lines removed", "lines", skipped)
	}

	cl := report.Clean(recs)
	lg.Debug("taxa without reads removed", "count", len(recs)-len(cl))
	if sortFlag {
		cl = report.SortByAbundance(cl)
	}

	if output == "" {
		return report.Write(c.Stdout(), cl)
	}
	return writeReport(output, cl)
}

func readReport(r io.Reader, name string) ([]report.Record, []int, error) {
	if name != "" {
		f, err := os.Open(name)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		r = f
	} else {
		name = "stdin"
	}

	recs, skipped, err := report.Read(r)
	if err != nil {
		return nil, nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return recs, skipped, nil
}

func writeReport(name string, recs []report.Record) (err error) {
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

	if err := report.Write(f, recs); err != nil {
		return fmt.Errorf("while writing to %q: %v", name, err)
	}
	return nil
}
