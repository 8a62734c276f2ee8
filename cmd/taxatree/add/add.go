// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add samples
// to a batch file.
package add

import (
	"errors"
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/taxatree/batch"
	"github.com/js-arias/taxatree/cmd/taxatree/internal/logger"
)

var Command = &command.Command{
	Usage: `add [-v|--verbose] <batch-file>
	<sample> <report-file> [<sample> <report-file>...]`,
	Short: "add samples to a batch file",
	Long: `
Command add adds one or more samples to a batch file, so the reports of the
samples can be processed in a single run (see 'taxatree help batch').

The first argument of the command is the name of the batch file. If the file
does not exist, a new batch file will be created.

The other arguments are pairs of a sample name and the path of its report
file. If a sample is already defined in the batch file, its report will be
replaced. Report paths are stored relative to the directory of the batch file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var verbose bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&verbose, "verbose", false, "")
	c.Flags().BoolVar(&verbose, "v", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting batch file")
	}
	args, name := args[1:], args[0]
	if len(args) == 0 || len(args)%2 != 0 {
		return c.UsageError("expecting pairs of sample and report file")
	}
	lg := logger.New(c.Stderr(), "add", verbose)

	b, err := openBatch(name)
	if err != nil {
		return err
	}
	for i := 0; i < len(args); i += 2 {
		s, r := args[i], args[i+1]
		if _, err := os.Stat(r); err != nil {
			lg.Warn("report file not found", "sample", s, "report", r)
		}
		if prev := b.Add(s, r); prev != "" {
			lg.Info("sample report replaced", "sample", s, "previous", prev, "report", r)
		}
	}

	if err := b.Write(); err != nil {
		return err
	}
	return nil
}

func openBatch(name string) (*batch.Batch, error) {
	b, err := batch.Read(name)
	if errors.Is(err, os.ErrNotExist) {
		b := batch.New()
		b.SetName(name)
		return b, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open batch %q: %v", name, err)
	}
	return b, nil
}
