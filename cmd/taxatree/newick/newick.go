// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package newick implements a command to build
// newick trees from classification reports.
package newick

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/js-arias/command"
	"github.com/js-arias/taxatree/batch"
	"github.com/js-arias/taxatree/cmd/taxatree/internal/logger"
	"github.com/js-arias/taxatree/config"
	"github.com/js-arias/taxatree/hierarchy"
	"github.com/js-arias/taxatree/newick"
)

var Command = &command.Command{
	Usage: `newick [--config <file>] [--root <taxid>] [--exclude <taxid-list>]
	[--batch <batch-file> [--sample <name>]]
	[-o|--output <file>] [-v|--verbose]
	[<report-file>...]`,
	Short: "build newick trees from classification reports",
	Long: `
Command newick reads one or more classification reports, rebuilds the
taxonomic tree encoded by the indentation of the taxon names, and writes the
tree in newick format.

One or more report files can be given as arguments. If no file is given, the
report will be read from the standard input. With the flag --batch, the
reports defined in a batch file will be read (see 'taxatree help batch'); it
is an error if the batch file has no samples. Use the flag --sample to read
only the report of the indicated sample of the batch file.

In the resulting tree, terminals and the root are labeled with the taxon name
(spaces and other reserved characters replaced by underscores), and all
branches have length one. Internal nodes are not labeled. Children are written
in the order they were found in the report.

By default, the tree will be written in a file with the same name of the
report but with the extension ".newick". If the report is read from the
standard input, the tree will be written in the standard output. Use the flag
-o, or --output, to define the output file when a single report is given; use
"-" for the standard output.

By default the tree starts at the taxon with ID "1" (the root of the NCBI
taxonomy). Use the flag --root to define a different root taxon. The flag
--exclude adds a comma separated list of taxonomic IDs to the exclusion set.
Both values can be also defined in a configuration file set with the flag
--config (see 'taxatree help config').

If a report can not be processed (for example, the root taxon is not found),
an error will be printed and the next report will be processed.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var verbose bool
var configFile string
var rootID string
var excludeFlag string
var batchFile string
var sample string
var output string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&verbose, "verbose", false, "")
	c.Flags().BoolVar(&verbose, "v", false, "")
	c.Flags().StringVar(&configFile, "config", "", "")
	c.Flags().StringVar(&rootID, "root", "", "")
	c.Flags().StringVar(&excludeFlag, "exclude", "", "")
	c.Flags().StringVar(&batchFile, "batch", "", "")
	c.Flags().StringVar(&sample, "sample", "", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	cfg, err := readConfig()
	if err != nil {
		return err
	}
	lg := logger.New(c.Stderr(), "newick", verbose)

	args, err = reportFiles(args)
	if err != nil {
		return err
	}
	if len(args) > 1 && output != "" {
		return c.UsageError("flag --output used with multiple reports")
	}

	if len(args) == 0 {
		out := output
		if out == "" {
			out = "-"
		}
		return writeTree(c, lg, cfg, "", out)
	}

	failed := 0
	for _, a := range args {
		out := output
		if out == "" {
			out = strings.TrimSuffix(a, filepath.Ext(a)) + ".newick"
		}
		if err := writeTree(c, lg, cfg, a, out); err != nil {
			lg.Error("unable to process report", "report", a, "err", err)
			failed++
			continue
		}
		if out != "-" {
			lg.Info("tree written", "report", a, "tree", out)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d reports failed", failed, len(args))
	}
	return nil
}

// reportFiles returns the report files
// from the arguments and the batch file.
func reportFiles(args []string) ([]string, error) {
	if batchFile == "" {
		if sample != "" {
			return nil, fmt.Errorf("flag --sample requires a batch file")
		}
		return args, nil
	}

	b, err := batch.Read(batchFile)
	if err != nil {
		return nil, err
	}
	if sample != "" {
		r := b.Report(sample)
		if r == "" {
			return nil, fmt.Errorf("batch file %q: sample %q not found", batchFile, sample)
		}
		return append(args, r), nil
	}

	ls := b.Samples()
	if len(ls) == 0 {
		return nil, fmt.Errorf("batch file %q: no samples", batchFile)
	}
	for _, s := range ls {
		args = append(args, s.Report)
	}
	return args, nil
}

func readConfig() (config.Config, error) {
	cfg := config.Default()
	if configFile != "" {
		var err error
		cfg, err = config.Read(configFile)
		if err != nil {
			return config.Config{}, err
		}
	}
	if rootID != "" {
		cfg.Root = rootID
	}
	if excludeFlag != "" {
		cfg.AddExclude(excludeFlag)
	}
	return cfg, nil
}

func writeTree(c *command.Command, lg *log.Logger, cfg config.Config, in, out string) error {
	r := c.Stdin()
	name := "stdin"
	if in != "" {
		f, err := os.Open(in)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
		name = in
	}

	tree, err := buildTree(lg.With("report", name), r, cfg)
	if err != nil {
		return fmt.Errorf("on report %q: %w", name, err)
	}

	if out == "-" {
		_, err := io.WriteString(c.Stdout(), tree+"\n")
		return err
	}
	if err := os.WriteFile(out, []byte(tree+"\n"), 0o644); err != nil {
		return err
	}
	return nil
}

// buildTree reads a report
// and returns its tree in newick format.
func buildTree(lg *log.Logger, r io.Reader, cfg config.Config) (string, error) {
	h, skipped, err := hierarchy.Read(r, cfg.Filter())
	if err != nil {
		return "", err
	}
	if len(skipped) > 0 {
		lg.Debug("malformed lines ignored", "lines", skipped)
	}
	for _, id := range h.Duplicates() {
		lg.Warn("duplicated taxonomic ID", "taxid", id)
	}
	lg.Debug("hierarchy built", "nodes", h.Len(), "roots", len(h.Roots()))

	return newick.String(h, cfg.Root)
}
