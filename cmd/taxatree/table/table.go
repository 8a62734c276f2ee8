// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package table implements a command to print
// the abundance tables of a classification report.
package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/js-arias/command"
	"github.com/js-arias/taxatree/config"
	"github.com/js-arias/taxatree/report"
)

var Command = &command.Command{
	Usage: `table [--config <file>] [--domains]
	<report-file>`,
	Short: "print abundance tables of a report",
	Long: `
Command table reads a classification report and prints the abundance of each
taxon as a tab-delimited table, sorted by decreasing percentage. Taxa without
reads are ignored. If a taxonomic ID is repeated, the last line is used.

The argument of the command is the name of the report file.

If the flag --domains is given, instead of the taxon table, the table of the
accumulated percentage of each domain will be printed. By default the domains
are Eukaryota, Bacteria, and Archaea; a different set can be defined in a
configuration file set with the flag --config.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var configFile string
var domains bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&configFile, "config", "", "")
	c.Flags().BoolVar(&domains, "domains", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting report file")
	}

	cfg := config.Default()
	if configFile != "" {
		var err error
		cfg, err = config.Read(configFile)
		if err != nil {
			return err
		}
	}

	recs, err := readReport(args[0])
	if err != nil {
		return err
	}
	recs = report.Clean(recs)

	if domains {
		d := report.NewDomains(cfg.Domains...).Tally(recs)
		return writeDomains(c.Stdout(), d)
	}
	return writeTaxa(c.Stdout(), report.SortByAbundance(unique(recs)))
}

func readReport(name string) ([]report.Record, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	recs, _, err := report.Read(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return recs, nil
}

// unique returns the last record of each taxonomic ID,
// at the position of its first occurrence.
func unique(recs []report.Record) []report.Record {
	idx := make(map[string]int, len(recs))
	var u []report.Record
	for _, r := range recs {
		if i, ok := idx[r.TaxID]; ok {
			u[i] = r
			continue
		}
		idx[r.TaxID] = len(u)
		u = append(u, r)
	}
	return u
}

func writeDomains(w io.Writer, d *report.Domains) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'

	if err := tab.Write([]string{"domain", "percentage"}); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}
	for _, n := range d.Names() {
		row := []string{
			n,
			strconv.FormatFloat(d.Percent(n), 'f', 2, 64),
		}
		if err := tab.Write(row); err != nil {
			return fmt.Errorf("when writing data: %v", err)
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}

func writeTaxa(w io.Writer, recs []report.Record) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'

	header := []string{"percentage", "reads", "direct", "rank", "taxid", "name"}
	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}
	for _, r := range recs {
		row := []string{
			strconv.FormatFloat(r.Percent, 'f', 2, 64),
			strconv.FormatInt(r.Reads, 10),
			strconv.FormatInt(r.Direct, 10),
			r.Rank,
			r.TaxID,
			r.Name,
		}
		if err := tab.Write(row); err != nil {
			return fmt.Errorf("when writing data: %v", err)
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}
