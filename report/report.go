// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package report implements reading of taxonomic classification reports
// as produced by metagenomic classifiers
// (such as Kraken2).
//
// A report is a tab-delimited file without header,
// in which each line is a taxon,
// and the tree structure is encoded
// by the indentation of the taxon name.
// Each line has the following fields,
// in this order:
//
//   - percentage of reads covered by the clade
//   - number of reads covered by the clade
//   - number of reads assigned directly to the taxon
//   - rank code
//   - taxonomic ID
//   - indented scientific name
//
// Here is an example report:
//
//	 10.00	5	0	R	1	root
//	 10.00	5	0	D	2	  Bacteria
//	  5.00	2	2	S	562	    Escherichia coli
//
// Reports with minimizer data
// (two extra columns after the direct reads)
// are also accepted.
package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrMalformed is returned when a report line
// can not be parsed.
var ErrMalformed = errors.New("malformed report line")

// MinFields is the minimum number of fields
// of a valid report line.
const MinFields = 6

// Number of fields in a report with minimizer data.
const minimizerFields = 8

// Unclassified is the rank code
// used for unclassified reads.
const Unclassified = "U"

// A Record is a taxon line from a report.
type Record struct {
	Percent float64 // percentage of reads in the clade
	Reads   int64   // reads in the clade
	Direct  int64   // reads assigned directly to the taxon

	Rank  string // rank code
	TaxID string // taxonomic ID
	Name  string // name, without indentation

	// Depth is the number of leading spaces
	// in the name field.
	Depth int

	// Line is the line as read from the report.
	Line string
}

// ParseLine parses a single report line.
func ParseLine(line string) (Record, error) {
	line = strings.TrimRight(line, "\r\n")
	fields := strings.Split(line, "\t")
	if len(fields) < MinFields {
		return Record{}, fmt.Errorf("%w: got %d fields, want %d", ErrMalformed, len(fields), MinFields)
	}

	pos := 3
	if isMinimizer(fields) {
		pos = 5
	}

	pc, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return Record{}, fmt.Errorf("%w: percentage: %v", ErrMalformed, err)
	}
	reads, err := strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("%w: reads: %v", ErrMalformed, err)
	}
	direct, err := strconv.ParseInt(strings.TrimSpace(fields[2]), 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("%w: direct reads: %v", ErrMalformed, err)
	}

	id := strings.TrimSpace(fields[pos+1])
	if _, err := strconv.ParseUint(id, 10, 64); err != nil {
		return Record{}, fmt.Errorf("%w: taxonomic ID: %v", ErrMalformed, err)
	}

	raw := fields[pos+2]
	name := strings.TrimLeftFunc(raw, unicode.IsSpace)
	depth := utf8.RuneCountInString(raw[:len(raw)-len(name)])

	return Record{
		Percent: pc,
		Reads:   reads,
		Direct:  direct,
		Rank:    strings.TrimSpace(fields[pos]),
		TaxID:   id,
		Name:    strings.TrimSpace(name),
		Depth:   depth,
		Line:    line,
	}, nil
}

// isMinimizer returns true if the fields are from a report
// with minimizer data,
// in which rank,
// ID,
// and name are the last three fields.
func isMinimizer(fields []string) bool {
	if len(fields) != minimizerFields {
		return false
	}
	for _, f := range fields[3:5] {
		if _, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64); err != nil {
			return false
		}
	}
	if _, err := strconv.ParseUint(strings.TrimSpace(fields[5]), 10, 64); err == nil {
		return false
	}
	return true
}

// A Reader reads records from a report.
// Malformed lines are skipped.
type Reader struct {
	sc      *bufio.Scanner
	line    int
	skipped []int
}

// NewReader returns a reader that reads from r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Reader{sc: sc}
}

// Read returns the next valid record of the report.
// At the end of the input it returns io.EOF.
func (r *Reader) Read() (Record, error) {
	for r.sc.Scan() {
		r.line++
		line := r.sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := ParseLine(line)
		if err != nil {
			r.skipped = append(r.skipped, r.line)
			continue
		}
		return rec, nil
	}
	if err := r.sc.Err(); err != nil {
		return Record{}, fmt.Errorf("on line %d: %w", r.line+1, err)
	}
	return Record{}, io.EOF
}

// Skipped returns the line numbers
// of the malformed lines found so far.
func (r *Reader) Skipped() []int {
	return r.skipped
}

// Read reads all the valid records of a report.
// It returns the records
// and the line numbers of the skipped lines.
func Read(r io.Reader) ([]Record, []int, error) {
	rr := NewReader(r)
	var recs []Record
	for {
		rec, err := rr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rr.Skipped(), nil
}

// Write writes records as report lines.
// Records read from a report are written as they were read;
// otherwise the name is indented using the record depth.
func Write(w io.Writer, recs []Record) error {
	bw := bufio.NewWriter(w)
	for _, r := range recs {
		if r.Line != "" {
			fmt.Fprintf(bw, "%s\n", r.Line)
			continue
		}
		fmt.Fprintf(bw, "%6.2f\t%d\t%d\t%s\t%s\t%s%s\n", r.Percent, r.Reads, r.Direct, r.Rank, r.TaxID, strings.Repeat(" ", r.Depth), r.Name)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing report: %v", err)
	}
	return nil
}
