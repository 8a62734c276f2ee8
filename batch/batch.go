// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package batch implements reading and writing
// of batch files.
//
// A batch file is a tab-delimited file (TSV)
// used to store the report files
// of a set of samples,
// so they can be processed in a single run.
package batch

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// A Sample is a named report file.
type Sample struct {
	Name   string
	Report string
}

// A Batch is an ordered collection of samples.
type Batch struct {
	name    string
	samples []Sample
	idx     map[string]int
}

// New creates a new empty batch.
func New() *Batch {
	return &Batch{
		idx: make(map[string]int),
	}
}

var header = []string{
	"sample",
	"report",
}

// Read reads a batch file.
//
// The TSV must contain the following fields:
//
//   - sample, the name of the sample
//   - report, the path of the report file
//
// Relative report paths are resolved
// from the directory of the batch file.
//
// Here is an example file:
//
//	# taxatree batch file
//	sample	report
//	soil-01	soil-01/kraken.report
//	soil-02	soil-02/kraken.report
func Read(name string) (*Batch, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tsv := csv.NewReader(f)
	tsv.Comma = '\t'
	tsv.Comment = '#'

	head, err := tsv.Read()
	if err != nil {
		return nil, fmt.Errorf("on file %q: header: %v", name, err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(strings.TrimSpace(h))
		fields[h] = i
	}
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("on file %q: expecting field %q", name, h)
		}
	}

	b := New()
	b.name = name
	dir := filepath.Dir(name)
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on file %q: on row %d: %v", name, ln, err)
		}

		f := "sample"
		s := strings.TrimSpace(row[fields[f]])
		if s == "" {
			continue
		}

		f = "report"
		path := strings.TrimSpace(row[fields[f]])
		if path == "" {
			return nil, fmt.Errorf("on file %q: on row %d: sample %q: empty report path", name, ln, s)
		}
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		b.Add(s, path)
	}

	return b, nil
}

// Add adds a sample to the batch.
// If the sample is already defined,
// its report is replaced.
// It returns the previous report of the sample.
func (b *Batch) Add(sample, report string) string {
	if i, ok := b.idx[sample]; ok {
		prev := b.samples[i].Report
		b.samples[i].Report = report
		return prev
	}
	b.idx[sample] = len(b.samples)
	b.samples = append(b.samples, Sample{Name: sample, Report: report})
	return ""
}

// Report returns the report file of a sample.
func (b *Batch) Report(sample string) string {
	i, ok := b.idx[sample]
	if !ok {
		return ""
	}
	return b.samples[i].Report
}

// Samples returns the samples of the batch
// in the order they were added.
func (b *Batch) Samples() []Sample {
	return b.samples
}

// SetName sets the batch file name.
func (b *Batch) SetName(name string) {
	b.name = name
}

// Write writes a batch into a file.
// Relative report paths are written
// relative to the directory of the batch file.
func (b *Batch) Write() (err error) {
	f, err := os.Create(b.name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	bw := bufio.NewWriter(f)
	fmt.Fprintf(bw, "# taxatree batch file\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))
	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	if err := tsv.Write(header); err != nil {
		return fmt.Errorf("on file %q: while writing header: %v", b.name, err)
	}

	dir := filepath.Dir(b.name)
	for _, s := range b.samples {
		row := []string{
			s.Name,
			relPath(dir, s.Report),
		}
		if err := tsv.Write(row); err != nil {
			return fmt.Errorf("on file %q: %v", b.name, err)
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("on file %q: while writing data: %v", b.name, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("on file %q: while writing data: %v", b.name, err)
	}
	return nil
}

// relPath returns a relative path
// from the directory of the batch file.
// Absolute paths are kept.
func relPath(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if filepath.IsAbs(dir) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return path
		}
		path = abs
	}
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return path
	}
	return rel
}
