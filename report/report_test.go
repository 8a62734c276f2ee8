// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package report_test

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/js-arias/taxatree/report"
)

var sample = `  5.00	5	5	U	0	unclassified
 95.00	95	0	R	1	root
 90.00	90	1	D	2	  Bacteria
 60.00	60	60	S	562	    Escherichia coli
 30.00	30	30	S	1280	    Staphylococcus aureus
  5.00	5	5	D	2157	  Archaea
this line is not a record
  0.00	0	0	S	32630	  synthetic construct
`

func TestParseLine(t *testing.T) {
	tests := map[string]struct {
		line string
		want report.Record
	}{
		"root": {
			line: " 95.00\t95\t0\tR\t1\troot",
			want: report.Record{Percent: 95, Reads: 95, Rank: "R", TaxID: "1", Name: "root"},
		},
		"indented": {
			line: "10.00\t5\t5\tD\t2\t  Bacteria\n",
			want: report.Record{Percent: 10, Reads: 5, Direct: 5, Rank: "D", TaxID: "2", Name: "Bacteria", Depth: 2},
		},
		"name with spaces": {
			line: "5.00\t2\t2\tS\t562\t    Escherichia coli\r\n",
			want: report.Record{Percent: 5, Reads: 2, Direct: 2, Rank: "S", TaxID: "562", Name: "Escherichia coli", Depth: 4},
		},
		"minimizers": {
			line: "5.00\t2\t2\t40\t20\tS1\t562\t      Escherichia coli K-12",
			want: report.Record{Percent: 5, Reads: 2, Direct: 2, Rank: "S1", TaxID: "562", Name: "Escherichia coli K-12", Depth: 6},
		},
		"extra fields": {
			line: "10.00\t5\t5\tD\t2\t  Bacteria\tx\ty",
			want: report.Record{Percent: 10, Reads: 5, Direct: 5, Rank: "D", TaxID: "2", Name: "Bacteria", Depth: 2},
		},
		"numeric extra fields": {
			line: "10.00\t5\t5\tD\t2\t  Bacteria\t3\t4",
			want: report.Record{Percent: 10, Reads: 5, Direct: 5, Rank: "D", TaxID: "2", Name: "Bacteria", Depth: 2},
		},
		"unicode spaces": {
			line: "5.00\t2\t2\tS\t562\t\u00a0\u00a0\u00a0\u00a0Escherichia coli",
			want: report.Record{Percent: 5, Reads: 2, Direct: 2, Rank: "S", TaxID: "562", Name: "Escherichia coli", Depth: 4},
		},
	}

	for name, test := range tests {
		got, err := report.ParseLine(test.line)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		test.want.Line = strings.TrimRight(test.line, "\r\n")
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("%s: got %+v, want %+v", name, got, test.want)
		}
	}
}

func TestParseLineMalformed(t *testing.T) {
	lines := map[string]string{
		"few fields":  "10.00\t5\t5\tD\t  Bacteria",
		"percentage":  "ten\t5\t5\tD\t2\t  Bacteria",
		"reads":       "10.00\tfive\t5\tD\t2\t  Bacteria",
		"direct":      "10.00\t5\tx\tD\t2\t  Bacteria",
		"taxonomicID": "10.00\t5\t5\tD\tbact\t  Bacteria",
		"empty":       "",
	}
	for name, line := range lines {
		_, err := report.ParseLine(line)
		if !errors.Is(err, report.ErrMalformed) {
			t.Errorf("%s: got error %v, want %v", name, err, report.ErrMalformed)
		}
	}
}

func TestRead(t *testing.T) {
	recs, skipped, err := report.Read(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("unable to read report: %v", err)
	}

	ids := make([]string, 0, len(recs))
	for _, r := range recs {
		ids = append(ids, r.TaxID)
	}
	want := []string{"0", "1", "2", "562", "1280", "2157", "32630"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("IDs: got %v, want %v", ids, want)
	}
	if !reflect.DeepEqual(skipped, []int{7}) {
		t.Errorf("skipped lines: got %v, want %v", skipped, []int{7})
	}

	var buf bytes.Buffer
	if err := report.Write(&buf, recs); err != nil {
		t.Fatalf("unable to write report: %v", err)
	}
	nr, skipped, err := report.Read(&buf)
	if err != nil {
		t.Fatalf("unable to read report: %v", err)
	}
	if len(skipped) != 0 {
		t.Errorf("written report: skipped lines %v", skipped)
	}
	if diff := cmp.Diff(recs, nr); diff != "" {
		t.Errorf("written report mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteVerbatim(t *testing.T) {
	in := "  5.00\t2\t2\t40\t20\tS\t562\t    Escherichia coli\n" +
		"10.0\t5\t5\tD\t2\t  Bacteria\n"
	recs, _, err := report.Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unable to read report: %v", err)
	}

	var buf bytes.Buffer
	if err := report.Write(&buf, recs); err != nil {
		t.Fatalf("unable to write report: %v", err)
	}
	if got := buf.String(); got != in {
		t.Errorf("write: got %q, want %q", got, in)
	}

	// records without a source line
	buf.Reset()
	rec := report.Record{Percent: 10, Reads: 5, Direct: 5, Rank: "D", TaxID: "2", Name: "Bacteria", Depth: 2}
	if err := report.Write(&buf, []report.Record{rec}); err != nil {
		t.Fatalf("unable to write report: %v", err)
	}
	want := " 10.00\t5\t5\tD\t2\t  Bacteria\n"
	if got := buf.String(); got != want {
		t.Errorf("write: got %q, want %q", got, want)
	}
}

func TestFilter(t *testing.T) {
	recs, _, err := report.Read(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("unable to read report: %v", err)
	}

	f := report.DefaultFilter()
	var kept []string
	for _, r := range recs {
		if f.Keep(r) {
			kept = append(kept, r.TaxID)
		}
	}
	want := []string{"1", "2", "562", "1280", "2157"}
	if !reflect.DeepEqual(kept, want) {
		t.Errorf("kept: got %v, want %v", kept, want)
	}
}

func TestClean(t *testing.T) {
	recs := []report.Record{
		{Percent: 10, Reads: 10, TaxID: "1"},
		{Percent: 0, Reads: 0, Direct: 0, TaxID: "2"},
		{Percent: 0, Reads: 3, TaxID: "3"},
		{Percent: 0.01, Reads: 1, Direct: 1, TaxID: "4"},
	}
	got := report.Clean(recs)
	want := []report.Record{recs[0], recs[3]}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("clean: got %v, want %v", got, want)
	}
}

func TestSortByAbundance(t *testing.T) {
	recs := []report.Record{
		{Percent: 10, Reads: 10, TaxID: "1"},
		{Percent: 50, Reads: 50, TaxID: "2"},
		{Percent: 10, Reads: 12, TaxID: "3"},
		{Percent: 10, Reads: 10, TaxID: "4"},
	}
	got := report.SortByAbundance(recs)
	var ids []string
	for _, r := range got {
		ids = append(ids, r.TaxID)
	}
	want := []string{"2", "3", "1", "4"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("sort: got %v, want %v", ids, want)
	}
	if recs[0].TaxID != "1" {
		t.Errorf("sort: input slice modified")
	}
}

func TestSanitize(t *testing.T) {
	tests := map[string]string{
		"Bacteria":                 "Bacteria",
		"E.coli":                   "E_coli",
		"E. coli":                  "E_coli",
		"Escherichia coli":         "Escherichia_coli",
		"Influenza A virus (H1N1)": "Influenza_A_virus_H1N1",
		"taxon:name":               "taxon_name",
		" leading":                 "leading",
	}
	for in, want := range tests {
		if got := report.Sanitize(in); got != want {
			t.Errorf("sanitize %q: got %q, want %q", in, got, want)
		}
	}

	if got := report.Normalize("E. coli"); got != "e_coli" {
		t.Errorf("normalize %q: got %q, want %q", "E. coli", got, "e_coli")
	}
}

func TestDomains(t *testing.T) {
	recs, _, err := report.Read(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("unable to read report: %v", err)
	}

	d := report.NewDomains().Tally(recs)
	want := map[string]float64{
		"Eukaryota": 0,
		"Bacteria":  90,
		"Archaea":   5,
	}
	for n, w := range want {
		if got := d.Percent(n); got != w {
			t.Errorf("domain %q: got %.2f, want %.2f", n, got, w)
		}
	}
	if !reflect.DeepEqual(d.Names(), report.DefaultDomains) {
		t.Errorf("domains: got %v, want %v", d.Names(), report.DefaultDomains)
	}

	// accumulates
	d.Tally(recs)
	if got := d.Percent("Bacteria"); got != 180 {
		t.Errorf("domain %q: got %.2f, want %.2f", "Bacteria", got, 180.0)
	}
}

func TestAbundances(t *testing.T) {
	ab := report.NewAbundances()
	ab.Set("Escherichia coli", 5, "S")
	ab.Set("Bacteria", 10, "D")
	ab.Set("Archaea", 1, "D")
	ab.Set("Escherichia coli", 6, "S")

	want := []string{"Escherichia coli", "Bacteria", "Archaea"}
	if got := ab.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("names: got %v, want %v", got, want)
	}
	a, ok := ab.Get("Escherichia coli")
	if !ok || a.Percent != 6 {
		t.Errorf("get: got %v, want percent %.2f", a, 6.0)
	}
	if _, ok := ab.Get("Homo sapiens"); ok {
		t.Errorf("get: unexpected taxon %q", "Homo sapiens")
	}

	var first []string
	ab.Each(func(a report.Abundance) bool {
		first = append(first, a.Name)
		return len(first) < 2
	})
	if !reflect.DeepEqual(first, want[:2]) {
		t.Errorf("each: got %v, want %v", first, want[:2])
	}
}
