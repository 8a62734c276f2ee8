// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package annotate_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/taxatree/annotate"
	"github.com/js-arias/taxatree/newick"
	"github.com/js-arias/taxatree/report"
)

func readTree(t testing.TB, s string) *newick.Clade {
	t.Helper()

	c, err := newick.Read(strings.NewReader(s))
	if err != nil {
		t.Fatalf("unable to read tree %q: %v", s, err)
	}
	return c
}

func termNames(c *newick.Clade) []string {
	var names []string
	for _, d := range c.Terms() {
		names = append(names, d.Name)
	}
	return names
}

func TestAnnotate(t *testing.T) {
	c := readTree(t, "((E_coli:1,Staphylococcus_aureus:1)Bacteria,Homo_sapiens:1)root:1;")

	ab := report.NewAbundances()
	ab.Set("E. coli", 5.0, "S")
	ab.Set("Staphylococcus aureus", 12.34, "S")

	n := annotate.Annotate(c, ab, annotate.Exact)
	if n != 2 {
		t.Errorf("annotated: got %d, want %d", n, 2)
	}

	want := []string{"E_coli (5.0%, S)", "Staphylococcus_aureus (12.34%, S)", "Homo_sapiens"}
	if got := termNames(c); !reflect.DeepEqual(got, want) {
		t.Errorf("terms: got %v, want %v", got, want)
	}

	c.Walk(func(d *newick.Clade) {
		if !d.IsTerm() && d.Name != "" {
			t.Errorf("internal node: got label %q, want empty", d.Name)
		}
	})
}

func TestAnnotateSubstring(t *testing.T) {
	ab := report.NewAbundances()
	ab.Set("Escherichia", 7, "G")
	ab.Set("Escherichia coli", 5, "S")

	c := readTree(t, "(Escherichia_coli_K-12:1,Bacillus:1);")
	if n := annotate.Annotate(c, ab, annotate.Exact); n != 0 {
		t.Errorf("exact: annotated: got %d, want 0", n)
	}

	c = readTree(t, "(Escherichia_coli_K-12:1,Bacillus:1);")
	if n := annotate.Annotate(c, ab, annotate.Substring); n != 1 {
		t.Errorf("substring: annotated: got %d, want 1", n)
	}

	// first match wins
	want := []string{"Escherichia_coli_K-12 (7.0%, G)", "Bacillus"}
	if got := termNames(c); !reflect.DeepEqual(got, want) {
		t.Errorf("terms: got %v, want %v", got, want)
	}
}

func TestAnnotateOrder(t *testing.T) {
	recs := []report.Record{
		{Name: "Escherichia coli", Percent: 1, Rank: "S"},
		{Name: "Escherichia  coli", Percent: 2, Rank: "S1"},
	}
	c := readTree(t, "(Escherichia_coli:1);")
	annotate.Annotate(c, report.FromRecords(recs), annotate.Exact)

	want := []string{"Escherichia_coli (1.0%, S)"}
	if got := termNames(c); !reflect.DeepEqual(got, want) {
		t.Errorf("terms: got %v, want %v", got, want)
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		a    report.Abundance
		want string
	}{
		{report.Abundance{Percent: 5, Rank: "S"}, "E_coli (5.0%, S)"},
		{report.Abundance{Percent: 0.25, Rank: "G"}, "E_coli (0.25%, G)"},
		{report.Abundance{Percent: 100}, "E_coli (100.0%)"},
	}
	for _, test := range tests {
		if got := annotate.Label("E_coli", test.a); got != test.want {
			t.Errorf("label: got %q, want %q", got, test.want)
		}
	}
}
