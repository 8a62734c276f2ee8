// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package config_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/js-arias/taxatree/config"
	"github.com/js-arias/taxatree/report"
)

func writeFile(t testing.TB, data string) string {
	t.Helper()

	name := filepath.Join(t.TempDir(), "taxatree.toml")
	if err := os.WriteFile(name, []byte(data), 0o644); err != nil {
		t.Fatalf("unable to write config: %v", err)
	}
	return name
}

func TestRead(t *testing.T) {
	name := writeFile(t, `# test configuration
root = "131567"
exclude = ["9606"]
`)
	c, err := config.Read(name)
	if err != nil {
		t.Fatalf("unable to read config: %v", err)
	}

	want := config.Config{
		Root:         "131567",
		Unclassified: "U",
		Exclude:      []string{"9606"},
		Domains:      report.DefaultDomains,
	}
	if !reflect.DeepEqual(c, want) {
		t.Errorf("config: got %+v, want %+v", c, want)
	}

	f := c.Filter()
	if f.Keep(report.Record{TaxID: "9606", Rank: "S"}) {
		t.Errorf("filter: taxon %q not excluded", "9606")
	}
	if !f.Keep(report.Record{TaxID: "32630", Rank: "S"}) {
		t.Errorf("filter: taxon %q excluded", "32630")
	}
	if f.Keep(report.Record{TaxID: "0", Rank: "U"}) {
		t.Errorf("filter: unclassified not excluded")
	}
}

func TestReadErrors(t *testing.T) {
	tests := map[string]string{
		"unknown key": `roots = "1"`,
		"empty root":  `root = ""`,
		"syntax":      `root = `,
	}
	for name, data := range tests {
		if _, err := config.Read(writeFile(t, data)); err == nil {
			t.Errorf("%s: expecting error", name)
		}
	}
}

func TestAddExclude(t *testing.T) {
	c := config.Default()
	c.AddExclude("9606, 32630,,10090")

	want := []string{"28384", "81077", "32630", "9606", "10090"}
	if !reflect.DeepEqual(c.Exclude, want) {
		t.Errorf("exclude: got %v, want %v", c.Exclude, want)
	}
}
