// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package config implements reading of taxatree configuration files.
//
// A configuration file is a TOML file
// with the following keys,
// all of them optional:
//
//   - root, the taxonomic ID of the root of the trees
//   - unclassified, the rank code of unclassified reads
//   - exclude, a list of excluded taxonomic IDs
//   - domains, a list of domain names to tally
//
// Here is an example file:
//
//	# taxatree configuration
//	root = "1"
//	unclassified = "U"
//	exclude = ["28384", "81077", "32630", "9606"]
//	domains = ["Eukaryota", "Bacteria", "Archaea", "Viruses"]
package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/js-arias/taxatree/hierarchy"
	"github.com/js-arias/taxatree/report"
)

// Config is the configuration of a run.
type Config struct {
	Root         string   `toml:"root"`
	Unclassified string   `toml:"unclassified"`
	Exclude      []string `toml:"exclude"`
	Domains      []string `toml:"domains"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Root:         hierarchy.RootID,
		Unclassified: report.Unclassified,
		Exclude:      slices.Clone(report.DefaultExclude),
		Domains:      slices.Clone(report.DefaultDomains),
	}
}

// Read reads a configuration file.
// Undefined keys keep the default values.
func Read(name string) (Config, error) {
	c := Default()
	md, err := toml.DecodeFile(name, &c)
	if err != nil {
		return Config{}, fmt.Errorf("on file %q: %v", name, err)
	}
	if u := md.Undecoded(); len(u) > 0 {
		keys := make([]string, 0, len(u))
		for _, k := range u {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("on file %q: unknown keys: %s", name, strings.Join(keys, ", "))
	}
	if err := c.validate(); err != nil {
		return Config{}, fmt.Errorf("on file %q: %v", name, err)
	}
	return c, nil
}

func (c Config) validate() error {
	if strings.TrimSpace(c.Root) == "" {
		return fmt.Errorf("undefined root")
	}
	return nil
}

// AddExclude adds a comma separated list of taxonomic IDs
// to the exclusion set.
func (c *Config) AddExclude(ids string) {
	for _, id := range strings.Split(ids, ",") {
		id = strings.TrimSpace(id)
		if id == "" || slices.Contains(c.Exclude, id) {
			continue
		}
		c.Exclude = append(c.Exclude, id)
	}
}

// Filter returns the record filter
// defined by the configuration.
func (c Config) Filter() report.Filter {
	f := report.NewFilter(c.Exclude...)
	f.Unclassified = c.Unclassified
	return f
}
