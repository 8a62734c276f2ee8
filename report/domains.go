// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package report

// DefaultDomains are the domains
// tallied by default.
var DefaultDomains = []string{
	"Eukaryota",
	"Bacteria",
	"Archaea",
}

// Domains accumulates the percentage of reads
// of a set of domains.
type Domains struct {
	names []string
	pc    map[string]float64
}

// NewDomains returns an accumulator for the given domains.
// If no domain is given,
// the default domains will be used.
func NewDomains(names ...string) *Domains {
	if len(names) == 0 {
		names = DefaultDomains
	}
	d := &Domains{pc: make(map[string]float64, len(names))}
	for _, n := range names {
		if _, ok := d.pc[n]; ok {
			continue
		}
		d.names = append(d.names, n)
		d.pc[n] = 0
	}
	return d
}

// Tally adds the percentage of the records
// whose name is one of the accumulated domains,
// and returns the accumulator.
func (d *Domains) Tally(recs []Record) *Domains {
	for _, r := range recs {
		if _, ok := d.pc[r.Name]; !ok {
			continue
		}
		d.pc[r.Name] += r.Percent
	}
	return d
}

// Names returns the domain names,
// in the order they were defined.
func (d *Domains) Names() []string {
	return d.names
}

// Percent returns the accumulated percentage of a domain.
func (d *Domains) Percent(name string) float64 {
	return d.pc[name]
}
