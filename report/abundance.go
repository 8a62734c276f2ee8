// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package report

// Abundance is the percentage of reads
// and the rank of a taxon.
type Abundance struct {
	Name    string
	Percent float64
	Rank    string
}

// Abundances is a mapping of taxon names to abundances
// that keeps the insertion order.
type Abundances struct {
	ls  []Abundance
	idx map[string]int
}

// NewAbundances returns an empty mapping of abundances.
func NewAbundances() *Abundances {
	return &Abundances{idx: make(map[string]int)}
}

// FromRecords returns the abundances of a set of records,
// in the order of the records.
// If a name is repeated,
// the last record sets the value.
func FromRecords(recs []Record) *Abundances {
	ab := NewAbundances()
	for _, r := range recs {
		ab.Set(r.Name, r.Percent, r.Rank)
	}
	return ab
}

// Set sets the abundance of a taxon.
// If the taxon is already defined,
// its value is updated,
// but it keeps its original position.
func (ab *Abundances) Set(name string, percent float64, rank string) {
	a := Abundance{
		Name:    name,
		Percent: percent,
		Rank:    rank,
	}
	if i, ok := ab.idx[name]; ok {
		ab.ls[i] = a
		return
	}
	ab.idx[name] = len(ab.ls)
	ab.ls = append(ab.ls, a)
}

// Get returns the abundance of a taxon.
func (ab *Abundances) Get(name string) (Abundance, bool) {
	i, ok := ab.idx[name]
	if !ok {
		return Abundance{}, false
	}
	return ab.ls[i], true
}

// Each calls fn for each abundance
// in insertion order,
// until fn returns false.
func (ab *Abundances) Each(fn func(a Abundance) bool) {
	for _, a := range ab.ls {
		if !fn(a) {
			return
		}
	}
}

// Names returns the taxon names
// in insertion order.
func (ab *Abundances) Names() []string {
	names := make([]string, 0, len(ab.ls))
	for _, a := range ab.ls {
		names = append(names, a.Name)
	}
	return names
}

// Len returns the number of taxa in the mapping.
func (ab *Abundances) Len() int {
	return len(ab.ls)
}
