// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(batchGuide)
	app.Add(configGuide)
	app.Add(reportsGuide)
}

var reportsGuide = &command.Command{
	Usage: "reports",
	Short: "about classification reports",
	Long: `
Taxatree reads the reports produced by metagenomic classifiers such as Kraken2.
A report is a tab-delimited file without header, in which each line is a
taxon. The fields of each line are:

	- percentage  percentage of reads covered by the clade
	- reads       number of reads covered by the clade
	- direct      number of reads assigned directly to the taxon
	- rank        rank code (U for unclassified, R for root, D for
	              domain, ..., S for species)
	- taxid       taxonomic ID
	- name        scientific name of the taxon

Reports with minimizer data (two additional columns after the direct reads)
are also accepted.

The tree structure is encoded by the indentation of the name: each taxon is a
child of the closest previous taxon with fewer leading spaces. As the lines of
a report are a pre-order traversal of the tree, the order of the lines is
kept as the order of the children in the resulting tree; reports should not
be sorted before building a tree.

Lines with less than six fields, or invalid numbers, are ignored. Unclassified
reads, and the taxa in the exclusion set (by default, the NCBI categories for
artificial and synthetic sequences) are not included in the trees.

Here is an example report:

	  5.00	5	5	U	0	unclassified
	 95.00	95	0	R	1	root
	 90.00	90	0	D	2	  Bacteria
	 60.00	60	60	S	562	    Escherichia coli
	 30.00	30	30	S	1280	    Staphylococcus aureus
	  5.00	5	5	D	2157	  Archaea
	`,
}

var configGuide = &command.Command{
	Usage: "config",
	Short: "about configuration files",
	Long: `
Commands that build trees or tables accept a configuration file with the flag
--config. The configuration file is a TOML file with the following keys, all
of them optional:

	- root          taxonomic ID of the root (default "1")
	- unclassified  rank code of unclassified reads (default "U")
	- exclude       list of excluded taxonomic IDs
	                (default ["28384", "81077", "32630"])
	- domains       list of domain names used in tables
	                (default ["Eukaryota", "Bacteria", "Archaea"])

Here is an example file:

	# taxatree configuration
	root = "1"
	exclude = ["28384", "81077", "32630", "9606"]
	domains = ["Eukaryota", "Bacteria", "Archaea", "Viruses"]

Values defined with command flags take precedence over the values of the
configuration file.
	`,
}

var batchGuide = &command.Command{
	Usage: "batch",
	Short: "about batch files",
	Long: `
To process the reports of several samples in a single run, a batch file can be
used. A batch file is a tab-delimited file with the following fields:

	- sample  the name of the sample
	- report  the path of the report file

Relative paths are read from the directory of the batch file.

Here is an example file:

	# taxatree batch file
	sample	report
	soil-01	soil-01/kraken.report
	soil-02	soil-02/kraken.report
	`,
}
