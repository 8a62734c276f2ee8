// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Taxatree is a tool to build taxonomic trees
// from metagenomic classification reports.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/taxatree/cmd/taxatree/add"
	"github.com/js-arias/taxatree/cmd/taxatree/annotate"
	"github.com/js-arias/taxatree/cmd/taxatree/clean"
	"github.com/js-arias/taxatree/cmd/taxatree/newick"
	"github.com/js-arias/taxatree/cmd/taxatree/table"
	"github.com/js-arias/taxatree/cmd/taxatree/terms"
	"github.com/js-arias/taxatree/cmd/taxatree/timetree"
)

var app = &command.Command{
	Usage: "taxatree <command> [<argument>...]",
	Short: "a tool to build trees from taxonomic classification reports",
}

func init() {
	app.Add(add.Command)
	app.Add(annotate.Command)
	app.Add(clean.Command)
	app.Add(newick.Command)
	app.Add(table.Command)
	app.Add(terms.Command)
	app.Add(timetree.Command)
}

func main() {
	app.Main()
}
