// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package logger provides the logger
// used by taxatree commands.
package logger

import (
	"io"

	"github.com/charmbracelet/log"
)

// New returns a logger that writes to w.
// If verbose is true,
// debug messages will be printed.
func New(w io.Writer, prefix string, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		ReportTimestamp: verbose,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}
