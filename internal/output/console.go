// Copyright 2026 The Pylens Authors
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"

	"pylens/internal/structure"
)

// Shared color printers for console summaries.
var (
	colorBold  = color.New(color.Bold)
	colorGreen = color.New(color.FgGreen)
	colorCyan  = color.New(color.FgCyan)
)

// WriteSummary prints the human-readable scan summary for a single report,
// mirroring the counts carried in the JSON output.
func WriteSummary(w io.Writer, r *structure.Report) {
	fmt.Fprintf(w, "%s %s\n", colorGreen.Sprint("analyzed"), colorBold.Sprint(filepath.Base(r.File)))
	fmt.Fprintf(w, "  lines:   %d\n", r.Stats.TotalLines)
	fmt.Fprintf(w, "  classes: %d\n", r.Stats.Classes)
	fmt.Fprintf(w, "  methods: %d\n", r.Stats.Methods)
	fmt.Fprintf(w, "  imports: %d\n", r.Stats.Imports)
	if len(r.KeyImports) > 0 {
		fmt.Fprintf(w, "  key imports:\n")
		for _, imp := range r.KeyImports {
			fmt.Fprintf(w, "    %s\n", colorCyan.Sprint(imp))
		}
	}
	fmt.Fprintf(w, "  analysis time: %s\n", r.AnalysisTime)
}

// WriteTreeSummary prints a one-line-per-file summary for a directory scan.
func WriteTreeSummary(w io.Writer, reports []*structure.Report) {
	for _, r := range reports {
		fmt.Fprintf(w, "%s: %d lines, %d classes, %d methods, %d imports\n",
			r.File, r.Stats.TotalLines, r.Stats.Classes, r.Stats.Methods, r.Stats.Imports)
	}
	fmt.Fprintf(w, "%s %d file(s)\n", colorGreen.Sprint("scanned"), len(reports))
}
