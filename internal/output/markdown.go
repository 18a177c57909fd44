package output

import (
	"fmt"
	"io"
	"strings"

	"pylens/internal/structure"
)

func init() {
	RegisterFormatter(NewMarkdownFormatter())
}

// MarkdownFormatter writes reports as a human-readable Markdown summary.
type MarkdownFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*MarkdownFormatter)(nil)

// NewMarkdownFormatter returns a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Name returns the format name.
func (m *MarkdownFormatter) Name() string { return "markdown" }

// Format writes all reports as a Markdown document to w.
//
// The output includes a title heading, a per-file stats table, and for each
// file a section listing classes, leading methods, and key imports.
func (m *MarkdownFormatter) Format(reports []*structure.Report, w io.Writer) error {
	if len(reports) == 0 {
		return nil
	}

	if _, err := fmt.Fprintf(w, "# Structure Report\n\n%d file(s) scanned.\n\n", len(reports)); err != nil {
		return err
	}

	// Stats table.
	if _, err := fmt.Fprint(w, "| File | Lines | Classes | Methods | Imports |\n|---|---|---|---|---|\n"); err != nil {
		return err
	}
	for _, r := range reports {
		if _, err := fmt.Fprintf(w, "| %s | %d | %d | %d | %d |\n",
			r.File, r.Stats.TotalLines, r.Stats.Classes, r.Stats.Methods, r.Stats.Imports); err != nil {
			return err
		}
	}

	// Per-file detail sections.
	for _, r := range reports {
		if err := writeFileSection(w, r); err != nil {
			return err
		}
	}
	return nil
}

func writeFileSection(w io.Writer, r *structure.Report) error {
	if _, err := fmt.Fprintf(w, "\n## %s\n\n", r.File); err != nil {
		return err
	}
	if len(r.ClassesFound) > 0 {
		if _, err := fmt.Fprintf(w, "**Classes:** %s\n\n", strings.Join(r.ClassesFound, ", ")); err != nil {
			return err
		}
	}
	if len(r.MethodsFound) > 0 {
		suffix := ""
		if r.Stats.Methods > len(r.MethodsFound) {
			suffix = fmt.Sprintf(" (and %d more)", r.Stats.Methods-len(r.MethodsFound))
		}
		if _, err := fmt.Fprintf(w, "**Methods:** %s%s\n\n", strings.Join(r.MethodsFound, ", "), suffix); err != nil {
			return err
		}
	}
	for _, imp := range r.KeyImports {
		if _, err := fmt.Fprintf(w, "- `%s`\n", imp); err != nil {
			return err
		}
	}
	return nil
}
