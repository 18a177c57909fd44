package demo

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// ruleWidth is the width of banner rules, matching the original demo output.
const ruleWidth = 80

var (
	colorBold   = color.New(color.Bold)
	colorCyan   = color.New(color.FgCyan)
	colorGreen  = color.New(color.FgGreen)
	colorYellow = color.New(color.FgYellow)
)

// Narrator renders the themed walkthrough output: banners, request headers,
// and labeled lists.
type Narrator struct {
	w io.Writer
}

// NewNarrator returns a Narrator writing to w.
func NewNarrator(w io.Writer) *Narrator {
	return &Narrator{w: w}
}

// Rule prints a full-width separator line.
func (n *Narrator) Rule() {
	fmt.Fprintln(n.w, strings.Repeat("=", ruleWidth))
}

// Banner prints a rule-delimited bold title.
func (n *Narrator) Banner(title string) {
	fmt.Fprintln(n.w)
	n.Rule()
	fmt.Fprintln(n.w, colorBold.Sprint(title))
	n.Rule()
}

// Request prints the simulated assistant request header for a step.
func (n *Narrator) Request(s Step) {
	fmt.Fprintln(n.w)
	n.Rule()
	fmt.Fprintf(n.w, "%s %s\n", colorBold.Sprint("REQUEST:"), colorCyan.Sprint(s.Title()))
	fmt.Fprintf(n.w, "%s %s\n", "Description:", s.Description())
	fmt.Fprintf(n.w, "%s %s\n", "Tools used: ", strings.Join(s.Tools(), ", "))
	n.Rule()
}

// Printf writes formatted narration text.
func (n *Narrator) Printf(format string, args ...any) {
	fmt.Fprintf(n.w, format, args...)
}

// Ok prints a green-checked status line.
func (n *Narrator) Ok(format string, args ...any) {
	fmt.Fprintf(n.w, "%s %s\n", colorGreen.Sprint("ok"), fmt.Sprintf(format, args...))
}

// Warn prints a yellow status line.
func (n *Narrator) Warn(format string, args ...any) {
	fmt.Fprintf(n.w, "%s %s\n", colorYellow.Sprint("--"), fmt.Sprintf(format, args...))
}

// List prints a labeled list, showing at most max items followed by an
// "... and N more" marker, mirroring the original demo's truncated listings.
// max <= 0 prints everything.
func (n *Narrator) List(label string, items []string, max int) {
	fmt.Fprintf(n.w, "  %s: %d items\n", label, len(items))
	shown := items
	if max > 0 && len(items) > max {
		shown = items[:max]
	}
	for _, item := range shown {
		fmt.Fprintf(n.w, "    - %s\n", item)
	}
	if len(shown) < len(items) {
		fmt.Fprintf(n.w, "    ... and %d more\n", len(items)-len(shown))
	}
}

// NumberedList prints items as a numbered list under a heading.
func (n *Narrator) NumberedList(heading string, items []string) {
	fmt.Fprintf(n.w, "\n  %s:\n", heading)
	for i, item := range items {
		fmt.Fprintf(n.w, "    %d. %s\n", i+1, item)
	}
}
