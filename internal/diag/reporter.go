// Package diag carries non-fatal diagnostics out of the processing pipeline.
//
// Diagnostics are informational text only: the aggregates computed by the
// accountant and the tallies must be identical whether or not a reporter is
// verbose, so nothing in this package feeds back into results.
package diag

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleProblem = lipgloss.NewStyle().Bold(true)
	styleContext = lipgloss.NewStyle().Faint(true)
)

// Reporter writes diagnostics to a sink. Problemf output is always emitted
// (malformed lines, inconsistent state, unattributable events); Verbosef
// output only when verbose is enabled (skipped files, unrecognized lines,
// date assumptions).
type Reporter struct {
	w       io.Writer
	verbose bool
	color   bool
}

// New returns a Reporter writing to w.
func New(w io.Writer, verbose bool) *Reporter {
	return &Reporter{w: w, verbose: verbose, color: true}
}

// Discard returns a Reporter that swallows everything. Handy in tests.
func Discard() *Reporter {
	return &Reporter{w: io.Discard}
}

// SetColor toggles styled output.
func (r *Reporter) SetColor(on bool) { r.color = on }

// Verbose reports whether verbose diagnostics are enabled.
func (r *Reporter) Verbose() bool { return r.verbose }

// Problemf emits a diagnostic that is always shown: the line (or file) is
// skipped or recovered from, but the user should know about it.
func (r *Reporter) Problemf(context, format string, args ...any) {
	head := context + ":"
	if r.color {
		head = styleProblem.Render(head)
	}
	fmt.Fprintf(r.w, "%s\n\t%s\n", head, fmt.Sprintf(format, args...))
}

// Verbosef emits chatter that is only interesting when asked for.
func (r *Reporter) Verbosef(format string, args ...any) {
	if !r.verbose {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if r.color {
		msg = styleContext.Render(msg)
	}
	fmt.Fprintln(r.w, msg)
}
