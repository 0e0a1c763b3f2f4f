// Package output renders lint results for a terminal, separating
// presentation from the linting pipeline itself (spec §6: the
// diagnostic format is "exposed; not prescribed bit-exact here because
// multiple formats are typical" — this is one such format).
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/hdllint/corelint/internal/domain/value"
)

// severityStyles maps each Severity to its rendering. This CLI ships a
// single built-in theme rather than a swappable provider registry (see
// DESIGN.md for the rationale).
var severityStyles = map[value.Severity]struct {
	symbol string
	style  lipgloss.Style
}{
	value.SeverityError:   {"✗", lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)},
	value.SeverityWarning: {"▲", lipgloss.NewStyle().Foreground(lipgloss.Color("11"))},
	value.SeverityInfo:    {"●", lipgloss.NewStyle().Foreground(lipgloss.Color("12"))},
}

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	ruleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
)

// ThemedOutput writes human- or machine-readable diagnostics to a
// writer, with ANSI styling optionally enabled.
type ThemedOutput struct {
	writer       io.Writer
	errorWriter  io.Writer
	enableColors bool
}

// NewThemedOutput builds a ThemedOutput writing to stdout/stderr.
func NewThemedOutput() *ThemedOutput {
	return &ThemedOutput{writer: os.Stdout, errorWriter: os.Stderr, enableColors: true}
}

// WithWriter returns a copy writing normal output to w.
func (o *ThemedOutput) WithWriter(w io.Writer) *ThemedOutput {
	c := *o
	c.writer = w
	return &c
}

// WithColors returns a copy with ANSI styling enabled or disabled.
func (o *ThemedOutput) WithColors(enable bool) *ThemedOutput {
	c := *o
	c.enableColors = enable
	return &c
}

func (o *ThemedOutput) render(s lipgloss.Style, text string) string {
	if !o.enableColors {
		return text
	}
	return s.Render(text)
}

// Success prints a success line to the error stream (so stdout stays
// reserved for diagnostics a caller might pipe into another tool).
func (o *ThemedOutput) Success(format string, args ...interface{}) {
	fmt.Fprintln(o.errorWriter, o.render(successStyle, "✓ "+fmt.Sprintf(format, args...)))
}

// Info prints an informational line.
func (o *ThemedOutput) Info(format string, args ...interface{}) {
	fmt.Fprintln(o.errorWriter, o.render(dimStyle, fmt.Sprintf(format, args...)))
}

// Diagnostic is one rendered finding, carrying the line/column §6
// derives from a violation's byte anchor via the document's line table.
type Diagnostic struct {
	Rule     string
	Severity value.Severity
	File     string
	Line     int
	Column   int
	Message  string
}

// DiagnosticsFromReport derives one Diagnostic per violation in report,
// resolving each anchor's line/column against view's line table.
func DiagnosticsFromReport(report value.LintReport, view *value.TextStructureView) []Diagnostic {
	ruleOf := make(map[string]string, len(report.Violations))
	for _, status := range report.Statuses {
		for _, v := range status.Violations {
			ruleOf[v.Anchor.String()+"\x00"+v.Message] = status.Descriptor.Name
		}
	}

	out := make([]Diagnostic, 0, len(report.Violations))
	for _, v := range report.Violations {
		pos := view.PositionAt(v.Anchor.Offset)
		out = append(out, Diagnostic{
			Rule:     ruleOf[v.Anchor.String()+"\x00"+v.Message],
			Severity: v.Severity,
			File:     report.Filename,
			Line:     pos.Line,
			Column:   pos.Column,
			Message:  v.Message,
		})
	}
	return out
}

// PrintText renders diagnostics in human-readable `file:line:col: message [rule]` form.
func (o *ThemedOutput) PrintText(diags []Diagnostic) {
	for _, d := range diags {
		sev := severityStyles[d.Severity]
		location := fmt.Sprintf("%s:%d:%d", d.File, d.Line, d.Column)
		fmt.Fprintf(o.writer, "%s %s %s %s\n",
			o.render(dimStyle, location),
			o.render(sev.style, sev.symbol),
			d.Message,
			o.render(ruleStyle, "["+d.Rule+"]"),
		)
	}
}

// PrintJSON renders diagnostics as a JSON array, sorted for determinism
// across runs on the same input (spec §8 Determinism).
func (o *ThemedOutput) PrintJSON(diags []Diagnostic) error {
	sort.SliceStable(diags, func(i, j int) bool {
		if diags[i].File != diags[j].File {
			return diags[i].File < diags[j].File
		}
		if diags[i].Line != diags[j].Line {
			return diags[i].Line < diags[j].Line
		}
		return diags[i].Column < diags[j].Column
	})
	enc := json.NewEncoder(o.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(diags)
}
