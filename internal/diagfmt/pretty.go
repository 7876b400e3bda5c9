package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"declet/internal/diag"
	"declet/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	caretColor   = color.New(color.FgGreen, color.Bold)
)

// Pretty formats diagnostics for humans. It walks bag.Items() in order, so
// callers are expected to bag.Sort() first. Each diagnostic renders as
//
//	<path>:<line>:<col>: <SEVERITY> [<CODE>]: <message>
//
// optionally followed by the source line and a caret underline over the span.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writePretty(w, d, fs, opts)
	}
}

func writePretty(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	f := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)

	sevText := d.Severity.String()
	codeText := d.Code.ID()
	if opts.Color {
		c := severityColor(d.Severity)
		sevText = c.Sprint(sevText)
		codeText = c.Sprint(codeText)
	}

	fmt.Fprintf(w, "%s:%d:%d: %s [%s]: %s\n",
		displayPath(f, opts.PathMode), start.Line, start.Col, sevText, codeText, d.Message)

	if !opts.ShowSource || f == nil {
		return
	}

	line := f.GetLine(start.Line)
	if line == "" {
		return
	}
	shown := line
	if opts.Width > 0 && runewidth.StringWidth(shown) > opts.Width {
		shown = runewidth.Truncate(shown, opts.Width, "...")
	}
	fmt.Fprintf(w, "  %s\n", shown)

	underline := caretLine(line, start, end, opts.Width)
	if opts.Color {
		underline = caretColor.Sprint(underline)
	}
	fmt.Fprintf(w, "  %s\n", underline)
}

// caretLine builds a '^~~~' underline aligned under the span's columns,
// accounting for display width of the prefix.
func caretLine(line string, start, end source.LineCol, width int) string {
	startCol := int(start.Col)
	if startCol < 1 {
		startCol = 1
	}
	prefixBytes := startCol - 1
	if prefixBytes > len(line) {
		prefixBytes = len(line)
	}
	pad := runewidth.StringWidth(line[:prefixBytes])

	length := 1
	if end.Line == start.Line && int(end.Col) > startCol {
		length = int(end.Col) - startCol
	}
	if width > 0 && pad+length > width {
		length = width - pad
		if length < 1 {
			length = 1
		}
	}

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", pad))
	sb.WriteByte('^')
	if length > 1 {
		sb.WriteString(strings.Repeat("~", length-1))
	}
	return sb.String()
}

// Summary renders a one-line tally like "2 errors, 1 warning".
func Summary(bag *diag.Bag) string {
	var errs, warns int
	for _, d := range bag.Items() {
		switch d.Severity {
		case diag.SevError:
			errs++
		case diag.SevWarning:
			warns++
		}
	}
	parts := make([]string, 0, 2)
	if errs > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", errs, plural(errs, "error")))
	}
	if warns > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", warns, plural(warns, "warning")))
	}
	if len(parts) == 0 {
		return "no issues"
	}
	return strings.Join(parts, ", ")
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

func displayPath(f *source.File, mode PathMode) string {
	if f == nil {
		return "<unknown>"
	}
	if mode == PathModeBasename {
		return filepath.Base(f.Path)
	}
	return f.Path
}
