package diagfmt

import (
	"encoding/json"
	"io"

	"declet/internal/diag"
	"declet/internal/source"
)

// LocationJSON describes a file location for JSON output.
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

// DiagnosticJSON is the JSON form of one diagnostic.
type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Stage    string       `json:"stage"`
	Message  string       `json:"message"`
	Line     uint32       `json:"line"`
	Location LocationJSON `json:"location"`
}

// DiagnosticsOutput is the root structure of the JSON report.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

func makeLocation(span source.Span, fs *source.FileSet, pathMode PathMode, includePositions bool) LocationJSON {
	f := fs.Get(span.File)

	loc := LocationJSON{
		File:      displayPath(f, pathMode),
		StartByte: span.Start,
		EndByte:   span.End,
	}
	if includePositions {
		startPos, endPos := fs.Resolve(span)
		loc.StartLine = startPos.Line
		loc.StartCol = startPos.Col
		loc.EndLine = endPos.Line
		loc.EndCol = endPos.Col
	}
	return loc
}

// BuildDiagnosticsOutput assembles the JSON report without serializing it.
func BuildDiagnosticsOutput(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) DiagnosticsOutput {
	items := bag.Items()
	maxItems := len(items)
	if opts.Max > 0 && opts.Max < maxItems {
		maxItems = opts.Max
	}

	diagnostics := make([]DiagnosticJSON, 0, maxItems)
	for i := range maxItems {
		d := items[i]
		diagnostics = append(diagnostics, DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Stage:    d.Code.Stage(),
			Message:  d.Message,
			Line:     d.Line,
			Location: makeLocation(d.Primary, fs, opts.PathMode, opts.IncludePositions),
		})
	}

	return DiagnosticsOutput{
		Diagnostics: diagnostics,
		Count:       len(diagnostics),
	}
}

// JSON serializes the diagnostics report to w, indented.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	output := BuildDiagnosticsOutput(bag, fs, opts)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
