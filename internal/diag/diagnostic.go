package diag

import (
	"declet/internal/source"
)

// Diagnostic describes one detected problem. Line is the 1-based source
// line the problem is attributed to; Primary is the byte span used for
// rendering context, and may be empty for diagnostics that were produced
// from positions that no longer map to a span (e.g. semantic checks).
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Line     uint32
	Primary  source.Span
}
