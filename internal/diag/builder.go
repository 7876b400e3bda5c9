package diag

import "declet/internal/source"

// New constructs a diagnostic value.
func New(sev Severity, code Code, line uint32, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Line:     line,
		Primary:  primary,
	}
}

// NewError is a shortcut for SevError diagnostics.
func NewError(code Code, line uint32, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, line, primary, msg)
}
