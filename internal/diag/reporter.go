package diag

import "declet/internal/source"

// Reporter is the minimal contract for receiving diagnostics from phases.
// Implementations: BagReporter (stores into a Bag), nil (discard).
type Reporter interface {
	Report(code Code, sev Severity, line uint32, primary source.Span, msg string)
}

// BagReporter is an adapter that writes into a *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, line uint32, primary source.Span, msg string) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(New(sev, code, line, primary, msg))
}
