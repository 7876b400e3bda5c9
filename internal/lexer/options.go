package lexer

import (
	"declet/internal/diag"
	"declet/internal/source"
)

// Options configures a Lexer.
type Options struct {
	// Reporter receives lexical diagnostics. May be nil; scanning always
	// continues past errors either way, collecting everything in one pass.
	Reporter diag.Reporter
	// TypeNames is the closed set of declaration type names. Nil means
	// the built-in set from the token package. The lexer never mutates it.
	TypeNames map[string]struct{}
}

func (lx *Lexer) report(code diag.Code, line uint32, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, line, sp, msg)
	}
}
