package token

import (
	"declet/internal/source"
)

// Token represents a single source token. Line is the 1-based line on which
// the token starts; for multi-line string literals this is the line of the
// opening quote.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
	Line uint32
}

// IsLiteral reports whether the token is a literal usable as an initializer.
func (t Token) IsLiteral() bool { return t.Kind.IsLiteral() }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
