package lexer

import (
	"declet/internal/token"
)

// scanPunct scans the single-character tokens '=', ',' and ';'.
func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()
	line := lx.line
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{
			Kind: k,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
			Line: line,
		}
	}

	switch lx.cursor.Bump() {
	case '=':
		return emit(token.Assign)
	case ',':
		return emit(token.Comma)
	default:
		return emit(token.Semicolon)
	}
}
