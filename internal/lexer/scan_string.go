package lexer

import (
	"strings"

	"declet/internal/diag"
	"declet/internal/token"
)

// scanString scans a double-quoted string literal. Characters are copied
// verbatim; '\' plus the next character is consumed atomically as a
// two-character escape. The literal may span lines. Token.Text is the
// content between the quotes. A missing closing quote before EOF reports
// an unterminated-string diagnostic attributed to the opening line.
func (lx *Lexer) scanString() (token.Token, bool) {
	start := lx.cursor.Mark()
	startLine := lx.line
	lx.cursor.Bump() // opening '"'

	var sb strings.Builder
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()

		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				sp := lx.cursor.SpanFrom(start)
				lx.report(diag.LexUnterminatedString, startLine, sp, "unterminated string literal")
				return token.Token{}, false
			}
			sb.WriteByte('\\')
			if lx.cursor.Peek() == '\n' {
				lx.line++
			}
			sb.WriteByte(lx.cursor.Bump())
			continue
		}
		if b == '"' {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Text: sb.String(), Line: startLine}, true
		}
		if b == '\n' {
			lx.line++
		}
		sb.WriteByte(lx.cursor.Bump())
	}

	sp := lx.cursor.SpanFrom(start)
	lx.report(diag.LexUnterminatedString, startLine, sp, "unterminated string literal")
	return token.Token{}, false
}
