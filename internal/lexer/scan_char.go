package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"declet/internal/diag"
	"declet/internal/token"
)

// validCharEscapes is the closed set of characters allowed after '\' in a
// char literal.
var validCharEscapes = map[byte]struct{}{
	'b': {}, 't': {}, 'n': {}, 'f': {}, 'r': {}, '\'': {}, '"': {}, '\\': {},
}

// scanChar scans a single-quoted char literal. Valid content is exactly one
// character, or a two-character backslash escape from the fixed escape set.
// A raw newline inside the literal is its own diagnostic; the literal is
// then also unterminated. Token.Text is the content between the quotes.
func (lx *Lexer) scanChar() (token.Token, bool) {
	start := lx.cursor.Mark()
	startLine := lx.line
	lx.cursor.Bump() // opening '\''

	var sb strings.Builder
	closed := false

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()

		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			sb.WriteByte('\\')
			sb.WriteByte(lx.cursor.Bump())
			continue
		}
		if b == '\'' {
			lx.cursor.Bump()
			closed = true
			break
		}
		if b == '\n' {
			lx.report(diag.LexNewlineInChar, startLine, lx.cursor.SpanFrom(start),
				"newline inside char literal")
			lx.line++
			lx.cursor.Bump()
			break
		}
		sb.WriteByte(lx.cursor.Bump())
	}

	sp := lx.cursor.SpanFrom(start)
	if !closed {
		lx.report(diag.LexUnterminatedChar, startLine, sp, "unterminated char literal")
		return token.Token{}, false
	}

	content := sb.String()
	if utf8.RuneCountInString(content) == 1 && content[0] != '\\' {
		return token.Token{Kind: token.CharLit, Span: sp, Text: content, Line: startLine}, true
	}
	if len(content) == 2 && content[0] == '\\' {
		if _, ok := validCharEscapes[content[1]]; ok {
			return token.Token{Kind: token.CharLit, Span: sp, Text: content, Line: startLine}, true
		}
	}

	lx.report(diag.LexInvalidChar, startLine, sp,
		fmt.Sprintf("invalid char literal: '%s'", content))
	return token.Token{}, false
}
