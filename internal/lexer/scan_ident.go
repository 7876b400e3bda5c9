package lexer

import (
	"declet/internal/token"
)

// scanIdentOrTypeName scans a maximal identifier run and classifies it:
// a member of the type-name set becomes TypeName, 'true'/'false' become
// BoolLit, everything else is Ident. Token.Text is exactly the source slice.
func (lx *Lexer) scanIdentOrTypeName() token.Token {
	start := lx.cursor.Mark()
	line := lx.line

	r, sz := lx.peekRune()
	if sz == 0 {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Invalid, Span: sp, Text: "", Line: line}
	}
	if r < utf8RuneSelf {
		lx.cursor.Bump()
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		// a Unicode continuation after an ASCII run
		if r2, sz2 := lx.peekRune(); sz2 > 1 && isIdentContinueRune(r2) {
			lx.scanIdentTail()
		}
	} else {
		lx.bumpRune()
		lx.scanIdentTail()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	switch {
	case lx.isTypeName(text):
		return token.Token{Kind: token.TypeName, Span: sp, Text: text, Line: line}
	case text == "true" || text == "false":
		return token.Token{Kind: token.BoolLit, Span: sp, Text: text, Line: line}
	default:
		return token.Token{Kind: token.Ident, Span: sp, Text: text, Line: line}
	}
}

// scanIdentTail consumes identifier continuation runes, ASCII or Unicode.
func (lx *Lexer) scanIdentTail() {
	for {
		r, sz := lx.peekRune()
		if sz == 0 || !isIdentContinueRune(r) {
			return
		}
		lx.bumpRune()
	}
}

func (lx *Lexer) isTypeName(text string) bool {
	if lx.opts.TypeNames != nil {
		_, ok := lx.opts.TypeNames[text]
		return ok
	}
	return token.LookupTypeName(text)
}
