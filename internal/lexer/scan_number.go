package lexer

import (
	"fmt"

	"declet/internal/diag"
	"declet/internal/token"
)

// scanNumber scans a numeric literal: optional leading '-', maximal digit
// run with at most one '.', then an optional one-letter suffix.
//
//	f/F -> FloatLit
//	d/D -> DoubleLit
//	l/L -> LongLit, but only without a decimal point
//	none -> IntLit without a dot, DoubleLit with one
//
// Any other letter (or '_') glued to the digit run makes the whole
// alphanumeric run an invalid token; ok is false and a diagnostic is
// reported.
func (lx *Lexer) scanNumber() (token.Token, bool) {
	start := lx.cursor.Mark()
	line := lx.line
	hasDot := false

	if lx.cursor.Peek() == '-' {
		lx.cursor.Bump()
	}

	for {
		b := lx.cursor.Peek()
		if isDec(b) {
			lx.cursor.Bump()
		} else if b == '.' && !hasDot {
			hasDot = true
			lx.cursor.Bump()
		} else {
			break
		}
	}

	switch b := lx.cursor.Peek(); {
	case b == 'f' || b == 'F':
		lx.cursor.Bump()
		return lx.emitNumber(start, token.FloatLit, line), true

	case b == 'd' || b == 'D':
		lx.cursor.Bump()
		return lx.emitNumber(start, token.DoubleLit, line), true

	case b == 'l' || b == 'L':
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		if hasDot {
			lex := string(lx.file.Content[sp.Start:sp.End])
			lx.report(diag.LexBadLongLiteral, line, sp,
				fmt.Sprintf("invalid long literal with decimal point: %s", lex))
			return token.Token{}, false
		}
		return token.Token{Kind: token.LongLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End]), Line: line}, true

	case isIdentStartByte(b):
		// e.g. 7a: an identifier may not start with a digit; consume the
		// whole alphanumeric run so scanning resumes past it
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		bad := string(lx.file.Content[sp.Start:sp.End])
		lx.report(diag.LexInvalidToken, line, sp,
			fmt.Sprintf("invalid token (identifier starting with digit): %s", bad))
		return token.Token{}, false
	}

	if hasDot {
		return lx.emitNumber(start, token.DoubleLit, line), true
	}
	return lx.emitNumber(start, token.IntLit, line), true
}

func (lx *Lexer) emitNumber(start Mark, kind token.Kind, line uint32) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
		Line: line,
	}
}
