package lexer

import (
	"fmt"

	"declet/internal/diag"
	"declet/internal/source"
	"declet/internal/token"
)

// Lexer scans one source file into tokens, reporting lexical diagnostics
// through Options.Reporter. It keeps scanning after an error so that all
// diagnostics for a file are collected in a single pass.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	line   uint32       // 1-based, advanced on every newline consumed
	look   *token.Token // 1-element lookahead buffer
}

// New creates a lexer over file.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		line:   1,
		look:   nil,
	}
}

// Next returns the next significant token. After EOF it always returns EOF.
// Erroneous input (unrecognized characters, malformed literals) produces a
// diagnostic and no token; scanning resumes at the next position.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	for {
		lx.skipTrivia()

		if lx.cursor.EOF() {
			return token.Token{
				Kind: token.EOF,
				Span: lx.emptySpan(),
				Text: "",
				Line: lx.line,
			}
		}

		ch := lx.cursor.Peek()

		if isIdentStartByte(ch) {
			return lx.scanIdentOrTypeName()
		}
		if ch >= utf8RuneSelf {
			if r, _ := lx.peekRune(); isIdentStartRune(r) {
				return lx.scanIdentOrTypeName()
			}
		}

		switch {
		case isDec(ch) || (ch == '-' && lx.isNumberAfterMinus()):
			if tok, ok := lx.scanNumber(); ok {
				return tok
			}

		case ch == '"':
			if tok, ok := lx.scanString(); ok {
				return tok
			}

		case ch == '\'':
			if tok, ok := lx.scanChar(); ok {
				return tok
			}

		case ch == '=' || ch == ',' || ch == ';':
			return lx.scanPunct()

		default:
			start := lx.cursor.Mark()
			r, _ := lx.peekRune()
			lx.bumpRune()
			lx.report(
				diag.LexUnrecognizedChar,
				lx.line,
				lx.cursor.SpanFrom(start),
				fmt.Sprintf("unrecognized character %q", r),
			)
		}
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Line returns the current 1-based line of the scanner.
func (lx *Lexer) Line() uint32 { return lx.line }

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
