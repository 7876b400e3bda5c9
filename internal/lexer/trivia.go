package lexer

// skipTrivia consumes whitespace and comments before the next significant
// token. Line comments (//) run to end of line; block comments (/* */) may
// span lines. The line counter advances on every newline consumed, including
// inside comments. An unterminated block comment is consumed to EOF without
// a diagnostic.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()

		switch {
		case b == '\n':
			lx.line++
			lx.cursor.Bump()

		case b == ' ' || b == '\t' || b == '\r':
			lx.cursor.Bump()

		case b == '/':
			if !lx.skipComment() {
				return
			}

		default:
			return
		}
	}
}

// skipComment consumes a // or /* comment; it reports false when the '/'
// does not start a comment (the cursor is left untouched).
func (lx *Lexer) skipComment() bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != '/' {
		return false
	}
	switch b1 {
	case '/':
		lx.cursor.Bump()
		lx.cursor.Bump()
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		return true

	case '*':
		lx.cursor.Bump()
		lx.cursor.Bump()
		for !lx.cursor.EOF() {
			if c0, c1, ok := lx.cursor.Peek2(); ok && c0 == '*' && c1 == '/' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				return true
			}
			if lx.cursor.Peek() == '\n' {
				lx.line++
			}
			lx.cursor.Bump()
		}
		return true

	default:
		return false
	}
}
