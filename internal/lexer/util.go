package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"fortio.org/safecast"
)

const utf8RuneSelf = 0x80

// ===== Rune access on top of Cursor =====

// peekRune decodes the rune at the cursor; size 0 means EOF.
func (lx *Lexer) peekRune() (r rune, size int) {
	if lx.cursor.EOF() {
		return utf8.RuneError, 0
	}
	b := lx.cursor.Peek()
	if b < utf8.RuneSelf { // fast-path ASCII
		return rune(b), 1
	}
	r, sz := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
	return r, sz
}

// bumpRune advances the cursor past the current rune.
func (lx *Lexer) bumpRune() {
	_, sz := lx.peekRune()
	if sz == 0 {
		return
	}
	usz, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("bumpRune overflow: %w", err))
	}
	lx.cursor.Off += usz
}

// ===== Classifiers =====

// ASCII fast-paths; Unicode goes through the rune variants.
func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || (b >= '0' && b <= '9')
}
func isIdentStartRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}
func isIdentContinueRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

// isNumberAfterMinus checks the "-5" case: current byte is '-', next is a digit.
func (lx *Lexer) isNumberAfterMinus() bool {
	b0, b1, ok := lx.cursor.Peek2()
	return ok && b0 == '-' && isDec(b1)
}
