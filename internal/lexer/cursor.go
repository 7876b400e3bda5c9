package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"declet/internal/source"
)

// Cursor is a byte position inside a file.
type Cursor struct {
	File *source.File
	Off  uint32
	// Limit is the exclusive upper bound for Off; defaults to len(File.Content).
	Limit uint32
}

// NewCursor creates a new cursor for the provided file.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{
		File:  f,
		Off:   0,
		Limit: limit,
	}
}

// EOF reports whether the cursor reached the end of the file.
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek reads the current byte, or 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// Peek2 reads the current and next byte; ok is false when fewer than two
// bytes remain.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Off+1 >= c.Limit {
		return 0, 0, false
	}
	return c.File.Content[c.Off], c.File.Content[c.Off+1], true
}

// Bump advances the cursor one byte and returns the byte read.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	return b
}

// Eat consumes the next byte if it matches b.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.File.Content[c.Off] == b {
		c.Off++
		return true
	}
	return false
}

// Mark is a saved cursor position, used to build the Span of a scanned
// fragment.
type Mark uint32

// Mark saves the current cursor position.
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom builds the span of the fragment scanned since the mark.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{
		File:  c.File.ID,
		Start: uint32(m),
		End:   c.Off,
	}
}

// Reset moves the cursor back to the mark.
func (c *Cursor) Reset(m Mark) {
	c.Off = uint32(m)
}
