package lexer

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"lcc/internal/source"
)

// Cursor is a position inside a file. Off is the byte offset of the next
// unread character; Line and Col locate that character (1-based, Col in
// runes). All advancement goes through BumpRune or Eat so the counters
// stay exact.
type Cursor struct {
	File *source.File
	Off  uint32
	Line uint32
	Col  uint32

	limit uint32
}

// NewCursor creates a cursor at the start of the provided file.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{
		File:  f,
		Off:   0,
		Line:  1,
		Col:   1,
		limit: limit,
	}
}

// EOF reports whether the cursor is past the last byte.
func (c *Cursor) EOF() bool {
	return c.Off >= c.limit
}

// Peek reads the current byte, or 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// Peek2 reads the current and the following byte.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Off+1 >= c.limit {
		return 0, 0, false
	}
	return c.File.Content[c.Off], c.File.Content[c.Off+1], true
}

// PeekRune decodes the rune at the cursor without consuming it.
// size is 0 at EOF.
func (c *Cursor) PeekRune() (r rune, size int) {
	if c.EOF() {
		return utf8.RuneError, 0
	}
	b := c.File.Content[c.Off]
	if b < utf8.RuneSelf { // ASCII fast-path
		return rune(b), 1
	}
	return utf8.DecodeRune(c.File.Content[c.Off:])
}

// BumpRune consumes one rune and returns it, keeping Line and Col exact.
// A newline moves to the start of the next line; every other rune is one
// column wide.
func (c *Cursor) BumpRune() rune {
	r, sz := c.PeekRune()
	if sz == 0 {
		return utf8.RuneError
	}
	usz, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("rune size overflow: %w", err))
	}
	c.Off += usz
	if r == '\n' {
		c.Line++
		c.Col = 1
	} else {
		c.Col++
	}
	return r
}

// Eat consumes the next byte if it matches b. b must be ASCII; the column
// accounting assumes one rune per byte.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.File.Content[c.Off] == b {
		c.Off++
		if b == '\n' {
			c.Line++
			c.Col = 1
		} else {
			c.Col++
		}
		return true
	}
	return false
}

// Loc is the location of the next unread character.
func (c *Cursor) Loc() source.Location {
	return source.Location{Line: c.Line, Col: c.Col}
}

// Mark remembers a byte offset so the consumed text can be sliced later.
type Mark uint32

// Mark saves the current offset.
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// TextFrom returns the text consumed since the mark.
func (c *Cursor) TextFrom(m Mark) string {
	return string(c.File.Content[m:c.Off])
}
