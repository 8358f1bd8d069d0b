package parser

import (
	"bytes"
	"fmt"
	"unicode"
	"unicode/utf8"

	"fortio.org/safecast"

	"lcc/internal/source"
)

func (p *Parser) eof() bool {
	return p.off >= p.limit
}

func (p *Parser) rest() []byte {
	return p.file.Content[p.off:]
}

func (p *Parser) peekRune() (r rune, size int) {
	if p.eof() {
		return utf8.RuneError, 0
	}
	b := p.file.Content[p.off]
	if b < utf8.RuneSelf {
		return rune(b), 1
	}
	return utf8.DecodeRune(p.rest())
}

func (p *Parser) advance(size int) {
	usz, err := safecast.Conv[uint32](size)
	if err != nil {
		panic(fmt.Errorf("rune size overflow: %w", err))
	}
	p.off += usz
}

func (p *Parser) loc() source.Location {
	return p.locAt(p.off)
}

func (p *Parser) locAt(off uint32) source.Location {
	return p.file.LocationAt(off)
}

// isSpaceByte is the grammar's whitespace set. Narrower than the token
// scanner's Unicode rule; the asymmetry is part of the language.
func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}

// skipSpace advances past spaces, tabs, and newlines. Every production
// calls it before matching, so rules never see leading whitespace.
func (p *Parser) skipSpace() {
	for !p.eof() && isSpaceByte(p.file.Content[p.off]) {
		p.off++
	}
}

// tag consumes the literal s when the input starts with it. There is no
// word-boundary check: a keyword tag also matches as a prefix of a longer
// word.
func (p *Parser) tag(s string) bool {
	if !bytes.HasPrefix(p.rest(), []byte(s)) {
		return false
	}
	n, err := safecast.Conv[uint32](len(s))
	if err != nil {
		panic(fmt.Errorf("tag length overflow: %w", err))
	}
	p.off += n
	return true
}

// eat consumes the byte b when it is next.
func (p *Parser) eat(b byte) bool {
	if !p.eof() && p.file.Content[p.off] == b {
		p.off++
		return true
	}
	return false
}

// identifier := letter { letter | digit }
// Stricter than the token scanner's rule: no underscores, and the first
// character must be a letter.
func (p *Parser) identifier() (string, *Error) {
	p.skipSpace()
	r, sz := p.peekRune()
	if sz == 0 || !unicode.IsLetter(r) {
		return "", p.fail("identifier", "expected identifier")
	}
	start := p.off
	p.advance(sz)
	for {
		r, sz = p.peekRune()
		if sz == 0 || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			break
		}
		p.advance(sz)
	}
	return string(p.file.Content[start:p.off]), nil
}

// digits := digit { digit }
func (p *Parser) digits() (string, *Error) {
	p.skipSpace()
	start := p.off
	for !p.eof() && isDigitByte(p.file.Content[p.off]) {
		p.off++
	}
	if p.off == start {
		return "", p.fail("integer", "expected digits")
	}
	return string(p.file.Content[start:p.off]), nil
}

// typeName matches the type position of a declaration. Builtin names and
// user container names are the same identifier shape; telling them apart
// is not the grammar's concern.
func (p *Parser) typeName() (string, *Error) {
	p.skipSpace()
	start := p.off
	name, err := p.identifier()
	if err != nil {
		return "", p.failAt(start, "type", "expected type name")
	}
	return name, nil
}
