package lexer

import (
	"lcc/internal/source"
	"lcc/internal/token"
)

// Lexer turns a source file into an ordered sequence of tokens. It is a
// lazy, forward-only reader: once the sequence ends it stays ended, and
// the only way to start over is a new Lexer.
//
// The sequence ends at end of input or at the first character no rule
// accepts. The two are indistinguishable from the token stream alone;
// Offset reports how many bytes were consumed for callers that care.
type Lexer struct {
	file   *source.File
	cursor Cursor
	done   bool
}

// New creates a lexer over file.
func New(file *source.File) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
	}
}

// Next returns the next token. ok is false once the sequence has ended.
func (lx *Lexer) Next() (tok token.Token, ok bool) {
	if lx.done {
		return token.Token{}, false
	}

	lx.skipWhitespace()
	for lx.atLineComment() {
		lx.skipLineComment()
		lx.skipWhitespace()
	}
	if lx.cursor.EOF() {
		lx.done = true
		return token.Token{}, false
	}

	r, _ := lx.cursor.PeekRune()
	switch {
	case r == '"':
		return lx.scanString(), true
	case isDecRune(r):
		return lx.scanNumber(), true
	case isIdentStartRune(r):
		return lx.scanIdentOrKeyword(), true
	default:
		return lx.scanOperatorOrPunct()
	}
}

// Lex drains the token sequence.
func (lx *Lexer) Lex() []token.Token {
	var toks []token.Token
	for {
		tok, ok := lx.Next()
		if !ok {
			return toks
		}
		toks = append(toks, tok)
	}
}

// Offset is the number of bytes consumed so far. After the sequence ends,
// an Offset short of the file length means lexing stopped at a character
// no rule accepts rather than at end of input.
func (lx *Lexer) Offset() uint32 {
	return lx.cursor.Off
}

func (lx *Lexer) skipWhitespace() {
	for !lx.cursor.EOF() {
		r, _ := lx.cursor.PeekRune()
		if !isSpaceRune(r) {
			return
		}
		lx.cursor.BumpRune()
	}
}

// atLineComment reports whether the cursor sits on "//". "/=" and a lone
// "/" stay with the operator scanner.
func (lx *Lexer) atLineComment() bool {
	b0, b1, ok := lx.cursor.Peek2()
	return ok && b0 == '/' && b1 == '/'
}

// skipLineComment discards everything up to and including the newline.
// Comments never appear in the token stream.
func (lx *Lexer) skipLineComment() {
	for !lx.cursor.EOF() {
		if lx.cursor.BumpRune() == '\n' {
			return
		}
	}
}
