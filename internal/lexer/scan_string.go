package lexer

import "lcc/internal/token"

// scanString consumes a string literal. The payload is everything between
// the quotes, kept verbatim: a backslash shields the quote that follows it
// but is itself retained, and no escape decoding happens at this stage.
// The literal ends at the first quote not immediately preceded by a
// backslash; newlines are ordinary payload. At end of input the partial
// payload becomes the token.
func (lx *Lexer) scanString() token.Token {
	loc := lx.cursor.Loc()
	lx.cursor.BumpRune() // opening '"'
	start := lx.cursor.Mark()

	var prev rune
	for !lx.cursor.EOF() {
		r, _ := lx.cursor.PeekRune()
		if r == '"' && prev != '\\' {
			text := lx.cursor.TextFrom(start)
			lx.cursor.BumpRune() // closing '"'
			return token.Token{Kind: token.StringLit, Loc: loc, Text: text}
		}
		prev = lx.cursor.BumpRune()
	}

	return token.Token{Kind: token.StringLit, Loc: loc, Text: lx.cursor.TextFrom(start)}
}
