package lexer

import "lcc/internal/token"

// scanNumber consumes a maximal ASCII digit run. Numbers are unsigned
// decimal integers; there is no sign, no fraction, and no exponent.
func (lx *Lexer) scanNumber() token.Token {
	loc := lx.cursor.Loc()
	start := lx.cursor.Mark()

	for isDecByte(lx.cursor.Peek()) {
		lx.cursor.BumpRune()
	}

	return token.Token{Kind: token.NumberLit, Loc: loc, Text: lx.cursor.TextFrom(start)}
}
