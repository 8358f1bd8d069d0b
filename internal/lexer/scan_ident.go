package lexer

import "lcc/internal/token"

// scanIdentOrKeyword consumes a maximal letter/digit/underscore run and
// classifies it against the keyword table. Keywords are case sensitive:
// "If" is an Ident.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	loc := lx.cursor.Loc()
	start := lx.cursor.Mark()

	lx.cursor.BumpRune()
	for !lx.cursor.EOF() {
		r, _ := lx.cursor.PeekRune()
		if !isIdentContinueRune(r) {
			break
		}
		lx.cursor.BumpRune()
	}

	text := lx.cursor.TextFrom(start)
	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Loc: loc}
	}
	return token.Token{Kind: token.Ident, Loc: loc, Text: text}
}
