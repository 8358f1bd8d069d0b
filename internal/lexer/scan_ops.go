package lexer

import "lcc/internal/token"

// scanOperatorOrPunct matches operators and punctuation, longest first:
// every two-character operator shares its first byte with a one-character
// form and wins over it. A character no case accepts ends the token
// sequence for good; it stays unconsumed so Offset points at it.
func (lx *Lexer) scanOperatorOrPunct() (token.Token, bool) {
	loc := lx.cursor.Loc()
	emit := func(k token.Kind) (token.Token, bool) {
		return token.Token{Kind: k, Loc: loc}, true
	}

	switch {
	case lx.try2('=', '='):
		return emit(token.EqEq)
	case lx.try2('!', '='):
		return emit(token.BangEq)
	case lx.try2('>', '='):
		return emit(token.GtEq)
	case lx.try2('<', '='):
		return emit(token.LtEq)
	case lx.try2('+', '='):
		return emit(token.PlusAssign)
	case lx.try2('-', '='):
		return emit(token.MinusAssign)
	case lx.try2('*', '='):
		return emit(token.StarAssign)
	case lx.try2('/', '='):
		return emit(token.SlashAssign)
	case lx.try2('&', '&'):
		return emit(token.AndAnd)
	case lx.try2('|', '|'):
		return emit(token.OrOr)
	}

	single := func(k token.Kind) (token.Token, bool) {
		lx.cursor.BumpRune()
		return emit(k)
	}
	switch lx.cursor.Peek() {
	case '=':
		return single(token.Assign)
	case '!':
		return single(token.Bang)
	case '>':
		return single(token.Gt)
	case '<':
		return single(token.Lt)
	case '+':
		return single(token.Plus)
	case '-':
		return single(token.Minus)
	case '*':
		return single(token.Star)
	case '/':
		return single(token.Slash)
	case '&':
		return single(token.Amp)
	case '|':
		return single(token.Pipe)
	case '~':
		return single(token.Tilde)
	case ';':
		return single(token.Semicolon)
	case ',':
		return single(token.Comma)
	case '.':
		return single(token.Dot)
	case '(':
		return single(token.LParen)
	case ')':
		return single(token.RParen)
	case '[':
		return single(token.LBracket)
	case ']':
		return single(token.RBracket)
	case '{':
		return single(token.LBrace)
	case '}':
		return single(token.RBrace)
	default:
		lx.done = true
		return token.Token{}, false
	}
}
