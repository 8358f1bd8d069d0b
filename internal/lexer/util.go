package lexer

import "unicode"

func isSpaceRune(r rune) bool { return unicode.IsSpace(r) }

func isDecByte(b byte) bool { return b >= '0' && b <= '9' }
func isDecRune(r rune) bool { return r >= '0' && r <= '9' }

// Identifier rules here are wider than the grammar engine's: underscores
// are legal anywhere and any Unicode letter may start a name.
func isIdentStartRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinueRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// try2 consumes the two-byte sequence a b when it is next. Both bytes must
// be ASCII.
func (lx *Lexer) try2(a, b byte) bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	lx.cursor.Eat(a)
	lx.cursor.Eat(b)
	return true
}
