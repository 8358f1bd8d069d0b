package token

import (
	"lcc/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Loc  source.Location
	Text string
}

// Lexeme returns the token's source spelling. String literals are
// re-quoted; the raw payload stays undecoded, so the result re-lexes
// to the same token.
func (t Token) Lexeme() string {
	switch t.Kind {
	case Ident, NumberLit:
		return t.Text
	case StringLit:
		return `"` + t.Text + `"`
	default:
		return fixedLexemes[t.Kind]
	}
}

// IsLiteral reports whether the token is a numeric or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NumberLit, StringLit:
		return true
	default:
		return false
	}
}

// IsPunct reports whether the token is structural punctuation.
func (t Token) IsPunct() bool {
	switch t.Kind {
	case Semicolon, Comma, LParen, RParen, LBracket, RBracket, LBrace, RBrace, Dot:
		return true
	default:
		return false
	}
}

// IsOperator reports whether the token is an operator.
func (t Token) IsOperator() bool {
	switch t.Kind {
	case Assign, EqEq, Gt, GtEq, Lt, LtEq, Minus, MinusAssign, Plus, PlusAssign,
		Star, StarAssign, Slash, SlashAssign, Bang, BangEq, Amp, AndAnd, Pipe, OrOr, Tilde:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwIf, KwElse, KwFor, KwFunction, KwVariable, KwContainer, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
