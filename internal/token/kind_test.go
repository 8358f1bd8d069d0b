package token_test

import (
	"testing"

	"lcc/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k}
}

func TestIsLiteral(t *testing.T) {
	lits := []token.Kind{token.NumberLit, token.StringLit}
	for _, k := range lits {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	non := []token.Kind{token.Ident, token.KwVariable, token.Plus, token.LParen, token.KwTrue}
	for _, k := range non {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestIsPunct(t *testing.T) {
	puncts := []token.Kind{
		token.Semicolon, token.Comma, token.LParen, token.RParen,
		token.LBracket, token.RBracket, token.LBrace, token.RBrace, token.Dot,
	}
	for _, k := range puncts {
		if !tok(k).IsPunct() {
			t.Fatalf("%v should be punct", k)
		}
	}
	if tok(token.Assign).IsPunct() {
		t.Fatal("Assign must NOT be punct")
	}
}

func TestIsOperator(t *testing.T) {
	ops := []token.Kind{
		token.Assign, token.EqEq, token.Gt, token.GtEq, token.Lt, token.LtEq,
		token.Minus, token.MinusAssign, token.Plus, token.PlusAssign,
		token.Star, token.StarAssign, token.Slash, token.SlashAssign,
		token.Bang, token.BangEq, token.Amp, token.AndAnd,
		token.Pipe, token.OrOr, token.Tilde,
	}
	for _, k := range ops {
		if !tok(k).IsOperator() {
			t.Fatalf("%v should be operator", k)
		}
	}
	non := []token.Kind{token.Ident, token.KwIf, token.NumberLit, token.Semicolon}
	for _, k := range non {
		if tok(k).IsOperator() {
			t.Fatalf("%v must NOT be operator", k)
		}
	}
}

func TestIsKeyword(t *testing.T) {
	keywords := []token.Kind{
		token.KwIf, token.KwElse, token.KwFor, token.KwFunction,
		token.KwVariable, token.KwContainer, token.KwTrue, token.KwFalse,
	}
	for _, k := range keywords {
		if !tok(k).IsKeyword() {
			t.Fatalf("%v should be keyword", k)
		}
	}
	if tok(token.Ident).IsKeyword() {
		t.Fatal("Ident must NOT be keyword")
	}
}

func TestIsIdent(t *testing.T) {
	if !tok(token.Ident).IsIdent() {
		t.Fatal("Ident should be ident")
	}
	if tok(token.KwFunction).IsIdent() {
		t.Fatal("KwFunction must not be ident")
	}
}

func TestKindString(t *testing.T) {
	cases := map[token.Kind]string{
		token.Invalid:     "Invalid",
		token.KwContainer: "KwContainer",
		token.Ident:       "Ident",
		token.StringLit:   "StringLit",
		token.SlashAssign: "SlashAssign",
		token.Tilde:       "Tilde",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", uint8(k), got, want)
		}
	}
	if got := token.Kind(200).String(); got != "Kind(200)" {
		t.Errorf("out-of-range String() = %q", got)
	}
}

func TestLexeme(t *testing.T) {
	cases := []struct {
		tok  token.Token
		want string
	}{
		{token.Token{Kind: token.KwContainer}, "container"},
		{token.Token{Kind: token.GtEq}, ">="},
		{token.Token{Kind: token.Ident, Text: "count"}, "count"},
		{token.Token{Kind: token.NumberLit, Text: "42"}, "42"},
		{token.Token{Kind: token.StringLit, Text: `a\"b`}, `"a\"b"`},
	}
	for _, tt := range cases {
		if got := tt.tok.Lexeme(); got != tt.want {
			t.Errorf("Lexeme(%v) = %q, want %q", tt.tok.Kind, got, tt.want)
		}
	}
}
