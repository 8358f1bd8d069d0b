package token

import "fmt"

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid is the zero value guard. The lexer never produces it: input
	// it cannot classify terminates the token stream instead.
	Invalid Kind = iota

	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwFunction represents the 'function' keyword.
	KwFunction // function
	// KwVariable represents the 'variable' keyword.
	KwVariable // variable
	// KwContainer represents the 'container' keyword.
	KwContainer // container
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false

	// Ident represents an identifier token; Text holds the name.
	Ident
	// NumberLit represents a numeric literal token; Text holds the digit run.
	NumberLit
	// StringLit represents a string literal token; Text holds the raw
	// contents between the quotes, escapes undecoded.
	StringLit

	// Semicolon represents the semicolon punctuation token.
	Semicolon // ;
	// Comma represents the comma punctuation token.
	Comma // ,
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// Dot represents the dot punctuation token.
	Dot // .

	// Assign represents the assign operator token.
	Assign // =
	// EqEq represents the equality operator token.
	EqEq // ==
	// Gt represents the greater-than operator token.
	Gt // >
	// GtEq represents the greater-or-equal operator token.
	GtEq // >=
	// Lt represents the less-than operator token.
	Lt // <
	// LtEq represents the less-or-equal operator token.
	LtEq // <=
	// Minus represents the minus operator token.
	Minus // -
	// MinusAssign represents the minus assign operator token.
	MinusAssign // -=
	// Plus represents the plus operator token.
	Plus // +
	// PlusAssign represents the plus assign operator token.
	PlusAssign // +=
	// Star represents the star operator token.
	Star // *
	// StarAssign represents the star assign operator token.
	StarAssign // *=
	// Slash represents the slash operator token.
	Slash // /
	// SlashAssign represents the slash assign operator token.
	SlashAssign // /=
	// Bang represents the bang operator token.
	Bang // !
	// BangEq represents the bang eq operator token.
	BangEq // !=
	// Amp represents the amp operator token.
	Amp // &
	// AndAnd represents the logical and operator token.
	AndAnd // &&
	// Pipe represents the pipe operator token.
	Pipe // |
	// OrOr represents the logical or operator token.
	OrOr // ||
	// Tilde represents the tilde operator token.
	Tilde // ~

	kindCount
)

var kindNames = [kindCount]string{
	Invalid:     "Invalid",
	KwIf:        "KwIf",
	KwElse:      "KwElse",
	KwFor:       "KwFor",
	KwFunction:  "KwFunction",
	KwVariable:  "KwVariable",
	KwContainer: "KwContainer",
	KwTrue:      "KwTrue",
	KwFalse:     "KwFalse",
	Ident:       "Ident",
	NumberLit:   "NumberLit",
	StringLit:   "StringLit",
	Semicolon:   "Semicolon",
	Comma:       "Comma",
	LParen:      "LParen",
	RParen:      "RParen",
	LBracket:    "LBracket",
	RBracket:    "RBracket",
	LBrace:      "LBrace",
	RBrace:      "RBrace",
	Dot:         "Dot",
	Assign:      "Assign",
	EqEq:        "EqEq",
	Gt:          "Gt",
	GtEq:        "GtEq",
	Lt:          "Lt",
	LtEq:        "LtEq",
	Minus:       "Minus",
	MinusAssign: "MinusAssign",
	Plus:        "Plus",
	PlusAssign:  "PlusAssign",
	Star:        "Star",
	StarAssign:  "StarAssign",
	Slash:       "Slash",
	SlashAssign: "SlashAssign",
	Bang:        "Bang",
	BangEq:      "BangEq",
	Amp:         "Amp",
	AndAnd:      "AndAnd",
	Pipe:        "Pipe",
	OrOr:        "OrOr",
	Tilde:       "Tilde",
}

// fixedLexemes holds the source form of every kind whose spelling is fixed.
// Ident, NumberLit, and StringLit carry their spelling in Token.Text.
var fixedLexemes = [kindCount]string{
	KwIf:        "if",
	KwElse:      "else",
	KwFor:       "for",
	KwFunction:  "function",
	KwVariable:  "variable",
	KwContainer: "container",
	KwTrue:      "true",
	KwFalse:     "false",
	Semicolon:   ";",
	Comma:       ",",
	LParen:      "(",
	RParen:      ")",
	LBracket:    "[",
	RBracket:    "]",
	LBrace:      "{",
	RBrace:      "}",
	Dot:         ".",
	Assign:      "=",
	EqEq:        "==",
	Gt:          ">",
	GtEq:        ">=",
	Lt:          "<",
	LtEq:        "<=",
	Minus:       "-",
	MinusAssign: "-=",
	Plus:        "+",
	PlusAssign:  "+=",
	Star:        "*",
	StarAssign:  "*=",
	Slash:       "/",
	SlashAssign: "/=",
	Bang:        "!",
	BangEq:      "!=",
	Amp:         "&",
	AndAnd:      "&&",
	Pipe:        "|",
	OrOr:        "||",
	Tilde:       "~",
}

func (k Kind) String() string {
	if k < kindCount && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}
