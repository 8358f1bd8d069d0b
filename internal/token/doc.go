// Package token defines lexical token kinds for the lc language.
// Invariants:
//   - Token.Loc is the line/column of the lexeme's first character.
//   - Token.Text is set only for Ident, NumberLit, and StringLit; every
//     other kind has a fixed spelling.
//   - StringLit.Text is the raw payload between the quotes: escape
//     sequences are carried through undecoded.
//   - Comments (// ...) never appear in the token stream.
//   - Built-in type names (integer, string, boolean, character) are
//     identifiers. They are classified by the grammar, not the lexer.
package token
