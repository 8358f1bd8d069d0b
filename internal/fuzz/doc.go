// Package fuzztests houses Go fuzz harnesses for the lc front end. The
// lexer harness checks that arbitrary bytes never panic the scanner and
// never push it past the input; the grammar harness checks that every
// accepted parse satisfies the tree invariants and every rejected one
// reports a structured failure.
//
// It does not generate corpora, write files, or run the CLI.
package fuzztests
