package parser

import (
	"fmt"
	"strings"

	"lcc/internal/ast"
)

// comment := "//" { any character except newline }
// The newline itself stays unconsumed; the next rule's space skipping
// takes it.
func (p *Parser) comment() (*ast.Comment, *Error) {
	p.skipSpace()
	if !p.tag("//") {
		return nil, p.fail("comment", `expected "//"`)
	}
	start := p.off
	for !p.eof() && p.file.Content[p.off] != '\n' {
		p.off++
	}
	return &ast.Comment{Text: string(p.file.Content[start:p.off])}, nil
}

// stringLit := '"' { character | escape } '"'
// Unlike the token scanner, the grammar decodes escapes: \n \r \t \\ \/ \"
// become their characters, and a backslash before whitespace swallows the
// whole whitespace run (line continuation). The opening quote commits the
// rule, so a bad escape or a missing closing quote is fatal.
func (p *Parser) stringLit() (*ast.StringLit, *Error) {
	p.skipSpace()
	if !p.eat('"') {
		return nil, p.fail("string", `expected '"'`)
	}

	var sb strings.Builder
	for {
		if p.eof() {
			return nil, commit(p.fail("string", `expected closing '"'`))
		}
		r, sz := p.peekRune()
		switch r {
		case '"':
			p.advance(sz)
			return &ast.StringLit{Value: sb.String()}, nil
		case '\\':
			p.advance(sz)
			if err := p.stringEscape(&sb); err != nil {
				return nil, err
			}
		default:
			sb.WriteRune(r)
			p.advance(sz)
		}
	}
}

// stringEscape decodes the character after a backslash into sb.
func (p *Parser) stringEscape(sb *strings.Builder) *Error {
	if p.eof() {
		return commit(p.fail("string", "unterminated escape"))
	}
	r, sz := p.peekRune()
	switch r {
	case 'n':
		sb.WriteByte('\n')
	case 'r':
		sb.WriteByte('\r')
	case 't':
		sb.WriteByte('\t')
	case '\\', '/', '"':
		sb.WriteRune(r)
	case ' ', '\t', '\r', '\n':
		p.advance(sz)
		for !p.eof() && isSpaceByte(p.file.Content[p.off]) {
			p.off++
		}
		return nil
	default:
		return commit(p.fail("string", fmt.Sprintf("unknown escape '\\%c'", r)))
	}
	p.advance(sz)
	return nil
}
