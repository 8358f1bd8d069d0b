package parser

import "lcc/internal/ast"

// variableDecl := "variable"? type identifier
// The optional keyword is a committed prefix like the others; without it
// the rule backtracks freely. Commitment ends when the rule succeeds.
func (p *Parser) variableDecl() (*ast.VariableDecl, *Error) {
	p.skipSpace()
	start := p.off
	committed := p.tag("variable")
	ctx := func(err *Error) *Error {
		err = wrap(err, "variable_decl", p.locAt(start))
		if committed {
			err = commit(err)
		}
		return err
	}

	typ, err := p.typeName()
	if err != nil {
		return nil, ctx(err)
	}
	name, err := p.identifier()
	if err != nil {
		return nil, ctx(err)
	}
	return &ast.VariableDecl{Type: typ, Name: name}, nil
}

// variableDef := variableDecl [ assignment ] ";"
// The statement node is always a VariableAssign; without an initializer
// Init stays nil.
func (p *Parser) variableDef() (ast.Expr, *Error) {
	p.skipSpace()
	start := p.off

	decl, err := p.variableDecl()
	if err != nil {
		return nil, wrap(err, "variable_def", p.locAt(start))
	}

	var init []ast.Expr
	save := p.off
	vals, aerr := p.assignment()
	switch {
	case aerr == nil:
		init = vals
	case aerr.fatal:
		return nil, wrap(aerr, "variable_def", p.locAt(start))
	default:
		p.off = save
	}

	p.skipSpace()
	if !p.eat(';') {
		return nil, p.fail("variable_def", "expected ';'")
	}
	return ast.AssignFromDecl(decl, init), nil
}

// assignment := "=" ( integer | string | identifier )
// Alternatives are tried in that order. The value comes back as a
// single-element slice ready for AssignFromDecl.
func (p *Parser) assignment() ([]ast.Expr, *Error) {
	p.skipSpace()
	start := p.off
	if !p.eat('=') {
		return nil, p.fail("assignment", "expected '='")
	}

	save := p.off
	if digits, err := p.digits(); err == nil {
		return []ast.Expr{&ast.IntegerLit{Value: digits}}, nil
	}
	p.off = save

	lit, serr := p.stringLit()
	if serr == nil {
		return []ast.Expr{lit}, nil
	}
	if serr.fatal {
		return nil, wrap(serr, "assignment", p.locAt(start))
	}
	p.off = save

	if name, err := p.identifier(); err == nil {
		return []ast.Expr{&ast.Ident{Name: name}}, nil
	}
	p.off = save

	return nil, p.fail("assignment", "expected integer, string, or identifier after '='")
}
