package parser

import "lcc/internal/ast"

// functionDecl := "function"? identifier "(" [ variableDecl { "," variableDecl } ] ")" scope
// With the keyword present the rule commits like container does. The bare
// keyword-less form backtracks freely, so a fatal failure inside it can
// only come from a committed sub-rule.
func (p *Parser) functionDecl() (ast.Expr, *Error) {
	p.skipSpace()
	start := p.off
	committed := p.tag("function")
	ctx := func(err *Error) *Error {
		err = wrap(err, "function_decl", p.locAt(start))
		if committed {
			err = commit(err)
		}
		return err
	}

	name, err := p.identifier()
	if err != nil {
		return nil, ctx(err)
	}

	p.skipSpace()
	if !p.eat('(') {
		return nil, ctx(p.fail("function_decl", "expected '('"))
	}
	var args []*ast.VariableDecl
	save := p.off
	first, ferr := p.variableDecl()
	if ferr != nil {
		if ferr.fatal {
			return nil, ctx(ferr)
		}
		p.off = save
	} else {
		args = append(args, first)
		for {
			save = p.off
			p.skipSpace()
			if !p.eat(',') {
				p.off = save
				break
			}
			next, nerr := p.variableDecl()
			if nerr != nil {
				if nerr.fatal {
					return nil, ctx(nerr)
				}
				// Dangling comma: leave it for the ')' check.
				p.off = save
				break
			}
			args = append(args, next)
		}
	}
	p.skipSpace()
	if !p.eat(')') {
		return nil, ctx(p.fail("function_decl", "expected ')'"))
	}

	body, berr := p.scope()
	if berr != nil {
		return nil, ctx(berr)
	}

	return &ast.FunctionDecl{Function: &ast.Function{
		Name:      name,
		Arguments: args,
		Body:      body,
	}}, nil
}

// scope := "{" { comment | variableDef | string } "}"
// Statements keep their source order, comments included.
func (p *Parser) scope() ([]ast.Expr, *Error) {
	p.skipSpace()
	start := p.off
	if !p.eat('{') {
		return nil, p.fail("scope", "expected '{'")
	}

	var body []ast.Expr
	for {
		save := p.off

		if c, err := p.comment(); err == nil {
			body = append(body, c)
			continue
		}
		p.off = save

		def, derr := p.variableDef()
		if derr == nil {
			body = append(body, def)
			continue
		}
		if derr.fatal {
			return nil, wrap(derr, "scope", p.locAt(start))
		}
		p.off = save

		lit, serr := p.stringLit()
		if serr == nil {
			body = append(body, lit)
			continue
		}
		if serr.fatal {
			return nil, wrap(serr, "scope", p.locAt(start))
		}
		p.off = save

		break
	}

	p.skipSpace()
	if !p.eat('}') {
		return nil, p.fail("scope", "expected statement or '}'")
	}
	return body, nil
}
