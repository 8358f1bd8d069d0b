package parser

import "lcc/internal/ast"

// containerDecl := "container" identifier "{" { variableDecl ";" } "}"
// The keyword is a committed prefix: once it matches, any failure in the
// remainder aborts the whole parse. Fields are plain declarations; no
// initializers inside containers.
func (p *Parser) containerDecl() (ast.Expr, *Error) {
	p.skipSpace()
	start := p.off
	if !p.tag("container") {
		return nil, p.fail("container_decl", `expected "container"`)
	}
	ctx := func(err *Error) *Error {
		return commit(wrap(err, "container_decl", p.locAt(start)))
	}

	name, err := p.identifier()
	if err != nil {
		return nil, ctx(err)
	}
	p.skipSpace()
	if !p.eat('{') {
		return nil, ctx(p.fail("container_decl", "expected '{'"))
	}

	var fields []*ast.VariableDecl
	for {
		save := p.off
		field, ferr := p.variableDecl()
		if ferr != nil {
			if ferr.fatal {
				return nil, ctx(ferr)
			}
			p.off = save
			break
		}
		p.skipSpace()
		if !p.eat(';') {
			return nil, ctx(p.fail("container_decl", "expected ';' after field"))
		}
		fields = append(fields, field)
	}

	p.skipSpace()
	if !p.eat('}') {
		return nil, ctx(p.fail("container_decl", "expected field or '}'"))
	}

	return &ast.ContainerDecl{Container: &ast.Container{
		Name:      name,
		Variables: fields,
	}}, nil
}
