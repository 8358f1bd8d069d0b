package parser

import (
	"fmt"
	"time"

	"fortio.org/safecast"

	"lcc/internal/ast"
	"lcc/internal/source"
	"lcc/internal/trace"
)

// Options configures a parse.
type Options struct {
	// Tracer receives one event per accepted top-level declaration.
	// nil disables tracing.
	Tracer trace.Tracer
}

// Parser is the grammar engine state for one file: the raw text and a byte
// offset. Alternatives backtrack by restoring the offset; there is no
// token stream and no resynchronization.
type Parser struct {
	file  *source.File
	off   uint32
	limit uint32
	opts  Options
}

// Parse runs the grammar over file and returns the top-level declarations.
// A failed parse returns a *Error carrying the context-frame chain; the
// declarations are then nil, never partial.
func Parse(file *source.File, opts Options) ([]ast.Expr, error) {
	limit, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	p := &Parser{file: file, limit: limit, opts: opts}
	decls, perr := p.program()
	if perr != nil {
		perr.Path = file.Path
		return nil, perr
	}
	return decls, nil
}

// ParseFile loads path through fs and parses it. A load failure comes back
// as the loader's error, distinct from a parse failure.
func ParseFile(fs *source.FileSet, path string, opts Options) ([]ast.Expr, *source.File, error) {
	id, err := fs.Load(path)
	if err != nil {
		return nil, nil, err
	}
	file := fs.Get(id)
	decls, perr := Parse(file, opts)
	if perr != nil {
		return nil, file, perr
	}
	return decls, file, nil
}

// program is the start rule: declarations until end of input. Anything
// that is not a comment, container, or function fails the whole parse.
func (p *Parser) program() ([]ast.Expr, *Error) {
	var decls []ast.Expr
	for {
		p.skipSpace()
		if p.eof() {
			return decls, nil
		}
		start := p.off
		decl, err := p.topLevel()
		if err != nil {
			return nil, wrap(err, "program", p.locAt(start))
		}
		if decl != nil {
			decls = append(decls, decl)
		}
	}
}

// topLevel recognizes one comment, container, or function declaration.
// Comments are discarded here; only scopes keep them. When no branch
// matches and none committed, the container and function chains are both
// reported.
func (p *Parser) topLevel() (ast.Expr, *Error) {
	start := p.off

	if _, err := p.comment(); err == nil {
		return nil, nil
	}
	p.off = start

	decl, cerr := p.containerDecl()
	if cerr == nil {
		p.traceAccept("container_decl", start, decl)
		return decl, nil
	}
	if cerr.fatal {
		return nil, cerr
	}
	p.off = start

	decl, ferr := p.functionDecl()
	if ferr == nil {
		p.traceAccept("function_decl", start, decl)
		return decl, nil
	}
	if ferr.fatal {
		return nil, ferr
	}
	p.off = start

	return nil, merge(cerr, ferr)
}

func (p *Parser) traceAccept(rule string, start uint32, decl ast.Expr) {
	t := p.opts.Tracer
	if t == nil || !t.Enabled() {
		return
	}
	var detail string
	switch d := decl.(type) {
	case *ast.ContainerDecl:
		detail = d.Container.Name
	case *ast.FunctionDecl:
		detail = d.Function.Name
	}
	t.Emit(trace.Event{
		Time:   time.Now(),
		Rule:   rule,
		Loc:    p.locAt(start),
		Detail: detail,
	})
}
