package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"lcc/internal/ast"
)

// FormatExprsPretty writes declarations as an indented tree, one node per
// line. Container fields and function arguments print inline under their
// owner; statement initializers nest one level deeper.
func FormatExprsPretty(w io.Writer, decls []ast.Expr) {
	for _, d := range decls {
		writeExpr(w, d, 0)
	}
}

func writeExpr(w io.Writer, expr ast.Expr, depth int) {
	indent := strings.Repeat("  ", depth)
	switch e := expr.(type) {
	case *ast.ContainerDecl:
		fmt.Fprintf(w, "%scontainer %s\n", indent, e.Container.Name)
		for _, f := range e.Container.Variables {
			fmt.Fprintf(w, "%s  field %s %s\n", indent, f.Type, f.Name)
		}
	case *ast.FunctionDecl:
		fmt.Fprintf(w, "%sfunction %s\n", indent, e.Function.Name)
		for _, a := range e.Function.Arguments {
			fmt.Fprintf(w, "%s  arg %s %s\n", indent, a.Type, a.Name)
		}
		for _, stmt := range e.Function.Body {
			writeExpr(w, stmt, depth+1)
		}
	case *ast.VariableDecl:
		fmt.Fprintf(w, "%svariable %s %s\n", indent, e.Type, e.Name)
	case *ast.VariableAssign:
		fmt.Fprintf(w, "%svariable %s %s\n", indent, e.Type, e.Name)
		for _, init := range e.Init {
			writeExpr(w, init, depth+1)
		}
	case *ast.StringLit:
		fmt.Fprintf(w, "%sstring %q\n", indent, e.Value)
	case *ast.IntegerLit:
		fmt.Fprintf(w, "%sinteger %s\n", indent, e.Value)
	case *ast.Ident:
		fmt.Fprintf(w, "%sident %s\n", indent, e.Name)
	case *ast.Comment:
		fmt.Fprintf(w, "%scomment %q\n", indent, e.Text)
	}
}

// BuildExprsJSON returns declarations as JSON-ready kind-tagged objects,
// for callers that compose them into a larger document.
func BuildExprsJSON(decls []ast.Expr) []map[string]any {
	out := make([]map[string]any, 0, len(decls))
	for _, d := range decls {
		out = append(out, exprJSON(d))
	}
	return out
}

// FormatExprsJSON writes declarations as an indented JSON array of
// kind-tagged objects.
func FormatExprsJSON(w io.Writer, decls []ast.Expr) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildExprsJSON(decls))
}

func exprJSON(expr ast.Expr) map[string]any {
	switch e := expr.(type) {
	case *ast.ContainerDecl:
		fields := make([]map[string]any, 0, len(e.Container.Variables))
		for _, f := range e.Container.Variables {
			fields = append(fields, exprJSON(f))
		}
		return map[string]any{"kind": "container", "name": e.Container.Name, "fields": fields}
	case *ast.FunctionDecl:
		args := make([]map[string]any, 0, len(e.Function.Arguments))
		for _, a := range e.Function.Arguments {
			args = append(args, exprJSON(a))
		}
		body := make([]map[string]any, 0, len(e.Function.Body))
		for _, stmt := range e.Function.Body {
			body = append(body, exprJSON(stmt))
		}
		return map[string]any{"kind": "function", "name": e.Function.Name, "args": args, "body": body}
	case *ast.VariableDecl:
		return map[string]any{"kind": "variable_decl", "type": e.Type, "name": e.Name}
	case *ast.VariableAssign:
		m := map[string]any{"kind": "variable_def", "type": e.Type, "name": e.Name}
		if len(e.Init) > 0 {
			init := make([]map[string]any, 0, len(e.Init))
			for _, v := range e.Init {
				init = append(init, exprJSON(v))
			}
			m["init"] = init
		}
		return m
	case *ast.StringLit:
		return map[string]any{"kind": "string", "value": e.Value}
	case *ast.IntegerLit:
		return map[string]any{"kind": "integer", "value": e.Value}
	case *ast.Ident:
		return map[string]any{"kind": "ident", "name": e.Name}
	case *ast.Comment:
		return map[string]any{"kind": "comment", "text": e.Text}
	}
	return map[string]any{"kind": "unknown"}
}
