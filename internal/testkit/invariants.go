package testkit

import (
	"fmt"

	"lcc/internal/ast"
)

// CheckASTInvariants runs the structural invariants every accepted parse
// must satisfy:
// 1) top-level declarations are containers or functions
// 2) container fields are plain declarations with a type and a name
// 3) function bodies hold only comments, declaration statements, and
// string literals
// 4) a declaration statement carries at most one initializer, and the
// initializer is a literal or an identifier
func CheckASTInvariants(decls []ast.Expr) error {
	for i, decl := range decls {
		switch d := decl.(type) {
		case *ast.ContainerDecl:
			if err := checkContainer(d); err != nil {
				return fmt.Errorf("decl %d: %w", i, err)
			}
		case *ast.FunctionDecl:
			if err := checkFunction(d); err != nil {
				return fmt.Errorf("decl %d: %w", i, err)
			}
		case nil:
			return fmt.Errorf("decl %d: nil declaration", i)
		default:
			return fmt.Errorf("decl %d: %T at top level", i, decl)
		}
	}
	return nil
}

func checkContainer(d *ast.ContainerDecl) error {
	if d.Container == nil {
		return fmt.Errorf("container decl without container")
	}
	if d.Container.Name == "" {
		return fmt.Errorf("container without name")
	}
	for i, field := range d.Container.Variables {
		if field == nil {
			return fmt.Errorf("container %s: field %d is nil", d.Container.Name, i)
		}
		if field.Type == "" || field.Name == "" {
			return fmt.Errorf("container %s: field %d missing type or name", d.Container.Name, i)
		}
	}
	return nil
}

func checkFunction(d *ast.FunctionDecl) error {
	if d.Function == nil {
		return fmt.Errorf("function decl without function")
	}
	fn := d.Function
	if fn.Name == "" {
		return fmt.Errorf("function without name")
	}
	for i, arg := range fn.Arguments {
		if arg == nil {
			return fmt.Errorf("function %s: argument %d is nil", fn.Name, i)
		}
		if arg.Type == "" || arg.Name == "" {
			return fmt.Errorf("function %s: argument %d missing type or name", fn.Name, i)
		}
	}
	for i, stmt := range fn.Body {
		switch s := stmt.(type) {
		case *ast.Comment, *ast.StringLit:
			// always well formed
		case *ast.VariableAssign:
			if s.Type == "" || s.Name == "" {
				return fmt.Errorf("function %s: statement %d missing type or name", fn.Name, i)
			}
			if len(s.Init) > 1 {
				return fmt.Errorf("function %s: statement %d has %d initializers", fn.Name, i, len(s.Init))
			}
			if len(s.Init) == 1 {
				switch s.Init[0].(type) {
				case *ast.StringLit, *ast.IntegerLit, *ast.Ident:
				default:
					return fmt.Errorf("function %s: statement %d initializer is %T", fn.Name, i, s.Init[0])
				}
			}
		default:
			return fmt.Errorf("function %s: statement %d is %T", fn.Name, i, stmt)
		}
	}
	return nil
}
