package ast

// Walk calls fn for expr and, while fn keeps returning true, for every
// nested expression in source order. The return value reports whether the
// walk ran to completion.
func Walk(expr Expr, fn func(Expr) bool) bool {
	if expr == nil {
		return true
	}
	if !fn(expr) {
		return false
	}
	switch e := expr.(type) {
	case *ContainerDecl:
		if e.Container == nil {
			return true
		}
		for _, v := range e.Container.Variables {
			if !Walk(v, fn) {
				return false
			}
		}
	case *FunctionDecl:
		if e.Function == nil {
			return true
		}
		for _, a := range e.Function.Arguments {
			if !Walk(a, fn) {
				return false
			}
		}
		for _, s := range e.Function.Body {
			if !Walk(s, fn) {
				return false
			}
		}
	case *VariableAssign:
		for _, init := range e.Init {
			if !Walk(init, fn) {
				return false
			}
		}
	}
	return true
}

// WalkAll walks a declaration sequence front to back.
func WalkAll(decls []Expr, fn func(Expr) bool) bool {
	for _, d := range decls {
		if !Walk(d, fn) {
			return false
		}
	}
	return true
}
