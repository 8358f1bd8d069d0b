package ast

import "fmt"

// Expr is implemented by every node the grammar engine produces. Nodes are
// plain data; positions live in the failure chain, not in the tree.
type Expr interface {
	exprNode()
}

// VariableDecl is "type name": a binding with no initializer, as it
// appears in container bodies and parameter lists. Type is the lexeme as
// written; built-in names and user container names are not distinguished
// here.
type VariableDecl struct {
	Type string
	Name string
}

// VariableAssign is a declaration statement inside a function body.
// Init is nil when the declaration had no '=' clause; otherwise it holds
// exactly one literal or identifier.
type VariableAssign struct {
	Type string
	Name string
	Init []Expr
}

// Container is a named group of field declarations.
type Container struct {
	Name      string
	Variables []*VariableDecl
}

// ContainerDecl is a container declaration at the top level.
type ContainerDecl struct {
	Container *Container
}

// Function is a named parameter list plus a body of statements.
type Function struct {
	Name      string
	Arguments []*VariableDecl
	Body      []Expr
}

// FunctionDecl is a function declaration at the top level.
type FunctionDecl struct {
	Function *Function
}

// StringLit is a decoded string literal: escapes resolved, quotes gone.
type StringLit struct {
	Value string
}

// IntegerLit keeps the digit run as written; numeric conversion is a later
// stage's business.
type IntegerLit struct {
	Value string
}

// Ident is a bare name in initializer position.
type Ident struct {
	Name string
}

// Comment is a line comment kept as a statement inside function bodies.
// Text is the payload after "//", up to the newline.
type Comment struct {
	Text string
}

func (*VariableDecl) exprNode()   {}
func (*VariableAssign) exprNode() {}
func (*ContainerDecl) exprNode()  {}
func (*FunctionDecl) exprNode()   {}
func (*StringLit) exprNode()      {}
func (*IntegerLit) exprNode()     {}
func (*Ident) exprNode()          {}
func (*Comment) exprNode()        {}

// AssignFromDecl combines a parsed declaration with an optional initializer
// into the statement node. init must be nil or hold the single initializer
// expression. Passing anything but a *VariableDecl is a programming error,
// not a parse failure, and panics.
func AssignFromDecl(decl Expr, init []Expr) *VariableAssign {
	d, ok := decl.(*VariableDecl)
	if !ok {
		panic(fmt.Sprintf("ast: AssignFromDecl on %T", decl))
	}
	return &VariableAssign{Type: d.Type, Name: d.Name, Init: init}
}
