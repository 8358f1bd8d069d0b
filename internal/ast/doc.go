// Package ast defines the tree the grammar engine builds for lc programs.
// Invariants:
//   - Nodes are plain data with no positions and no behavior.
//   - Top-level declarations are ContainerDecl and FunctionDecl only.
//   - Container bodies and parameter lists hold *VariableDecl.
//   - Function bodies hold Comment, VariableAssign, and StringLit.
//   - VariableAssign.Init is nil or a single IntegerLit, StringLit, or
//     Ident.
package ast
