package diagfmt

import (
	"encoding/json"
	"strings"
	"testing"

	"lcc/internal/ast"
)

func sampleDecls() []ast.Expr {
	return []ast.Expr{
		&ast.ContainerDecl{Container: &ast.Container{
			Name:      "Point",
			Variables: []*ast.VariableDecl{{Type: "integer", Name: "x"}},
		}},
		&ast.FunctionDecl{Function: &ast.Function{
			Name:      "main",
			Arguments: []*ast.VariableDecl{{Type: "integer", Name: "argc"}},
			Body: []ast.Expr{
				&ast.Comment{Text: " startup"},
				&ast.VariableAssign{Type: "integer", Name: "count", Init: []ast.Expr{&ast.IntegerLit{Value: "5"}}},
				&ast.VariableAssign{Type: "string", Name: "s"},
				&ast.StringLit{Value: "banner"},
			},
		}},
	}
}

func TestFormatExprsPretty(t *testing.T) {
	var sb strings.Builder
	FormatExprsPretty(&sb, sampleDecls())

	want := `container Point
  field integer x
function main
  arg integer argc
  comment " startup"
  variable integer count
    integer 5
  variable string s
  string "banner"
`
	if sb.String() != want {
		t.Errorf("pretty tree =\n%s\nwant\n%s", sb.String(), want)
	}
}

func TestFormatExprsJSON(t *testing.T) {
	var sb strings.Builder
	if err := FormatExprsJSON(&sb, sampleDecls()); err != nil {
		t.Fatalf("FormatExprsJSON failed: %v", err)
	}

	var out []map[string]any
	if err := json.Unmarshal([]byte(sb.String()), &out); err != nil {
		t.Fatalf("output does not decode: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("decoded %d declarations, want 2", len(out))
	}
	if out[0]["kind"] != "container" || out[0]["name"] != "Point" {
		t.Errorf("declaration 0 = %v", out[0])
	}

	body, ok := out[1]["body"].([]any)
	if !ok || len(body) != 4 {
		t.Fatalf("function body = %v", out[1]["body"])
	}
	def, ok := body[1].(map[string]any)
	if !ok || def["kind"] != "variable_def" {
		t.Fatalf("statement 1 = %v", body[1])
	}
	if _, hasInit := def["init"]; !hasInit {
		t.Error("initialized definition lost its init")
	}
	bare, ok := body[2].(map[string]any)
	if !ok {
		t.Fatalf("statement 2 = %v", body[2])
	}
	if _, hasInit := bare["init"]; hasInit {
		t.Error("bare definition gained an init")
	}
}
