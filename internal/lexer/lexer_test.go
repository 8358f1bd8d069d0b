package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"lcc/internal/lexer"
	"lcc/internal/source"
	"lcc/internal/token"
)

func makeTestLexer(input string) *lexer.Lexer {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.lc", []byte(input))
	return lexer.New(fs.Get(fileID))
}

// expectTokens checks the kind sequence the input produces.
func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx := makeTestLexer(input)
	tokens := lx.Lex()

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\ninput: %q\ntokens: %v",
			len(expected), len(tokens), input, tokensToString(tokens))
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("token %d: expected %v, got %v (text: %q)",
				i, expected[i], tok.Kind, tok.Text)
		}
	}
}

// expectSingleToken checks that the input produces exactly one token.
func expectSingleToken(t *testing.T, input string, expectedKind token.Kind, expectedText string) {
	t.Helper()
	lx := makeTestLexer(input)
	toks := lx.Lex()

	if len(toks) != 1 {
		t.Fatalf("expected exactly one token, got %v", tokensToString(toks))
	}
	if toks[0].Kind != expectedKind {
		t.Errorf("expected kind %v, got %v", expectedKind, toks[0].Kind)
	}
	if toks[0].Text != expectedText {
		t.Errorf("expected text %q, got %q", expectedText, toks[0].Text)
	}
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ====== scan_ident.go ======

func TestIdentifiers_ASCII(t *testing.T) {
	tests := []string{
		"foo",
		"_bar",
		"__test",
		"x123",
		"camelCase",
		"UPPER",
		"_",
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.Ident, input)
		})
	}
}

func TestIdentifiers_Unicode(t *testing.T) {
	tests := []string{
		"счётчик",
		"δ",
		"λx",
		"変数",
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.Ident, input)
		})
	}
}

func TestKeywords_Lowercase(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"if", token.KwIf},
		{"else", token.KwElse},
		{"for", token.KwFor},
		{"function", token.KwFunction},
		{"variable", token.KwVariable},
		{"container", token.KwContainer},
		{"true", token.KwTrue},
		{"false", token.KwFalse},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lx := makeTestLexer(tt.input)
			toks := lx.Lex()
			if len(toks) != 1 || toks[0].Kind != tt.kind {
				t.Errorf("expected single %v, got %v", tt.kind, tokensToString(toks))
			}
		})
	}
}

func TestKeywords_CapitalizedAreIdents(t *testing.T) {
	tests := []string{
		"If", "IF",
		"Else", "ELSE",
		"Function", "FUNCTION",
		"Variable", "VARIABLE",
		"Container", "CONTAINER",
		"True", "FALSE",
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.Ident, input)
		})
	}
}

func TestTypeNamesAreIdents(t *testing.T) {
	// Built-in type names are not keywords; classification is the
	// grammar's business.
	for _, input := range []string{"integer", "string", "boolean", "character"} {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.Ident, input)
		})
	}
}

func TestKeywordGluedToLetters(t *testing.T) {
	// The whole run is one lexeme, so no keyword inside it fires.
	expectSingleToken(t, "containers", token.Ident, "containers")
	expectSingleToken(t, "iffy", token.Ident, "iffy")
}

// ====== scan_number.go ======

func TestNumbers_Decimal(t *testing.T) {
	tests := []string{"0", "5", "123", "456789", "007"}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.NumberLit, input)
		})
	}
}

func TestNumbers_NoFloats(t *testing.T) {
	// There is no fraction syntax: the dot is its own token.
	expectTokens(t, "1.5", []token.Kind{
		token.NumberLit,
		token.Dot,
		token.NumberLit,
	})
}

func TestNumbers_NoSign(t *testing.T) {
	expectTokens(t, "-3", []token.Kind{
		token.Minus,
		token.NumberLit,
	})
}

func TestNumberGluedToLetters(t *testing.T) {
	// A digit run ends at the first non-digit; "1x" is two tokens.
	expectTokens(t, "1x", []token.Kind{
		token.NumberLit,
		token.Ident,
	})
}

// ====== scan_string.go ======

func TestString_Simple(t *testing.T) {
	tests := []struct {
		input string
		text  string
	}{
		{`""`, ``},
		{`"hello"`, `hello`},
		{`"hello world"`, `hello world`},
		{`"123"`, `123`},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, token.StringLit, tt.text)
		})
	}
}

func TestString_EscapesKeptRaw(t *testing.T) {
	// The payload keeps backslashes untouched; decoding escape
	// sequences is the grammar engine's job.
	tests := []struct {
		input string
		text  string
	}{
		{`"a\nb"`, `a\nb`},
		{`"tab\there"`, `tab\there`},
		{`"quote\"inside"`, `quote\"inside`},
		{`"\t\r\n"`, `\t\r\n`},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, token.StringLit, tt.text)
		})
	}
}

func TestString_EscapedQuoteDoesNotTerminate(t *testing.T) {
	expectSingleToken(t, `"a\"b"`, token.StringLit, `a\"b`)
}

func TestString_BackslashPairStillShieldsQuote(t *testing.T) {
	// Only the immediately preceding character matters, so a quote
	// after two backslashes is still shielded and scanning runs to
	// end of input.
	lx := makeTestLexer(`"x\\"`)
	toks := lx.Lex()
	if len(toks) != 1 {
		t.Fatalf("expected one token, got %v", tokensToString(toks))
	}
	if toks[0].Text != `x\\"` {
		t.Errorf("payload = %q, want %q", toks[0].Text, `x\\"`)
	}
}

func TestString_NewlineIsPayload(t *testing.T) {
	expectSingleToken(t, "\"a\nb\"", token.StringLit, "a\nb")
}

func TestString_UnterminatedTakesRest(t *testing.T) {
	lx := makeTestLexer(`"hello`)
	toks := lx.Lex()
	if len(toks) != 1 || toks[0].Kind != token.StringLit || toks[0].Text != "hello" {
		t.Fatalf("expected partial StringLit %q, got %v", "hello", tokensToString(toks))
	}
	if lx.Offset() != 6 {
		t.Errorf("Offset = %d, want 6 (everything consumed)", lx.Offset())
	}
}

// ====== scan_ops.go ======

func TestOperators_Single(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"=", token.Assign},
		{"!", token.Bang},
		{">", token.Gt},
		{"<", token.Lt},
		{"+", token.Plus},
		{"-", token.Minus},
		{"*", token.Star},
		{"/", token.Slash},
		{"&", token.Amp},
		{"|", token.Pipe},
		{"~", token.Tilde},
		{";", token.Semicolon},
		{",", token.Comma},
		{".", token.Dot},
		{"(", token.LParen},
		{")", token.RParen},
		{"[", token.LBracket},
		{"]", token.RBracket},
		{"{", token.LBrace},
		{"}", token.RBrace},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectTokens(t, tt.input, []token.Kind{tt.kind})
		})
	}
}

func TestOperators_Double(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"==", token.EqEq},
		{"!=", token.BangEq},
		{">=", token.GtEq},
		{"<=", token.LtEq},
		{"+=", token.PlusAssign},
		{"-=", token.MinusAssign},
		{"*=", token.StarAssign},
		{"/=", token.SlashAssign},
		{"&&", token.AndAnd},
		{"||", token.OrOr},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectTokens(t, tt.input, []token.Kind{tt.kind})
		})
	}
}

func TestOperators_Greedy(t *testing.T) {
	expectTokens(t, "===", []token.Kind{token.EqEq, token.Assign})
	expectTokens(t, "&&&", []token.Kind{token.AndAnd, token.Amp})
	expectTokens(t, "|||", []token.Kind{token.OrOr, token.Pipe})
	expectTokens(t, "+=+", []token.Kind{token.PlusAssign, token.Plus})
	expectTokens(t, "<<", []token.Kind{token.Lt, token.Lt})
	expectTokens(t, ">>=", []token.Kind{token.Gt, token.GtEq})
}

// ====== comments ======

func TestComments_Skipped(t *testing.T) {
	expectTokens(t, "x // comment\ny", []token.Kind{
		token.Ident,
		token.Ident,
	})
}

func TestComments_AtEndOfInput(t *testing.T) {
	lx := makeTestLexer("// only a comment")
	if toks := lx.Lex(); len(toks) != 0 {
		t.Fatalf("expected no tokens, got %v", tokensToString(toks))
	}
	if lx.Offset() != 17 {
		t.Errorf("Offset = %d, want 17 (comment fully consumed)", lx.Offset())
	}
}

func TestComments_SlashDisambiguation(t *testing.T) {
	expectTokens(t, "a / b", []token.Kind{token.Ident, token.Slash, token.Ident})
	expectTokens(t, "a /= b", []token.Kind{token.Ident, token.SlashAssign, token.Ident})
	expectTokens(t, "a // b", []token.Kind{token.Ident})
}

func TestComments_BackToBack(t *testing.T) {
	input := "// one\n// two\nx"
	expectTokens(t, input, []token.Kind{token.Ident})
}

// ====== sequence end ======

func TestUnknownCharEndsSequence(t *testing.T) {
	lx := makeTestLexer("count @ 5")
	toks := lx.Lex()
	if len(toks) != 1 || toks[0].Kind != token.Ident {
		t.Fatalf("expected single Ident before '@', got %v", tokensToString(toks))
	}
	// The offending character stays unconsumed, so Offset points at it.
	if lx.Offset() != 6 {
		t.Errorf("Offset = %d, want 6", lx.Offset())
	}
	// The sequence stays ended.
	if _, ok := lx.Next(); ok {
		t.Error("expected ok=false after the sequence ended")
	}
}

func TestUnknownCharAtStart(t *testing.T) {
	lx := makeTestLexer("@x")
	if toks := lx.Lex(); len(toks) != 0 {
		t.Fatalf("expected no tokens, got %v", tokensToString(toks))
	}
	if lx.Offset() != 0 {
		t.Errorf("Offset = %d, want 0", lx.Offset())
	}
}

func TestEmptyAndWhitespaceOnly(t *testing.T) {
	for _, input := range []string{"", "   \t\n  "} {
		lx := makeTestLexer(input)
		if toks := lx.Lex(); len(toks) != 0 {
			t.Fatalf("input %q: expected no tokens, got %v", input, tokensToString(toks))
		}
		if int(lx.Offset()) != len(input) {
			t.Errorf("input %q: Offset = %d, want %d", input, lx.Offset(), len(input))
		}
	}
}

func TestNextAfterEndStaysEnded(t *testing.T) {
	lx := makeTestLexer("x")
	if _, ok := lx.Next(); !ok {
		t.Fatal("expected one token")
	}
	for i := 0; i < 3; i++ {
		if _, ok := lx.Next(); ok {
			t.Fatal("expected ok=false after end of input")
		}
	}
}

// ====== locations ======

func TestTokenLocations(t *testing.T) {
	input := "variable integer count = 5;\ncount += 1;"
	want := []struct {
		kind      token.Kind
		line, col uint32
	}{
		{token.KwVariable, 1, 1},
		{token.Ident, 1, 10},
		{token.Ident, 1, 18},
		{token.Assign, 1, 24},
		{token.NumberLit, 1, 26},
		{token.Semicolon, 1, 27},
		{token.Ident, 2, 1},
		{token.PlusAssign, 2, 7},
		{token.NumberLit, 2, 10},
		{token.Semicolon, 2, 11},
	}

	toks := makeTestLexer(input).Lex()
	if len(toks) != len(want) {
		t.Fatalf("expected %d tokens, got %v", len(want), tokensToString(toks))
	}
	for i, w := range want {
		got := toks[i]
		if got.Kind != w.kind || got.Loc.Line != w.line || got.Loc.Col != w.col {
			t.Errorf("token %d: got %v at %v, want %v at %d:%d",
				i, got.Kind, got.Loc, w.kind, w.line, w.col)
		}
	}
}

func TestTokenLocations_UnicodeColumns(t *testing.T) {
	// Columns count runes, not bytes.
	toks := makeTestLexer("αβ = 1").Lex()
	if len(toks) != 3 {
		t.Fatalf("expected 3 tokens, got %v", tokensToString(toks))
	}
	wantCols := []uint32{1, 4, 6}
	for i, col := range wantCols {
		if toks[i].Loc.Line != 1 || toks[i].Loc.Col != col {
			t.Errorf("token %d at %v, want 1:%d", i, toks[i].Loc, col)
		}
	}
}

func TestTokenLocations_StringSpansLines(t *testing.T) {
	toks := makeTestLexer("\"a\nb\" x").Lex()
	if len(toks) != 2 {
		t.Fatalf("expected 2 tokens, got %v", tokensToString(toks))
	}
	if toks[0].Loc.Line != 1 || toks[0].Loc.Col != 1 {
		t.Errorf("string literal at %v, want 1:1", toks[0].Loc)
	}
	if toks[1].Loc.Line != 2 || toks[1].Loc.Col != 4 {
		t.Errorf("trailing ident at %v, want 2:4", toks[1].Loc)
	}
}

// ====== round trip ======

func TestRoundTrip(t *testing.T) {
	input := `container Point {
	integer x;
	integer y;
}

function main() {
	// greet the world
	variable string msg = "hi \"there\"";
	msg == msg;
}`

	first := makeTestLexer(input).Lex()
	if len(first) == 0 {
		t.Fatal("expected tokens from the sample program")
	}

	lexemes := make([]string, len(first))
	for i, tok := range first {
		lexemes[i] = tok.Lexeme()
	}
	rebuilt := strings.Join(lexemes, " ")

	second := makeTestLexer(rebuilt).Lex()
	if len(second) != len(first) {
		t.Fatalf("round trip changed token count: %d vs %d\nrebuilt: %q",
			len(first), len(second), rebuilt)
	}
	for i := range first {
		if first[i].Kind != second[i].Kind || first[i].Text != second[i].Text {
			t.Errorf("token %d: %v(%q) became %v(%q)",
				i, first[i].Kind, first[i].Text, second[i].Kind, second[i].Text)
		}
	}
}

// ====== benchmarks ======

func BenchmarkLexer_Program(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 100; i++ {
		fmt.Fprintf(&sb, "function f%d(integer a, integer b) {\n", i)
		sb.WriteString("\tvariable integer total = 0;\n")
		sb.WriteString("\t\"marker\";\n}\n")
	}
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("bench.lc", []byte(sb.String()))
	file := fs.Get(fileID)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lx := lexer.New(file)
		for {
			if _, ok := lx.Next(); !ok {
				break
			}
		}
	}
}
