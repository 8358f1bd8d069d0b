package diagfmt

import (
	"encoding/json"
	"strings"
	"testing"

	"lcc/internal/source"
	"lcc/internal/token"
)

func sampleTokens() []token.Token {
	return []token.Token{
		{Kind: token.KwVariable, Loc: source.Location{Line: 1, Col: 1}},
		{Kind: token.Ident, Text: "x", Loc: source.Location{Line: 1, Col: 10}},
		{Kind: token.Assign, Loc: source.Location{Line: 1, Col: 12}},
		{Kind: token.NumberLit, Text: "5", Loc: source.Location{Line: 1, Col: 14}},
	}
}

func TestFormatTokensPretty(t *testing.T) {
	var sb strings.Builder
	FormatTokensPretty(&sb, sampleTokens())

	want := "  1: KwVariable   at 1:1\n" +
		"  2: Ident        \"x\" at 1:10\n" +
		"  3: Assign       at 1:12\n" +
		"  4: NumberLit    \"5\" at 1:14\n"
	if sb.String() != want {
		t.Errorf("pretty tokens =\n%q\nwant\n%q", sb.String(), want)
	}
}

func TestFormatTokensJSON(t *testing.T) {
	var sb strings.Builder
	if err := FormatTokensJSON(&sb, sampleTokens()); err != nil {
		t.Fatalf("FormatTokensJSON failed: %v", err)
	}

	var out []TokenJSON
	if err := json.Unmarshal([]byte(sb.String()), &out); err != nil {
		t.Fatalf("output does not decode: %v", err)
	}
	if len(out) != 4 {
		t.Fatalf("decoded %d tokens, want 4", len(out))
	}
	if out[0].Kind != "KwVariable" || out[0].Text != "" || out[0].Line != 1 || out[0].Col != 1 {
		t.Errorf("token 0 = %+v", out[0])
	}
	if out[3].Kind != "NumberLit" || out[3].Text != "5" || out[3].Col != 14 {
		t.Errorf("token 3 = %+v", out[3])
	}
}
