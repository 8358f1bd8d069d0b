package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"lcc/internal/token"
)

// TokenJSON is one scanned token in JSON form.
type TokenJSON struct {
	Kind string `json:"kind"`
	Text string `json:"text,omitempty"`
	Line uint32 `json:"line"`
	Col  uint32 `json:"col"`
}

// FormatTokensPretty writes one numbered line per token.
func FormatTokensPretty(w io.Writer, tokens []token.Token) {
	for i, tok := range tokens {
		fmt.Fprintf(w, "%3d: %-12s", i+1, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %s\n", tok.Loc)
	}
}

// FormatTokensJSON writes the token list as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenJSON, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenJSON{
			Kind: tok.Kind.String(),
			Text: tok.Text,
			Line: tok.Loc.Line,
			Col:  tok.Loc.Col,
		})
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
