package driver

import (
	"fmt"

	"lcc/internal/diag"
	"lcc/internal/lexer"
	"lcc/internal/source"
	"lcc/internal/token"
)

// TokenizeResult carries everything the token dump needs: the tokens, the
// file they came from, and any findings.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads path and drains the token sequence over it.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeFile(fs, fs.Get(id), maxDiagnostics), nil
}

// TokenizeSource tokenizes in-memory text registered under name.
func TokenizeSource(name string, src []byte, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, src)
	return tokenizeFile(fs, fs.Get(id), maxDiagnostics)
}

func tokenizeFile(fs *source.FileSet, file *source.File, maxDiagnostics int) *TokenizeResult {
	bag := diag.NewBag(capDiagnostics(maxDiagnostics))
	lx := lexer.New(file)
	tokens := lx.Lex()

	// The sequence ends both at end of input and at the first character
	// no rule accepts; only the consumed offset tells the two apart.
	if off := lx.Offset(); int64(off) < int64(len(file.Content)) {
		bag.Add(diag.NewWarning(
			diag.LexTruncated,
			file.Path,
			file.LocationAt(off),
			fmt.Sprintf("tokenization stopped after %d of %d bytes", off, len(file.Content)),
		))
	}

	return &TokenizeResult{FileSet: fs, File: file, Tokens: tokens, Bag: bag}
}
