package fuzztests

import (
	"errors"
	"testing"

	"lcc/internal/parser"
	"lcc/internal/source"
	"lcc/internal/testkit"
)

func FuzzParseProgram(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampSeed(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.lc", input))

		decls, err := parser.Parse(file, parser.Options{})
		if err != nil {
			var perr *parser.Error
			if !errors.As(err, &perr) {
				t.Fatalf("parse returned %T, want *parser.Error", err)
			}
			if len(perr.Frames) == 0 {
				t.Fatal("parse failure carries no frames")
			}
			if decls != nil {
				t.Fatalf("failed parse still returned %d declarations", len(decls))
			}
			return
		}

		if err := testkit.CheckASTInvariants(decls); err != nil {
			t.Fatalf("accepted parse broke tree invariants: %v", err)
		}
	})
}
