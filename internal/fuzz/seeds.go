package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const maxSeedBytes = 64 << 10

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	addGrammarSeeds(f)
}

// addTestdataSeeds walks the repository testdata tree and plants every
// .lc file. Missing or unreadable entries are skipped; the corpus is a
// bonus, not a requirement.
func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".lc" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

// addGrammarSeeds plants one seed per construct plus the malformed shapes
// the diagnostics are built around.
func addGrammarSeeds(f *testing.F) {
	seeds := []string{
		"",
		"// a lone comment\n",
		"container point {\n    integer x;\n    integer y;\n}\n",
		"container empty {}\n",
		"function main() {}\n",
		"main() {}\n",
		"function greet(string name, integer times) {\n    variable string banner = \"hi\";\n}\n",
		"function idents() {\n    integer a;\n    integer b = a;\n}\n",
		"function quoted() {\n    \"bare string\"\n}\n",
		"function cont() {\n    variable string s = \"line \\\n        folded\";\n}\n",
		"container 5 {}\n",
		"container box { integer }\n",
		"function main( {}\n",
		"function main() { variable integer x }\n",
		"\"unterminated\n",
		"integer x @ 5\n",
		"container box {} container box {}\n",
		"containerBox {}\n",
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
