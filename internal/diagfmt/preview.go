package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"lcc/internal/source"
)

// renderPreview prints the line a finding points at with a caret under the
// column. The pad copies the line's own tabs so the caret stays aligned
// however wide the terminal draws them.
func renderPreview(w io.Writer, file *source.File, loc source.Location, opts PrettyOpts) {
	if loc.IsZero() {
		return
	}
	line := file.GetLine(loc.Line)
	if line == "" && loc.Col > 1 {
		// Out-of-range line; GetLine cannot tell it apart from a blank one,
		// but a blank line never carries a column past 1.
		return
	}
	fmt.Fprintf(w, "    %s\n", line)

	var pad strings.Builder
	col := uint32(1)
	for _, r := range line {
		if col >= loc.Col {
			break
		}
		if r == '\t' {
			pad.WriteByte('\t')
		} else {
			pad.WriteByte(' ')
		}
		col++
	}
	caret := "^"
	if opts.Color {
		caret = caretColor.Sprint(caret)
	}
	fmt.Fprintf(w, "    %s%s\n", pad.String(), caret)
}
