package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"lcc/internal/diag"
	"lcc/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	noteColor    = color.New(color.FgBlue)
	caretColor   = color.New(color.FgGreen, color.Bold)
)

// Pretty renders the bag's diagnostics for humans, one block per finding:
//
//	path:line:col: severity[CODE]: message
//	    <source line>
//	        ^
//	  note: line:col: in program
//
// Call bag.Sort() first when batch order matters. fs supplies the line
// previews and may be nil.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		head := fmt.Sprintf("%s[%s]", d.Severity, d.Code.ID())
		if opts.Color {
			head = severityColor(d.Severity).Sprint(head)
		}
		if d.Loc.IsZero() {
			fmt.Fprintf(w, "%s: %s: %s\n", d.Path, head, d.Message)
		} else {
			fmt.Fprintf(w, "%s:%s: %s: %s\n", d.Path, d.Loc, head, d.Message)
		}

		if opts.ShowPreview && fs != nil {
			if file, ok := fs.GetByPath(d.Path); ok {
				renderPreview(w, file, d.Loc, opts)
			}
		}

		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			label := "note"
			if opts.Color {
				label = noteColor.Sprint(label)
			}
			fmt.Fprintf(w, "  %s: %s: %s\n", label, n.Loc, n.Msg)
		}
	}
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}
