package diag

import (
	"fmt"

	"lcc/internal/parser"
	"lcc/internal/source"
)

// FromParseError flattens a parse failure into one diagnostic: the most
// specific frame becomes the message, the enclosing rules become notes.
func FromParseError(err *parser.Error) Diagnostic {
	if len(err.Frames) == 0 {
		return NewError(SynParse, err.Path, source.Location{}, "parse failed")
	}
	leaf := err.Frames[0]
	msg := leaf.Msg
	if msg == "" {
		msg = "cannot match"
	}
	d := NewError(SynParse, err.Path, leaf.Loc, fmt.Sprintf("%s: %s", leaf.Rule, msg))
	for _, f := range err.Frames[1:] {
		d = d.WithNote(f.Loc, "in "+f.Rule)
	}
	return d
}

// FromReadError reports a source file that could not be loaded.
func FromReadError(path string, err error) Diagnostic {
	return NewError(IORead, path, source.Location{}, err.Error())
}
