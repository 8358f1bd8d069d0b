package diag

import (
	"lcc/internal/source"
)

// Note is a secondary location attached to a diagnostic, such as one step
// of a parse failure chain.
type Note struct {
	Loc source.Location
	Msg string
}

// Diagnostic is one finding. Path and Loc are resolved up front, so a
// diagnostic stays meaningful without the file set that produced it and
// survives serialization as-is.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Path     string
	Loc      source.Location
	Notes    []Note
}
