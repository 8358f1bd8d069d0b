package diag

import "lcc/internal/source"

func New(sev Severity, code Code, path string, loc source.Location, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Path:     path,
		Loc:      loc,
	}
}

func NewError(code Code, path string, loc source.Location, msg string) Diagnostic {
	return New(SevError, code, path, loc, msg)
}

func NewWarning(code Code, path string, loc source.Location, msg string) Diagnostic {
	return New(SevWarning, code, path, loc, msg)
}

func (d Diagnostic) WithNote(loc source.Location, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Loc: loc, Msg: msg})
	return d
}
