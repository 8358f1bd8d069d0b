package parser

import (
	"fmt"

	"lcc/internal/source"
)

// Frame is one step of a failure chain: the rule that was being matched,
// where it started looking, and, for the innermost frame, what it expected.
type Frame struct {
	Loc  source.Location
	Rule string
	Msg  string
}

func (f Frame) String() string {
	if f.Msg == "" {
		return fmt.Sprintf("%s: in %s", f.Loc, f.Rule)
	}
	return fmt.Sprintf("%s: in %s: %s", f.Loc, f.Rule, f.Msg)
}

// Error is a structured parse failure: the frame chain runs from the most
// specific expectation outward to the program rule.
type Error struct {
	Path   string
	Frames []Frame

	fatal bool
}

func (e *Error) Error() string {
	if len(e.Frames) == 0 {
		return fmt.Sprintf("%s: parse failed", e.Path)
	}
	f := e.Frames[0]
	if f.Msg == "" {
		return fmt.Sprintf("%s:%s: cannot match %s", e.Path, f.Loc, f.Rule)
	}
	return fmt.Sprintf("%s:%s: %s: %s", e.Path, f.Loc, f.Rule, f.Msg)
}

// Fatal reports whether the failure happened past a committed keyword, in
// which case no alternative was retried.
func (e *Error) Fatal() bool { return e.fatal }

// Contexts renders the frame chain, most specific first.
func (e *Error) Contexts() []string {
	out := make([]string, len(e.Frames))
	for i, f := range e.Frames {
		out[i] = f.String()
	}
	return out
}

// fail starts a failure chain with a single frame at the current position.
func (p *Parser) fail(rule, msg string) *Error {
	return p.failAt(p.off, rule, msg)
}

func (p *Parser) failAt(off uint32, rule, msg string) *Error {
	return &Error{Frames: []Frame{{Loc: p.locAt(off), Rule: rule, Msg: msg}}}
}

// wrap adds a context frame naming the enclosing rule. A frame naming the
// same rule as the one already on top adds nothing.
func wrap(err *Error, rule string, loc source.Location) *Error {
	if n := len(err.Frames); n > 0 && err.Frames[n-1].Rule == rule {
		return err
	}
	err.Frames = append(err.Frames, Frame{Loc: loc, Rule: rule})
	return err
}

// commit marks the failure fatal: enclosing alternatives must not retry.
func commit(err *Error) *Error {
	err.fatal = true
	return err
}

// merge joins the chains of alternatives that all failed at one position.
func merge(errs ...*Error) *Error {
	out := &Error{}
	for _, e := range errs {
		out.Frames = append(out.Frames, e.Frames...)
	}
	return out
}
