package trace

import (
	"fmt"
	"time"

	"lcc/internal/source"
)

// Event is one accepted grammar rule: which rule, where it started, and an
// optional detail such as the declared name.
type Event struct {
	Time   time.Time
	Rule   string
	Loc    source.Location
	Detail string
}

// line renders the event as a single text line without the newline.
func (ev Event) line() string {
	ts := ev.Time.Format("15:04:05.000000")
	if ev.Detail == "" {
		return fmt.Sprintf("%s %s %s", ts, ev.Rule, ev.Loc)
	}
	return fmt.Sprintf("%s %s %s %s", ts, ev.Rule, ev.Loc, ev.Detail)
}
