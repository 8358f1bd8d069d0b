package trace

// Tracer receives grammar events as rules accept input. Implementations
// must be safe for concurrent use: parallel parses share one tracer.
type Tracer interface {
	// Emit records one event.
	Emit(ev Event)

	// Enabled reports whether events will be recorded at all. Callers
	// should check it before building an Event.
	Enabled() bool
}

type nopTracer struct{}

func (nopTracer) Emit(Event)    {}
func (nopTracer) Enabled() bool { return false }

// Nop is the tracer used when tracing is off.
var Nop Tracer = nopTracer{}
