package trace

import (
	"io"
	"sync"
)

// Stream writes every event immediately as one text line. Write errors are
// swallowed: tracing must never disrupt the run it observes.
type Stream struct {
	mu sync.Mutex
	w  io.Writer
}

// NewStream creates a stream tracer over w.
func NewStream(w io.Writer) *Stream {
	return &Stream{w: w}
}

// Emit writes the event line.
func (s *Stream) Emit(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = io.WriteString(s.w, ev.line()+"\n")
}

// Enabled always reports true.
func (s *Stream) Enabled() bool { return true }

// Close closes the underlying writer when it is closable.
func (s *Stream) Close() error {
	if closer, ok := s.w.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
