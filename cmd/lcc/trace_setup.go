package main

import (
	"fmt"
	"os"

	"lcc/internal/trace"
)

// setupTracing builds the tracer selected by --trace. The cleanup closes
// the trace file when the tracer owns one; stderr is never closed.
func setupTracing(value string) (trace.Tracer, func(), error) {
	switch value {
	case "":
		return nil, func() {}, nil
	case "-":
		return trace.NewStream(os.Stderr), func() {}, nil
	default:
		f, err := os.Create(value)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create trace file: %w", err)
		}
		stream := trace.NewStream(f)
		return stream, func() { _ = stream.Close() }, nil
	}
}
