// Package trace reports grammar rule acceptance for the --trace flag.
//
// The grammar engine emits one Event per accepted top-level declaration.
// Stream writes events as text lines; Nop is the zero-overhead default.
// Implementations are goroutine-safe so parallel parses can share one
// tracer.
package trace
