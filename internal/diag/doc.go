// Package diag defines the diagnostic model shared by the token scanner,
// the grammar, and the driver.
//
// # Purpose
//
//   - Provide deterministic, serialisable records for findings: a severity,
//     a stable code, a message, and a resolved path/location.
//   - Offer the Bag accumulator so producers can collect findings without
//     coupling to storage or formatting layers.
//
// # Scope
//
// Package diag performs no formatting, IO, or CLI integration. Rendering
// lives in internal/diagfmt; collection, ordering, and deduplication happen
// here. FormatShort is the one exception: a stable single-line form used by
// golden tests and the short CLI output.
//
// # Data model
//
// Diagnostic is the central record. Path and location are resolved when the
// diagnostic is built, so records can be cached and replayed without the
// file set that produced them. Notes carry secondary locations; a parse
// failure keeps its enclosing rule chain there (see FromParseError), each
// note adding context rather than repeating the message.
//
// Codes group findings by phase: LEX1xxx for the token scanner, SYN2xxx for
// the grammar, IO4xxx for file loading. Code.ID renders the stable string
// form ("SYN2001") used in output and golden files.
package diag
