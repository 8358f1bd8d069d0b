// Package parser is the grammar engine for lc programs: committed
// recursive descent over the raw text, independent of the token scanner.
//
// Rules backtrack by restoring the byte offset until a committed point.
// The container, function, and variable keywords and the opening quote of
// a grammar string commit: past one of those, a failure is fatal and no
// enclosing alternative retries, so a failed parse never yields a partial
// tree. Keywords match as plain prefixes with no word-boundary check.
//
// Failures carry a chain of context frames ordered from the most specific
// expectation outward to the program rule, each with the source location
// where its rule started matching. When several uncommitted alternatives
// fail at one position, all their chains are retained.
//
// The grammar differs from the token scanner on purpose: identifiers here
// are letter-first and alphanumeric only, whitespace is the four ASCII
// characters, and string escapes are decoded rather than carried through.
package parser
