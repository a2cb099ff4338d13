// Package scan splits the plain-text output of pg_dump into top-level SQL
// statements.
//
// The scanner is a byte-level state machine that understands the quoting
// rules of the PostgreSQL dialect:
//   - single-quoted string literals with '' as an escaped quote
//   - double-quoted identifiers with "" as an escaped quote
//   - dollar-quoted bodies ($$...$$ or $tag$...$tag$) where the closing
//     delimiter must repeat the exact opening tag
//   - line comments (-- to end of line) and nesting block comments
//
// Semicolons inside any of these regions never terminate a statement.
// Comment text is preserved verbatim and attached to the statement that
// follows it, so per-object output files keep the section headers pg_dump
// writes above each statement.
package scan
