// Package diag defines the diagnostic model shared by the lexer, the
// evaluation driver and the CLI.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – human oriented text; for evaluation failures it is exactly the
//     error message of the core ("incorrect number of arguments", "invalid number").
//   - Primary span – the source.Span pointing to the offending token or line.
//   - Notes – optional secondary spans/messages.
//
// # Emitting diagnostics
//
// Producers use a Reporter so emission stays decoupled from storage.
// BagReporter aggregates into a Bag, which supports sorting, deduplication and
// merging. Rendering lives in internal/diagfmt; package diag does no IO.
package diag
