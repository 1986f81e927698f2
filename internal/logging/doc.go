// Package logging assembles the structured slog loggers used by the plotspec
// CLI.
//
// It owns the console and JSON handlers and centralizes level parsing so the
// resolver's informational lines keep the same shape wherever they land.
// Diagnostics go to stderr so machine-readable command output on stdout stays
// clean. Nop returns a discard logger for tests and wiring code that cannot
// fail.
package logging
