// Package logging builds the slog loggers used by the CLI and the resolver.
//
// Two formats are supported: a compact console format for interactive use
// and JSON for log collection. Output goes to stderr by default and can be
// teed into a log file.
package logging
