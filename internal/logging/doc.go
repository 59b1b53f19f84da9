// Package logging provides structured logging for nosuspend built on
// log/slog.
//
// The package offers a TTY-optimized text handler with color support,
// a MultiHandler for fanning records out to several destinations (e.g.
// stderr plus a JSON log file), verbosity-to-level mapping for -v flags,
// and context carriage so commands can pass a configured logger down
// without threading it explicitly.
package logging
