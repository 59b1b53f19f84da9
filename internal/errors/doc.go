// Package errors provides error handling conventions for nosuspend.
//
// This package re-exports the cockroachdb/errors constructors used across
// the codebase, defines sentinel errors for the domain's failure taxonomy,
// and provides an ExitError type for CLI exit code handling.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [Is]:
//
//	if errors.Is(err, nserrors.ErrStackDiscipline) {
//	    // a guard was released out of order
//	}
//
// Adapter failures are marked rather than typed: any error returned by a
// platform adapter's apply or clear call satisfies
// Is(err, ErrAdapter) no matter how many times it has been wrapped.
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid input, configuration, etc.)
//   - ExitSystem (2): System-related error (I/O, IPC, permissions, etc.)
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion, and supports unwrapping via [As]:
//
//	var exitErr *nserrors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
