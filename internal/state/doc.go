// Package state implements the nested power-state management engine: an
// ordered stack of inhibition requests, the merge rules applied when
// requests nest, and the adapter contract that translates the resulting
// effective state into platform calls.
//
// # Effective state
//
// Every push computes a new effective [Value] from the request and the
// ambient state. With inherit enabled the request is unioned with the
// current top (flags ORed, innermost metadata winning); without it the
// request replaces the ambient state verbatim for its duration. The
// effective value at each depth is cached at push time so that popping
// restores the prior state without recomputation.
//
// # Discipline
//
// Pops must arrive in reverse push order. Each push returns an opaque
// [Token]; presenting anything but the current top's token fails with
// errors.ErrStackDiscipline and leaves both the stack and the platform
// untouched. Guards are expected to be lexically scoped, so out-of-order
// release is treated as a programming error rather than retried.
//
// # Concurrency
//
// A [Stack] serializes every mutation and its paired adapter call under
// one mutex: no caller can observe the stack between a push and the apply
// that publishes it. Adapter calls run synchronously inside that critical
// section and are expected to be bounded by a single OS or IPC call.
package state
