package state

// Adapter applies and releases power-inhibition requests against the real
// operating environment. Concrete variants live in internal/adapter; the
// stack only depends on this contract.
//
// Implementations must make Apply idempotent: applying the same value
// twice has no additional effect and must not duplicate a registration on
// platforms that reference-count inhibitions. Apply and Clear are called
// synchronously from the goroutine performing push or pop, inside the
// stack's critical section, and must be safe to call repeatedly without
// leaking platform resources.
type Adapter interface {
	// Apply makes v the inhibition in force. A null value releases every
	// inhibition the adapter holds, like Clear, but adapters that
	// distinguish "narrow the inhibition" from "drop everything" may treat
	// the two differently.
	Apply(v Value) error

	// Clear removes all inhibition. Called when the stack becomes empty.
	Clear() error

	// Current is a best-effort read of what the platform reports right
	// now. Adapters where the operating system is authoritative (the
	// Windows execution-state flags) decode the OS answer; others report
	// the last value passed to Apply.
	Current() Value
}
