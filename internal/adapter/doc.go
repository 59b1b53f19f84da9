// Package adapter provides the concrete platform adapters that translate
// an effective inhibition state into real OS or IPC calls, and the
// startup resolution that selects one for the running environment.
//
// # Variants
//
//   - Windows: absolute bitmask flags via SetThreadExecutionState. The
//     operating system is authoritative; each apply re-states the full
//     flag set.
//   - Linux: reference-counted inhibitor registrations on the D-Bus
//     session bus (GNOME session manager or the freedesktop power
//     management interface for suspend, the freedesktop screensaver for
//     display). Cookies make apply register-once per axis.
//   - Darwin: a caffeinate child process keyed to the requested axes,
//     restarted only when they change.
//   - No-op: accepted everywhere, inhibits nothing. Used as graceful
//     degradation so callers never need platform-detection branches.
//
// # Resolution
//
// [Resolve] picks the adapter once per process. When the platform
// mechanism is missing or unreachable it degrades to the no-op adapter
// and records why, so the degradation stays observable:
//
//	res := adapter.Resolve()
//	if !res.Supported {
//	    slog.Warn("power inhibition unavailable", "reason", res.Reason)
//	}
package adapter
