package state

import "strings"

// Value is an immutable, platform-neutral description of what is being
// inhibited. The zero value is the null state: no inhibition requested.
type Value struct {
	// Suspend requests that the system not sleep.
	Suspend bool `json:"suspend"`

	// Display requests that the display not sleep. Independent of Suspend.
	Display bool `json:"display"`

	// Hidden hints that the inhibition should not surface in system UI.
	// Platforms may ignore it; on Windows it maps to away mode.
	Hidden bool `json:"hidden,omitempty"`

	// AppName identifies the requesting application to adapters that
	// require a human-readable justification. Empty when the platform has
	// no such requirement.
	AppName string `json:"app_name,omitempty"`

	// Reason explains the inhibition to adapters that require one.
	Reason string `json:"reason,omitempty"`
}

// IsNull reports whether the value requests no inhibition at all.
// A null value is semantically equivalent to "nothing inhibited";
// metadata on a null value carries no platform effect.
func (v Value) IsNull() bool {
	return !v.Suspend && !v.Display
}

// Union merges an inner (newly pushed) request into v. Boolean axes are
// ORed. For AppName and Reason the innermost non-empty value wins: the
// newest request represents the most specific ongoing reason. This is
// last-write-wins scoped to nesting depth, not wall-clock time.
func (v Value) Union(inner Value) Value {
	out := Value{
		Suspend: v.Suspend || inner.Suspend,
		Display: v.Display || inner.Display,
		Hidden:  v.Hidden || inner.Hidden,
		AppName: v.AppName,
		Reason:  v.Reason,
	}
	if inner.AppName != "" {
		out.AppName = inner.AppName
	}
	if inner.Reason != "" {
		out.Reason = inner.Reason
	}
	return out
}

// String returns a compact human-readable form, e.g. "suspend|display".
func (v Value) String() string {
	if v.IsNull() {
		return "none"
	}
	parts := make([]string, 0, 3)
	if v.Suspend {
		parts = append(parts, "suspend")
	}
	if v.Display {
		parts = append(parts, "display")
	}
	if v.Hidden {
		parts = append(parts, "hidden")
	}
	return strings.Join(parts, "|")
}
