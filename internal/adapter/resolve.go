package adapter

import (
	"runtime"
	"sync"

	"github.com/thoreinstein/nosuspend/internal/state"
)

// Adapter names reported by Resolution.
const (
	// NameExecutionState is the Windows bitmask-flag adapter.
	NameExecutionState = "executionstate"

	// NameSessionBus is the Linux D-Bus inhibitor adapter.
	NameSessionBus = "sessionbus"

	// NameCaffeinate is the macOS caffeinate adapter.
	NameCaffeinate = "caffeinate"

	// NameNoop is the graceful-degradation adapter.
	NameNoop = "noop"
)

// Resolution describes the outcome of adapter selection.
type Resolution struct {
	// Adapter is the selected adapter. Never nil.
	Adapter state.Adapter

	// Platform is the runtime.GOOS the selection ran on.
	Platform string

	// Name identifies the adapter variant (see the Name constants).
	Name string

	// Supported is false when the platform adapter could not be set up
	// and Adapter degraded to the no-op variant.
	Supported bool

	// Reason explains the degradation. Empty when Supported is true.
	Reason string
}

var (
	resolveOnce sync.Once
	resolution  Resolution
)

// Resolve selects the platform adapter, once per process. When no
// adapter can be set up for the running environment the result degrades
// to the no-op adapter instead of failing, with Supported false and
// Reason set, so callers can warn the user without platform-detection
// branches of their own.
func Resolve() Resolution {
	resolveOnce.Do(func() {
		resolution = resolve()
	})
	return resolution
}

func resolve() Resolution {
	r := Resolution{Platform: runtime.GOOS}

	a, name, err := newPlatformAdapter()
	if err != nil {
		r.Adapter = NewNoop()
		r.Name = NameNoop
		r.Reason = err.Error()
		return r
	}

	r.Adapter = a
	r.Name = name
	r.Supported = true
	return r
}
