//go:build windows

package adapter

import (
	"sync"

	"golang.org/x/sys/windows"

	"github.com/thoreinstein/nosuspend/internal/errors"
	"github.com/thoreinstein/nosuspend/internal/state"
)

// Execution state flags accepted by SetThreadExecutionState.
// https://docs.microsoft.com/en-us/windows/win32/api/winbase/nf-winbase-setthreadexecutionstate
const (
	esContinuous       = 0x80000000
	esSystemRequired   = 0x00000001
	esDisplayRequired  = 0x00000002
	esAwayModeRequired = 0x00000040
)

var (
	kernel32                    = windows.NewLazySystemDLL("kernel32.dll")
	procSetThreadExecutionState = kernel32.NewProc("SetThreadExecutionState")
)

// executionStateAdapter drives the Windows execution-state bitmask. The
// flags are absolute: every call states the full requirement set, which
// makes Apply naturally idempotent and frees the stack from tracking
// which axis changed.
type executionStateAdapter struct {
	mu      sync.Mutex
	applied state.Value
}

func newPlatformAdapter() (state.Adapter, string, error) {
	return &executionStateAdapter{}, NameExecutionState, nil
}

func flagsFor(v state.Value) uintptr {
	flags := uintptr(esContinuous)
	if v.Suspend {
		flags |= esSystemRequired
	}
	if v.Display {
		flags |= esDisplayRequired
	}
	if v.Hidden {
		flags |= esAwayModeRequired
	}
	return flags
}

func decodeFlags(flags uintptr) state.Value {
	return state.Value{
		Suspend: flags&esSystemRequired != 0,
		Display: flags&esDisplayRequired != 0,
		Hidden:  flags&esAwayModeRequired != 0,
	}
}

// Apply states the full requirement set for v. ES_CONTINUOUS keeps the
// requirements in force until the next call.
func (a *executionStateAdapter) Apply(v state.Value) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	flags := flagsFor(v)
	prev, _, _ := procSetThreadExecutionState.Call(flags)
	if prev == 0 {
		return errors.Mark(
			errors.Newf("SetThreadExecutionState(%#x) failed", flags), errors.ErrAdapter)
	}
	a.applied = v
	return nil
}

// Clear drops every requirement by asserting ES_CONTINUOUS alone.
func (a *executionStateAdapter) Clear() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	prev, _, _ := procSetThreadExecutionState.Call(uintptr(esContinuous))
	if prev == 0 {
		return errors.Mark(
			errors.New("SetThreadExecutionState(ES_CONTINUOUS) failed"), errors.ErrAdapter)
	}
	a.applied = state.Value{}
	return nil
}

// Current asks the OS for the state in force. Passing zero sets nothing
// and reports the previous flags; when the OS rejects the probe the last
// applied value is returned instead.
func (a *executionStateAdapter) Current() state.Value {
	a.mu.Lock()
	defer a.mu.Unlock()

	prev, _, _ := procSetThreadExecutionState.Call(0)
	if prev == 0 {
		return a.applied
	}
	return decodeFlags(prev)
}
