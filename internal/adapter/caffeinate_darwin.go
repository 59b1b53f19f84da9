//go:build darwin

package adapter

import (
	"os"
	"os/exec"
	"strconv"
	"sync"

	"github.com/thoreinstein/nosuspend/internal/errors"
	"github.com/thoreinstein/nosuspend/internal/state"
)

// caffeinateAdapter keeps a caffeinate child alive while any axis is
// inhibited. The child is keyed to the requested axes and only restarted
// when they change; re-applying an identical state touches nothing.
type caffeinateAdapter struct {
	mu      sync.Mutex
	path    string
	cmd     *exec.Cmd
	applied state.Value
}

func newPlatformAdapter() (state.Adapter, string, error) {
	path, err := exec.LookPath("caffeinate")
	if err != nil {
		return nil, "", errors.Wrap(err, "caffeinate not found")
	}
	return &caffeinateAdapter{path: path}, NameCaffeinate, nil
}

func caffeinateArgs(v state.Value) []string {
	// -i prevents idle sleep, -s prevents system sleep on AC power,
	// -d prevents display sleep. -w ties the child to our lifetime so a
	// crashed process cannot leave the machine awake.
	flags := "-"
	if v.Suspend {
		flags += "is"
	}
	if v.Display {
		flags += "d"
	}
	return []string{flags, "-w", strconv.Itoa(os.Getpid())}
}

func sameAxes(a, b state.Value) bool {
	return a.Suspend == b.Suspend && a.Display == b.Display
}

func (a *caffeinateAdapter) Apply(v state.Value) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if sameAxes(a.applied, v) && (v.IsNull() || a.cmd != nil) {
		a.applied = v
		return nil
	}

	a.stopLocked()
	if v.IsNull() {
		a.applied = v
		return nil
	}

	cmd := exec.Command(a.path, caffeinateArgs(v)...)
	if err := cmd.Start(); err != nil {
		return errors.Mark(errors.Wrap(err, "starting caffeinate"), errors.ErrAdapter)
	}
	// Reap in the background so the child never lingers as a zombie.
	go func() { _ = cmd.Wait() }()

	a.cmd = cmd
	a.applied = v
	return nil
}

func (a *caffeinateAdapter) Clear() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.stopLocked()
	a.applied = state.Value{}
	return nil
}

func (a *caffeinateAdapter) Current() state.Value {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.applied
}

func (a *caffeinateAdapter) stopLocked() {
	if a.cmd != nil && a.cmd.Process != nil {
		_ = a.cmd.Process.Kill()
	}
	a.cmd = nil
}
