package nosuspend

import (
	"sync"

	"github.com/thoreinstein/nosuspend/internal/adapter"
	"github.com/thoreinstein/nosuspend/internal/errors"
	"github.com/thoreinstein/nosuspend/internal/state"
)

// State describes an inhibition: which power-saving axes are held off,
// plus the metadata shown by desktops that ask for a justification.
type State = state.Value

// Adapter is the platform contract a Manager drives. Supplying one is
// only needed for tests and embedders; Default resolves the right one
// for the running platform.
type Adapter = state.Adapter

// Resolution reports which adapter was selected and whether the platform
// is actually supported.
type Resolution = adapter.Resolution

// Options configures one guard acquisition.
type Options struct {
	// Suspend inhibits system sleep.
	Suspend bool

	// Display inhibits display sleep.
	Display bool

	// Hidden hints that the inhibition should not surface in system UI.
	Hidden bool

	// Inherit extends the ambient effective state instead of replacing
	// it: axes are unioned with whatever outer guards already hold.
	Inherit bool

	// AppName and Reason are shown by desktops that require a
	// human-readable justification.
	AppName string
	Reason  string
}

// DefaultOptions returns the standard acquisition: inhibit system
// suspend only, stay visible in system UI, and inherit the ambient
// display policy.
func DefaultOptions() Options {
	return Options{Suspend: true, Inherit: true}
}

func (o Options) value() State {
	return State{
		Suspend: o.Suspend,
		Display: o.Display,
		Hidden:  o.Hidden,
		AppName: o.AppName,
		Reason:  o.Reason,
	}
}

// Manager owns one inhibition stack. Most callers use the process-wide
// default through the package-level functions; constructing a Manager
// directly injects a custom adapter.
type Manager struct {
	stack *state.Stack
}

// NewManager creates a manager driving the given adapter.
func NewManager(a Adapter) *Manager {
	return &Manager{stack: state.NewStack(a)}
}

// Acquire pushes a request onto the manager's stack and returns the
// active guard. The guard owns exactly one stack entry; it must be
// released exactly once, on every exit path:
//
//	guard, err := mgr.Acquire(nosuspend.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	defer guard.Release()
func (m *Manager) Acquire(opts Options) (*Guard, error) {
	token, effective, err := m.stack.Push(opts.value(), opts.Inherit)
	if err != nil {
		return nil, err
	}
	return &Guard{stack: m.stack, token: token, effective: effective}, nil
}

// Current returns the effective state in force, or the null state when
// no guard is active. Pure read, no platform call.
func (m *Manager) Current() State {
	return m.stack.Current()
}

// Do runs fn under a guard and guarantees release on every exit path.
// fn's error takes precedence over a release failure.
func (m *Manager) Do(opts Options, fn func() error) error {
	guard, err := m.Acquire(opts)
	if err != nil {
		return err
	}

	fnErr := fn()
	if relErr := guard.Release(); fnErr == nil {
		return relErr
	}
	return fnErr
}

// Guard is an active inhibition. It is single-owner: sharing a guard
// across goroutines without external synchronization is unsupported, and
// releasing twice is rejected.
type Guard struct {
	stack     *state.Stack
	token     state.Token
	effective State
	released  bool
}

// Effective returns the effective state this guard produced, for
// inspection while the guard is active.
func (g *Guard) Effective() State {
	return g.effective
}

// Release pops the guard's stack entry and restores the prior effective
// state. The entry is removed even when the platform call restoring the
// prior state fails; the adapter error is reported but the stack is
// never left inconsistent.
func (g *Guard) Release() error {
	if g.released {
		return errors.ErrGuardReleased
	}
	g.released = true
	return g.stack.Pop(g.token)
}

var (
	defaultOnce sync.Once
	defaultMgr  *Manager
)

// Default returns the process-wide manager, creating it on first use
// with the resolved platform adapter. It lives for the remainder of the
// process; any guard still active at process exit is a caller error and
// its platform inhibition may outlive the intent on platforms where the
// OS does not tie inhibitions to the process.
func Default() *Manager {
	defaultOnce.Do(func() {
		defaultMgr = NewManager(adapter.Resolve().Adapter)
	})
	return defaultMgr
}

// Acquire acquires a guard on the default manager.
func Acquire(opts Options) (*Guard, error) {
	return Default().Acquire(opts)
}

// Do runs fn under a guard on the default manager.
func Do(opts Options, fn func() error) error {
	return Default().Do(opts, fn)
}

// Current returns the effective state in force on the default manager.
// Useful for introspection outside any active guard.
func Current() State {
	return Default().Current()
}

// Platform reports how the default adapter was resolved. Check Supported
// to warn users when inhibition silently degraded to a no-op.
func Platform() Resolution {
	return adapter.Resolve()
}
