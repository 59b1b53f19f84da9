package nosuspend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/nosuspend/internal/errors"
	"github.com/thoreinstein/nosuspend/internal/state"
)

// fakeAdapter records platform calls for assertions.
type fakeAdapter struct {
	applied []State
	clears  int
}

func (f *fakeAdapter) Apply(v state.Value) error {
	f.applied = append(f.applied, v)
	return nil
}

func (f *fakeAdapter) Clear() error {
	f.clears++
	return nil
}

func (f *fakeAdapter) Current() state.Value {
	if len(f.applied) == 0 {
		return state.Value{}
	}
	return f.applied[len(f.applied)-1]
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.True(t, opts.Suspend, "default should inhibit suspend")
	assert.False(t, opts.Display, "default should leave display policy alone")
	assert.False(t, opts.Hidden, "default should be visible in system UI")
	assert.True(t, opts.Inherit, "default should extend the ambient state")
}

func TestManager_AcquireRelease(t *testing.T) {
	fake := &fakeAdapter{}
	mgr := NewManager(fake)

	guard, err := mgr.Acquire(DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, State{Suspend: true}, guard.Effective())
	assert.Equal(t, State{Suspend: true}, mgr.Current())

	require.NoError(t, guard.Release())
	assert.True(t, mgr.Current().IsNull())
	assert.Equal(t, 1, fake.clears, "emptying the stack should clear the adapter once")
}

func TestManager_NestedInherit(t *testing.T) {
	mgr := NewManager(&fakeAdapter{})

	outer, err := mgr.Acquire(DefaultOptions())
	require.NoError(t, err)

	innerOpts := DefaultOptions()
	innerOpts.Suspend = false
	innerOpts.Display = true
	inner, err := mgr.Acquire(innerOpts)
	require.NoError(t, err)

	assert.Equal(t, State{Suspend: true, Display: true}, inner.Effective(),
		"inherited guard should union with the ambient state")

	require.NoError(t, inner.Release())
	assert.Equal(t, outer.Effective(), mgr.Current(),
		"popping the inner guard should restore the outer effective state")
	require.NoError(t, outer.Release())
}

func TestManager_NonInheritReplaces(t *testing.T) {
	mgr := NewManager(&fakeAdapter{})

	outer, err := mgr.Acquire(DefaultOptions())
	require.NoError(t, err)

	inner, err := mgr.Acquire(Options{Display: true, Inherit: false})
	require.NoError(t, err)

	assert.Equal(t, State{Display: true}, inner.Effective(),
		"non-inheriting guard should mask the ambient suspend flag")

	require.NoError(t, inner.Release())
	require.NoError(t, outer.Release())
}

func TestGuard_DoubleReleaseRejected(t *testing.T) {
	mgr := NewManager(&fakeAdapter{})

	guard, err := mgr.Acquire(DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, guard.Release())

	err = guard.Release()
	assert.ErrorIs(t, err, errors.ErrGuardReleased)
}

func TestGuard_OutOfOrderRelease(t *testing.T) {
	mgr := NewManager(&fakeAdapter{})

	outer, err := mgr.Acquire(DefaultOptions())
	require.NoError(t, err)
	inner, err := mgr.Acquire(DefaultOptions())
	require.NoError(t, err)

	err = outer.Release()
	assert.ErrorIs(t, err, errors.ErrStackDiscipline)

	// The inner guard is still the top and unwinds normally.
	require.NoError(t, inner.Release())
}

func TestManager_DoReleasesOnError(t *testing.T) {
	fake := &fakeAdapter{}
	mgr := NewManager(fake)

	boom := errors.New("work failed")
	err := mgr.Do(DefaultOptions(), func() error {
		assert.Equal(t, State{Suspend: true}, mgr.Current())
		return boom
	})

	assert.ErrorIs(t, err, boom, "fn's error should be returned")
	assert.True(t, mgr.Current().IsNull(), "guard must be released on the error path")
	assert.Equal(t, 1, fake.clears)
}

func TestManager_MetadataFlowsToAdapter(t *testing.T) {
	fake := &fakeAdapter{}
	mgr := NewManager(fake)

	opts := DefaultOptions()
	opts.AppName = "backup-tool"
	opts.Reason = "nightly backup"
	guard, err := mgr.Acquire(opts)
	require.NoError(t, err)
	defer func() { require.NoError(t, guard.Release()) }()

	require.Len(t, fake.applied, 1)
	assert.Equal(t, "backup-tool", fake.applied[0].AppName)
	assert.Equal(t, "nightly backup", fake.applied[0].Reason)
}

func TestDefault_Singleton(t *testing.T) {
	assert.Same(t, Default(), Default())

	res := Platform()
	assert.NotNil(t, res.Adapter)
}
