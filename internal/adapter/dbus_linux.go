//go:build linux

package adapter

import (
	"sync"

	"github.com/godbus/dbus/v5"

	"github.com/thoreinstein/nosuspend/internal/errors"
	"github.com/thoreinstein/nosuspend/internal/state"
)

// D-Bus names for the inhibition interfaces this adapter speaks.
const (
	gnomeSessionDest = "org.gnome.SessionManager"
	gnomeSessionPath = "/org/gnome/SessionManager"

	fdoPowerDest = "org.freedesktop.PowerManagement"
	fdoPowerPath = "/org/freedesktop/PowerManagement/Inhibit"

	screenSaverDest = "org.freedesktop.ScreenSaver"
	screenSaverPath = "/org/freedesktop/ScreenSaver"

	// org.gnome.SessionManager.Inhibit flag: inhibit suspending the
	// session or computer.
	gnomeInhibitSuspend = uint32(4)
)

// Fallback metadata for desktops that require a justification string.
const (
	defaultAppName = "nosuspend"
	defaultReason  = "nosuspend was invoked"
)

// sessionBusAdapter holds at most one inhibitor registration per axis,
// identified by the cookie the desktop returned. Registrations are
// created when an axis turns on and released when it turns off, which
// makes Apply idempotent on reference-counting desktops: re-applying an
// identical state touches no registration.
type sessionBusAdapter struct {
	mu   sync.Mutex
	conn *dbus.Conn

	applied        state.Value
	releaseSuspend func() error
	releaseDisplay func() error
}

func newSessionBusAdapter() (*sessionBusAdapter, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, errors.Wrap(err, "connecting to session bus")
	}
	return &sessionBusAdapter{conn: conn}, nil
}

func newPlatformAdapter() (state.Adapter, string, error) {
	a, err := newSessionBusAdapter()
	if err != nil {
		return nil, "", err
	}
	return a, NameSessionBus, nil
}

// Apply reconciles the held registrations against v. An axis already in
// the requested state is left alone. If acquiring the second axis fails,
// the registration acquired by this call is released again before the
// error is returned, so a failed apply leaves the platform as it was.
func (a *sessionBusAdapter) Apply(v state.Value) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	appName := v.AppName
	if appName == "" {
		appName = defaultAppName
	}
	reason := v.Reason
	if reason == "" {
		reason = defaultReason
	}

	var acquiredSuspend bool
	if v.Suspend && a.releaseSuspend == nil {
		release, err := a.inhibitSuspend(appName, reason)
		if err != nil {
			return errors.Mark(err, errors.ErrAdapter)
		}
		a.releaseSuspend = release
		acquiredSuspend = true
	}

	if v.Display && a.releaseDisplay == nil {
		release, err := a.inhibitDisplay(appName, reason)
		if err != nil {
			if acquiredSuspend {
				_ = a.releaseSuspend()
				a.releaseSuspend = nil
			}
			return errors.Mark(err, errors.ErrAdapter)
		}
		a.releaseDisplay = release
	}

	var firstErr error
	if !v.Suspend && a.releaseSuspend != nil {
		firstErr = a.releaseSuspend()
		a.releaseSuspend = nil
	}
	if !v.Display && a.releaseDisplay != nil {
		if err := a.releaseDisplay(); firstErr == nil {
			firstErr = err
		}
		a.releaseDisplay = nil
	}
	if firstErr != nil {
		return errors.Mark(errors.Wrap(firstErr, "releasing inhibitor"), errors.ErrAdapter)
	}

	a.applied = v
	return nil
}

// Clear releases every registration the adapter still holds. Safe to
// call repeatedly; releasing is best-effort per cookie so one failing
// interface does not leak the other.
func (a *sessionBusAdapter) Clear() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	var firstErr error
	if a.releaseSuspend != nil {
		firstErr = a.releaseSuspend()
		a.releaseSuspend = nil
	}
	if a.releaseDisplay != nil {
		if err := a.releaseDisplay(); firstErr == nil {
			firstErr = err
		}
		a.releaseDisplay = nil
	}
	a.applied = state.Value{}

	if firstErr != nil {
		return errors.Mark(errors.Wrap(firstErr, "clearing inhibitors"), errors.ErrAdapter)
	}
	return nil
}

// Current returns the last applied value; the session bus offers no
// cheap authoritative read of our own registrations.
func (a *sessionBusAdapter) Current() state.Value {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.applied
}

// inhibitSuspend registers a suspend inhibitor and returns its release
// call. Tries the GNOME session manager first, then the freedesktop
// power management interface used by KDE and Xfce.
func (a *sessionBusAdapter) inhibitSuspend(appName, reason string) (func() error, error) {
	gnome := a.conn.Object(gnomeSessionDest, gnomeSessionPath)
	var cookie uint32
	err := gnome.Call("org.gnome.SessionManager.Inhibit", 0,
		appName, uint32(0), reason, gnomeInhibitSuspend).Store(&cookie)
	if err == nil {
		return func() error {
			return gnome.Call("org.gnome.SessionManager.Uninhibit", 0, cookie).Err
		}, nil
	}

	fdo := a.conn.Object(fdoPowerDest, fdoPowerPath)
	ferr := fdo.Call("org.freedesktop.PowerManagement.Inhibit.Inhibit", 0,
		appName, reason).Store(&cookie)
	if ferr != nil {
		return nil, errors.Wrapf(ferr, "no suspend inhibitor interface answered (gnome: %v)", err)
	}
	return func() error {
		return fdo.Call("org.freedesktop.PowerManagement.Inhibit.UnInhibit", 0, cookie).Err
	}, nil
}

// inhibitDisplay registers a screensaver inhibitor and returns its
// release call.
func (a *sessionBusAdapter) inhibitDisplay(appName, reason string) (func() error, error) {
	saver := a.conn.Object(screenSaverDest, screenSaverPath)
	var cookie uint32
	err := saver.Call("org.freedesktop.ScreenSaver.Inhibit", 0,
		appName, reason).Store(&cookie)
	if err != nil {
		return nil, errors.Wrap(err, "inhibiting screensaver")
	}
	return func() error {
		return saver.Call("org.freedesktop.ScreenSaver.UnInhibit", 0, cookie).Err
	}, nil
}
