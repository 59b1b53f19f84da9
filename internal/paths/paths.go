// Package paths resolves the directories nosuspend reads and writes,
// following the XDG base directory specification.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppDir is the directory name used under the XDG homes.
const AppDir = "nosuspend"

// DefaultDirPerm is the default permission for newly created directories.
const DefaultDirPerm = 0o700

// ConfigHome returns the base directory for user configuration,
// typically ~/.config.
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns the directory holding nosuspend's config file,
// typically ~/.config/nosuspend.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppDir)
}

// StateDir returns the directory for logs and other mutable state,
// typically ~/.local/state/nosuspend.
func StateDir() string {
	return filepath.Join(xdg.StateHome, AppDir)
}

// EnsureDir creates the directory and any necessary parents with the
// given permissions. If perm is 0, DefaultDirPerm is used. Idempotent.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}
