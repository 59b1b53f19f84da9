package paths

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigDir_UnderConfigHome(t *testing.T) {
	dir := ConfigDir()

	if !strings.HasPrefix(dir, ConfigHome()) {
		t.Errorf("ConfigDir() = %q, want prefix %q", dir, ConfigHome())
	}
	if filepath.Base(dir) != AppDir {
		t.Errorf("ConfigDir() base = %q, want %q", filepath.Base(dir), AppDir)
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	if err := EnsureDir(dir, 0); err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if !info.IsDir() {
		t.Error("EnsureDir should create a directory")
	}
	if perm := info.Mode().Perm(); perm != DefaultDirPerm {
		t.Errorf("perm = %o, want %o", perm, DefaultDirPerm)
	}

	// Idempotent on an existing directory.
	if err := EnsureDir(dir, 0); err != nil {
		t.Errorf("EnsureDir() on existing dir error = %v", err)
	}
}
