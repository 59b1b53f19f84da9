package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/thoreinstein/nosuspend/internal/errors"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	Init()
	t.Cleanup(viper.Reset)
}

func TestLoad_Defaults(t *testing.T) {
	resetViper(t)

	// Run from an empty directory so no stray config file is picked up.
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error = %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir() error = %v", err)
	}
	t.Cleanup(func() { os.Chdir(origDir) })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.AppName != AppName {
		t.Errorf("AppName = %q, want %q", cfg.AppName, AppName)
	}
	if cfg.Adapter != AdapterAuto {
		t.Errorf("Adapter = %q, want %q", cfg.Adapter, AdapterAuto)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want text", cfg.LogFormat)
	}
}

func TestLoad_ExplicitFile(t *testing.T) {
	resetViper(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "version: 1\napp_name: backup-tool\nreason: nightly backup\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.AppName != "backup-tool" {
		t.Errorf("AppName = %q, want backup-tool", cfg.AppName)
	}
	if cfg.Reason != "nightly backup" {
		t.Errorf("Reason = %q", cfg.Reason)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	resetViper(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() with missing explicit file should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "default is valid", mutate: func(*Config) {}},
		{
			name:    "empty app name",
			mutate:  func(c *Config) { c.AppName = "" },
			wantErr: true,
		},
		{
			name:    "unknown adapter",
			mutate:  func(c *Config) { c.Adapter = "dbus" },
			wantErr: true,
		},
		{
			name:   "noop adapter allowed",
			mutate: func(c *Config) { c.Adapter = AdapterNoop },
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.LogFormat = "xml" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				if !errors.Is(err, errors.ErrInvalidConfig) {
					t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
				}
			} else if err != nil {
				t.Errorf("Validate() error = %v", err)
			}
		})
	}
}

func TestWrite_Formats(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{format: FormatYAML, want: "app_name: nosuspend"},
		{format: FormatTOML, want: "app_name = 'nosuspend'"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "sub", "config."+tt.format)

			if err := Default().Write(path, tt.format); err != nil {
				t.Fatalf("Write() error = %v", err)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(string(data), tt.want) {
				t.Errorf("written config missing %q:\n%s", tt.want, data)
			}
		})
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Default().Write(filepath.Join(t.TempDir(), "c.ini"), "ini")
	if err == nil {
		t.Fatal("Write() with unknown format should fail")
	}
}
