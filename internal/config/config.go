// Package config provides configuration management for nosuspend using Viper.
package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/nosuspend/internal/errors"
	"github.com/thoreinstein/nosuspend/internal/paths"
)

// AppName is the application name used for config file naming and as the
// default inhibition app name.
const AppName = "nosuspend"

// Adapter selection values for the "adapter" key.
const (
	// AdapterAuto resolves the platform adapter at startup.
	AdapterAuto = "auto"
	// AdapterNoop forces the no-op adapter, disabling real inhibition.
	AdapterNoop = "noop"
)

// Config represents the top-level configuration structure.
type Config struct {
	Version int `mapstructure:"version" yaml:"version" toml:"version"`

	// AppName identifies this process to desktops that display active
	// inhibitions. Used when a guard does not set its own.
	AppName string `mapstructure:"app_name" yaml:"app_name" toml:"app_name"`

	// Reason is the default human-readable justification for guards that
	// do not set their own.
	Reason string `mapstructure:"reason" yaml:"reason" toml:"reason"`

	// Adapter selects the platform adapter: auto or noop.
	Adapter string `mapstructure:"adapter" yaml:"adapter" toml:"adapter"`

	// LogFormat is the default log format: text or json.
	LogFormat string `mapstructure:"log_format" yaml:"log_format" toml:"log_format"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix("NOSUSPEND")
	viper.AutomaticEnv()

	viper.SetDefault("version", 1)
	viper.SetDefault("app_name", AppName)
	viper.SetDefault("reason", "nosuspend was invoked")
	viper.SetDefault("adapter", AdapterAuto)
	viper.SetDefault("log_format", "text")
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and falls back
// to defaults when no file exists.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if path != "" {
				return nil, errors.Wrapf(err, "config file not found at %s", path)
			}
			// Implicit load: defaults are fine.
		} else {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Version:   1,
		AppName:   AppName,
		Reason:    "nosuspend was invoked",
		Adapter:   AdapterAuto,
		LogFormat: "text",
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.AppName == "" {
		return errors.Wrap(errors.ErrInvalidConfig, "app_name must not be empty")
	}
	switch c.Adapter {
	case AdapterAuto, AdapterNoop:
	default:
		return errors.Wrapf(errors.ErrInvalidConfig,
			"adapter %q (valid: %s, %s)", c.Adapter, AdapterAuto, AdapterNoop)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return errors.Wrapf(errors.ErrInvalidConfig,
			"log_format %q (valid: text, json)", c.LogFormat)
	}
	return nil
}

// Formats accepted by Write.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Write marshals the configuration to path in the given format, creating
// the parent directory if needed. Used by "nosuspend config init".
func (c *Config) Write(path, format string) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatTOML:
		data, err = toml.Marshal(c)
	case FormatYAML:
		data, err = yaml.Marshal(c)
	default:
		return errors.Newf("unknown config format %q (valid: %s, %s)",
			format, FormatYAML, FormatTOML)
	}
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	if err := paths.EnsureDir(filepath.Dir(path), 0); err != nil {
		return errors.Wrap(err, "creating config directory")
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return errors.Wrap(err, "writing config file")
	}
	return nil
}
