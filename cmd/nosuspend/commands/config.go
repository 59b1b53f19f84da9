package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/nosuspend/internal/config"
	"github.com/thoreinstein/nosuspend/internal/errors"
	"github.com/thoreinstein/nosuspend/internal/paths"
)

var (
	configInitFormat string
	configInitForce  bool
	configInitOutput string
)

func init() {
	configInitCmd.Flags().StringVar(&configInitFormat, "format", config.FormatYAML,
		"config file format: yaml, toml")
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false,
		"overwrite an existing config file")
	configInitCmd.Flags().StringVarP(&configInitOutput, "output", "o", "",
		"write to this path instead of the default location")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage nosuspend configuration",
	Long: `Manage nosuspend configuration stored in ~/.config/nosuspend/config.yaml.

Without a subcommand, shows the effective configuration.`,
	Example: `  # Show the effective configuration
  nosuspend config

  # Create a config file with the defaults
  nosuspend config init

See Also: nosuspend doctor`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: `Show the effective configuration in YAML format, merging the config
file, environment variables, and built-in defaults.`,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a configuration file with the defaults",
	Long: `Create a configuration file populated with the built-in defaults.

Writes to ~/.config/nosuspend/config.yaml unless --output is given.
Refuses to overwrite an existing file without --force.`,
	Example: `  # Create ~/.config/nosuspend/config.yaml
  nosuspend config init

  # Create a TOML config in the current directory
  nosuspend config init --format toml -o ./config.toml`,
	RunE: runConfigInit,
}

func runConfigShow(c *cobra.Command, _ []string) error {
	cfg := loadedConfig
	if cfg == nil {
		cfg = config.Default()
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}
	fmt.Fprint(c.OutOrStdout(), string(data))
	return nil
}

func runConfigInit(c *cobra.Command, _ []string) error {
	path := configInitOutput
	if path == "" {
		path = filepath.Join(paths.ConfigDir(), "config."+configInitFormat)
	}

	if !configInitForce {
		if _, err := os.Stat(path); err == nil {
			return errors.NewUserError(
				errors.Newf("config file already exists at %s", path),
				"pass --force to overwrite it")
		}
	}

	if err := config.Default().Write(path, configInitFormat); err != nil {
		return errors.NewConfigError(err)
	}

	fmt.Fprintf(c.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
