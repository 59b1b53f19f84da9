// Package commands implements the CLI commands for nosuspend.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/nosuspend/cmd"
	"github.com/thoreinstein/nosuspend/internal/config"
	"github.com/thoreinstein/nosuspend/internal/errors"
	"github.com/thoreinstein/nosuspend/internal/logging"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// loadedConfig is the configuration loaded during initialization.
var loadedConfig *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("nosuspend version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	loadedConfig, configLoadErr = config.Load(os.Getenv("NOSUSPEND_CONFIG"))
	if loadedConfig == nil {
		loadedConfig = config.Default()
	}
}

var rootCmd = &cobra.Command{
	Use:   "nosuspend",
	Short: "Keep the machine awake while critical work runs",
	Long: `nosuspend prevents the system from sleeping (and optionally the
display from turning off) while a command or critical section runs,
and restores the prior power policy afterward.

Inhibition requests nest: inner guards extend or replace the ambient
state for their duration, and releasing a guard restores exactly what
was in force before it. On platforms without a usable mechanism the
tool degrades to a no-op and warns instead of failing.`,
	Example: `  # Keep the machine awake for the duration of a backup
  nosuspend run -- rsync -a /home /backup

  # Also keep the display on
  nosuspend run --display -- ./render-frames.sh

  # Inspect what is inhibited right now
  nosuspend status

  # Check that the platform mechanism is reachable
  nosuspend doctor`,
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		if err := setupLogging(c); err != nil {
			return err
		}
		return checkConfig(c, args)
	},
	RunE: func(c *cobra.Command, _ []string) error {
		return c.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(c *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("NOSUSPEND_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 1
				case "2":
					v = 2
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	format := logging.Format(logFormat)
	if logFormat == "" && loadedConfig != nil {
		format = logging.Format(loadedConfig.LogFormat)
	}

	opts := &slog.HandlerOptions{Level: level}

	var primaryHandler slog.Handler
	switch format {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(c.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(c.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	c.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkConfig surfaces config load errors before any command runs.
func checkConfig(c *cobra.Command, _ []string) error {
	if c.Name() == "help" || c.Name() == "version" {
		return nil
	}
	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
