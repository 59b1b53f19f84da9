package commands

import (
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/nosuspend/internal/adapter"
	"github.com/thoreinstein/nosuspend/internal/config"
	"github.com/thoreinstein/nosuspend/internal/errors"
	"github.com/thoreinstein/nosuspend/internal/logging"
	"github.com/thoreinstein/nosuspend/pkg/nosuspend"
)

var (
	runDisplay bool
	runHidden  bool
	runAppName string
	runReason  string
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVarP(&runDisplay, "display", "d", false,
		"also keep the display awake")
	runCmd.Flags().BoolVar(&runHidden, "hidden", false,
		"hint that the inhibition should not surface in system UI")
	runCmd.Flags().StringVar(&runAppName, "app-name", "",
		"application name shown by the desktop (default: from config)")
	runCmd.Flags().StringVar(&runReason, "reason", "",
		"reason shown by the desktop (default: the command line)")
}

var runCmd = &cobra.Command{
	Use:   "run [flags] -- <command> [args...]",
	Short: "Run a command while the machine is kept awake",
	Long: `Run acquires one top-level inhibition for the lifetime of the given
command and releases it when the command exits, on every exit path
including abnormal termination. The inhibition replaces rather than
extends any ambient state (inherit is off for the wrapper).

The command's stdio is passed through and its exit code is propagated.`,
	Example: `  nosuspend run -- wget https://example.com/huge.iso
  nosuspend run --display --reason "movie night" -- mpv film.mkv`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

// defaultManager returns the manager to acquire on, honoring the
// configured adapter override.
func defaultManager() *nosuspend.Manager {
	if loadedConfig != nil && loadedConfig.Adapter == config.AdapterNoop {
		return nosuspend.NewManager(adapter.NewNoop())
	}
	return nosuspend.Default()
}

func runRun(c *cobra.Command, args []string) error {
	logger := logging.FromContext(c.Context())

	opts := runOptions(args)
	mgr := defaultManager()

	if res := nosuspend.Platform(); !res.Supported {
		logger.Warn("power inhibition unavailable, running without it",
			"platform", res.Platform, "reason", res.Reason)
	}

	guard, err := mgr.Acquire(opts)
	if err != nil {
		return errors.NewSystemError(err, "the platform rejected the inhibition request")
	}
	defer func() {
		if relErr := guard.Release(); relErr != nil {
			logger.Error("releasing inhibition failed", "error", relErr)
		}
	}()
	logger.Debug("inhibition active",
		"effective", guard.Effective().String(), "command", args[0])

	child := exec.Command(args[0], args[1:]...)
	child.Stdin = os.Stdin
	child.Stdout = os.Stdout
	child.Stderr = os.Stderr

	if err := child.Start(); err != nil {
		return errors.NewUserError(
			errors.Wrapf(err, "starting %s", args[0]), "check that the command exists")
	}

	// Forward termination signals so the child can shut down cleanly;
	// the guard is released after it exits either way.
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigc)
	go func() {
		for sig := range sigc {
			_ = child.Process.Signal(sig)
		}
	}()

	if err := child.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// Propagate the child's exit code silently.
			return errors.NewExitError(nil, exitErr.ExitCode())
		}
		return errors.NewSystemError(err, "the command could not be waited on")
	}
	return nil
}

// runOptions builds the acquisition from flags, config defaults, and the
// command line itself as the fallback reason.
func runOptions(args []string) nosuspend.Options {
	opts := nosuspend.Options{
		Suspend: true,
		Display: runDisplay,
		Hidden:  runHidden,
		Inherit: false,
		AppName: runAppName,
		Reason:  runReason,
	}
	if opts.AppName == "" && loadedConfig != nil {
		opts.AppName = loadedConfig.AppName
	}
	if opts.Reason == "" {
		opts.Reason = strings.Join(args, " ")
	}
	return opts
}
