package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/nosuspend/internal/doctor"
	"github.com/thoreinstein/nosuspend/internal/errors"
)

var (
	doctorJSON  bool
	doctorQuiet bool
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false,
		"output results as JSON")
	doctorCmd.Flags().BoolVar(&doctorQuiet, "quiet", false,
		"suppress output, exit code only")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose platform and configuration issues",
	Long: `Run diagnostic checks on the platform inhibition mechanism and the
nosuspend configuration.

Verifies that an adapter is available for this platform, that the
configuration file parses and validates, and that the platform tooling
the adapter depends on is reachable.

Exit codes:
  0 - All checks passed
  1 - Warnings present, no errors
  2 - Errors present`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		if doctorJSON && doctorQuiet {
			return errors.NewUserError(nil, "flags --json and --quiet are mutually exclusive")
		}
		return nil
	},
	RunE: runDoctor,
}

func runDoctor(c *cobra.Command, _ []string) error {
	report := doctor.NewRunner().Run()

	if !doctorQuiet {
		format := doctor.FormatText
		if doctorJSON {
			format = doctor.FormatJSON
		}
		if err := doctor.NewReporter(c.OutOrStdout(), format).Report(report); err != nil {
			return err
		}
	}

	// The report itself is the message; the exit code alone signals the
	// aggregate outcome.
	if report.Summary.Errors > 0 {
		return errors.NewExitError(nil, errors.ExitSystem)
	}
	if report.Summary.Warnings > 0 {
		return errors.NewExitError(nil, errors.ExitUser)
	}
	return nil
}
