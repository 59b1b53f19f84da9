package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/nosuspend/internal/errors"
	"github.com/thoreinstein/nosuspend/pkg/nosuspend"
)

var statusJSON bool

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "output as JSON")
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the adapter in use and the inhibition currently in force",
	RunE: func(c *cobra.Command, _ []string) error {
		res := nosuspend.Platform()
		st := statusReport{
			Platform:  res.Platform,
			Adapter:   res.Name,
			Supported: res.Supported,
			Reason:    res.Reason,
			Effective: nosuspend.Current(),
			Reported:  res.Adapter.Current(),
		}

		if statusJSON {
			return writeStatusJSON(c.OutOrStdout(), st)
		}
		writeStatusText(c.OutOrStdout(), st)
		return nil
	},
}

type statusReport struct {
	Platform  string          `json:"platform"`
	Adapter   string          `json:"adapter"`
	Supported bool            `json:"supported"`
	Reason    string          `json:"reason,omitempty"`
	Effective nosuspend.State `json:"effective"`
	Reported  nosuspend.State `json:"platform_reported"`
}

func writeStatusJSON(w io.Writer, st statusReport) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(st), "encoding status")
}

func writeStatusText(w io.Writer, st statusReport) {
	fmt.Fprintf(w, "Platform: %s\n", st.Platform)
	if st.Supported {
		fmt.Fprintf(w, "Adapter:  %s\n", st.Adapter)
	} else {
		fmt.Fprintf(w, "Adapter:  %s (%s)\n", st.Adapter, color.YellowString(st.Reason))
	}

	if st.Effective.IsNull() {
		fmt.Fprintf(w, "State:    %s\n", "no inhibition active")
		return
	}
	fmt.Fprintf(w, "State:    %s\n", color.GreenString(st.Effective.String()))
	if st.Effective.AppName != "" {
		fmt.Fprintf(w, "Held by:  %s\n", st.Effective.AppName)
	}
	if st.Effective.Reason != "" {
		fmt.Fprintf(w, "Reason:   %s\n", st.Effective.Reason)
	}
}
