package doctor

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/thoreinstein/nosuspend/internal/errors"
)

// Format specifies the output format for doctor reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// Reporter formats and writes doctor reports.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a new Reporter.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
	}
}

// Report writes the doctor report to the output.
func (r *Reporter) Report(report *Report) error {
	if report == nil {
		return nil
	}

	switch r.format {
	case FormatJSON:
		return r.reportJSON(report)
	default:
		return r.reportText(report)
	}
}

func (r *Reporter) reportJSON(report *Report) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(report), "encoding JSON report")
}

func (r *Reporter) reportText(report *Report) error {
	for _, res := range report.Results {
		fmt.Fprintf(r.out, "%s %s: %s\n", marker(res.Status), res.Name, res.Message)
		if res.FixHint != "" {
			fmt.Fprintf(r.out, "    hint: %s\n", res.FixHint)
		}
	}

	fmt.Fprintln(r.out)
	if report.Summary.Healthy() {
		fmt.Fprintln(r.out, color.GreenString("✓ %d check(s) passed, %d warning(s)",
			report.Summary.Passed, report.Summary.Warnings))
	} else {
		fmt.Fprintln(r.out, color.RedString("✗ %d error(s), %d warning(s)",
			report.Summary.Errors, report.Summary.Warnings))
	}
	return nil
}

func marker(s Severity) string {
	switch s {
	case SeverityPass:
		return color.GreenString("✓")
	case SeverityInfo:
		return color.CyanString("i")
	case SeverityWarning:
		return color.YellowString("!")
	default:
		return color.RedString("✗")
	}
}
