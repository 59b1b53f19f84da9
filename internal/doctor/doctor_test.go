package doctor

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

// staticCheck returns a canned result.
type staticCheck struct {
	name     string
	category string
	status   Severity
}

func (c *staticCheck) Name() string     { return c.name }
func (c *staticCheck) Category() string { return c.category }
func (c *staticCheck) Run() *CheckResult {
	return &CheckResult{
		Name:     c.name,
		Category: c.category,
		Status:   c.status,
		Message:  c.name + " ran",
	}
}

func TestRunner_SummaryCounts(t *testing.T) {
	r := &Runner{}
	r.AddCheck(&staticCheck{name: "a", category: "x", status: SeverityPass})
	r.AddCheck(&staticCheck{name: "b", category: "x", status: SeverityWarning})
	r.AddCheck(&staticCheck{name: "c", category: "y", status: SeverityError})
	r.AddCheck(&staticCheck{name: "d", category: "y", status: SeverityInfo})

	report := r.Run()

	if len(report.Results) != 4 {
		t.Fatalf("Results = %d, want 4", len(report.Results))
	}
	want := Summary{Passed: 1, Info: 1, Warnings: 1, Errors: 1}
	if report.Summary != want {
		t.Errorf("Summary = %+v, want %+v", report.Summary, want)
	}
	if report.Summary.Healthy() {
		t.Error("Summary with errors should not be healthy")
	}
}

func TestNewRunner_DefaultChecks(t *testing.T) {
	report := NewRunner().Run()

	names := make(map[string]bool)
	for _, res := range report.Results {
		names[res.Name] = true
	}
	for _, want := range []string{"adapter-resolution", "config-valid", "platform-tooling"} {
		if !names[want] {
			t.Errorf("default runner missing check %q", want)
		}
	}
}

func TestReporter_Text(t *testing.T) {
	var buf bytes.Buffer
	r := &Runner{}
	r.AddCheck(&staticCheck{name: "adapter", category: "adapter", status: SeverityPass})

	if err := NewReporter(&buf, FormatText).Report(r.Run()); err != nil {
		t.Fatalf("Report() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "adapter ran") {
		t.Errorf("text report missing message: %q", out)
	}
}

func TestReporter_JSON(t *testing.T) {
	var buf bytes.Buffer
	r := &Runner{}
	r.AddCheck(&staticCheck{name: "adapter", category: "adapter", status: SeverityWarning})

	if err := NewReporter(&buf, FormatJSON).Report(r.Run()); err != nil {
		t.Fatalf("Report() error = %v", err)
	}

	var decoded Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	if len(decoded.Results) != 1 {
		t.Fatalf("decoded %d results, want 1", len(decoded.Results))
	}
	if decoded.Summary.Warnings != 1 {
		t.Errorf("Warnings = %d, want 1", decoded.Summary.Warnings)
	}
}

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		s    Severity
		want string
	}{
		{SeverityPass, "pass"},
		{SeverityInfo, "info"},
		{SeverityWarning, "warning"},
		{SeverityError, "error"},
		{Severity(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}
