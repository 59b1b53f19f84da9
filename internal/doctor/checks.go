package doctor

import (
	"os"
	"os/exec"
	"runtime"

	"github.com/thoreinstein/nosuspend/internal/adapter"
	"github.com/thoreinstein/nosuspend/internal/config"
)

// AdapterCheck verifies that a real platform adapter was resolved.
type AdapterCheck struct{}

// Name returns the check identifier.
func (c *AdapterCheck) Name() string { return "adapter-resolution" }

// Category returns the check grouping.
func (c *AdapterCheck) Category() string { return "adapter" }

// Run resolves the platform adapter and reports degradation.
func (c *AdapterCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
	}

	res := adapter.Resolve()
	result.Details = map[string]any{
		"platform": res.Platform,
		"adapter":  res.Name,
	}

	if !res.Supported {
		result.Status = SeverityWarning
		result.Message = "power inhibition degraded to no-op: " + res.Reason
		result.FixHint = "guards will be accepted but the machine may still sleep"
		return result
	}

	result.Status = SeverityPass
	result.Message = "platform adapter available (" + res.Name + ")"
	return result
}

// ConfigCheck verifies that the configuration loads and validates.
type ConfigCheck struct{}

// Name returns the check identifier.
func (c *ConfigCheck) Name() string { return "config-valid" }

// Category returns the check grouping.
func (c *ConfigCheck) Category() string { return "config" }

// Run loads the configuration from the default locations.
func (c *ConfigCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
	}

	// Self-contained: registers defaults even when the CLI has not
	// initialized viper yet.
	config.Init()
	cfg, err := config.Load("")
	if err != nil {
		result.Status = SeverityError
		result.Message = "configuration invalid: " + err.Error()
		result.FixHint = "Run: nosuspend config init"
		return result
	}

	result.Status = SeverityPass
	result.Message = "configuration valid"
	result.Details = map[string]any{
		"app_name": cfg.AppName,
		"adapter":  cfg.Adapter,
	}
	return result
}

// ToolingCheck verifies that the platform mechanism behind the adapter
// is reachable: the session bus on Linux, the caffeinate binary on
// macOS. Windows needs nothing beyond kernel32.
type ToolingCheck struct{}

// Name returns the check identifier.
func (c *ToolingCheck) Name() string { return "platform-tooling" }

// Category returns the check grouping.
func (c *ToolingCheck) Category() string { return "adapter" }

// Run inspects the platform tooling for the running OS.
func (c *ToolingCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  map[string]any{"platform": runtime.GOOS},
	}

	switch runtime.GOOS {
	case "linux":
		if os.Getenv("DBUS_SESSION_BUS_ADDRESS") == "" {
			result.Status = SeverityWarning
			result.Message = "DBUS_SESSION_BUS_ADDRESS is not set; no desktop session bus reachable"
			result.FixHint = "run inside a graphical session, or expect no-op inhibition"
			return result
		}
		result.Status = SeverityPass
		result.Message = "session bus address present"
	case "darwin":
		path, err := exec.LookPath("caffeinate")
		if err != nil {
			result.Status = SeverityError
			result.Message = "caffeinate not found in PATH"
			return result
		}
		result.Status = SeverityPass
		result.Message = "caffeinate found"
		result.Details["path"] = path
	case "windows":
		result.Status = SeverityPass
		result.Message = "execution-state flags always available"
	default:
		result.Status = SeverityWarning
		result.Message = "no inhibition mechanism for " + runtime.GOOS
	}

	return result
}
