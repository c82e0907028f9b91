// Package health runs the checks behind `hooknotify doctor`.
package health

import (
	"fmt"
	"os/exec"
	"slices"
	"strings"
)

// CheckResult represents the result of a single health check
type CheckResult struct {
	Name    string
	Passed  bool
	Message string
}

// HealthReport contains all health check results
type HealthReport struct {
	Checks []CheckResult
	Passed bool
}

// Options is what the checks inspect.
type Options struct {
	// ConfigErr is the error from loading configuration, if any.
	ConfigErr error
	// NotifyScript is the configured notification command.
	NotifyScript string
	// EnabledEvents are the configured events.
	EnabledEvents []string
	// NotifyOnAskUser is the configured ask-user switch.
	NotifyOnAskUser bool
	// KnownEvents are the events the host is known to fire.
	KnownEvents []string
}

// RunHealthChecks runs all health checks and returns a report
func RunHealthChecks(opts Options) *HealthReport {
	report := &HealthReport{
		Checks: make([]CheckResult, 0, 3),
		Passed: true,
	}

	add := func(c CheckResult) {
		report.Checks = append(report.Checks, c)
		if !c.Passed {
			report.Passed = false
		}
	}

	add(CheckConfig(opts.ConfigErr))
	if opts.ConfigErr != nil {
		return report
	}
	add(CheckNotifyCommand(opts.NotifyScript))
	add(CheckEnabledEvents(opts.EnabledEvents, opts.KnownEvents, opts.NotifyOnAskUser))

	return report
}

// CheckConfig reports whether configuration loaded.
func CheckConfig(err error) CheckResult {
	if err != nil {
		return CheckResult{
			Name:    "Configuration",
			Passed:  false,
			Message: err.Error(),
		}
	}
	return CheckResult{
		Name:    "Configuration",
		Passed:  true,
		Message: "configuration is valid",
	}
}

// CheckNotifyCommand checks that the notification command can be run.
// It accepts both names on PATH and paths to executables.
func CheckNotifyCommand(command string) CheckResult {
	if command == "" {
		return CheckResult{
			Name:    "Notification command",
			Passed:  false,
			Message: "notify_script is empty",
		}
	}

	path, err := exec.LookPath(command)
	if err != nil {
		return CheckResult{
			Name:    "Notification command",
			Passed:  false,
			Message: fmt.Sprintf("%s not found or not executable", command),
		}
	}

	return CheckResult{
		Name:    "Notification command",
		Passed:  true,
		Message: path,
	}
}

// CheckEnabledEvents fails configurations that can never notify: no enabled
// events and notify_on_ask_user off. Events the host is not known to fire are
// listed but do not fail the check.
func CheckEnabledEvents(enabled, known []string, askUser bool) CheckResult {
	if len(enabled) == 0 && !askUser {
		return CheckResult{
			Name:    "Enabled events",
			Passed:  false,
			Message: "no events enabled and notify_on_ask_user is off, nothing will notify",
		}
	}

	var custom []string
	for _, e := range enabled {
		if !slices.Contains(known, e) {
			custom = append(custom, e)
		}
	}

	msg := fmt.Sprintf("%d enabled", len(enabled))
	if len(enabled) == 0 {
		msg = "no events enabled"
	}
	if len(custom) > 0 {
		msg += fmt.Sprintf(" (not fired by the host as far as known: %s)", strings.Join(custom, ", "))
	}

	return CheckResult{
		Name:    "Enabled events",
		Passed:  true,
		Message: msg,
	}
}

// FormatReport formats the health report for console output
func FormatReport(report *HealthReport) string {
	var b strings.Builder

	for _, check := range report.Checks {
		mark := "✓"
		if !check.Passed {
			mark = "✗"
		}
		fmt.Fprintf(&b, "%s %s: %s\n", mark, check.Name, check.Message)
	}

	return b.String()
}
