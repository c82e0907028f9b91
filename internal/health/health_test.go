package health

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var known = []string{"tool:error", "session:end", "tool:post"}

func executable(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not supported on windows")
	}
	path := filepath.Join(t.TempDir(), "notify")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755))
	return path
}

func TestCheckNotifyCommand(t *testing.T) {
	t.Parallel()
	script := executable(t)

	notExec := filepath.Join(t.TempDir(), "notify")
	require.NoError(t, os.WriteFile(notExec, []byte("#!/bin/sh\n"), 0o644))

	tests := map[string]struct {
		command string
		passed  bool
	}{
		"absolute executable": {command: script, passed: true},
		"not executable":      {command: notExec, passed: false},
		"missing":             {command: "hooknotify-test-command-that-does-not-exist", passed: false},
		"empty":               {command: "", passed: false},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			result := CheckNotifyCommand(tt.command)
			assert.Equal(t, "Notification command", result.Name)
			assert.Equal(t, tt.passed, result.Passed, result.Message)
		})
	}
}

func TestCheckEnabledEvents(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		enabled  []string
		askUser  bool
		passed   bool
		contains string
	}{
		"known event":              {enabled: []string{"tool:error"}, passed: true, contains: "1 enabled"},
		"custom event listed":      {enabled: []string{"tool:error", "custom:x"}, passed: true, contains: "custom:x"},
		"ask user only":            {askUser: true, passed: true, contains: "no events enabled"},
		"nothing can ever notify":  {passed: false, contains: "nothing will notify"},
		"empty list, ask user off": {enabled: []string{}, passed: false, contains: "notify_on_ask_user is off"},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			result := CheckEnabledEvents(tt.enabled, known, tt.askUser)
			assert.Equal(t, tt.passed, result.Passed)
			assert.Contains(t, result.Message, tt.contains)
		})
	}
}

func TestRunHealthChecks(t *testing.T) {
	t.Parallel()
	script := executable(t)

	report := RunHealthChecks(Options{
		NotifyScript:  script,
		EnabledEvents: []string{"tool:error"},
		KnownEvents:   known,
	})
	assert.True(t, report.Passed)
	assert.Len(t, report.Checks, 3)

	report = RunHealthChecks(Options{ConfigErr: errors.New("config validation failed")})
	assert.False(t, report.Passed)
	require.Len(t, report.Checks, 1)
	assert.Equal(t, "Configuration", report.Checks[0].Name)

	report = RunHealthChecks(Options{NotifyScript: "hooknotify-test-command-that-does-not-exist"})
	assert.False(t, report.Passed)
}

func TestFormatReport(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		report   *HealthReport
		expected string
	}{
		"all pass": {
			report: &HealthReport{Passed: true, Checks: []CheckResult{
				{Name: "Configuration", Passed: true, Message: "configuration is valid"},
			}},
			expected: "✓ Configuration: configuration is valid\n",
		},
		"failure": {
			report: &HealthReport{Checks: []CheckResult{
				{Name: "Notification command", Passed: false, Message: "notify not found or not executable"},
			}},
			expected: "✗ Notification command: notify not found or not executable\n",
		},
		"empty": {
			report:   &HealthReport{},
			expected: "",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, FormatReport(tt.report))
		})
	}
}
