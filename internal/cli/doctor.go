package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/hooknotify/internal/health"
	"github.com/ariel-frischer/hooknotify/internal/notify"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration and the notification command",
	Long: `Run health checks to verify that hooknotify can deliver notifications.

This command checks:
  - configuration loads and validates
  - notify_script is found and executable
  - which enabled events the host is known to fire

Each check will display a ✓ if passed or ✗ with an error message if failed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := health.Options{KnownEvents: notify.KnownEvents()}

		cfg, err := loadConfig(cmd)
		if err != nil {
			opts.ConfigErr = err
		} else {
			opts.NotifyScript = cfg.NotifyScript
			opts.EnabledEvents = cfg.EnabledEvents
			opts.NotifyOnAskUser = cfg.NotifyOnAskUser
		}

		report := health.RunHealthChecks(opts)
		fmt.Fprint(cmd.OutOrStdout(), health.FormatReport(report))

		if !report.Passed {
			return fmt.Errorf("health checks failed")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
