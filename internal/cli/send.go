package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/hooknotify/internal/notify"
)

var sendCmd = &cobra.Command{
	Use:   "send <message> [title] [priority]",
	Short: "Send one notification through the notification command",
	Long: `Send one notification through the configured notification command.

Useful to check that notify_script works before wiring hooks. Unlike hook
handling, a missing command is reported as an error. The command is not
waited for.`,
	Example: `  hooknotify send "Build finished"
  hooknotify send "Bash failed: not found" "Tool Error" high`,
	Args: cobra.RangeArgs(1, 3),
	RunE: runSend,
}

func init() {
	rootCmd.AddCommand(sendCmd)
}

func runSend(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	req := notify.NewRequest("hooknotify", args[0], notify.PriorityDefault)
	if len(args) > 1 {
		req.Title = args[1]
	}
	if len(args) > 2 {
		if !notify.ValidPriority(args[2]) {
			return fmt.Errorf("invalid priority %q: must be one of: default, high", args[2])
		}
		req.Priority = notify.Priority(args[2])
	}

	sender := notify.NewCommandSender(cfg.NotifyScript, newLogger(cmd, cfg))
	if err := sender.Send(cmd.Context(), req); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Launched %s: %q %q %s\n", sender.Command(), req.Message, req.Title, req.Priority)
	return nil
}
