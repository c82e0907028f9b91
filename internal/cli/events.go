package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/hooknotify/internal/hooks"
	"github.com/ariel-frischer/hooknotify/internal/lifecycle"
	"github.com/ariel-frischer/hooknotify/internal/notify"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List lifecycle events and the handlers registered for them",
	Long: `List the known lifecycle events, plus any extra enabled ones, with the
notification handlers the current configuration registers for each.`,
	Args: cobra.NoArgs,
	RunE: runEvents,
}

func init() {
	rootCmd.AddCommand(eventsCmd)
}

func runEvents(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	registry := hooks.NewRegistry(zerolog.Nop())
	teardown := lifecycle.MountConfig(registry, cfg.NotifyConfig(), zerolog.Nop())
	defer teardown()

	events := notify.KnownEvents()
	for _, e := range cfg.EnabledEvents {
		if !slices.Contains(events, e) {
			events = append(events, e)
		}
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Event", "Notifies", "Handlers"})
	for _, e := range events {
		notifies := "no"
		if cfg.NotifyConfig().IsEnabled(e) {
			notifies = "yes"
		} else if e == notify.EventToolPost && cfg.NotifyOnAskUser {
			notifies = "ask user only"
		}
		tw.AppendRow(table.Row{e, notifies, strings.Join(registry.Handlers(e), ", ")})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})

	fmt.Fprintln(cmd.OutOrStdout(), tw.Render())
	status := "found"
	if !notify.NewCommandSender(cfg.NotifyScript, zerolog.Nop()).Available() {
		status = "not found"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Notification command: %s (%s)\n", cfg.NotifyScript, status)
	return nil
}
