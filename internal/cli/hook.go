package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ariel-frischer/hooknotify/internal/config"
	"github.com/ariel-frischer/hooknotify/internal/hooks"
	"github.com/ariel-frischer/hooknotify/internal/lifecycle"
	"github.com/ariel-frischer/hooknotify/internal/logging"
)

var hookCmd = &cobra.Command{
	Use:   "hook <event>",
	Short: "Handle one lifecycle event",
	Long: `Handle one lifecycle event and print the continuation result as JSON.

The event payload is read as a JSON object from stdin. A missing or malformed
payload is treated as empty, and configuration problems fall back to defaults:
the hook always prints {"action":"continue"} and exits 0 so it can never stop
the session.`,
	Example: `  echo '{"session_id":"abcdef1234"}' | hooknotify hook session:end
  echo '{"tool_name":"AskUserQuestion"}' | hooknotify hook tool:post`,
	Args: cobra.ExactArgs(1),
	RunE: runHook,
}

func init() {
	rootCmd.AddCommand(hookCmd)
}

func runHook(cmd *cobra.Command, args []string) error {
	event := args[0]

	cfg, err := loadConfig(cmd)
	if err != nil {
		cfg, _ = config.FromMap(nil)
		logger := newLogger(cmd, cfg)
		logger.Warn().Err(err).Msg("configuration invalid, using defaults")
	}
	logger := logging.Component(newLogger(cmd, cfg), "hook")

	payload, err := readPayload(cmd.InOrStdin())
	if err != nil {
		logger.Warn().Err(err).Str("event", event).Msg("ignoring unreadable payload")
		payload = hooks.Payload{}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result := lifecycle.Fire(ctx, cfg.NotifyConfig(), event, payload, logger)
	return json.NewEncoder(cmd.OutOrStdout()).Encode(result)
}

// readPayload decodes a JSON object from in. An interactive terminal or empty
// input yields an empty payload.
func readPayload(in io.Reader) (hooks.Payload, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return hooks.Payload{}, nil
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(string(data)) == "" {
		return hooks.Payload{}, nil
	}

	var payload hooks.Payload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}
	if payload == nil {
		payload = hooks.Payload{}
	}
	return payload, nil
}
