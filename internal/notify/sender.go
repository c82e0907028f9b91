package notify

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/rs/zerolog"
)

// Sender hands a Request to the delivery mechanism.
type Sender interface {
	// Send launches delivery of req. It must not wait for delivery to finish.
	Send(ctx context.Context, req Request) error
}

// CommandSender delivers notifications by running an external command as
//
//	<command> <message> <title> <priority>
//
// Send returns once the process has started. The process is reaped on its
// own goroutine and nothing waits for it.
type CommandSender struct {
	command string
	log     zerolog.Logger

	// onExit, when set, receives the wait result of every launched process.
	onExit func(req Request, err error)
}

// NewCommandSender creates a sender for the given command.
func NewCommandSender(command string, logger zerolog.Logger) *CommandSender {
	return &CommandSender{
		command: command,
		log:     logger,
	}
}

// Command returns the configured command.
func (s *CommandSender) Command() string {
	return s.command
}

// Available reports whether the command can be found.
func (s *CommandSender) Available() bool {
	return toolAvailable(s.command)
}

// Send starts the notification command. Output is discarded.
func (s *CommandSender) Send(ctx context.Context, req Request) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// Not CommandContext: the child must outlive the event that triggered it.
	cmd := exec.Command(s.command, req.Message, req.Title, string(req.Priority))
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("notification command %q not found: %w", s.command, err)
		}
		return fmt.Errorf("starting notification command %q: %w", s.command, err)
	}

	go s.reap(cmd, req)
	return nil
}

func (s *CommandSender) reap(cmd *exec.Cmd, req Request) {
	err := cmd.Wait()
	if err != nil {
		s.log.Debug().Err(err).Str("command", s.command).Str("title", req.Title).Msg("notification command failed")
	} else {
		s.log.Debug().Str("command", s.command).Str("title", req.Title).Msg("notification command finished")
	}
	if s.onExit != nil {
		s.onExit(req, err)
	}
}

// toolAvailable checks if a command-line tool is available in PATH
func toolAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// noopSender drops every request.
type noopSender struct{}

func (noopSender) Send(context.Context, Request) error { return nil }
