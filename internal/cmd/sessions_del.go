package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/muxdeck/internal/domain"
	"github.com/renato0307/muxdeck/internal/logging"
)

// SessionsDelCmd kills a session
type SessionsDelCmd struct {
	Force bool   `help:"Kill without confirmation" short:"f"`
	Host  string `help:"Host id of the session" default:"local"`
	Name  string `arg:"" help:"Name of the session to kill"`
}

// Run executes the delete command
func (s *SessionsDelCmd) Run(cli *CLI) error {
	key := domain.NewSessionKey(s.Host, s.Name)
	logging.Logger.Info("Executing sessions delete command", "key", key.String(), "force", s.Force)

	if !s.Force && !confirm(fmt.Sprintf("WARNING: This will kill tmux session '%s' on %s", s.Name, hostLabel(s.Host))) {
		logging.Logger.Info("User cancelled session deletion", "key", key.String())
		return nil
	}

	if err := cli.Container.SessionService.DeleteSession(context.Background(), key); err != nil {
		logging.Logger.Error("Failed to delete session", "key", key.String(), "error", err)
		return fmt.Errorf("failed to delete session: %w", err)
	}

	logging.Logger.Info("Session deleted via CLI", "key", key.String())
	fmt.Printf("Session '%s' deleted successfully\n", s.Name)
	return nil
}

// confirm prints warning and reads a y/N answer from stdin
func confirm(warning string) bool {
	fmt.Println(warning)
	fmt.Print("\nContinue? (y/N): ")
	var response string
	fmt.Scanln(&response) //nolint:errcheck
	if response != "y" && response != "Y" {
		fmt.Println("Cancelled")
		return false
	}
	return true
}
