package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/muxdeck/internal/domain"
	"github.com/renato0307/muxdeck/internal/logging"
)

// SessionsRenameCmd renames a session
type SessionsRenameCmd struct {
	Host    string `help:"Host id of the session" default:"local"`
	Name    string `arg:"" help:"Current session name"`
	NewName string `arg:"" help:"New session name"`
}

// Run executes the rename command
func (s *SessionsRenameCmd) Run(cli *CLI) error {
	key := domain.NewSessionKey(s.Host, s.Name)
	logging.Logger.Info("Executing sessions rename command", "key", key.String(), "new_name", s.NewName)

	newKey, err := cli.Container.SessionService.RenameSession(context.Background(), key, s.NewName)
	if err != nil {
		logging.Logger.Error("Failed to rename session", "key", key.String(), "error", err)
		return fmt.Errorf("failed to rename session: %w", err)
	}

	fmt.Printf("Session '%s' renamed to '%s'\n", s.Name, newKey.Name)
	return nil
}
