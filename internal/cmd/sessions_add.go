package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/muxdeck/internal/domain"
	"github.com/renato0307/muxdeck/internal/logging"
)

// SessionsAddCmd creates a session
type SessionsAddCmd struct {
	Host string `help:"Host id to create the session on" default:"local"`
	Name string `arg:"" help:"Session name (spaces and dots become underscores)"`
}

// Run executes the create command
func (s *SessionsAddCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing sessions create command", "host", s.Host, "name", s.Name)

	key, err := cli.Container.SessionService.CreateSession(context.Background(), s.Host, s.Name)
	if err != nil {
		logging.Logger.Error("Failed to create session", "host", s.Host, "name", s.Name, "error", err)
		return fmt.Errorf("failed to create session: %w", err)
	}

	if key.Name != s.Name {
		fmt.Printf("Session '%s' created on %s (as '%s')\n", s.Name, hostLabel(key.HostID), key.Name)
		return nil
	}
	fmt.Printf("Session '%s' created on %s\n", key.Name, hostLabel(key.HostID))
	return nil
}

func hostLabel(hostID string) string {
	if hostID == domain.LocalHostID {
		return domain.LocalHostName
	}
	return hostID
}
