package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/renato0307/muxdeck/internal/logging"
	"github.com/renato0307/muxdeck/internal/paths"
	"github.com/renato0307/muxdeck/internal/server"
	"github.com/renato0307/muxdeck/internal/ui"
)

// ServeCmd serves the TUI over SSH
type ServeCmd struct {
	UIFlags `embed:""`

	AuthorizedKeys  string `help:"authorized_keys file listing accepted client keys" default:"~/.ssh/authorized_keys"`
	Host            string `help:"Host to bind to" default:"localhost"`
	PerUserProfiles bool   `help:"Keep selection memory and zoom per SSH user" default:"true" negatable:""`
	Port            string `help:"Port to listen on" default:"23234"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	s.applySettings(cli.settings)

	keys, err := cli.keyBindings()
	if err != nil {
		return err
	}

	logging.Logger.Info("Starting muxdeck SSH server",
		"host", s.Host,
		"port", s.Port,
		"backend", cli.BackendURL)

	newModel := func(ctx context.Context, user string) (*ui.Model, func(), error) {
		profile := cli.Profile
		if s.PerUserProfiles {
			profile = user
		}
		return cli.Container.NewUI(ctx, s.uiConfig(profile, keys))
	}

	srv, err := server.NewServer(server.Config{
		AuthorizedKeysPath: paths.ExpandPath(s.AuthorizedKeys),
		Host:               s.Host,
		HostKeyPath:        filepath.Join(paths.GetSSHDir(), "id_ed25519"),
		Port:               s.Port,
	}, newModel)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	// Blocks until shutdown
	return srv.Start(context.Background())
}
