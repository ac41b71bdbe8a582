package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/muxdeck/internal/domain"
	"github.com/renato0307/muxdeck/internal/logging"
)

// HostsAddCmd registers a remote host
type HostsAddCmd struct {
	Disabled bool   `help:"Register the host without querying it"`
	Hostname string `arg:"" help:"Hostname or IP address"`
	Name     string `help:"Display name (default: hostname)"`
	Port     int    `help:"SSH port" default:"22"`
	Username string `help:"SSH username" short:"u"`
}

// Run executes the add command
func (h *HostsAddCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing hosts add command", "hostname", h.Hostname, "port", h.Port)

	host, err := cli.Container.HostService.AddHost(context.Background(), domain.HostInput{
		Enabled:  !h.Disabled,
		Hostname: h.Hostname,
		Name:     h.Name,
		Port:     h.Port,
		Username: h.Username,
	})
	if err != nil {
		return fmt.Errorf("failed to add host: %w", err)
	}

	fmt.Printf("Host '%s' added with id %s\n", host.DisplayName(), host.ID)
	return nil
}
