package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/renato0307/muxdeck/internal/domain"
	"github.com/renato0307/muxdeck/internal/logging"
)

// HostsUpdateCmd changes a remote host. Unset flags keep the current value.
type HostsUpdateCmd struct {
	Disable  bool   `help:"Stop querying the host" xor:"enabled"`
	Enable   bool   `help:"Start querying the host" xor:"enabled"`
	Hostname string `help:"New hostname or IP address"`
	ID       string `arg:"" help:"Host id"`
	Name     string `help:"New display name"`
	Port     int    `help:"New SSH port"`
	Username string `help:"New SSH username" short:"u"`
}

// Run executes the update command
func (h *HostsUpdateCmd) Run(cli *CLI) error {
	ctx := context.Background()
	logging.Logger.Info("Executing hosts update command", "id", h.ID)

	if h.ID == domain.LocalHostID {
		return errors.New("the local host cannot be changed")
	}

	host, err := cli.Container.HostService.GetHost(ctx, h.ID)
	if err != nil {
		return fmt.Errorf("failed to get host: %w", err)
	}

	in := h.merge(host)
	if err := cli.Container.HostService.UpdateHost(ctx, h.ID, in); err != nil {
		return fmt.Errorf("failed to update host: %w", err)
	}

	fmt.Printf("Host '%s' updated\n", h.ID)
	return nil
}

// merge overlays the set flags on the current host
func (h *HostsUpdateCmd) merge(host domain.Host) domain.HostInput {
	in := domain.HostInput{
		Enabled:  host.Enabled,
		Hostname: host.Hostname,
		Name:     host.Name,
		Port:     host.Port,
		Username: host.Username,
	}
	if h.Hostname != "" {
		in.Hostname = h.Hostname
	}
	if h.Name != "" {
		in.Name = h.Name
	}
	if h.Port != 0 {
		in.Port = h.Port
	}
	if h.Username != "" {
		in.Username = h.Username
	}
	if h.Enable {
		in.Enabled = true
	}
	if h.Disable {
		in.Enabled = false
	}
	return in
}
