package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/muxdeck/internal/logging"
)

// HostsDelCmd removes a remote host
type HostsDelCmd struct {
	Force bool   `help:"Delete without confirmation" short:"f"`
	ID    string `arg:"" help:"Host id"`
}

// Run executes the delete command
func (h *HostsDelCmd) Run(cli *CLI) error {
	ctx := context.Background()
	logging.Logger.Info("Executing hosts delete command", "id", h.ID, "force", h.Force)

	host, err := cli.Container.HostService.GetHost(ctx, h.ID)
	if err != nil {
		return fmt.Errorf("failed to get host: %w", err)
	}

	if !h.Force && !confirm(fmt.Sprintf("WARNING: This will remove host '%s' (%s)", host.DisplayName(), hostAddress(host))) {
		return nil
	}

	if err := cli.Container.HostService.DeleteHost(ctx, h.ID); err != nil {
		return fmt.Errorf("failed to delete host: %w", err)
	}

	fmt.Printf("Host '%s' deleted successfully\n", host.DisplayName())
	return nil
}
