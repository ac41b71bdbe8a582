package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/renato0307/muxdeck/internal/domain"
)

// HostsListCmd lists hosts
type HostsListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (h *HostsListCmd) Run(cli *CLI) error {
	hosts, err := cli.Container.HostService.ListHosts(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list hosts: %w", err)
	}

	if h.Format == "json" {
		data, err := json.MarshalIndent(hosts, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tADDRESS\tENABLED")
	for _, host := range hosts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", host.ID, host.DisplayName(), hostAddress(host), enabledMark(host.Enabled))
	}
	w.Flush()

	fmt.Printf("\nTotal: %d hosts\n", len(hosts))
	return nil
}

func hostAddress(host domain.Host) string {
	if host.ID == domain.LocalHostID {
		return "-"
	}
	addr := fmt.Sprintf("%s:%d", host.Hostname, host.Port)
	if host.Username != "" {
		addr = host.Username + "@" + addr
	}
	return addr
}

func enabledMark(enabled bool) string {
	if enabled {
		return "✓"
	}
	return ""
}
