package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/renato0307/muxdeck/internal/paths"
)

// HostsImportCmd adds hosts from a YAML file
type HostsImportCmd struct {
	File string `arg:"" help:"YAML file to read"`
}

// Run executes the import command
func (h *HostsImportCmd) Run(cli *CLI) error {
	result, err := cli.Container.HostService.ImportHosts(context.Background(), paths.ExpandPath(h.File))
	if err != nil {
		return fmt.Errorf("failed to import hosts: %w", err)
	}

	for _, host := range result.Added {
		fmt.Printf("  added    %s (%s)\n", host.DisplayName(), host.ID)
	}
	for _, name := range result.Skipped {
		fmt.Printf("  skipped  %s (already known)\n", name)
	}

	failed := make([]string, 0, len(result.Failed))
	for name := range result.Failed {
		failed = append(failed, name)
	}
	sort.Strings(failed)
	for _, name := range failed {
		fmt.Printf("  failed   %s: %v\n", name, result.Failed[name])
	}

	fmt.Printf("\nAdded %d, skipped %d, failed %d\n", len(result.Added), len(result.Skipped), len(failed))
	if len(failed) > 0 {
		return fmt.Errorf("%d hosts could not be imported", len(failed))
	}
	return nil
}

// HostsExportCmd writes the remote hosts to a YAML file
type HostsExportCmd struct {
	File string `arg:"" help:"YAML file to write"`
}

// Run executes the export command
func (h *HostsExportCmd) Run(cli *CLI) error {
	n, err := cli.Container.HostService.ExportHosts(context.Background(), paths.ExpandPath(h.File))
	if err != nil {
		return fmt.Errorf("failed to export hosts: %w", err)
	}
	fmt.Printf("Exported %d hosts to %s\n", n, h.File)
	return nil
}
