package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/renato0307/muxdeck/internal/domain"
)

// SessionsListCmd lists sessions
type SessionsListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Host   string `help:"Only list sessions of this host id"`
}

// Run executes the list command
func (s *SessionsListCmd) Run(cli *CLI) error {
	sessions, err := cli.Container.SessionService.ListSessions(context.Background(), s.Host)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	if s.Format == "json" {
		return s.printJSON(sessions)
	}
	return s.printTable(sessions)
}

func (s *SessionsListCmd) printJSON(sessions []domain.Session) error {
	data, err := json.MarshalIndent(sessions, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func (s *SessionsListCmd) printTable(sessions []domain.Session) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "HOST\tNAME\tWINDOWS\tATTACHED\tCREATED")
	for _, sess := range sessions {
		attached := ""
		if sess.Attached {
			attached = "✓"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			sess.Label(),
			sess.Name,
			sess.Windows,
			attached,
			sess.Created.String())
	}
	w.Flush()

	fmt.Printf("\nTotal: %d sessions\n", len(sessions))
	return nil
}
