package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/renato0307/muxdeck/internal/domain"
	"github.com/renato0307/muxdeck/internal/logging"
	"github.com/renato0307/muxdeck/internal/multiplexer"
)

// AttachCmd requests a terminal for one session without the TUI
type AttachCmd struct {
	Host    string `arg:"" help:"Host id of the session (local for the backend machine)"`
	Session string `arg:"" help:"tmux session name"`

	Browser     string `help:"Browser used with --open (default: system browser)" env:"MUXDECK_BROWSER"`
	ChannelPath string `help:"Path of the attach channel websocket" default:"/ws"`
	Format      string `help:"Output format: text or json" enum:"text,json" default:"text"`
	Open        bool   `help:"Open the terminal in a browser"`
	Timeout     int    `help:"Seconds to wait for the terminal" default:"30"`
}

// attachResult is what the attach command prints
type attachResult struct {
	Address    string `json:"address"`
	Created    bool   `json:"created"`
	Host       string `json:"host_id"`
	Reused     bool   `json:"reused"`
	Session    string `json:"session"`
	TerminalID string `json:"terminal_id,omitempty"`
}

// Run executes the attach command
func (a *AttachCmd) Run(cli *CLI) error {
	if a.Browser == "" && cli.settings != nil {
		a.Browser = cli.settings.Browser
	}
	key := domain.NewSessionKey(a.Host, a.Session)
	logging.Logger.Info("Attach command started", "key", key.String())

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(a.Timeout)*time.Second)
	defer cancel()

	// No probe: the address is printed, nothing is displayed here
	mux, channel, err := cli.Container.NewMultiplexer(ctx, a.ChannelPath, false, nil)
	if err != nil {
		return fmt.Errorf("failed to open attach channel: %w", err)
	}
	defer channel.Close() //nolint:errcheck
	defer mux.Close()     //nolint:errcheck

	snap, err := cli.Container.Refresher.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}
	if err := mux.ApplySessions(ctx, snap.Sessions); err != nil {
		return err
	}
	if !listed(snap.Sessions, key) {
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, key)
	}

	if err := mux.SelectSession(ctx, key); err != nil {
		return err
	}

	res, err := a.waitVisible(ctx, mux, channel.Events(), key)
	if err != nil {
		return err
	}

	if err := a.print(res); err != nil {
		return err
	}
	if a.Open {
		if err := cli.Container.Browser.Open(res.Address, a.Browser); err != nil {
			return fmt.Errorf("failed to open browser: %w", err)
		}
	}
	return nil
}

// waitVisible applies channel events until the surface of key is visible
func (a *AttachCmd) waitVisible(ctx context.Context, mux *multiplexer.Multiplexer, events <-chan domain.AttachEvent, key domain.SessionKey) (attachResult, error) {
	var result attachResult
	for {
		if visible, ok := mux.VisibleSurface(); ok && visible.Key == key {
			result.Address = visible.Surface.Address().String()
			result.Host = key.HostID
			result.Session = key.Name
			result.TerminalID = visible.TerminalID
			return result, nil
		}

		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return result, fmt.Errorf("timed out waiting for a terminal for %s", key)
			}
			return result, ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return result, domain.ErrChannelClosed
			}
			res, err := mux.HandleEvent(ctx, ev)
			if err != nil {
				return result, fmt.Errorf("attach failed: %w", err)
			}
			if res.Key == key {
				result.Created = res.Created
				result.Reused = res.Reused
			}
		}
	}
}

func (a *AttachCmd) print(res attachResult) error {
	if a.Format == "json" {
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}
	fmt.Println(res.Address)
	return nil
}

func listed(sessions []domain.Session, key domain.SessionKey) bool {
	for _, s := range sessions {
		if s.Key() == key {
			return true
		}
	}
	return false
}
