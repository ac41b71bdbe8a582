package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/muxdeck/internal/domain"
	"github.com/renato0307/muxdeck/internal/ports"
	"github.com/renato0307/muxdeck/internal/services"
)

// refreshCmd fetches sessions and hosts off the update loop
func refreshCmd(refresher *services.Refresher) tea.Cmd {
	return func() tea.Msg {
		snap, err := refresher.Refresh(context.Background())
		return snapshotMsg{err: err, snap: snap}
	}
}

// refreshTickCmd schedules the next background refresh. A zero interval
// disables it.
func refreshTickCmd(interval time.Duration) tea.Cmd {
	if interval <= 0 {
		return nil
	}
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return refreshTickMsg{}
	})
}

// waitForEventCmd blocks until the attach channel delivers an event
func waitForEventCmd(channel ports.AttachChannel) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-channel.Events()
		if !ok {
			return channelClosedMsg{}
		}
		return channelEventMsg{event: ev}
	}
}

func deleteSessionCmd(sessionService *services.SessionService, key domain.SessionKey) tea.Cmd {
	return func() tea.Msg {
		return sessionDeletedMsg{err: sessionService.DeleteSession(context.Background(), key), key: key}
	}
}

func deleteHostCmd(hostService *services.HostService, id string) tea.Cmd {
	return func() tea.Msg {
		return hostsChangedMsg{action: "deleted", err: hostService.DeleteHost(context.Background(), id)}
	}
}

func setHostEnabledCmd(hostService *services.HostService, id string, enabled bool) tea.Cmd {
	action := "disabled"
	if enabled {
		action = "enabled"
	}
	return func() tea.Msg {
		return hostsChangedMsg{action: action, err: hostService.SetEnabled(context.Background(), id, enabled)}
	}
}

func openBrowserCmd(browser ports.BrowserOpener, address, cliBrowser string) tea.Cmd {
	return func() tea.Msg {
		return browserOpenedMsg{address: address, err: browser.Open(address, cliBrowser)}
	}
}
