package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/muxdeck/internal/domain"
	"github.com/renato0307/muxdeck/internal/services"
)

// SessionAwareMsg is implemented by messages that act on the active session.
// Messages without session requirements don't need to implement this.
type SessionAwareMsg interface {
	WithSession(key domain.SessionKey) tea.Msg
}

// Action messages. Key presses and command palette entries both end up here.

// QuitMsg requests quitting the application
type QuitMsg struct{}

// ShowHelpMsg requests showing the help screen
type ShowHelpMsg struct{}

// ShowCommandPaletteMsg requests showing the command palette
type ShowCommandPaletteMsg struct{}

// ShowHostsMsg requests showing the host manager
type ShowHostsMsg struct{}

// RefreshMsg requests reloading the session and host lists
type RefreshMsg struct{}

// OpenBrowserMsg requests opening the visible terminal in a browser
type OpenBrowserMsg struct{}

// ZoomInMsg, ZoomOutMsg and ZoomResetMsg change the zoom of every surface
type (
	ZoomInMsg    struct{}
	ZoomOutMsg   struct{}
	ZoomResetMsg struct{}
)

// NextHostMsg and PrevHostMsg cycle the scope host
type (
	NextHostMsg struct{}
	PrevHostMsg struct{}
)

// NextSessionMsg and PrevSessionMsg cycle the active session tab
type (
	NextSessionMsg struct{}
	PrevSessionMsg struct{}
)

// NewSessionMsg requests showing the new session dialog
type NewSessionMsg struct{}

// RenameSessionMsg requests showing the rename dialog for a session
type RenameSessionMsg struct {
	Key domain.SessionKey
}

func (m RenameSessionMsg) WithSession(key domain.SessionKey) tea.Msg {
	return RenameSessionMsg{Key: key}
}

// KillSessionMsg requests killing a session after confirmation
type KillSessionMsg struct {
	Key domain.SessionKey
}

func (m KillSessionMsg) WithSession(key domain.SessionKey) tea.Msg {
	return KillSessionMsg{Key: key}
}

// Results of asynchronous work. These are applied on the update loop.

// snapshotMsg carries the result of a refresh
type snapshotMsg struct {
	err  error
	snap services.Snapshot
}

// refreshTickMsg triggers the periodic background refresh
type refreshTickMsg struct{}

// channelEventMsg carries one event read from the attach channel
type channelEventMsg struct {
	event domain.AttachEvent
}

// channelClosedMsg is sent once the attach channel stops delivering events
type channelClosedMsg struct{}

// surfaceFailedMsg reports a terminal surface that failed to load
type surfaceFailedMsg struct {
	err error
	key domain.SessionKey
}

// sessionDeletedMsg is sent when a delete request completes
type sessionDeletedMsg struct {
	err error
	key domain.SessionKey
}

// hostsChangedMsg is sent when a host manager action completes
type hostsChangedMsg struct {
	action string
	err    error
}

// browserOpenedMsg is sent once the browser process was started
type browserOpenedMsg struct {
	address string
	err     error
}
