package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/muxdeck/internal/domain"
)

// ActionDispatcher maps key definitions to UI messages
type ActionDispatcher struct {
	active domain.SessionKey
	ok     bool
}

// NewActionDispatcher creates a dispatcher for the active session, if any
func NewActionDispatcher(active domain.SessionKey, ok bool) *ActionDispatcher {
	return &ActionDispatcher{active: active, ok: ok}
}

// Dispatch returns the message for def, or nil when it cannot be
// dispatched. Session actions need an active session.
func (d *ActionDispatcher) Dispatch(def KeyDefinition) tea.Msg {
	if def.Msg == nil {
		return nil
	}

	if sessionMsg, ok := def.Msg.(SessionAwareMsg); ok {
		if !d.ok {
			return nil
		}
		return sessionMsg.WithSession(d.active)
	}

	return def.Msg
}
