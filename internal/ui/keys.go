package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/muxdeck/internal/config"
)

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application       ApplicationKeys
	HostManagement    HostManagementKeys
	Navigation        NavigationKeys
	SessionManagement SessionManagementKeys
	Zoom              ZoomKeys

	shortcuts map[string]string // first effective key per binding name
}

// NewKeyMap creates a KeyMap with custom bindings applied over the defaults.
// Pass nil for customKeys to use default bindings.
func NewKeyMap(customKeys config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()

	shortcuts := make(map[string]string, len(defaults))
	for name, keys := range defaults {
		if custom := customKeys[name]; len(custom) > 0 {
			keys = custom
		}
		if len(keys) > 0 {
			shortcuts[name] = keys[0]
		}
	}

	return KeyMap{
		Application:       newApplicationKeys(defaults, customKeys),
		HostManagement:    newHostManagementKeys(defaults, customKeys),
		Navigation:        newNavigationKeys(defaults, customKeys),
		SessionManagement: newSessionManagementKeys(defaults, customKeys),
		Zoom:              newZoomKeys(defaults, customKeys),
		shortcuts:         shortcuts,
	}
}

// Shortcut returns the first key bound to name, custom bindings first
func (k KeyMap) Shortcut(name string) string {
	return k.shortcuts[name]
}

// ShortHelp returns a curated list of key bindings for the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Navigation.NextSession.Binding,
		k.Navigation.NextHost.Binding,
		k.SessionManagement.New.Binding,
		k.SessionManagement.Rename.Binding,
		k.SessionManagement.Kill.Binding,
		k.Zoom.In.Binding,
		k.Zoom.Out.Binding,
		k.Application.OpenBrowser.Binding,
		k.Application.Help.Binding,
		k.Application.Quit.Binding,
	}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// HostManagerHelp returns the bindings shown under the host list
func (k KeyMap) HostManagerHelp() []key.Binding {
	return []key.Binding{
		k.Navigation.Up.Binding,
		k.Navigation.Down.Binding,
		k.HostManagement.Add.Binding,
		k.HostManagement.Edit.Binding,
		k.HostManagement.Toggle.Binding,
		k.HostManagement.Delete.Binding,
		k.Navigation.Back.Binding,
	}
}
