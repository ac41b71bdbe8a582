package ui

import (
	"github.com/renato0307/muxdeck/internal/config"
)

// NavigationKeys defines key bindings for moving between hosts and sessions
type NavigationKeys struct {
	Back        KeyWithTip
	Down        KeyWithTip
	NextHost    KeyWithTip
	NextSession KeyWithTip
	PrevHost    KeyWithTip
	PrevSession KeyWithTip
	QuickSelect KeyWithTip
	Select      KeyWithTip
	Up          KeyWithTip
}

func newNavigationKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) NavigationKeys {
	return NavigationKeys{
		Back:        buildBinding("back", defaults, customKeys),
		Down:        buildBinding("down", defaults, customKeys),
		NextHost:    buildBinding("next_host", defaults, customKeys),
		NextSession: buildBinding("next_session", defaults, customKeys),
		PrevHost:    buildBinding("prev_host", defaults, customKeys),
		PrevSession: buildBinding("prev_session", defaults, customKeys),
		QuickSelect: buildBinding("quick_select", defaults, customKeys),
		Select:      buildBinding("select", defaults, customKeys),
		Up:          buildBinding("up", defaults, customKeys),
	}
}
