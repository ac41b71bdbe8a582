package ui

import (
	"github.com/renato0307/muxdeck/internal/config"
)

// SessionManagementKeys defines key bindings for managing sessions on the scope host
type SessionManagementKeys struct {
	Kill   KeyWithTip
	New    KeyWithTip
	Rename KeyWithTip
}

// HostManagementKeys defines key bindings used inside the host manager
type HostManagementKeys struct {
	Add    KeyWithTip
	Delete KeyWithTip
	Edit   KeyWithTip
	Toggle KeyWithTip
}

func newSessionManagementKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) SessionManagementKeys {
	return SessionManagementKeys{
		Kill:   buildBinding("kill", defaults, customKeys),
		New:    buildBinding("new_session", defaults, customKeys),
		Rename: buildBinding("rename", defaults, customKeys),
	}
}

func newHostManagementKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) HostManagementKeys {
	return HostManagementKeys{
		Add:    buildBinding("host_add", defaults, customKeys),
		Delete: buildBinding("host_delete", defaults, customKeys),
		Edit:   buildBinding("host_edit", defaults, customKeys),
		Toggle: buildBinding("host_toggle", defaults, customKeys),
	}
}
