package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/muxdeck/internal/config"
)

// ApplicationKeys defines key bindings for application-level actions
type ApplicationKeys struct {
	CommandPalette KeyWithTip
	ForceQuit      KeyWithTip
	Help           KeyWithTip
	Hosts          KeyWithTip
	OpenBrowser    KeyWithTip
	Quit           KeyWithTip
	Refresh        KeyWithTip
}

// ZoomKeys defines key bindings that scale every terminal surface
type ZoomKeys struct {
	In    KeyWithTip
	Out   KeyWithTip
	Reset KeyWithTip
}

func newApplicationKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) ApplicationKeys {
	return ApplicationKeys{
		CommandPalette: buildBinding("command_palette", defaults, customKeys),
		ForceQuit:      buildBinding("force_quit", defaults, customKeys),
		Help:           buildBinding("help", defaults, customKeys),
		Hosts:          buildBinding("hosts", defaults, customKeys),
		OpenBrowser:    buildBinding("open_browser", defaults, customKeys),
		Quit:           buildBinding("quit", defaults, customKeys),
		Refresh:        buildBinding("refresh", defaults, customKeys),
	}
}

func newZoomKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) ZoomKeys {
	return ZoomKeys{
		In:    buildBinding("zoom_in", defaults, customKeys),
		Out:   buildBinding("zoom_out", defaults, customKeys),
		Reset: buildBinding("zoom_reset", defaults, customKeys),
	}
}

// buildBinding creates a KeyWithTip from the key definition, using custom keys if provided
func buildBinding(name string, defaults map[string][]string, customKeys config.KeyBindingsConfig) KeyWithTip {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := defaults[name]
	if custom, ok := customKeys[name]; ok && len(custom) > 0 {
		keys = custom
	}
	helpKeys := strings.Join(keys, "/")
	if name == "quick_select" && len(keys) > 1 {
		helpKeys = keys[0] + "-" + keys[len(keys)-1]
	}
	if helpKeys == " " {
		helpKeys = "space"
	}

	result := KeyWithTip{
		Binding: key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(helpKeys, def.Help),
		),
	}

	if def.TipFormat != "" && len(keys) > 0 {
		result.Tip = newTip(def.TipFormat, keys[0])
	}

	return result
}
