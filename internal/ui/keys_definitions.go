package ui

import (
	"sort"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults        []string
	Help            string
	IsPaletteAction bool    // If true, this key appears in command palette
	Msg             tea.Msg // Prototype message for dispatch (nil if not dispatchable)
	Name            string
	NeedsSession    bool // Hidden from the palette when no session is active
	TipFormat       string
}

// AllKeyDefinitions contains all configurable key bindings.
// If IsPaletteAction is true, the key appears in the command palette.
// If Msg is set, the action can be dispatched via the command palette.
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "command_palette", Defaults: []string{"P"}, Help: "command palette", Msg: ShowCommandPaletteMsg{}, TipFormat: "press %s to open the command palette"},
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Defaults: []string{"?"}, Help: "show keyboard shortcuts", IsPaletteAction: true, Msg: ShowHelpMsg{}, TipFormat: "press %s to see all shortcuts"},
	{Name: "hosts", Defaults: []string{"H"}, Help: "manage hosts", IsPaletteAction: true, Msg: ShowHostsMsg{}, TipFormat: "press %s to add a remote host"},
	{Name: "open_browser", Defaults: []string{"o"}, Help: "open terminal in browser", IsPaletteAction: true, Msg: OpenBrowserMsg{}, NeedsSession: true, TipFormat: "press %s to open the visible terminal in your browser"},
	{Name: "quit", Defaults: []string{"q"}, Help: "exit application", IsPaletteAction: true, Msg: QuitMsg{}},
	{Name: "refresh", Defaults: []string{"R"}, Help: "refresh sessions", IsPaletteAction: true, Msg: RefreshMsg{}, TipFormat: "press %s to reload the session list"},

	// Zoom keys
	{Name: "zoom_in", Defaults: []string{"+", "="}, Help: "zoom in", IsPaletteAction: true, Msg: ZoomInMsg{}, TipFormat: "press %s to zoom every terminal in"},
	{Name: "zoom_out", Defaults: []string{"-"}, Help: "zoom out", IsPaletteAction: true, Msg: ZoomOutMsg{}},
	{Name: "zoom_reset", Defaults: []string{"0"}, Help: "reset zoom", IsPaletteAction: true, Msg: ZoomResetMsg{}},

	// Navigation keys
	{Name: "back", Defaults: []string{"esc"}, Help: "close dialog"},
	{Name: "down", Defaults: []string{"down", "j"}, Help: "move down"},
	{Name: "next_host", Defaults: []string{"]"}, Help: "next host", IsPaletteAction: true, Msg: NextHostMsg{}, TipFormat: "press %s to switch to the next host"},
	{Name: "next_session", Defaults: []string{"right", "l", "tab"}, Help: "next session", Msg: NextSessionMsg{}},
	{Name: "prev_host", Defaults: []string{"["}, Help: "previous host", IsPaletteAction: true, Msg: PrevHostMsg{}},
	{Name: "prev_session", Defaults: []string{"left", "h", "shift+tab"}, Help: "previous session", Msg: PrevSessionMsg{}},
	{Name: "quick_select", Defaults: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}, Help: "select session by number", TipFormat: "press %s to jump to a session by its number"},
	{Name: "select", Defaults: []string{"enter"}, Help: "select"},
	{Name: "up", Defaults: []string{"up", "k"}, Help: "move up"},

	// Session management keys
	{Name: "kill", Defaults: []string{"x"}, Help: "kill session", IsPaletteAction: true, Msg: KillSessionMsg{}, NeedsSession: true, TipFormat: "press %s to kill the active session"},
	{Name: "new_session", Defaults: []string{"n"}, Help: "create new session", IsPaletteAction: true, Msg: NewSessionMsg{}, TipFormat: "press %s to create a new session"},
	{Name: "rename", Defaults: []string{"r"}, Help: "rename session", IsPaletteAction: true, Msg: RenameSessionMsg{}, NeedsSession: true, TipFormat: "press %s to rename the active session"},

	// Host manager keys
	{Name: "host_add", Defaults: []string{"a"}, Help: "add host"},
	{Name: "host_delete", Defaults: []string{"d"}, Help: "delete host"},
	{Name: "host_edit", Defaults: []string{"e"}, Help: "edit host"},
	{Name: "host_toggle", Defaults: []string{" "}, Help: "enable/disable host"},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name, or nil
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all valid key binding names in sorted order
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}

// IsValidKeyName checks if a name is a valid key binding name
func IsValidKeyName(name string) bool {
	return GetKeyDefinition(name) != nil
}

// GetPaletteActions returns key definitions that should appear in the command palette
func GetPaletteActions() []KeyDefinition {
	var actions []KeyDefinition
	for _, def := range AllKeyDefinitions {
		if !def.IsPaletteAction {
			continue
		}
		actions = append(actions, def)
	}
	return actions
}
