package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/muxdeck/internal/theme"
)

// HelpScreen displays keyboard shortcuts organized by category
type HelpScreen struct {
	Completed   bool
	content     string
	initialized bool // Viewport has been sized
	keys        *KeyMap
	viewport    viewport.Model
}

func renderShortcut(key, description string) string {
	return theme.HelpKeyStyle.Render(key) + theme.HelpDescStyle.Render(description) + "\n"
}

func renderBinding(binding key.Binding) string {
	help := binding.Help()
	return renderShortcut(help.Key, help.Desc)
}

func renderGroup(title string, bindings ...KeyWithTip) string {
	var b strings.Builder
	b.WriteString(theme.HelpGroupStyle.Render(title) + "\n")
	for _, k := range bindings {
		b.WriteString(renderBinding(k.Binding))
	}
	return b.String()
}

// buildHelpContent builds the complete help text from the key bindings
func buildHelpContent(keys *KeyMap) string {
	groups := []string{
		renderGroup("Navigation",
			keys.Navigation.NextSession,
			keys.Navigation.PrevSession,
			keys.Navigation.QuickSelect,
			keys.Navigation.NextHost,
			keys.Navigation.PrevHost),
		renderGroup("Session Management",
			keys.SessionManagement.New,
			keys.SessionManagement.Rename,
			keys.SessionManagement.Kill),
		renderGroup("Terminal",
			keys.Zoom.In,
			keys.Zoom.Out,
			keys.Zoom.Reset,
			keys.Application.OpenBrowser),
		renderGroup("Hosts",
			keys.Application.Hosts,
			keys.HostManagement.Add,
			keys.HostManagement.Edit,
			keys.HostManagement.Toggle,
			keys.HostManagement.Delete),
		renderGroup("Application",
			keys.Application.Refresh,
			keys.Application.CommandPalette,
			keys.Application.Help,
			keys.Application.Quit,
			keys.Application.ForceQuit),
	}

	indicators := theme.HelpGroupStyle.Render("Tab Indicators (read-only)") + "\n" +
		renderShortcut("●", "terminal already open, switching is instant") +
		renderShortcut("⣾", "terminal requested, waiting for the backend") +
		renderShortcut("*", "a client is attached to the tmux session")

	return strings.Join(groups, "\n") + "\n" + indicators
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap) *HelpScreen {
	return &HelpScreen{
		content:  buildHelpContent(keys),
		keys:     keys,
		viewport: viewport.New(0, 0),
	}
}

func (h *HelpScreen) Init() tea.Cmd {
	h.viewport.KeyMap.Up.SetKeys("up", "k")
	h.viewport.KeyMap.Down.SetKeys("down", "j")
	return nil
}

func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Dialog header: 5 lines, footer: 3 lines
		h.viewport.Width = msg.Width
		h.viewport.Height = max(msg.Height-8, 5)
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if key.Matches(msg, h.keys.Navigation.Back.Binding, h.keys.Application.Quit.Binding, h.keys.Application.Help.Binding) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}

	footer := theme.HelpStyle.Render("Press esc, q, or ? to close • ↑↓/jk/PgUp/PgDn to scroll")
	return h.viewport.View() + "\n" + footer
}
