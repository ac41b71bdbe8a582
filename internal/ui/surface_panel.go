package ui

import (
	"fmt"
	"strings"

	"github.com/renato0307/muxdeck/internal/multiplexer"
	"github.com/renato0307/muxdeck/internal/theme"
)

// statusReporter is implemented by surfaces that track their load state
type statusReporter interface {
	StatusText() string
}

// renderSurfacePanel describes the visible terminal: its session, address,
// load state and zoom. Without a visible terminal it shows why.
func renderSurfacePanel(m *Model, view multiplexer.View, width, height int) string {
	var body string

	res, ok := m.mux.VisibleSurface()
	switch {
	case ok:
		body = renderSurfaceDetails(res, view.ZoomPercent, m.keys.Application.OpenBrowser.Binding.Help().Key, m.browserName)
	default:
		tab, active := view.ActiveTab()
		switch {
		case active && tab.Pending:
			body = m.spinner.View() + " Requesting a terminal for " + theme.NormalStyle.Render(tab.Key.String()) + "..."
		case active:
			body = theme.MutedStyle.Render("No terminal for " + tab.Key.String() + " yet.")
		default:
			body = renderEmptyState()
		}
	}

	innerWidth := max(width-4, 10)
	innerHeight := max(height-2, 3)
	return theme.SurfacePanelStyle.
		Width(innerWidth).
		Height(innerHeight).
		Render(body)
}

func renderSurfaceDetails(res *multiplexer.Resource, zoomPercent int, openKey, browserName string) string {
	status := "ready"
	if r, ok := res.Surface.(statusReporter); ok {
		status = r.StatusText()
	}
	statusName, _, _ := strings.Cut(status, ":")

	lines := []string{
		theme.SurfaceLabelStyle.Render("Session") + theme.NormalStyle.Render(res.Key.Name),
		theme.SurfaceLabelStyle.Render("Host") + theme.NormalStyle.Render(res.Key.HostID),
		theme.SurfaceLabelStyle.Render("Terminal") + theme.SurfaceAddressStyle.Render(res.Surface.Address().String()),
		theme.SurfaceLabelStyle.Render("Status") + theme.SurfaceStatusStyle(statusName).Render(status),
		theme.SurfaceLabelStyle.Render("Zoom") + theme.NormalStyle.Render(fmt.Sprintf("%d%%", zoomPercent)),
	}
	if res.TerminalID != "" {
		lines = append(lines, theme.SurfaceLabelStyle.Render("ID")+theme.MutedStyle.Render(res.TerminalID))
	}

	open := "the default browser"
	if browserName != "" {
		open = browserName
	}
	lines = append(lines, "", theme.MutedStyle.Render("The terminal runs in the browser; open it with ")+
		theme.HintKeyStyle.Render(openKey)+theme.MutedStyle.Render(" ("+open+")."))
	return strings.Join(lines, "\n")
}

// renderEmptyState shows the hints of the tips registered by the key map
func renderEmptyState() string {
	lines := []string{
		theme.HintLabelStyle.Render("No session selected."),
		"",
	}
	for i, tip := range GetTips() {
		if i == 4 {
			break
		}
		lines = append(lines, RenderTip(tip))
	}
	return strings.Join(lines, "\n")
}
