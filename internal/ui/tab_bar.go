package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/muxdeck/internal/multiplexer"
	"github.com/renato0307/muxdeck/internal/theme"
)

const (
	maxTabNameWidth = 24
	warmMark        = "●"
	attachedMark    = "*"
)

// renderHostTabs renders one tab per host that has sessions. The scope
// host is underlined in its own color.
func renderHostTabs(tabs []multiplexer.HostTab) string {
	if len(tabs) == 0 {
		return theme.MutedStyle.Render("no hosts with sessions")
	}

	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		label := fmt.Sprintf("%s (%d)", t.Name, t.Count)
		style := theme.HostTabStyle
		if t.Active {
			style = theme.HostColorStyle(t.Color).Padding(0, 1).Underline(true)
		} else {
			label = theme.HostColorStyle(t.Color).Render("■") + " " + label
		}
		parts = append(parts, style.Render(label))
	}
	return strings.Join(parts, theme.TabSeparatorStyle.Render("│"))
}

// renderSessionTabs renders the session tabs of the scope host, or the
// inline list error in their place. pendingMark is drawn on tabs waiting
// for a terminal.
func renderSessionTabs(v multiplexer.View, pendingMark string, width int) string {
	if v.ListError != "" {
		return theme.ErrorStyle.Render(truncate("Failed to load sessions: "+v.ListError, width))
	}
	if len(v.SessionTabs) == 0 {
		return theme.MutedStyle.Render("no sessions on this host")
	}

	parts := make([]string, 0, len(v.SessionTabs))
	for i, t := range v.SessionTabs {
		label := truncate(t.Key.Name, maxTabNameWidth)
		if i < 9 {
			label = fmt.Sprintf("%d %s", i+1, label)
		}
		if t.Attached {
			label += attachedMark
		}

		var mark string
		switch {
		case t.Pending:
			mark = theme.PendingMarkStyle.Render(pendingMark) + " "
		case t.Warm:
			mark = theme.WarmMarkStyle.Render(warmMark) + " "
		}

		style := theme.SessionTabStyle
		if t.Active {
			style = theme.SessionTabActiveStyle
		}
		parts = append(parts, mark+style.Render(label))
	}

	row := strings.Join(parts, " ")
	if width > 0 && lipgloss.Width(row) > width {
		return fitActiveTab(parts, v, width)
	}
	return row
}

// fitActiveTab drops tabs from the far end until the row fits, keeping
// the active tab in view
func fitActiveTab(parts []string, v multiplexer.View, width int) string {
	active := 0
	for i, t := range v.SessionTabs {
		if t.Active {
			active = i
		}
	}

	start, end := active, active+1
	for {
		grew := false
		if end < len(parts) && lipgloss.Width(strings.Join(parts[start:end+1], " "))+4 <= width {
			end++
			grew = true
		}
		if start > 0 && lipgloss.Width(strings.Join(parts[start-1:end], " "))+4 <= width {
			start--
			grew = true
		}
		if !grew {
			break
		}
	}

	row := strings.Join(parts[start:end], " ")
	if start > 0 {
		row = theme.MutedStyle.Render("‹ ") + row
	}
	if end < len(parts) {
		row += theme.MutedStyle.Render(" ›")
	}
	return row
}

// truncate shortens s to width runes, marking the cut with "…"
func truncate(s string, width int) string {
	runes := []rune(s)
	if width <= 0 || len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
