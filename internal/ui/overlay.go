package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/muxdeck/internal/theme"
)

// bottomAnchoredOverlay renders overlay over the last lines of a dimmed
// background filling width x height
func bottomAnchoredOverlay(background, overlay string, width, height int) string {
	bgLines := strings.Split(background, "\n")
	overlayLines := strings.Split(overlay, "\n")

	for len(bgLines) < height {
		bgLines = append(bgLines, "")
	}

	for i := range bgLines {
		dimmed := theme.DimmedStyle.Render(stripAnsi(bgLines[i]))
		if w := lipgloss.Width(dimmed); w < width {
			dimmed += strings.Repeat(" ", width-w)
		}
		bgLines[i] = dimmed
	}

	startY := max(len(bgLines)-len(overlayLines), 0)
	for i, line := range overlayLines {
		y := startY + i
		if y >= len(bgLines) {
			break
		}
		if w := lipgloss.Width(line); w < width {
			line += strings.Repeat(" ", width-w)
		}
		bgLines[y] = line
	}

	return strings.Join(bgLines, "\n")
}

// stripAnsi removes ANSI escape codes from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false

	for i := 0; i < len(s); i++ {
		if s[i] == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			// SGR and most other sequences end with a letter
			if (s[i] >= 'A' && s[i] <= 'Z') || (s[i] >= 'a' && s[i] <= 'z') {
				inEscape = false
			}
			continue
		}
		result.WriteByte(s[i])
	}

	return result.String()
}
