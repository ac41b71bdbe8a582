package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)
)

// Tab bar styles
var (
	HostTabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Background(ColorTabInactiveBg).
			Foreground(ColorNormal)

	SessionTabActiveStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Background(ColorTabActiveBg).
				Foreground(ColorHighlight).
				Bold(true)

	SessionTabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Background(ColorTabInactiveBg).
			Foreground(ColorNormal)

	TabSeparatorStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	PendingMarkStyle = lipgloss.NewStyle().
				Foreground(ColorTabPending)

	WarmMarkStyle = lipgloss.NewStyle().
			Foreground(ColorTabWarm)
)

// Surface panel styles
var (
	SurfacePanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorSurfaceBorder).
				Padding(0, 1)

	SurfaceAddressStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Underline(true)

	SurfaceLabelStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle).
				Width(10)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(25)
)

// Tip styles
var (
	TipKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	TipTextStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)
)

// Empty state hint styles
var (
	HintKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHintKey).
			Bold(true)

	HintLabelStyle = lipgloss.NewStyle().
			Foreground(ColorHintLabel)
)

// Spinner style
var SpinnerStyle = lipgloss.NewStyle().
	Foreground(ColorSpinner)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// HostColorStyle returns a style for a host color (hex or ANSI code)
func HostColorStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
}

// SurfaceStatusStyle returns the style for a surface status name
func SurfaceStatusStyle(status string) lipgloss.Style {
	color := ColorSurfaceReady
	switch status {
	case "loading":
		color = ColorSurfaceLoading
	case "failed":
		color = ColorSurfaceFailed
	case "closed":
		color = ColorSurfaceClosed
	}
	return lipgloss.NewStyle().Foreground(color)
}

// Command palette styles
var (
	DimmedStyle = lipgloss.NewStyle().
			Foreground(ColorDimmed)

	ScrollIndicatorStyle = lipgloss.NewStyle().
				Foreground(ColorScrollIndicator)

	PaletteBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.Border{Top: "─", Bottom: "─"}).
				BorderForeground(ColorMuted).
				Padding(0, 1)

	PaletteDescStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle)

	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(ColorHintKey)

	FilterCursorStyle = lipgloss.NewStyle().
				Foreground(ColorSpinner)

	PaletteTitleStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true)

	PaletteItemSelectedStyle = lipgloss.NewStyle().
					Foreground(ColorHighlight).
					Background(ColorPaletteSelected).
					Bold(true)

	PaletteItemStyle = lipgloss.NewStyle().
				Foreground(ColorNormal)

	PaletteShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)
)
