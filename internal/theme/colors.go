package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Tab colors
const (
	ColorTabActiveBg   Color = "62"  // Indigo - active session tab
	ColorTabInactiveBg Color = "236" // Near black - inactive tabs
	ColorTabPending    Color = "214" // Orange - attach in flight
	ColorTabWarm       Color = "2"   // Green - surface already created
)

// Surface status colors
const (
	ColorSurfaceClosed  Color = "8"   // Gray
	ColorSurfaceFailed  Color = "1"   // Red
	ColorSurfaceLoading Color = "3"   // Yellow
	ColorSurfaceReady   Color = "2"   // Green
	ColorSurfaceBorder  Color = "240" // Dark gray
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorSuccess   Color = "42"  // Green - confirmations
	ColorVersion   Color = "240" // Dark gray
)

// Accent colors
const (
	ColorHelpGroup Color = "141" // Purple
	ColorHintKey   Color = "226" // Yellow - empty state hint keys
	ColorHintLabel Color = "178" // Gold - empty state hint labels
	ColorSpinner   Color = "205" // Pink
)

// Command palette colors
const (
	ColorDimmed          Color = "238" // Background behind overlays
	ColorPaletteSelected Color = "237" // Selected palette row
	ColorScrollIndicator Color = "244"
)
