package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/muxdeck/internal/theme"
)

// maxVisibleItems is the number of palette rows shown at once
const maxVisibleItems = 6

// CommandPalette is a searchable action palette overlay
type CommandPalette struct {
	actions       []KeyDefinition // Filtered actions
	allActions    []KeyDefinition
	Completed     bool
	filterInput   textinput.Model
	height        int
	keys          KeyMap
	lastQuery     string
	Result        CommandPaletteResult
	selectedIndex int
	sessionName   string // Active session shown in the header
	width         int
}

// CommandPaletteResult contains the result of the command palette interaction
type CommandPaletteResult struct {
	Action    *KeyDefinition
	Cancelled bool
}

// NewCommandPalette creates a new command palette. sessionName may be
// empty when nothing is active; session actions are then left out.
func NewCommandPalette(sessionName string, keys KeyMap) *CommandPalette {
	var actions []KeyDefinition
	for _, def := range GetPaletteActions() {
		if def.NeedsSession && sessionName == "" {
			continue
		}
		actions = append(actions, def)
	}

	ti := textinput.New()
	ti.Prompt = "Filter: "
	ti.PromptStyle = theme.FilterPromptStyle
	ti.Cursor.Style = theme.FilterCursorStyle
	ti.Placeholder = "type to filter"
	ti.PlaceholderStyle = theme.DimmedStyle
	ti.Focus()
	ti.CharLimit = 50
	ti.Width = 40

	return &CommandPalette{
		actions:     actions,
		allActions:  actions,
		filterInput: ti,
		keys:        keys,
		sessionName: sessionName,
	}
}

func (cp *CommandPalette) Init() tea.Cmd {
	return textinput.Blink
}

func (cp *CommandPalette) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		cp.width = msg.Width
		cp.height = msg.Height
		return cp, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, cp.keys.Navigation.Back.Binding, cp.keys.Application.ForceQuit.Binding):
			cp.Completed = true
			cp.Result.Cancelled = true
			return cp, nil

		case key.Matches(msg, cp.keys.Navigation.Select.Binding):
			if cp.selectedIndex < len(cp.actions) {
				cp.Completed = true
				cp.Result.Action = &cp.actions[cp.selectedIndex]
			}
			return cp, nil

		case msg.Type == tea.KeyUp:
			if cp.selectedIndex > 0 {
				cp.selectedIndex--
			}
			return cp, nil

		case msg.Type == tea.KeyDown:
			if cp.selectedIndex < len(cp.actions)-1 {
				cp.selectedIndex++
			}
			return cp, nil
		}
	}

	var cmd tea.Cmd
	cp.filterInput, cmd = cp.filterInput.Update(msg)
	cp.filterActions()

	return cp, cmd
}

// View renders the palette as a full-width panel
func (cp *CommandPalette) View() string {
	header := theme.PaletteTitleStyle.Render("⌘ Command Palette")
	if cp.sessionName != "" {
		header += " " + theme.DimmedStyle.Render("(active session: "+cp.sessionName+")")
	}

	var items []string
	maxHelpLen := cp.maxHelpLen()
	start, end := cp.visibleRange()
	hasMoreAbove := start > 0
	hasMoreBelow := end < len(cp.actions)

	for i := start; i < end; i++ {
		def := cp.actions[i]
		helpText := padRight(capitalizeFirst(def.Help), maxHelpLen)

		var prefix string
		switch {
		case i == cp.selectedIndex:
			prefix = "> "
		case i == start && hasMoreAbove:
			prefix = theme.ScrollIndicatorStyle.Render("↑ ")
		case i == end-1 && hasMoreBelow:
			prefix = theme.ScrollIndicatorStyle.Render("↓ ")
		default:
			prefix = "  "
		}

		itemStyle := theme.PaletteItemStyle
		if i == cp.selectedIndex {
			itemStyle = theme.PaletteItemSelectedStyle
		}
		items = append(items, prefix+
			itemStyle.Render(helpText)+
			theme.PaletteShortcutStyle.Render("  "+cp.keys.Shortcut(def.Name)))
	}

	if len(items) == 0 {
		items = append(items, theme.PaletteDescStyle.Render("  No matching actions"))
	}
	for len(items) < maxVisibleItems {
		items = append(items, "")
	}

	inner := header + "\n\n" + cp.filterInput.View() + "\n\n" + strings.Join(items, "\n")
	return theme.PaletteBorderStyle.Width(cp.paletteWidth() - 2).Render(inner)
}

// filterActions filters the action list based on the current input
func (cp *CommandPalette) filterActions() {
	query := strings.ToLower(cp.filterInput.Value())
	if query == cp.lastQuery {
		return
	}
	cp.lastQuery = query

	if query == "" {
		cp.actions = cp.allActions
		cp.selectedIndex = 0
		return
	}

	var filtered []KeyDefinition
	for _, def := range cp.allActions {
		if fuzzyMatch(query, def.Help) {
			filtered = append(filtered, def)
		}
	}
	cp.actions = filtered

	if cp.selectedIndex >= len(cp.actions) {
		cp.selectedIndex = 0
	}
}

// fuzzyMatch checks if all characters in query appear in order in target
func fuzzyMatch(query, target string) bool {
	target = strings.ToLower(target)
	queryRunes := []rune(query)
	qi := 0
	for _, c := range target {
		if qi < len(queryRunes) && c == queryRunes[qi] {
			qi++
		}
	}
	return qi == len(queryRunes)
}

// maxHelpLen uses allActions so alignment stays put while filtering
func (cp *CommandPalette) maxHelpLen() int {
	maxLen := 0
	for _, def := range cp.allActions {
		maxLen = max(maxLen, len(def.Help))
	}
	return maxLen
}

func (cp *CommandPalette) paletteWidth() int {
	if cp.width > 0 {
		return cp.width
	}
	return 80
}

// visibleRange keeps the selected row in view
func (cp *CommandPalette) visibleRange() (int, int) {
	total := len(cp.actions)
	if total <= maxVisibleItems {
		return 0, total
	}

	start := max(cp.selectedIndex-maxVisibleItems/2, 0)
	end := start + maxVisibleItems
	if end > total {
		end = total
		start = end - maxVisibleItems
	}
	return start, end
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
