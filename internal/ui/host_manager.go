package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"

	"github.com/renato0307/muxdeck/internal/domain"
	"github.com/renato0307/muxdeck/internal/theme"
)

// HostManager renders the configured hosts with a cursor. The Model
// handles its keys and the requests they trigger.
type HostManager struct {
	cursor int
	err    error
	hosts  []domain.Host
}

// NewHostManager creates a host manager showing hosts
func NewHostManager(hosts []domain.Host) *HostManager {
	hm := &HostManager{}
	hm.SetHosts(hosts, nil)
	return hm
}

// SetHosts replaces the list, keeping the cursor in range. A non-nil err
// is shown instead of the list.
func (hm *HostManager) SetHosts(hosts []domain.Host, err error) {
	hm.hosts = hosts
	hm.err = err
	if hm.cursor >= len(hosts) {
		hm.cursor = max(len(hosts)-1, 0)
	}
}

// Up moves the cursor up
func (hm *HostManager) Up() {
	if hm.cursor > 0 {
		hm.cursor--
	}
}

// Down moves the cursor down
func (hm *HostManager) Down() {
	if hm.cursor < len(hm.hosts)-1 {
		hm.cursor++
	}
}

// Selected returns the host under the cursor
func (hm *HostManager) Selected() (domain.Host, bool) {
	if hm.cursor < 0 || hm.cursor >= len(hm.hosts) {
		return domain.Host{}, false
	}
	return hm.hosts[hm.cursor], true
}

// View renders the host list and the key help below it
func (hm *HostManager) View(keys KeyMap, helpModel help.Model) string {
	var b strings.Builder

	switch {
	case hm.err != nil:
		b.WriteString(theme.ErrorStyle.Render("Failed to load hosts: "+hm.err.Error()) + "\n")
	case len(hm.hosts) == 0:
		b.WriteString(theme.MutedStyle.Render("No remote hosts configured. Only local sessions are listed.") + "\n")
	default:
		for i, h := range hm.hosts {
			b.WriteString(hm.renderRow(i, h) + "\n")
		}
	}

	b.WriteString("\n" + helpModel.ShortHelpView(keys.HostManagerHelp()))
	return b.String()
}

func (hm *HostManager) renderRow(i int, h domain.Host) string {
	prefix := "  "
	if i == hm.cursor {
		prefix = "> "
	}

	color := h.Color
	if color == "" {
		color = domain.HostColor(h.ID)
	}
	name := theme.HostColorStyle(color).Render("■ " + h.DisplayName())

	target := h.Hostname
	if h.Username != "" {
		target = h.Username + "@" + target
	}
	if h.Port != 0 && h.Port != domain.DefaultSSHPort {
		target = fmt.Sprintf("%s:%d", target, h.Port)
	}

	state := theme.SuccessStyle.Render("enabled")
	if !h.Enabled {
		state = theme.MutedStyle.Render("disabled")
	}

	return prefix + name + "  " + theme.NormalStyle.Render(target) + "  " + state
}
