package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/renato0307/muxdeck/internal/domain"
	"github.com/renato0307/muxdeck/internal/logging"
	"github.com/renato0307/muxdeck/internal/services"
	"github.com/renato0307/muxdeck/internal/theme"
)

// sessionRenamedMsg is sent when a rename request completes
type sessionRenamedMsg struct {
	err    error
	newKey domain.SessionKey
}

// SessionRenameFormResult contains the result of the rename operation
type SessionRenameFormResult struct {
	Cancelled      bool
	Error          error
	NewDisplayName string            // User input
	NewKey         domain.SessionKey // Sanitized name as acknowledged by the backend
	OldKey         domain.SessionKey
}

// SessionRenameForm is a Bubble Tea component for renaming sessions
type SessionRenameForm struct {
	Completed      bool
	form           *huh.Form
	renaming       bool
	result         SessionRenameFormResult
	sessionService *services.SessionService
	spinner        spinner.Model
}

// NewSessionRenameForm creates a rename form for key. taken lists the
// names already used on the same host.
func NewSessionRenameForm(sessionService *services.SessionService, key domain.SessionKey, taken []string) *SessionRenameForm {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = theme.SpinnerStyle

	sf := &SessionRenameForm{
		result: SessionRenameFormResult{
			OldKey: key,
		},
		sessionService: sessionService,
		spinner:        s,
	}

	used := make(map[string]bool, len(taken))
	for _, name := range taken {
		used[name] = true
	}

	sf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("New session name").
				Description(fmt.Sprintf("Renaming: %s", key.Name)).
				Value(&sf.result.NewDisplayName).
				Placeholder(key.Name).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("session name required")
					}
					name := domain.SanitizeSessionName(s)
					if name == "" {
						return fmt.Errorf("session name has no usable characters")
					}
					if used[name] && name != key.Name {
						return fmt.Errorf("session %s already exists", name)
					}
					return nil
				}),
		),
	)

	return sf
}

func (sf *SessionRenameForm) Init() tea.Cmd {
	return sf.form.Init()
}

func (sf *SessionRenameForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(sessionRenamedMsg); ok {
		sf.renaming = false
		sf.Completed = true
		sf.result.NewKey = msg.newKey
		if msg.err != nil {
			logging.Logger.Error("Failed to rename session", "error", msg.err)
			sf.result.Error = msg.err
		}
		return sf, nil
	}

	if sf.renaming {
		var cmd tea.Cmd
		sf.spinner, cmd = sf.spinner.Update(msg)
		return sf, cmd
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			sf.result.Cancelled = true
			sf.Completed = true
			return sf, nil
		}
	}

	form, cmd := sf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		sf.form = f
	}

	if sf.form.State == huh.StateCompleted && !sf.renaming {
		sf.renaming = true
		return sf, tea.Batch(sf.renameSessionCmd(), sf.spinner.Tick)
	}

	return sf, cmd
}

func (sf *SessionRenameForm) View() string {
	if sf.renaming {
		return fmt.Sprintf("\n%s Renaming session...\n", sf.spinner.View())
	}
	if sf.form != nil {
		return sf.form.View()
	}
	return ""
}

// Result returns the form result
func (sf *SessionRenameForm) Result() SessionRenameFormResult {
	return sf.result
}

func (sf *SessionRenameForm) renameSessionCmd() tea.Cmd {
	oldKey := sf.result.OldKey
	displayName := sf.result.NewDisplayName
	return func() tea.Msg {
		logging.Logger.Info("Renaming session", "old", oldKey.String(), "new_display_name", displayName)
		newKey, err := sf.sessionService.RenameSession(context.Background(), oldKey, displayName)
		return sessionRenamedMsg{err: err, newKey: newKey}
	}
}
