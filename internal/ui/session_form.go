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

// sessionCreatedMsg is sent when session creation completes
type sessionCreatedMsg struct {
	err error
	key domain.SessionKey
}

// SessionFormResult contains the result of the session creation form
type SessionFormResult struct {
	Cancelled   bool
	Error       error // Error that occurred during session creation
	HostID      string
	Key         domain.SessionKey // Created session, as named by the backend
	SessionName string
}

// SessionForm is a Bubble Tea component for creating sessions
type SessionForm struct {
	Completed      bool // Exported so Model can check completion
	creating       bool // True when the create request is in flight
	form           *huh.Form
	result         SessionFormResult
	sessionService *services.SessionService
	spinner        spinner.Model
}

// hostChoice is one selectable host in the create form
type hostChoice struct {
	ID    string
	Label string
}

// NewSessionForm creates a new session creation form. The host picker is
// skipped when only one host is available.
func NewSessionForm(sessionService *services.SessionService, hosts []hostChoice, defaultHostID string) *SessionForm {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = theme.SpinnerStyle

	if defaultHostID == "" {
		defaultHostID = domain.LocalHostID
	}

	sf := &SessionForm{
		result: SessionFormResult{
			HostID: defaultHostID,
		},
		sessionService: sessionService,
		spinner:        s,
	}

	var fields []huh.Field
	if len(hosts) > 1 {
		options := make([]huh.Option[string], 0, len(hosts))
		for _, h := range hosts {
			options = append(options, huh.NewOption(h.Label, h.ID))
		}
		fields = append(fields, huh.NewSelect[string]().
			Title("Host").
			Options(options...).
			Value(&sf.result.HostID))
	}

	fields = append(fields, huh.NewInput().
		Title("Session name").
		Value(&sf.result.SessionName).
		DescriptionFunc(func() string {
			sanitized := domain.SanitizeSessionName(sf.result.SessionName)
			if sanitized != "" && sanitized != sf.result.SessionName {
				return fmt.Sprintf("Will be created as: %s", sanitized)
			}
			return ""
		}, &sf.result.SessionName).
		Validate(func(s string) error {
			if s == "" {
				return fmt.Errorf("session name required")
			}
			if domain.SanitizeSessionName(s) == "" {
				return fmt.Errorf("session name has no usable characters")
			}
			return nil
		}))

	sf.form = huh.NewForm(huh.NewGroup(fields...))

	return sf
}

func (sf *SessionForm) Init() tea.Cmd {
	return sf.form.Init()
}

func (sf *SessionForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(sessionCreatedMsg); ok {
		sf.creating = false
		sf.Completed = true
		sf.result.Key = msg.key
		if msg.err != nil {
			logging.Logger.Error("Failed to create session", "error", msg.err)
			sf.result.Error = msg.err
		}
		return sf, nil
	}

	if sf.creating {
		var cmd tea.Cmd
		sf.spinner, cmd = sf.spinner.Update(msg)
		return sf, cmd
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			sf.Completed = true
			sf.result.Cancelled = true
			return sf, nil
		}
	}

	form, cmd := sf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		sf.form = f
	}

	if sf.form.State == huh.StateCompleted && !sf.creating {
		sf.creating = true
		return sf, tea.Batch(sf.createSessionCmd(), sf.spinner.Tick)
	}

	return sf, cmd
}

func (sf *SessionForm) View() string {
	if sf.creating {
		return fmt.Sprintf("\n%s Creating session...\n", sf.spinner.View())
	}
	if sf.form != nil {
		return sf.form.View()
	}
	return ""
}

// Result returns the form result
func (sf *SessionForm) Result() SessionFormResult {
	return sf.result
}

// createSessionCmd returns a command that creates the session asynchronously
func (sf *SessionForm) createSessionCmd() tea.Cmd {
	hostID := sf.result.HostID
	name := sf.result.SessionName
	return func() tea.Msg {
		key, err := sf.sessionService.CreateSession(context.Background(), hostID, name)
		return sessionCreatedMsg{err: err, key: key}
	}
}
