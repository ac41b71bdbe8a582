package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/renato0307/muxdeck/internal/domain"
	"github.com/renato0307/muxdeck/internal/logging"
	"github.com/renato0307/muxdeck/internal/services"
	"github.com/renato0307/muxdeck/internal/theme"
)

// hostSavedMsg is sent when an add or update request completes
type hostSavedMsg struct {
	err error
}

// HostFormResult contains the result of the host form
type HostFormResult struct {
	Cancelled bool
	Error     error
	HostID    string // Empty when adding
	Input     domain.HostInput
}

// HostForm adds a host or edits an existing one
type HostForm struct {
	Completed   bool
	form        *huh.Form
	hostService *services.HostService
	port        string
	result      HostFormResult
	saving      bool
	spinner     spinner.Model
}

// NewHostForm creates a form for a new host, or for editing existing when non-nil
func NewHostForm(hostService *services.HostService, existing *domain.Host) *HostForm {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = theme.SpinnerStyle

	hf := &HostForm{
		hostService: hostService,
		port:        strconv.Itoa(domain.DefaultSSHPort),
		result: HostFormResult{
			Input: domain.HostInput{Enabled: true},
		},
		spinner: s,
	}
	if existing != nil {
		hf.result.HostID = existing.ID
		hf.result.Input = domain.HostInput{
			Enabled:  existing.Enabled,
			Hostname: existing.Hostname,
			Name:     existing.Name,
			Port:     existing.Port,
			Username: existing.Username,
		}
		if existing.Port > 0 {
			hf.port = strconv.Itoa(existing.Port)
		}
	}

	hf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Hostname").
				Description("Address the backend connects to over SSH").
				Placeholder("build-01.example.com").
				Value(&hf.result.Input.Hostname).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("hostname required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Name (optional)").
				Description("Tab label. Defaults to the hostname.").
				Value(&hf.result.Input.Name),
			huh.NewInput().
				Title("Port").
				Value(&hf.port).
				Validate(validatePort),
			huh.NewInput().
				Title("Username (optional)").
				Value(&hf.result.Input.Username),
			huh.NewConfirm().
				Title("Enabled?").
				Description("Disabled hosts are not queried for sessions").
				Value(&hf.result.Input.Enabled).
				Affirmative("Yes").
				Negative("No"),
		),
	)

	return hf
}

func validatePort(s string) error {
	if s == "" {
		return nil
	}
	port, err := strconv.Atoi(s)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("port must be a number between 1 and 65535")
	}
	return nil
}

func (hf *HostForm) Init() tea.Cmd {
	return hf.form.Init()
}

func (hf *HostForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(hostSavedMsg); ok {
		hf.saving = false
		hf.Completed = true
		if msg.err != nil {
			logging.Logger.Error("Failed to save host", "error", msg.err)
			hf.result.Error = msg.err
		}
		return hf, nil
	}

	if hf.saving {
		var cmd tea.Cmd
		hf.spinner, cmd = hf.spinner.Update(msg)
		return hf, cmd
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			hf.Completed = true
			hf.result.Cancelled = true
			return hf, nil
		}
	}

	form, cmd := hf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		hf.form = f
	}

	if hf.form.State == huh.StateCompleted && !hf.saving {
		hf.saving = true
		return hf, tea.Batch(hf.saveHostCmd(), hf.spinner.Tick)
	}

	return hf, cmd
}

func (hf *HostForm) View() string {
	if hf.saving {
		return fmt.Sprintf("\n%s Saving host...\n", hf.spinner.View())
	}
	if hf.form != nil {
		return hf.form.View()
	}
	return ""
}

// Result returns the form result
func (hf *HostForm) Result() HostFormResult {
	return hf.result
}

func (hf *HostForm) saveHostCmd() tea.Cmd {
	in := hf.result.Input
	in.Hostname = strings.TrimSpace(in.Hostname)
	in.Name = strings.TrimSpace(in.Name)
	in.Username = strings.TrimSpace(in.Username)
	if port, err := strconv.Atoi(hf.port); err == nil {
		in.Port = port
	}
	hf.result.Input = in
	id := hf.result.HostID

	return func() tea.Msg {
		if id == "" {
			_, err := hf.hostService.AddHost(context.Background(), in)
			return hostSavedMsg{err: err}
		}
		return hostSavedMsg{err: hf.hostService.UpdateHost(context.Background(), id, in)}
	}
}
