package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/muxdeck/internal/config"
	"github.com/renato0307/muxdeck/internal/domain"
	"github.com/renato0307/muxdeck/internal/logging"
	"github.com/renato0307/muxdeck/internal/multiplexer"
	"github.com/renato0307/muxdeck/internal/ports"
	"github.com/renato0307/muxdeck/internal/services"
	"github.com/renato0307/muxdeck/internal/theme"
)

type uiState int

const (
	stateMain uiState = iota
	stateCommandPalette
	stateConfirmingHostDelete
	stateConfirmingKill
	stateCreatingSession
	stateEditingHost
	stateHelp
	stateHostManager
	stateRenamingSession
)

// ModelConfig holds the dependencies and settings of a Model
type ModelConfig struct {
	Browser         ports.BrowserOpener
	BrowserName     string // Browser override from flags or settings
	Channel         ports.AttachChannel
	Context         context.Context
	DevMode         bool
	ErrorClearDelay time.Duration
	Failures        *FailureFeed
	HostService     *services.HostService
	Keys            config.KeyBindingsConfig
	Multiplexer     *multiplexer.Multiplexer
	Preferences     *services.PreferencesService
	RefreshInterval time.Duration
	Refresher       *services.Refresher
	SessionService  *services.SessionService
}

// Model is the bubbletea model of one muxdeck screen. It owns the
// multiplexer and is the only goroutine that touches it.
type Model struct {
	browser           ports.BrowserOpener
	browserName       string
	channel           ports.AttachChannel
	commandPalette    *CommandPalette   // Command palette overlay
	confirmDialog     *Dialog           // Kill session or delete host confirmation
	confirmed         *bool             // Confirmation decision (pointer to persist across updates)
	ctx               context.Context
	devMode           bool              // Shows version info in dialogs
	errorManager      *ErrorManager     // Bottom line: errors and confirmations
	failures          *FailureFeed      // Surface load failures from probe goroutines
	height            int
	help              help.Model
	helpScreen        *Dialog
	hostDeleteTarget  domain.Host
	hostForm          *Dialog
	hostManager       *HostManager
	hostService       *services.HostService
	hosts             []domain.Host
	hostsErr          error
	keys              KeyMap
	killTarget        domain.SessionKey
	mux               *multiplexer.Multiplexer
	pendingSelect     domain.SessionKey // Created session to activate after the next refresh
	preferences       *services.PreferencesService
	refreshInterval   time.Duration
	refresher         *services.Refresher
	refreshing        bool
	sessionForm       *Dialog
	sessionRenameForm *Dialog
	sessionService    *services.SessionService
	spinner           spinner.Model
	state             uiState
	width             int
}

// NewModel creates the model and restores the saved selection and zoom
func NewModel(cfg ModelConfig) *Model {
	ctx := cfg.Context
	if ctx == nil {
		ctx = context.Background()
	}

	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = theme.SpinnerStyle

	if cfg.Preferences != nil {
		prefs := cfg.Preferences.Load(ctx)
		cfg.Multiplexer.Restore(prefs)
		logging.Logger.Info("Preferences restored",
			"profile", cfg.Preferences.Profile(),
			"scope", prefs.ScopeHostID,
			"zoom", prefs.Zoom)
	}

	return &Model{
		browser:         cfg.Browser,
		browserName:     cfg.BrowserName,
		channel:         cfg.Channel,
		ctx:             ctx,
		devMode:         cfg.DevMode,
		errorManager:    NewErrorManager(cfg.ErrorClearDelay),
		failures:        cfg.Failures,
		help:            help.New(),
		hostService:     cfg.HostService,
		keys:            NewKeyMap(cfg.Keys),
		mux:             cfg.Multiplexer,
		preferences:     cfg.Preferences,
		refreshInterval: cfg.RefreshInterval,
		refresher:       cfg.Refresher,
		sessionService:  cfg.SessionService,
		spinner:         s,
		state:           stateMain,
	}
}

func (m *Model) Init() tea.Cmd {
	m.refreshing = true
	cmds := []tea.Cmd{
		refreshCmd(m.refresher),
		refreshTickCmd(m.refreshInterval),
		m.spinner.Tick,
	}
	if m.channel != nil {
		cmds = append(cmds, waitForEventCmd(m.channel))
	}
	if m.failures != nil {
		cmds = append(cmds, m.failures.Wait())
	}
	return tea.Batch(cmds...)
}

// Shutdown saves the selection and zoom and releases every surface.
// Call it once the program has exited.
func (m *Model) Shutdown(ctx context.Context) {
	if m.preferences != nil {
		if err := m.preferences.Save(ctx, m.mux.Preferences()); err != nil {
			logging.Logger.Warn("Failed to save preferences", "error", err)
		}
	}
	if err := m.mux.Close(); err != nil {
		logging.Logger.Warn("Failed to close terminal surfaces", "error", err)
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Background results apply whatever dialog is open
	if cmd, handled := m.updateBackground(msg); handled {
		return m, cmd
	}

	var tickCmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case spinner.TickMsg:
		// Dialog spinners share the message type; the id filter keeps them apart
		m.spinner, tickCmd = m.spinner.Update(msg)
	}

	var cmd tea.Cmd
	switch m.state {
	case stateMain:
		cmd = m.updateMain(msg)
	case stateCommandPalette:
		cmd = m.updateCommandPalette(msg)
	case stateConfirmingHostDelete:
		cmd = m.updateConfirmingHostDelete(msg)
	case stateConfirmingKill:
		cmd = m.updateConfirmingKill(msg)
	case stateCreatingSession:
		cmd = m.updateCreatingSession(msg)
	case stateEditingHost:
		cmd = m.updateEditingHost(msg)
	case stateHelp:
		cmd = m.updateHelp(msg)
	case stateHostManager:
		cmd = m.updateHostManager(msg)
	case stateRenamingSession:
		cmd = m.updateRenamingSession(msg)
	}
	return m, tea.Batch(tickCmd, cmd)
}

// updateBackground applies results of asynchronous work
func (m *Model) updateBackground(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case snapshotMsg:
		return m.applySnapshot(msg), true

	case refreshTickMsg:
		next := refreshTickCmd(m.refreshInterval)
		if m.refreshing {
			return next, true
		}
		m.refreshing = true
		return tea.Batch(refreshCmd(m.refresher), next), true

	case channelEventMsg:
		res, err := m.mux.HandleEvent(m.ctx, msg.event)
		next := waitForEventCmd(m.channel)
		if err != nil {
			return tea.Batch(next, m.setError(err)), true
		}
		if res.Key != (domain.SessionKey{}) {
			logging.Logger.Debug("Terminal resolved",
				"key", res.Key.String(),
				"created", res.Created,
				"reused", res.Reused,
				"shown", res.Shown)
		}
		return next, true

	case channelClosedMsg:
		logging.Logger.Warn("Attach channel closed")
		return m.setError(fmt.Errorf("%w: restart muxdeck to reconnect", domain.ErrChannelClosed)), true

	case surfaceFailedMsg:
		err := fmt.Errorf("terminal for %s failed to load: %w", msg.key, msg.err)
		return tea.Batch(m.failures.Wait(), m.setError(err)), true

	case sessionDeletedMsg:
		if msg.err != nil {
			return m.setError(fmt.Errorf("failed to kill session: %w", msg.err)), true
		}
		if err := m.mux.SessionDeleted(msg.key); err != nil {
			logging.Logger.Warn("Failed to release terminal of deleted session", "key", msg.key.String(), "error", err)
		}
		return tea.Batch(m.setNotice("Killed "+msg.key.String()), m.refresh()), true

	case hostsChangedMsg:
		if msg.err != nil {
			return m.setError(fmt.Errorf("failed to update hosts: %w", msg.err)), true
		}
		return tea.Batch(m.setNotice("Host "+msg.action), m.refresh()), true

	case browserOpenedMsg:
		if msg.err != nil {
			return m.setError(fmt.Errorf("failed to open browser: %w", msg.err)), true
		}
		logging.Logger.Info("Terminal opened in browser", "address", msg.address)
		return nil, true

	case clearStatusMsg:
		m.errorManager.handleClear(msg)
		return nil, true
	}
	return nil, false
}

func (m *Model) applySnapshot(msg snapshotMsg) tea.Cmd {
	m.refreshing = false
	if msg.err != nil {
		m.mux.SetListError(msg.err)
		return m.setError(fmt.Errorf("failed to refresh sessions: %w", msg.err))
	}

	if msg.snap.HostErr != nil {
		logging.Logger.Warn("Host list unavailable", "error", msg.snap.HostErr)
		m.hostsErr = msg.snap.HostErr
	} else {
		m.hosts = msg.snap.Hosts
		m.hostsErr = nil
	}
	if m.hostManager != nil {
		m.hostManager.SetHosts(m.hosts, m.hostsErr)
	}

	var cmds []tea.Cmd
	if err := m.mux.ApplySessions(m.ctx, msg.snap.Sessions); err != nil {
		cmds = append(cmds, m.setError(err))
	}

	if !m.pendingSelect.IsZero() {
		key := m.pendingSelect
		m.pendingSelect = domain.SessionKey{}
		if containsSession(msg.snap.Sessions, key) {
			cmds = append(cmds, m.selectSession(key))
		} else {
			logging.Logger.Warn("Created session missing from list", "key", key.String())
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) updateMain(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.handleAction(msg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Application.ForceQuit.Binding, m.keys.Application.Quit.Binding):
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Application.Help.Binding):
		return m.handleAction(ShowHelpMsg{})
	case key.Matches(keyMsg, m.keys.Application.CommandPalette.Binding):
		return m.handleAction(ShowCommandPaletteMsg{})
	case key.Matches(keyMsg, m.keys.Application.Hosts.Binding):
		return m.handleAction(ShowHostsMsg{})
	case key.Matches(keyMsg, m.keys.Application.Refresh.Binding):
		return m.handleAction(RefreshMsg{})
	case key.Matches(keyMsg, m.keys.Application.OpenBrowser.Binding):
		return m.handleAction(OpenBrowserMsg{})
	case key.Matches(keyMsg, m.keys.Zoom.In.Binding):
		return m.handleAction(ZoomInMsg{})
	case key.Matches(keyMsg, m.keys.Zoom.Out.Binding):
		return m.handleAction(ZoomOutMsg{})
	case key.Matches(keyMsg, m.keys.Zoom.Reset.Binding):
		return m.handleAction(ZoomResetMsg{})
	case key.Matches(keyMsg, m.keys.Navigation.NextHost.Binding):
		return m.handleAction(NextHostMsg{})
	case key.Matches(keyMsg, m.keys.Navigation.PrevHost.Binding):
		return m.handleAction(PrevHostMsg{})
	case key.Matches(keyMsg, m.keys.Navigation.NextSession.Binding):
		return m.handleAction(NextSessionMsg{})
	case key.Matches(keyMsg, m.keys.Navigation.PrevSession.Binding):
		return m.handleAction(PrevSessionMsg{})
	case key.Matches(keyMsg, m.keys.Navigation.QuickSelect.Binding):
		return m.quickSelect(keyMsg.String())
	case key.Matches(keyMsg, m.keys.SessionManagement.New.Binding):
		return m.handleAction(NewSessionMsg{})
	case key.Matches(keyMsg, m.keys.SessionManagement.Rename.Binding):
		return m.handleActiveSessionAction(RenameSessionMsg{})
	case key.Matches(keyMsg, m.keys.SessionManagement.Kill.Binding):
		return m.handleActiveSessionAction(KillSessionMsg{})
	}
	return nil
}

// handleActiveSessionAction binds msg to the active session
func (m *Model) handleActiveSessionAction(msg SessionAwareMsg) tea.Cmd {
	active, ok := m.mux.Selection().Active()
	if !ok {
		return m.setError(domain.ErrNoSelection)
	}
	return m.handleAction(msg.WithSession(active))
}

// handleAction runs one action message, from a key or the command palette
func (m *Model) handleAction(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case QuitMsg:
		return tea.Quit

	case ShowHelpMsg:
		m.helpScreen = NewDialog("Help", NewHelpScreen(&m.keys), m.devMode)
		m.state = stateHelp
		initCmd := m.helpScreen.Init()
		updated, sizeCmd := m.helpScreen.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		m.helpScreen = updated.(*Dialog)
		return tea.Batch(initCmd, sizeCmd)

	case ShowCommandPaletteMsg:
		var name string
		if active, ok := m.mux.Selection().Active(); ok {
			name = active.String()
		}
		m.commandPalette = NewCommandPalette(name, m.keys)
		m.state = stateCommandPalette
		initCmd := m.commandPalette.Init()
		_, sizeCmd := m.commandPalette.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		return tea.Batch(initCmd, sizeCmd)

	case ShowHostsMsg:
		m.hostManager = NewHostManager(m.hosts)
		m.hostManager.SetHosts(m.hosts, m.hostsErr)
		m.state = stateHostManager
		return nil

	case RefreshMsg:
		return m.refresh()

	case OpenBrowserMsg:
		res, ok := m.mux.VisibleSurface()
		if !ok {
			return m.setError(fmt.Errorf("%w: no terminal to open", domain.ErrNoSelection))
		}
		return openBrowserCmd(m.browser, res.Surface.Address().String(), m.browserName)

	case ZoomInMsg:
		m.mux.ZoomIn()
		return nil
	case ZoomOutMsg:
		m.mux.ZoomOut()
		return nil
	case ZoomResetMsg:
		m.mux.ZoomReset()
		return nil

	case NextHostMsg:
		return m.cycleHost(1)
	case PrevHostMsg:
		return m.cycleHost(-1)
	case NextSessionMsg:
		return m.cycleSession(1)
	case PrevSessionMsg:
		return m.cycleSession(-1)

	case NewSessionMsg:
		form := NewSessionForm(m.sessionService, m.hostChoices(), m.mux.Selection().Scope())
		m.sessionForm = NewDialog("Create Session", form, m.devMode)
		m.state = stateCreatingSession
		return m.sessionForm.Init()

	case RenameSessionMsg:
		form := NewSessionRenameForm(m.sessionService, msg.Key, m.sessionNames(msg.Key.HostID))
		m.sessionRenameForm = NewDialog("Rename Session", form, m.devMode)
		m.state = stateRenamingSession
		return m.sessionRenameForm.Init()

	case KillSessionMsg:
		m.killTarget = msg.Key
		m.confirmDialog = m.newConfirmDialog("Kill Session",
			fmt.Sprintf("Kill tmux session %s?", msg.Key.Name),
			fmt.Sprintf("Every window of the session on %s is closed.", msg.Key.HostID),
			"Kill")
		m.state = stateConfirmingKill
		return m.confirmDialog.Init()
	}
	return nil
}

func (m *Model) updateCommandPalette(msg tea.Msg) tea.Cmd {
	updated, cmd := m.commandPalette.Update(msg)
	m.commandPalette = updated.(*CommandPalette)

	if !m.commandPalette.Completed {
		return cmd
	}

	result := m.commandPalette.Result
	m.state = stateMain
	m.commandPalette = nil
	if result.Cancelled || result.Action == nil {
		return nil
	}

	active, ok := m.mux.Selection().Active()
	actionMsg := NewActionDispatcher(active, ok).Dispatch(*result.Action)
	if actionMsg == nil {
		if _, needsSession := result.Action.Msg.(SessionAwareMsg); needsSession {
			return m.setError(domain.ErrNoSelection)
		}
		return nil
	}
	return m.handleAction(actionMsg)
}

func (m *Model) updateCreatingSession(msg tea.Msg) tea.Cmd {
	updated, cmd := m.sessionForm.Update(msg)
	m.sessionForm = updated.(*Dialog)

	content, ok := m.sessionForm.Content().(*SessionForm)
	if !ok || !content.Completed {
		return cmd
	}

	result := content.Result()
	m.state = stateMain
	m.sessionForm = nil

	if result.Error != nil {
		return m.setError(fmt.Errorf("failed to create session: %w", result.Error))
	}
	if result.Cancelled {
		return nil
	}

	m.pendingSelect = result.Key
	return tea.Batch(m.setNotice("Created "+result.Key.String()), m.refresh())
}

func (m *Model) updateRenamingSession(msg tea.Msg) tea.Cmd {
	updated, cmd := m.sessionRenameForm.Update(msg)
	m.sessionRenameForm = updated.(*Dialog)

	content, ok := m.sessionRenameForm.Content().(*SessionRenameForm)
	if !ok || !content.Completed {
		return cmd
	}

	result := content.Result()
	m.state = stateMain
	m.sessionRenameForm = nil

	if result.Error != nil {
		return m.setError(fmt.Errorf("failed to rename session: %w", result.Error))
	}
	if result.Cancelled || result.NewKey == result.OldKey {
		return nil
	}

	m.mux.SessionRenamed(result.OldKey, result.NewKey.Name)
	return tea.Batch(m.setNotice("Renamed to "+result.NewKey.Name), m.refresh())
}

func (m *Model) updateConfirmingKill(msg tea.Msg) tea.Cmd {
	confirmed, done, cmd := m.updateConfirmDialog(msg)
	if !done {
		return cmd
	}
	target := m.killTarget
	m.killTarget = domain.SessionKey{}
	m.state = stateMain
	if !confirmed {
		return nil
	}

	logging.Logger.Info("Killing session", "key", target.String())
	return deleteSessionCmd(m.sessionService, target)
}

func (m *Model) updateConfirmingHostDelete(msg tea.Msg) tea.Cmd {
	confirmed, done, cmd := m.updateConfirmDialog(msg)
	if !done {
		return cmd
	}
	target := m.hostDeleteTarget
	m.hostDeleteTarget = domain.Host{}
	m.state = stateHostManager
	if !confirmed {
		return nil
	}

	return deleteHostCmd(m.hostService, target.ID)
}

// updateConfirmDialog forwards msg to the confirmation dialog. done is
// true once the user answered or cancelled.
func (m *Model) updateConfirmDialog(msg tea.Msg) (confirmed bool, done bool, cmd tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, m.keys.Navigation.Back.Binding, m.keys.Application.ForceQuit.Binding) {
			m.confirmDialog = nil
			m.confirmed = nil
			return false, true, nil
		}
	}

	if m.confirmDialog == nil {
		return false, true, nil
	}

	updated, cmd := m.confirmDialog.Update(msg)
	m.confirmDialog = updated.(*Dialog)

	form, ok := m.confirmDialog.Content().(*huh.Form)
	if !ok || form.State != huh.StateCompleted {
		return false, false, cmd
	}

	confirmed = *m.confirmed
	m.confirmDialog = nil
	m.confirmed = nil
	return confirmed, true, nil
}

// newConfirmDialog creates a yes/no dialog writing its answer to m.confirmed
func (m *Model) newConfirmDialog(title, question, description, affirmative string) *Dialog {
	confirmed := false
	m.confirmed = &confirmed
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(question).
				Description(description).
				Value(m.confirmed).
				Affirmative(affirmative).
				Negative("Cancel"),
		),
	)
	return NewDialog(title, form, m.devMode)
}

func (m *Model) updateHelp(msg tea.Msg) tea.Cmd {
	updated, cmd := m.helpScreen.Update(msg)
	m.helpScreen = updated.(*Dialog)

	if content, ok := m.helpScreen.Content().(*HelpScreen); ok && content.Completed {
		m.state = stateMain
		m.helpScreen = nil
		return nil
	}
	return cmd
}

func (m *Model) updateHostManager(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Application.ForceQuit.Binding):
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Navigation.Back.Binding, m.keys.Application.Hosts.Binding, m.keys.Application.Quit.Binding):
		m.state = stateMain
		m.hostManager = nil
		return nil
	case key.Matches(keyMsg, m.keys.Navigation.Up.Binding):
		m.hostManager.Up()
	case key.Matches(keyMsg, m.keys.Navigation.Down.Binding):
		m.hostManager.Down()
	case key.Matches(keyMsg, m.keys.HostManagement.Add.Binding):
		return m.openHostForm("Add Host", nil)
	case key.Matches(keyMsg, m.keys.HostManagement.Edit.Binding):
		if h, ok := m.hostManager.Selected(); ok {
			return m.openHostForm("Edit Host", &h)
		}
	case key.Matches(keyMsg, m.keys.HostManagement.Toggle.Binding):
		if h, ok := m.hostManager.Selected(); ok {
			return setHostEnabledCmd(m.hostService, h.ID, !h.Enabled)
		}
	case key.Matches(keyMsg, m.keys.HostManagement.Delete.Binding):
		h, ok := m.hostManager.Selected()
		if !ok {
			return nil
		}
		if h.ID == domain.LocalHostID {
			return m.setError(errors.New("the local host cannot be deleted"))
		}
		m.hostDeleteTarget = h
		m.confirmDialog = m.newConfirmDialog("Delete Host",
			fmt.Sprintf("Delete host %s?", h.DisplayName()),
			"Its sessions disappear from the tabs. Open terminals stay until closed.",
			"Delete")
		m.state = stateConfirmingHostDelete
		return m.confirmDialog.Init()
	}
	return nil
}

func (m *Model) openHostForm(title string, existing *domain.Host) tea.Cmd {
	m.hostForm = NewDialog(title, NewHostForm(m.hostService, existing), m.devMode)
	m.state = stateEditingHost
	return m.hostForm.Init()
}

func (m *Model) updateEditingHost(msg tea.Msg) tea.Cmd {
	updated, cmd := m.hostForm.Update(msg)
	m.hostForm = updated.(*Dialog)

	content, ok := m.hostForm.Content().(*HostForm)
	if !ok || !content.Completed {
		return cmd
	}

	result := content.Result()
	m.state = stateHostManager
	m.hostForm = nil

	if result.Error != nil {
		return m.setError(fmt.Errorf("failed to save host: %w", result.Error))
	}
	if result.Cancelled {
		return nil
	}

	action := "updated"
	if result.HostID == "" {
		action = "added"
	}
	return tea.Batch(m.setNotice("Host "+action), m.refresh())
}

// refresh starts a list refresh unless one is running
func (m *Model) refresh() tea.Cmd {
	if m.refreshing {
		return nil
	}
	m.refreshing = true
	return refreshCmd(m.refresher)
}

func (m *Model) selectSession(key domain.SessionKey) tea.Cmd {
	if err := m.mux.SelectSession(m.ctx, key); err != nil {
		return m.setError(err)
	}
	return nil
}

func (m *Model) cycleHost(step int) tea.Cmd {
	tabs := m.mux.View().HostTabs
	if len(tabs) == 0 {
		return nil
	}
	current := -1
	for i, t := range tabs {
		if t.Active {
			current = i
		}
	}
	next := wrapIndex(current, step, len(tabs))
	if err := m.mux.SelectHost(m.ctx, tabs[next].HostID); err != nil {
		return m.setError(err)
	}
	return nil
}

func (m *Model) cycleSession(step int) tea.Cmd {
	tabs := m.mux.View().SessionTabs
	if len(tabs) == 0 {
		return nil
	}
	current := -1
	for i, t := range tabs {
		if t.Active {
			current = i
		}
	}
	return m.selectSession(tabs[wrapIndex(current, step, len(tabs))].Key)
}

// quickSelect activates the numbered session tab of the scope host
func (m *Model) quickSelect(digit string) tea.Cmd {
	n, err := strconv.Atoi(digit)
	if err != nil {
		return nil
	}
	tabs := m.mux.View().SessionTabs
	if n < 1 || n > len(tabs) {
		return nil
	}
	return m.selectSession(tabs[n-1].Key)
}

// wrapIndex moves from current by step around n entries. From no
// selection (-1) a forward step lands on the first entry and a backward
// step on the last.
func wrapIndex(current, step, n int) int {
	if current < 0 {
		if step > 0 {
			return 0
		}
		return n - 1
	}
	return ((current+step)%n + n) % n
}

// hostChoices lists the hosts a session can be created on: the local host
// and every enabled remote host
func (m *Model) hostChoices() []hostChoice {
	choices := []hostChoice{{ID: domain.LocalHostID, Label: domain.LocalHostName}}
	seen := map[string]bool{domain.LocalHostID: true}
	for _, h := range m.hosts {
		if !h.Enabled || seen[h.ID] {
			continue
		}
		seen[h.ID] = true
		choices = append(choices, hostChoice{ID: h.ID, Label: h.DisplayName()})
	}
	for _, t := range m.mux.View().HostTabs {
		if !seen[t.HostID] {
			seen[t.HostID] = true
			choices = append(choices, hostChoice{ID: t.HostID, Label: t.Name})
		}
	}
	return choices
}

// sessionNames lists the session names currently listed on hostID
func (m *Model) sessionNames(hostID string) []string {
	var names []string
	for _, s := range m.mux.Sessions() {
		if s.Key().HostID == hostID {
			names = append(names, s.Name)
		}
	}
	return names
}

func containsSession(sessions []domain.Session, key domain.SessionKey) bool {
	for _, s := range sessions {
		if s.Key() == key {
			return true
		}
	}
	return false
}

func (m *Model) setError(err error) tea.Cmd {
	logging.Logger.Warn("Showing error", "error", err)
	return m.errorManager.SetError(err)
}

func (m *Model) setNotice(text string) tea.Cmd {
	return m.errorManager.SetNotice(text)
}

func (m *Model) View() string {
	switch m.state {
	case stateMain:
		return m.mainView()
	case stateCommandPalette:
		if m.commandPalette != nil {
			return bottomAnchoredOverlay(m.mainView(), m.commandPalette.View(), m.width, m.height)
		}
	case stateConfirmingHostDelete, stateConfirmingKill:
		if m.confirmDialog != nil {
			return m.confirmDialog.View()
		}
	case stateCreatingSession:
		if m.sessionForm != nil {
			return m.sessionForm.View()
		}
	case stateEditingHost:
		if m.hostForm != nil {
			return m.hostForm.View()
		}
	case stateHelp:
		if m.helpScreen != nil {
			return m.helpScreen.View()
		}
	case stateHostManager:
		if m.hostManager != nil {
			return renderDialogHeader(m.devMode, "Hosts") +
				m.hostManager.View(m.keys, m.help) + "\n" + m.bottomLine()
		}
	case stateRenamingSession:
		if m.sessionRenameForm != nil {
			return m.sessionRenameForm.View()
		}
	}
	return ""
}

// mainView renders host tabs, session tabs, the surface panel, the key
// help and a fixed two-line error area
func (m *Model) mainView() string {
	view := m.mux.View()

	header := theme.AppNameStyle.Render("muxdeck") + "  " + renderHostTabs(view.HostTabs)
	if m.refreshing {
		header += " " + m.spinner.View()
	}
	sessions := renderSessionTabs(view, m.spinner.View(), m.width)

	status := m.help.ShortHelpView(m.keys.ShortHelp())
	zoom := theme.StatusBarStyle.Render(fmt.Sprintf("zoom %d%%", view.ZoomPercent))
	if gap := m.width - lipgloss.Width(status) - lipgloss.Width(zoom); gap > 0 {
		status += strings.Repeat(" ", gap) + zoom
	} else {
		status += "  " + zoom
	}

	// header, session tabs, spacer, status bar and two bottom lines
	panelHeight := max(m.height-6, 5)
	panel := renderSurfacePanel(m, view, m.width, panelHeight)

	return header + "\n" + sessions + "\n\n" + panel + "\n" + status + "\n" + m.bottomLine()
}

// bottomLine is the two-line area shared by errors and confirmations.
// Errors win.
func (m *Model) bottomLine() string {
	switch {
	case m.errorManager.HasError():
		text := formatErrorForDisplay(m.errorManager.GetError(), m.width)
		if !strings.Contains(text, "\n") {
			text += "\n "
		}
		return theme.ErrorStyle.Render(text)
	case m.errorManager.Notice() != "":
		return theme.SuccessStyle.Render("✓ "+m.errorManager.Notice()) + "\n "
	default:
		return " \n "
	}
}
