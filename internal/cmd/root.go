package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/muxdeck/internal/config"
	"github.com/renato0307/muxdeck/internal/logging"
	"github.com/renato0307/muxdeck/internal/ui"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version        kong.VersionFlag `help:"Show version information"`
	AttachTTL      int              `help:"Seconds an unanswered attach blocks a resend (0 waits for the reply)" default:"30"`
	BackendURL     string           `help:"Session manager base URL" default:"http://localhost:5000" env:"MUXDECK_BACKEND_URL"`
	Cookie         string           `help:"Session cookie sent to the backend and its terminals" env:"MUXDECK_COOKIE"`
	DBPath         string           `help:"Path to the preferences database (default: ~/.muxdeck/state.db)" env:"MUXDECK_DB_PATH"`
	Debug          bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile      string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles    int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	OtelEndpoint   string           `help:"OTLP/HTTP endpoint for attach metrics (empty disables export)" env:"MUXDECK_OTEL_ENDPOINT"`
	Profile        string           `help:"Preferences profile (selection memory and zoom)" env:"MUXDECK_PROFILE"`
	RequestTimeout int              `help:"Seconds before a backend HTTP call times out" default:"10"`

	Run      RunCmd      `cmd:"" help:"Start the muxdeck TUI (default)" default:"1"`
	Serve    ServeCmd    `cmd:"serve" help:"Serve the TUI over SSH"`
	Attach   AttachCmd   `cmd:"attach" help:"Request a terminal for a session and print its address"`
	Hosts    HostsCmd    `cmd:"hosts" help:"Manage remote hosts (list, add, update, delete, import, export)"`
	Sessions SessionsCmd `cmd:"sessions" help:"Manage tmux sessions (list, create, rename, delete)"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings (meta, keys)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// settingApplies reports whether a settings.json value may replace a flag:
// the flag still holds its default and its env var is unset
func settingApplies(isDefault bool, env string) bool {
	if !isDefault {
		return false
	}
	if env == "" {
		return true
	}
	_, hasEnv := os.LookupEnv(env)
	return !hasEnv
}

// applySettings fills flags left at their defaults from settings.json.
// Precedence: CLI flags > env vars > settings.json > defaults.
func (c *CLI) applySettings() {
	s := c.settings
	if s == nil {
		return
	}

	if s.AttachPendingTTL != nil && settingApplies(c.AttachTTL == config.DefaultAttachPendingTTL, "") {
		c.AttachTTL = *s.AttachPendingTTL
	}
	if s.BackendURL != "" && settingApplies(c.BackendURL == config.DefaultBackendURL, "MUXDECK_BACKEND_URL") {
		c.BackendURL = s.BackendURL
	}
	if s.Cookie != "" && settingApplies(c.Cookie == "", "MUXDECK_COOKIE") {
		c.Cookie = s.Cookie
	}
	if s.DBPath != "" && settingApplies(c.DBPath == "", "MUXDECK_DB_PATH") {
		c.DBPath = s.DBPath
	}
	if s.Debug != nil && *s.Debug && settingApplies(!c.Debug, "MUXDECK_DEBUG") {
		c.Debug = true
	}
	if s.MaxLogFiles != nil && settingApplies(c.MaxLogFiles == logging.DefaultMaxLogFiles, "MUXDECK_MAX_LOG_FILES") {
		c.MaxLogFiles = *s.MaxLogFiles
	}
	if s.OtelEndpoint != "" && settingApplies(c.OtelEndpoint == "", "MUXDECK_OTEL_ENDPOINT") {
		c.OtelEndpoint = s.OtelEndpoint
	}
	if s.Profile != "" && settingApplies(c.Profile == "", "MUXDECK_PROFILE") {
		c.Profile = s.Profile
	}
	if s.RequestTimeout != nil && settingApplies(c.RequestTimeout == config.DefaultRequestTimeout, "") {
		c.RequestTimeout = *s.RequestTimeout
	}
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	c.applySettings()

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}
	// Exported after initialization so child processes use the same log file
	logging.ExportEnv(c.Debug || c.DebugFile != "", logFilePath, c.MaxLogFiles)

	var otelHeaders string
	if c.settings != nil {
		otelHeaders = c.settings.OtelHeaders.String()
	}

	// Created after logging so the storage logger has somewhere to write
	container, err := NewContainer(context.Background(), ContainerConfig{
		AttachTTL:      time.Duration(c.AttachTTL) * time.Second,
		BackendURL:     c.BackendURL,
		Cookie:         c.Cookie,
		DBPath:         c.DBPath,
		OtelEndpoint:   c.OtelEndpoint,
		OtelHeaders:    otelHeaders,
		Profile:        c.Profile,
		RequestTimeout: time.Duration(c.RequestTimeout) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// keyBindings returns the validated custom key bindings from settings.json
func (c *CLI) keyBindings() (config.KeyBindingsConfig, error) {
	if c.settings == nil || c.settings.Keys == nil {
		return nil, nil
	}
	if err := c.settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return nil, fmt.Errorf("invalid key bindings in settings.json: %w", err)
	}
	logging.Logger.Debug("Custom key bindings loaded and validated")
	return c.settings.Keys, nil
}

// UIFlags configure the TUI in both local and SSH mode
type UIFlags struct {
	Browser         string `help:"Browser used to open terminals (default: system browser)" env:"MUXDECK_BROWSER"`
	ChannelPath     string `help:"Path of the attach channel websocket" default:"/ws"`
	Dev             bool   `help:"Enable development mode (shows version info in dialogs)"`
	ErrorClearDelay int    `help:"Seconds before error messages auto-clear" default:"10"`
	RefreshInterval int    `help:"Seconds between background session list refreshes (0 disables)" default:"10"`
	SurfaceProbe    bool   `help:"Probe each new terminal address once" default:"true" negatable:""`
}

// applySettings fills flags left at their defaults from settings.json
func (f *UIFlags) applySettings(s *config.Settings) {
	if s == nil {
		return
	}
	if s.Browser != "" && settingApplies(f.Browser == "", "MUXDECK_BROWSER") {
		f.Browser = s.Browser
	}
	if s.ChannelPath != "" && settingApplies(f.ChannelPath == "/ws", "") {
		f.ChannelPath = s.ChannelPath
	}
	if s.ErrorClearDelay != nil && settingApplies(f.ErrorClearDelay == config.DefaultErrorClearDelay, "") {
		f.ErrorClearDelay = *s.ErrorClearDelay
	}
	if s.RefreshInterval != nil && settingApplies(f.RefreshInterval == config.DefaultRefreshInterval, "") {
		f.RefreshInterval = *s.RefreshInterval
	}
	if s.SurfaceProbe != nil && settingApplies(f.SurfaceProbe, "") {
		f.SurfaceProbe = *s.SurfaceProbe
	}
}

func (f *UIFlags) uiConfig(profile string, keys config.KeyBindingsConfig) UIConfig {
	return UIConfig{
		Browser:         f.Browser,
		ChannelPath:     f.ChannelPath,
		DevMode:         f.Dev,
		ErrorClearDelay: time.Duration(f.ErrorClearDelay) * time.Second,
		Keys:            keys,
		Profile:         profile,
		RefreshInterval: time.Duration(f.RefreshInterval) * time.Second,
		SurfaceProbe:    f.SurfaceProbe,
	}
}

// RunCmd starts the TUI application
type RunCmd struct {
	UIFlags `embed:""`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	r.applySettings(cli.settings)

	keys, err := cli.keyBindings()
	if err != nil {
		return err
	}

	logging.Logger.Info("Starting muxdeck TUI", "backend", strings.TrimRight(cli.BackendURL, "/"))

	ctx := context.Background()
	model, release, err := cli.Container.NewUI(ctx, r.uiConfig(cli.Profile, keys))
	if err != nil {
		return err
	}
	defer release()

	p := tea.NewProgram(model, tea.WithAltScreen())

	logging.Logger.Info("Starting TUI program")
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	model.Shutdown(ctx)
	logging.Logger.Info("TUI program exited normally")
	return nil
}
