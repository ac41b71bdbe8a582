package cmd

import (
	"context"
	"fmt"
	"time"

	adapterbackend "github.com/renato0307/muxdeck/internal/adapters/backend"
	adapterbrowser "github.com/renato0307/muxdeck/internal/adapters/browser"
	adapterchannel "github.com/renato0307/muxdeck/internal/adapters/channel"
	adaptereditor "github.com/renato0307/muxdeck/internal/adapters/editor"
	adapterhostfile "github.com/renato0307/muxdeck/internal/adapters/hostfile"
	adapterstorage "github.com/renato0307/muxdeck/internal/adapters/storage"
	adaptersurface "github.com/renato0307/muxdeck/internal/adapters/surface"
	"github.com/renato0307/muxdeck/internal/config"
	"github.com/renato0307/muxdeck/internal/logging"
	"github.com/renato0307/muxdeck/internal/multiplexer"
	"github.com/renato0307/muxdeck/internal/paths"
	"github.com/renato0307/muxdeck/internal/services"
	"github.com/renato0307/muxdeck/internal/telemetry"
	"github.com/renato0307/muxdeck/internal/ui"
)

// ContainerConfig holds what the Container needs to reach the backend and
// its own state
type ContainerConfig struct {
	AttachTTL      time.Duration // Zero keeps attaches pending until answered
	BackendURL     string
	Cookie         string
	DBPath         string // Empty means the default under MUXDECK_HOME
	OtelEndpoint   string
	OtelHeaders    string
	Profile        string
	RequestTimeout time.Duration
}

// Container holds all dependencies for the application
type Container struct {
	// Adapters
	Backend *adapterbackend.Client
	Browser *adapterbrowser.Opener
	Editor  *adaptereditor.Opener

	// Services
	HostService    *services.HostService
	Preferences    *services.PreferencesService
	Refresher      *services.Refresher
	SessionService *services.SessionService

	Telemetry *telemetry.Telemetry

	// Internal - for cleanup and per-connection profiles
	attachTTL time.Duration
	prefsRepo *adapterstorage.SQLiteRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(ctx context.Context, cfg ContainerConfig) (*Container, error) {
	backend, err := adapterbackend.New(cfg.BackendURL,
		adapterbackend.WithCookie(cfg.Cookie),
		adapterbackend.WithUnaryTimeout(cfg.RequestTimeout),
	)
	if err != nil {
		return nil, err
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = paths.GetDBPath()
	}
	prefsRepo, err := adapterstorage.NewSQLiteRepository(paths.ExpandPath(dbPath))
	if err != nil {
		return nil, err
	}

	tel, err := telemetry.Init(ctx, telemetry.Config{
		Endpoint: cfg.OtelEndpoint,
		Headers:  cfg.OtelHeaders,
	})
	if err != nil {
		_ = prefsRepo.Close()
		return nil, err
	}

	return &Container{
		Backend:        backend,
		Browser:        adapterbrowser.NewOpener(),
		Editor:         adaptereditor.NewOpener(),
		HostService:    services.NewHostService(backend, backend, adapterhostfile.NewYAMLFile()),
		Preferences:    services.NewPreferencesService(prefsRepo, cfg.Profile),
		Refresher:      services.NewRefresher(backend, backend),
		SessionService: services.NewSessionService(backend, backend),
		Telemetry:      tel,
		attachTTL:      cfg.AttachTTL,
		prefsRepo:      prefsRepo,
	}, nil
}

// Close flushes metrics and closes the preferences database
func (c *Container) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	c.Telemetry.Shutdown(ctx)

	if c.prefsRepo != nil {
		return c.prefsRepo.Close()
	}
	return nil
}

// PreferencesFor returns the preferences of profile, sharing the database
func (c *Container) PreferencesFor(profile string) *services.PreferencesService {
	if profile == "" || profile == c.Preferences.Profile() {
		return c.Preferences
	}
	return services.NewPreferencesService(c.prefsRepo, profile)
}

// NewMultiplexer connects an attach channel and builds a multiplexer on it.
// onFailure receives surface load failures and may be nil.
func (c *Container) NewMultiplexer(ctx context.Context, channelPath string, probe bool, onFailure adaptersurface.FailureFunc) (*multiplexer.Multiplexer, *adapterchannel.WebSocket, error) {
	origin := c.Backend.Origin()
	channel, err := adapterchannel.Dial(ctx, adapterchannel.ChannelURL(origin, channelPath), c.Backend.Cookie())
	if err != nil {
		return nil, nil, err
	}

	surfaces := adaptersurface.NewFactory(onFailure,
		adaptersurface.WithCookie(c.Backend.Cookie()),
		adaptersurface.WithProbe(probe),
	)
	mux := multiplexer.New(multiplexer.Config{
		Channel:    channel,
		Metrics:    c.Telemetry.Metrics,
		Origin:     origin,
		PendingTTL: c.attachTTL,
		Surfaces:   surfaces,
	})
	return mux, channel, nil
}

// UIConfig configures one TUI instance
type UIConfig struct {
	Browser         string
	ChannelPath     string
	DevMode         bool
	ErrorClearDelay time.Duration
	Keys            config.KeyBindingsConfig
	Profile         string
	RefreshInterval time.Duration
	SurfaceProbe    bool
}

// NewUI builds a TUI model with its own multiplexer and attach channel.
// release closes the channel; call it after Model.Shutdown.
func (c *Container) NewUI(ctx context.Context, cfg UIConfig) (*ui.Model, func(), error) {
	failures := ui.NewFailureFeed()
	mux, channel, err := c.NewMultiplexer(ctx, cfg.ChannelPath, cfg.SurfaceProbe, failures.Report)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open attach channel: %w", err)
	}

	model := ui.NewModel(ui.ModelConfig{
		Browser:         c.Browser,
		BrowserName:     cfg.Browser,
		Channel:         channel,
		Context:         ctx,
		DevMode:         cfg.DevMode,
		ErrorClearDelay: cfg.ErrorClearDelay,
		Failures:        failures,
		HostService:     c.HostService,
		Keys:            cfg.Keys,
		Multiplexer:     mux,
		Preferences:     c.PreferencesFor(cfg.Profile),
		RefreshInterval: cfg.RefreshInterval,
		Refresher:       c.Refresher,
		SessionService:  c.SessionService,
	})

	release := func() {
		if err := channel.Close(); err != nil {
			logging.Logger.Warn("Failed to close attach channel", "error", err)
		}
	}
	return model, release, nil
}
