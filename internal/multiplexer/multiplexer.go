// Package multiplexer maps (host, session) pairs to live terminal surfaces.
//
// A Multiplexer owns the registry of surfaces, the attach client, the
// selection and the zoom. It is driven from a single goroutine (the
// bubbletea update loop or the attach command loop) and holds no locks.
package multiplexer

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/renato0307/muxdeck/internal/domain"
	"github.com/renato0307/muxdeck/internal/logging"
	"github.com/renato0307/muxdeck/internal/ports"
	"github.com/renato0307/muxdeck/internal/telemetry"
)

// Config holds the dependencies of a Multiplexer
type Config struct {
	Channel    ports.AttachChannel
	Metrics    *telemetry.Metrics
	Origin     *url.URL
	// PendingTTL is how long an unanswered attach suppresses new ones.
	// Zero waits for the reply or an error event.
	PendingTTL time.Duration
	Surfaces   ports.SurfaceFactory
}

// Multiplexer is the session-terminal context of one UI instance
type Multiplexer struct {
	attach    *AttachClient
	listErr   error
	metrics   *telemetry.Metrics
	registry  *Registry
	restoring bool
	selection *Selection
	sessions  []domain.Session
	zoom      *Zoom
}

// New creates a Multiplexer with nothing selected and default zoom
func New(cfg Config) *Multiplexer {
	zoom := NewZoom()
	registry := NewRegistry(zoom.Level())
	return &Multiplexer{
		attach:    NewAttachClient(cfg.Channel, cfg.Surfaces, registry, cfg.Origin, cfg.Metrics, cfg.PendingTTL),
		metrics:   cfg.Metrics,
		registry:  registry,
		selection: NewSelection(),
		zoom:      zoom,
	}
}

// Registry exposes the resource registry (read access for views and tests)
func (m *Multiplexer) Registry() *Registry {
	return m.registry
}

// Attach exposes the attach client
func (m *Multiplexer) Attach() *AttachClient {
	return m.attach
}

// Selection exposes the selection model
func (m *Multiplexer) Selection() *Selection {
	return m.selection
}

// Sessions returns the last applied session list
func (m *Multiplexer) Sessions() []domain.Session {
	return m.sessions
}

// SelectHost scopes to hostID and re-shows its remembered session.
// Without one, nothing is visible.
func (m *Multiplexer) SelectHost(ctx context.Context, hostID string) error {
	key, ok := m.selection.SelectHost(hostID)
	logging.Logger.Debug("Host selected", "host_id", hostID, "restored", key.String())
	if !ok {
		m.registry.HideVisible()
		return nil
	}
	return m.show(ctx, key)
}

// SelectSession activates key: shown at once when warm, requested otherwise
func (m *Multiplexer) SelectSession(ctx context.Context, key domain.SessionKey) error {
	m.selection.SelectSession(key)
	logging.Logger.Debug("Session selected", "key", key.String())
	return m.show(ctx, key)
}

// show makes key visible or requests it. While the request is in flight
// nothing is visible, so the visible surface never disagrees with the
// active tab.
func (m *Multiplexer) show(ctx context.Context, key domain.SessionKey) error {
	var reqErr error
	warm := m.registry.EnsureVisible(key, func(k domain.SessionKey) {
		m.registry.HideVisible()
		reqErr = m.attach.RequestAttach(ctx, k)
	})
	if warm {
		m.metrics.RecordSurfaceSwitch(ctx)
	}
	return reqErr
}

// ApplySessions replaces the session list after a successful refresh.
// The scope falls back to the first listed host when its host has no sessions.
func (m *Multiplexer) ApplySessions(ctx context.Context, sessions []domain.Session) error {
	m.sessions = sessions
	m.listErr = nil

	if next, ok := FallbackScope(m.selection.Scope(), sessions); ok {
		logging.Logger.Info("Scope host has no sessions, falling back",
			"from", m.selection.Scope(),
			"to", next)
		m.restoring = false
		return m.SelectHost(ctx, next)
	}

	if m.restoring {
		m.restoring = false
		if key, ok := m.selection.Active(); ok && m.listed(key) {
			return m.show(ctx, key)
		}
	}
	return nil
}

// SetListError records a failed refresh. The previous list is kept.
func (m *Multiplexer) SetListError(err error) {
	m.listErr = err
}

func (m *Multiplexer) listed(key domain.SessionKey) bool {
	for _, s := range m.sessions {
		if s.Key() == key {
			return true
		}
	}
	return false
}

// HandleEvent applies one inbound channel event
func (m *Multiplexer) HandleEvent(ctx context.Context, ev domain.AttachEvent) (Resolution, error) {
	switch e := ev.(type) {
	case domain.TerminalReady:
		current, _ := m.selection.Active()
		return m.attach.HandleTerminalReady(ctx, e, current)
	case domain.TerminalClosed:
		m.attach.HandleTerminalClosed(e)
		return Resolution{}, nil
	case domain.AttachFailed:
		return Resolution{}, m.attach.HandleAttachFailed(ctx, e)
	default:
		return Resolution{}, fmt.Errorf("unexpected attach event %T", ev)
	}
}

// SessionRenamed migrates the selection and the registry entry of oldKey
// once the backend has acknowledged the rename
func (m *Multiplexer) SessionRenamed(oldKey domain.SessionKey, newName string) {
	newKey := domain.NewSessionKey(oldKey.HostID, newName)
	m.selection.Renamed(oldKey, newName)
	m.attach.Rekey(oldKey, newKey)
	if !m.registry.Rekey(oldKey, newKey) && m.registry.Has(oldKey) {
		logging.Logger.Warn("Rename target already registered, dropping old resource",
			"old", oldKey.String(),
			"new", newKey.String())
		if err := m.registry.Remove(oldKey); err != nil {
			logging.Logger.Warn("Failed to remove renamed resource", "error", err)
		}
		if active, ok := m.selection.Active(); ok && active == newKey {
			m.registry.Show(newKey)
		}
	}
	for i := range m.sessions {
		if m.sessions[i].Key() == oldKey {
			m.sessions[i].Name = newName
		}
	}
}

// SessionDeleted removes the resource of key and forgets it in the selection
func (m *Multiplexer) SessionDeleted(key domain.SessionKey) error {
	m.attach.Forget(key)
	m.selection.Deleted(key)
	return m.registry.Remove(key)
}

// ZoomIn raises the zoom by one step on every surface
func (m *Multiplexer) ZoomIn() float64 {
	return m.applyZoom(m.zoom.In())
}

// ZoomOut lowers the zoom by one step on every surface
func (m *Multiplexer) ZoomOut() float64 {
	return m.applyZoom(m.zoom.Out())
}

// ZoomReset restores the default zoom on every surface
func (m *Multiplexer) ZoomReset() float64 {
	return m.applyZoom(m.zoom.Reset())
}

// SetZoom sets an explicit, clamped zoom on every surface
func (m *Multiplexer) SetZoom(factor float64) float64 {
	return m.applyZoom(m.zoom.Set(factor))
}

// Zoom returns the current factor
func (m *Multiplexer) Zoom() float64 {
	return m.zoom.Level()
}

func (m *Multiplexer) applyZoom(level float64) float64 {
	m.registry.SetScale(level)
	return level
}

// VisibleSurface returns the visible resource
func (m *Multiplexer) VisibleSurface() (*Resource, bool) {
	key, ok := m.registry.Visible()
	if !ok {
		return nil, false
	}
	return m.registry.Get(key)
}

// View derives the tabs for the current state
func (m *Multiplexer) View() View {
	active, _ := m.selection.Active()
	v := Derive(m.sessions, m.selection.Scope(), active, m.listErr)
	v.Visible, _ = m.registry.Visible()
	v.ZoomPercent = m.zoom.Percent()
	for i := range v.SessionTabs {
		key := v.SessionTabs[i].Key
		v.SessionTabs[i].Warm = m.registry.Has(key)
		v.SessionTabs[i].Pending = m.attach.IsPending(key)
	}
	return v
}

// Preferences snapshots the state worth restoring on the next start
func (m *Multiplexer) Preferences() domain.Preferences {
	return domain.Preferences{
		LastActive:  m.selection.LastActive(),
		ScopeHostID: m.selection.Scope(),
		Zoom:        m.zoom.Level(),
	}
}

// Restore loads persisted preferences. The remembered session of the
// restored scope is attached after the first session list is applied.
func (m *Multiplexer) Restore(prefs domain.Preferences) {
	if prefs.Zoom > 0 {
		m.applyZoom(m.zoom.Set(prefs.Zoom))
	}
	m.selection.Restore(prefs.ScopeHostID, prefs.LastActive)
	_, m.restoring = m.selection.Active()
}

// Close releases every surface
func (m *Multiplexer) Close() error {
	return m.registry.Close()
}
