package multiplexer

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/renato0307/muxdeck/internal/domain"
	"github.com/renato0307/muxdeck/internal/logging"
	"github.com/renato0307/muxdeck/internal/ports"
	"github.com/renato0307/muxdeck/internal/telemetry"
)

// DefaultPendingTTL bounds how long an unanswered attach suppresses new ones.
// A TTL of zero or less keeps an attach pending until it resolves.
const DefaultPendingTTL = 30 * time.Second

// PendingAttach is an attach request waiting for its terminal_ready
type PendingAttach struct {
	IssuedAt  time.Time
	Key       domain.SessionKey
	RequestID string
}

// Resolution describes what a terminal_ready did to the registry
type Resolution struct {
	Created bool
	Key     domain.SessionKey
	Reused  bool
	Shown   bool
}

// AttachClient sends attach requests and turns their replies into
// registry mutations
type AttachClient struct {
	channel      ports.AttachChannel
	factory      ports.SurfaceFactory
	metrics      *telemetry.Metrics
	newRequestID func() string
	now          func() time.Time
	origin       *url.URL
	pending      map[domain.SessionKey]PendingAttach
	pendingTTL   time.Duration
	registry     *Registry
}

// NewAttachClient creates an AttachClient resolving addresses against origin
func NewAttachClient(channel ports.AttachChannel, factory ports.SurfaceFactory, registry *Registry, origin *url.URL, metrics *telemetry.Metrics, pendingTTL time.Duration) *AttachClient {
	return &AttachClient{
		channel:      channel,
		factory:      factory,
		metrics:      metrics,
		newRequestID: func() string { return uuid.New().String() },
		now:          time.Now,
		origin:       origin,
		pending:      make(map[domain.SessionKey]PendingAttach),
		pendingTTL:   pendingTTL,
		registry:     registry,
	}
}

// IsPending reports whether an unexpired attach is outstanding for key
func (c *AttachClient) IsPending(key domain.SessionKey) bool {
	p, ok := c.pending[key]
	if !ok {
		return false
	}
	return c.pendingTTL <= 0 || c.now().Sub(p.IssuedAt) < c.pendingTTL
}

// Pending returns the outstanding attaches
func (c *AttachClient) Pending() []PendingAttach {
	out := make([]PendingAttach, 0, len(c.pending))
	for _, p := range c.pending {
		out = append(out, p)
	}
	return out
}

// RequestAttach sends one attach_session for key without waiting for the reply.
// Nothing is sent when key is registered or already pending.
func (c *AttachClient) RequestAttach(ctx context.Context, key domain.SessionKey) error {
	if c.registry.Has(key) {
		return nil
	}
	if c.IsPending(key) {
		logging.Logger.Debug("Attach already pending, suppressing", "key", key.String())
		c.metrics.RecordAttachSuppressed(ctx)
		return nil
	}

	req := domain.AttachRequest{
		HostID:      key.HostID,
		RequestID:   c.newRequestID(),
		SessionName: key.Name,
	}
	if err := c.channel.SendAttach(ctx, req); err != nil {
		return fmt.Errorf("failed to request terminal for %s: %w", key, err)
	}

	c.pending[key] = PendingAttach{
		IssuedAt:  c.now(),
		Key:       key,
		RequestID: req.RequestID,
	}
	c.metrics.RecordAttachRequest(ctx, key.HostID)
	logging.Logger.Info("Attach requested", "key", key.String(), "request_id", req.RequestID)
	return nil
}

// correlate finds the session a terminal_ready belongs to. An echoed request
// id must match a pending attach; replies without one go to the current
// selection.
func (c *AttachClient) correlate(ev domain.TerminalReady, current domain.SessionKey) (domain.SessionKey, bool) {
	if ev.RequestID != "" {
		for key, p := range c.pending {
			if p.RequestID == ev.RequestID {
				return key, true
			}
		}
		// Cleared by an error event or replaced after expiry
		logging.Logger.Warn("Dropping terminal_ready for an unknown request id",
			"request_id", ev.RequestID,
			"terminal_id", ev.TerminalID)
		return domain.SessionKey{}, false
	}
	if current.IsZero() {
		return domain.SessionKey{}, false
	}
	return current, true
}

// HandleTerminalReady resolves ev into the registry. The resource is shown
// only when it belongs to current, the selection at the time of arrival.
func (c *AttachClient) HandleTerminalReady(ctx context.Context, ev domain.TerminalReady, current domain.SessionKey) (Resolution, error) {
	key, ok := c.correlate(ev, current)
	if !ok {
		logging.Logger.Debug("No session for terminal_ready", "terminal_id", ev.TerminalID)
		return Resolution{}, nil
	}
	defer delete(c.pending, key)

	res := Resolution{Key: key, Reused: ev.Reused}

	if ev.Connection == nil {
		return res, fmt.Errorf("%w: terminal %s has no connection", domain.ErrUnknownConnection, ev.TerminalID)
	}
	addr, err := ev.Connection.Resolve(c.origin)
	if err != nil {
		return res, fmt.Errorf("failed to resolve terminal for %s: %w", key, err)
	}

	// A reused terminal that already has a surface needs nothing new.
	// A fresh terminal always gets a new surface; Register drops it if
	// the key was filled in the meantime.
	if !(ev.Reused && c.registry.Has(key)) {
		surface, err := c.factory.NewSurface(key, addr)
		if err != nil {
			return res, fmt.Errorf("failed to create surface for %s: %w", key, err)
		}
		if c.registry.Register(&Resource{Key: key, Surface: surface, TerminalID: ev.TerminalID}) {
			res.Created = true
		} else if err := surface.Close(); err != nil {
			logging.Logger.Warn("Failed to close duplicate surface", "key", key.String(), "error", err)
		}
	}

	if key == current {
		res.Shown = c.registry.Show(key)
	}

	c.metrics.RecordTerminalReady(ctx, ev.Reused, res.Created)
	logging.Logger.Info("Terminal ready",
		"key", key.String(),
		"terminal_id", ev.TerminalID,
		"reused", ev.Reused,
		"created", res.Created,
		"shown", res.Shown,
		"address", addr.String())
	return res, nil
}

// HandleAttachFailed clears every pending attach so the user can retry, and
// returns the backend message as the error
func (c *AttachClient) HandleAttachFailed(ctx context.Context, ev domain.AttachFailed) error {
	logging.Logger.Error("Attach failed", "message", ev.Message, "pending", len(c.pending))
	clear(c.pending)
	c.metrics.RecordAttachError(ctx)
	return ev
}

// HandleTerminalClosed only logs; resources are kept until the session is deleted
func (c *AttachClient) HandleTerminalClosed(ev domain.TerminalClosed) {
	logging.Logger.Info("Terminal closed", "terminal_id", ev.TerminalID)
}

// Forget drops any pending attach for key
func (c *AttachClient) Forget(key domain.SessionKey) {
	delete(c.pending, key)
}

// Rekey moves a pending attach from oldKey to newKey
func (c *AttachClient) Rekey(oldKey, newKey domain.SessionKey) {
	p, ok := c.pending[oldKey]
	if !ok {
		return
	}
	delete(c.pending, oldKey)
	p.Key = newKey
	c.pending[newKey] = p
}
