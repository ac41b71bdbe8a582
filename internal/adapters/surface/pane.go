package surface

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/renato0307/muxdeck/internal/domain"
	"github.com/renato0307/muxdeck/internal/logging"
	"github.com/renato0307/muxdeck/internal/ports"
)

const defaultProbeTimeout = 5 * time.Second

// Status is the load state of a pane
type Status int

const (
	StatusLoading Status = iota
	StatusReady
	StatusFailed
	StatusClosed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	case StatusClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// FailureFunc is called once when a pane fails to load its address.
// It runs on the probe goroutine.
type FailureFunc func(key domain.SessionKey, err error)

// Pane is a terminal surface shown in the TUI. It tracks visibility and
// scale for the multiplexer and probes its address once on creation.
type Pane struct {
	addr   domain.TerminalAddress
	cancel context.CancelFunc
	key    domain.SessionKey

	mu        sync.Mutex
	scale     float64
	status    Status
	statusErr error
	visible   bool
}

// Verify interface compliance at compile time
var _ ports.Surface = (*Pane)(nil)

// Address implements Surface.Address
func (p *Pane) Address() domain.TerminalAddress {
	return p.addr
}

// Key returns the session the pane displays
func (p *Pane) Key() domain.SessionKey {
	return p.key
}

// Close stops a running probe and marks the pane closed
func (p *Pane) Close() error {
	p.mu.Lock()
	p.status = StatusClosed
	p.visible = false
	p.mu.Unlock()

	if p.cancel != nil {
		p.cancel()
	}
	return nil
}

// Hide implements Surface.Hide
func (p *Pane) Hide() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.visible = false
}

// Show implements Surface.Show
func (p *Pane) Show() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.status != StatusClosed {
		p.visible = true
	}
}

// Visible implements Surface.Visible
func (p *Pane) Visible() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.visible
}

// Scale implements Surface.Scale
func (p *Pane) Scale() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.scale
}

// SetScale implements Surface.SetScale
func (p *Pane) SetScale(factor float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.scale = factor
}

// Status returns the load state and, when failed, the reason
func (p *Pane) Status() (Status, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status, p.statusErr
}

// StatusText returns the status name, followed by the reason when failed
func (p *Pane) StatusText() string {
	status, err := p.Status()
	if err != nil {
		return status.String() + ": " + err.Error()
	}
	return status.String()
}

func (p *Pane) setStatus(status Status, err error) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.status == StatusClosed {
		return false
	}
	p.status = status
	p.statusErr = err
	return true
}

// probe issues one GET against the pane address
func (p *Pane) probe(ctx context.Context, client *http.Client, cookie string, onFailure FailureFunc) {
	err := get(ctx, client, p.addr.String(), cookie)
	if err == nil {
		p.setStatus(StatusReady, nil)
		logging.Logger.Debug("Terminal surface loaded", "session", p.key.String(), "address", p.addr.String())
		return
	}

	if !p.setStatus(StatusFailed, err) {
		return
	}
	logging.Logger.Warn("Terminal surface failed to load",
		"session", p.key.String(),
		"address", p.addr.String(),
		"error", err)
	if onFailure != nil {
		onFailure(p.key, err)
	}
}

func get(ctx context.Context, client *http.Client, address, cookie string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, address, nil)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", address, err)
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", address, err)
	}
	defer resp.Body.Close() //nolint:errcheck
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode >= 400 {
		return fmt.Errorf("failed to load %s: http %d", address, resp.StatusCode)
	}
	return nil
}
