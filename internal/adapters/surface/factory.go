package surface

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/renato0307/muxdeck/internal/domain"
	"github.com/renato0307/muxdeck/internal/ports"
)

// Factory creates panes and starts their load probe
type Factory struct {
	client       *http.Client
	cookie       string
	onFailure    FailureFunc
	probe        bool
	probeTimeout time.Duration
	wg           sync.WaitGroup
}

// Verify interface compliance at compile time
var _ ports.SurfaceFactory = (*Factory)(nil)

// FactoryOption configures a Factory
type FactoryOption func(*Factory)

// WithCookie sends cookie with every probe
func WithCookie(cookie string) FactoryOption {
	return func(f *Factory) {
		f.cookie = cookie
	}
}

// WithHTTPClient overrides the client probes use
func WithHTTPClient(client *http.Client) FactoryOption {
	return func(f *Factory) {
		if client != nil {
			f.client = client
		}
	}
}

// WithProbe enables or disables the load probe. Panes created without a
// probe are ready immediately.
func WithProbe(enabled bool) FactoryOption {
	return func(f *Factory) {
		f.probe = enabled
	}
}

// WithProbeTimeout bounds each probe
func WithProbeTimeout(timeout time.Duration) FactoryOption {
	return func(f *Factory) {
		if timeout > 0 {
			f.probeTimeout = timeout
		}
	}
}

// NewFactory creates a Factory. onFailure may be nil.
func NewFactory(onFailure FailureFunc, opts ...FactoryOption) *Factory {
	f := &Factory{
		client:       &http.Client{},
		onFailure:    onFailure,
		probe:        true,
		probeTimeout: defaultProbeTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewSurface implements SurfaceFactory.NewSurface. The pane starts hidden
// at scale 1; the registry applies the current zoom before showing it.
func (f *Factory) NewSurface(key domain.SessionKey, addr domain.TerminalAddress) (ports.Surface, error) {
	if addr.IsZero() {
		return nil, fmt.Errorf("%w: empty address for %s", domain.ErrInvalidAddress, key)
	}

	p := &Pane{
		addr:   addr,
		key:    key,
		scale:  1.0,
		status: StatusReady,
	}
	if !f.probe {
		return p, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), f.probeTimeout)
	p.cancel = cancel
	p.status = StatusLoading

	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		defer cancel()
		p.probe(ctx, f.client, f.cookie, f.onFailure)
	}()
	return p, nil
}

// Wait blocks until every running probe has finished
func (f *Factory) Wait() {
	f.wg.Wait()
}
