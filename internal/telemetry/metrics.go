package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/renato0307/muxdeck"

// Metrics holds the attach traffic counters.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	AttachErrors     metric.Int64Counter
	AttachRequests   metric.Int64Counter
	AttachSuppressed metric.Int64Counter
	SurfaceSwitches  metric.Int64Counter
	TerminalsReady   metric.Int64Counter
}

// NewMetrics creates the instruments on the given provider
func NewMetrics(provider metric.MeterProvider) (*Metrics, error) {
	meter := provider.Meter(meterName)
	m := &Metrics{}
	var err error

	m.AttachRequests, err = meter.Int64Counter("attach.requests",
		metric.WithDescription("attach_session messages sent to the backend"))
	if err != nil {
		return nil, err
	}

	m.AttachSuppressed, err = meter.Int64Counter("attach.suppressed",
		metric.WithDescription("Attach requests dropped because one was already pending for the session"))
	if err != nil {
		return nil, err
	}

	m.AttachErrors, err = meter.Int64Counter("attach.errors",
		metric.WithDescription("Error events received on the attach channel"))
	if err != nil {
		return nil, err
	}

	m.TerminalsReady, err = meter.Int64Counter("terminal.ready",
		metric.WithDescription("terminal_ready events partitioned by reuse and surface creation"))
	if err != nil {
		return nil, err
	}

	m.SurfaceSwitches, err = meter.Int64Counter("surface.switches",
		metric.WithDescription("Visible surface changes served from warm resources without network"))
	if err != nil {
		return nil, err
	}

	return m, nil
}

// RecordAttachRequest counts one attach_session sent
func (m *Metrics) RecordAttachRequest(ctx context.Context, hostID string) {
	if m == nil {
		return
	}
	m.AttachRequests.Add(ctx, 1, metric.WithAttributes(attribute.String("host.id", hostID)))
}

// RecordAttachSuppressed counts an attach dropped as a duplicate
func (m *Metrics) RecordAttachSuppressed(ctx context.Context) {
	if m == nil {
		return
	}
	m.AttachSuppressed.Add(ctx, 1)
}

// RecordAttachError counts an error event
func (m *Metrics) RecordAttachError(ctx context.Context) {
	if m == nil {
		return
	}
	m.AttachErrors.Add(ctx, 1)
}

// RecordTerminalReady counts a terminal_ready resolution
func (m *Metrics) RecordTerminalReady(ctx context.Context, reused, created bool) {
	if m == nil {
		return
	}
	m.TerminalsReady.Add(ctx, 1, metric.WithAttributes(
		attribute.Bool("terminal.reused", reused),
		attribute.Bool("surface.created", created),
	))
}

// RecordSurfaceSwitch counts a warm switch
func (m *Metrics) RecordSurfaceSwitch(ctx context.Context) {
	if m == nil {
		return
	}
	m.SurfaceSwitches.Add(ctx, 1)
}
